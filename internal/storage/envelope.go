package storage

import (
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/tasklists/internal/model"
)

const (
	// StateKey holds the versioned envelope.
	StateKey = "taskManagerState"
	// LegacyKey holds the pre-list task array.
	LegacyKey = "tasks"

	SchemaVersion = 3
)

type Envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Payload       json.RawMessage `json:"payload"`
}

// Payload is the durable subset of model.State. Error is never persisted.
type Payload struct {
	Lists           []model.TodoList            `json:"lists" yaml:"lists"`
	Tasks           []model.Task                `json:"tasks" yaml:"tasks"`
	ActiveListID    *string                     `json:"activeListId" yaml:"activeListId"`
	SortPreferences map[string]model.SortOption `json:"sortPreferences" yaml:"sortPreferences"`
	ActiveView      model.View                  `json:"activeView,omitempty" yaml:"activeView,omitempty"`
}

func PayloadFromState(s model.State) Payload {
	c := s.Clone()
	return Payload{
		Lists:           c.Lists,
		Tasks:           c.Tasks,
		ActiveListID:    c.ActiveListID,
		SortPreferences: c.SortPreferences,
		ActiveView:      c.ActiveView,
	}
}

// State rebuilds a model.State, filling nil collections and an empty view.
func (p Payload) State() model.State {
	s := model.EmptyState()
	if p.Lists != nil {
		s.Lists = p.Lists
	}
	if p.Tasks != nil {
		s.Tasks = p.Tasks
	}
	if p.SortPreferences != nil {
		s.SortPreferences = p.SortPreferences
	}
	s.ActiveListID = p.ActiveListID
	if p.ActiveView.IsValid() {
		s.ActiveView = p.ActiveView
	}
	return s.Clone()
}

// EncodeState marshals the durable subset of s inside a current-version envelope.
func EncodeState(s model.State) ([]byte, error) {
	payload, err := json.Marshal(PayloadFromState(s))
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	out, err := json.Marshal(Envelope{SchemaVersion: SchemaVersion, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return out, nil
}
