package update

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/storage"
)

var (
	ErrUnknownAction = errors.New("update: unknown action type")
	ErrBadPayload    = errors.New("update: invalid action payload")
)

type wireAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type wireTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     *float64 `json:"dueDate"`
	ListID      string   `json:"listId"`
}

func (w wireTask) dueDate() *int64 {
	if w.DueDate == nil {
		return nil
	}
	return model.DueDateFromFloat(*w.DueDate)
}

type wireList struct {
	ID     string `json:"id"`
	ListID string `json:"listId"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

type wireReorder struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type wireSort struct {
	ListID     string `json:"listId"`
	SortOption string `json:"sortOption"`
}

// DecodeAction parses the tagged JSON form {"type": "...", "payload": ...}.
// Id-only actions take a bare string payload.
func DecodeAction(raw []byte) (Msg, error) {
	var action wireAction
	if err := json.Unmarshal(raw, &action); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	switch action.Type {
	case "ADD_TASK":
		var p wireTask
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return AddTaskMsg{Title: p.Title, Description: p.Description, Priority: model.Priority(p.Priority), DueDate: p.dueDate(), ListID: p.ListID}, nil
	case "UPDATE_TASK":
		var p wireTask
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return UpdateTaskMsg{ID: p.ID, Title: p.Title, Description: p.Description, Priority: model.Priority(p.Priority), DueDate: p.dueDate(), ListID: p.ListID}, nil
	case "DELETE_TASK", "TOGGLE_TASK_COMPLETION", "SWITCH_LIST", "DELETE_LIST":
		var id string
		if err := decodePayload(action, &id); err != nil {
			return nil, err
		}
		switch action.Type {
		case "DELETE_TASK":
			return DeleteTaskMsg{ID: id}, nil
		case "TOGGLE_TASK_COMPLETION":
			return ToggleTaskCompletionMsg{ID: id}, nil
		case "SWITCH_LIST":
			return SwitchListMsg{ID: id}, nil
		default:
			return DeleteListMsg{ID: id}, nil
		}
	case "CREATE_LIST":
		var p wireList
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return CreateListMsg{Name: p.Name, Color: p.Color}, nil
	case "UPDATE_LIST_COLOR":
		var p wireList
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		id := p.ListID
		if id == "" {
			id = p.ID
		}
		return UpdateListColorMsg{ID: id, Color: p.Color}, nil
	case "REORDER_LISTS":
		var p wireReorder
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return ReorderListsMsg{From: p.From, To: p.To}, nil
	case "SET_SORT_PREFERENCE":
		var p wireSort
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return SetSortPreferenceMsg{ListID: p.ListID, Option: model.SortOption(p.SortOption)}, nil
	case "SET_ERROR":
		var message string
		if err := decodePayload(action, &message); err != nil {
			return nil, err
		}
		return SetErrorMsg{Message: message}, nil
	case "CLEAR_ERROR":
		return ClearErrorMsg{}, nil
	case "SET_VIEW":
		var view string
		if err := decodePayload(action, &view); err != nil {
			return nil, err
		}
		return SetViewMsg{View: model.View(view)}, nil
	case "LOAD_STATE":
		var p storage.Payload
		if err := decodePayload(action, &p); err != nil {
			return nil, err
		}
		return LoadStateMsg{State: p.State()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}

func decodePayload(action wireAction, dst any) error {
	if len(action.Payload) == 0 {
		return fmt.Errorf("%w: %s requires a payload", ErrBadPayload, action.Type)
	}
	if err := json.Unmarshal(action.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadPayload, action.Type, err)
	}
	return nil
}
