package migrate

import (
	"encoding/json"
	"maps"

	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/storage"
)

// DefaultListName names the list synthesized for pre-list data.
const DefaultListName = "General"

// upgradeV1toV2 wraps a flat task array in a single default list.
func upgradeV1toV2(tasks []model.Task, listID string, now int64) storage.Payload {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.ListID = listID
		out[i] = t
	}
	id := listID
	return storage.Payload{
		Lists: []model.TodoList{{
			ID:        listID,
			Name:      DefaultListName,
			Color:     model.PaletteColor(0),
			CreatedAt: now,
		}},
		Tasks:        out,
		ActiveListID: &id,
	}
}

// upgradeV2toV3 backfills list colors, splits the old single description
// field into title, normalizes the view and defaults sort preferences.
// Applying it to current data is a no-op.
func upgradeV2toV3(p storage.Payload) storage.Payload {
	out := p
	out.Lists = make([]model.TodoList, len(p.Lists))
	for i, l := range p.Lists {
		if l.Color == "" {
			l.Color = model.PaletteColor(i)
		}
		out.Lists[i] = l
	}
	out.Tasks = make([]model.Task, len(p.Tasks))
	for i, t := range p.Tasks {
		if t.Title == "" && t.Description != "" {
			t.Title = t.Description
			t.Description = ""
		}
		out.Tasks[i] = t
	}
	if out.ActiveView == model.ViewList {
		out.ActiveView = model.ViewDashboard
	}
	if p.SortPreferences == nil {
		out.SortPreferences = map[string]model.SortOption{}
	} else {
		out.SortPreferences = maps.Clone(p.SortPreferences)
	}
	return out
}

// sniffVersion classifies a bare pre-envelope object.
func sniffVersion(doc map[string]json.RawMessage) int {
	if _, ok := doc["sortPreferences"]; ok {
		return 3
	}
	var lists []map[string]json.RawMessage
	if err := json.Unmarshal(doc["lists"], &lists); err == nil {
		for _, l := range lists {
			if _, ok := l["color"]; ok {
				return 3
			}
		}
	}
	var tasks []map[string]json.RawMessage
	if err := json.Unmarshal(doc["tasks"], &tasks); err == nil {
		for _, t := range tasks {
			if _, ok := t["title"]; ok {
				return 3
			}
		}
	}
	return 2
}
