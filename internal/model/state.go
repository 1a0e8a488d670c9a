package model

import "maps"

// DefaultListColor is shown for tasks whose list no longer exists.
const DefaultListColor = "#CBD5E0"

// DefaultPalette is cycled through when a list has no color of its own.
var DefaultPalette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
}

// PaletteColor returns the palette entry for the list at index i.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return DefaultPalette[i%len(DefaultPalette)]
}

// State is the single aggregate the reducer transitions. Values are never
// mutated in place; use Clone before changing slices or maps.
type State struct {
	Lists           []TodoList
	Tasks           []Task
	ActiveListID    *string
	ActiveView      View
	SortPreferences map[string]SortOption
	Error           *string
}

func EmptyState() State {
	return State{
		Lists:           []TodoList{},
		Tasks:           []Task{},
		ActiveListID:    nil,
		ActiveView:      ViewDashboard,
		SortPreferences: map[string]SortOption{},
		Error:           nil,
	}
}

func (s State) Clone() State {
	out := s
	out.Lists = append([]TodoList(nil), s.Lists...)
	if out.Lists == nil {
		out.Lists = []TodoList{}
	}
	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t.clone()
	}
	out.SortPreferences = maps.Clone(s.SortPreferences)
	if out.SortPreferences == nil {
		out.SortPreferences = map[string]SortOption{}
	}
	out.ActiveListID = cloneString(s.ActiveListID)
	out.Error = cloneString(s.Error)
	return out
}

func (t Task) clone() Task {
	if t.DueDate != nil {
		v := *t.DueDate
		t.DueDate = &v
	}
	return t
}

func (s State) ActiveList() (TodoList, bool) {
	if s.ActiveListID == nil {
		return TodoList{}, false
	}
	return s.FindList(*s.ActiveListID)
}

func (s State) FindList(id string) (TodoList, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return TodoList{}, false
}

func (s State) FindListByName(name string) (TodoList, bool) {
	for _, l := range s.Lists {
		if sameListName(l.Name, name) {
			return l, true
		}
	}
	return TodoList{}, false
}

func (s State) FindTask(id string) (Task, int, bool) {
	for i, t := range s.Tasks {
		if t.ID == id {
			return t, i, true
		}
	}
	return Task{}, -1, false
}

// SortPreference returns the list's chosen sort option, defaulting to dateAdded.
func (s State) SortPreference(listID string) SortOption {
	if opt, ok := s.SortPreferences[listID]; ok && opt.IsValid() {
		return opt
	}
	return SortDateAdded
}

// ListColor returns the color of the given list or DefaultListColor.
func (s State) ListColor(listID string) string {
	if l, ok := s.FindList(listID); ok && l.Color != "" {
		return l.Color
	}
	return DefaultListColor
}

func (s State) ErrorText() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

func StringPtr(v string) *string {
	return &v
}

func Int64Ptr(v int64) *int64 {
	return &v
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
