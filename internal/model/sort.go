package model

import (
	"sort"
	"strings"
)

// SortTasks returns a sorted copy of tasks. Every option breaks ties on
// createdAt, newest first.
func SortTasks(tasks []Task, option SortOption) []Task {
	out := append([]Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch option {
		case SortPriority:
			if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
				return ra < rb
			}
		case SortAlphabetical:
			if ka, kb := sortTitle(a), sortTitle(b); ka != kb {
				return ka < kb
			}
		}
		return a.CreatedAt > b.CreatedAt
	})
	return out
}

func sortTitle(t Task) string {
	if t.Title != "" {
		return strings.ToLower(t.Title)
	}
	return strings.ToLower(t.Description)
}

// SortTasksByDue returns a copy with dated tasks first in ascending due
// order. Undated tasks follow, newest first.
func SortTasksByDue(tasks []Task) []Task {
	out := append([]Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		da, db := hasDue(a), hasDue(b)
		switch {
		case da && db:
			return *a.DueDate < *b.DueDate
		case da != db:
			return da
		}
		return a.CreatedAt > b.CreatedAt
	})
	return out
}

func hasDue(t Task) bool {
	return t.DueDate != nil && *t.DueDate > 0
}

// TasksForList keeps the storage order.
func TasksForList(tasks []Task, listID string) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out
}

// VisibleTasks returns the active list's tasks in its preferred order.
func (s State) VisibleTasks() []Task {
	if s.ActiveListID == nil {
		return []Task{}
	}
	id := *s.ActiveListID
	return SortTasks(TasksForList(s.Tasks, id), s.SortPreference(id))
}
