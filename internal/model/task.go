package model

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting. Unknown or missing priorities rank as low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type SortOption string

const (
	SortDateAdded    SortOption = "dateAdded"
	SortPriority     SortOption = "priority"
	SortAlphabetical SortOption = "alphabetical"
)

func (s SortOption) IsValid() bool {
	switch s {
	case SortDateAdded, SortPriority, SortAlphabetical:
		return true
	default:
		return false
	}
}

type View string

const (
	ViewDashboard View = "dashboard"
	ViewCalendar  View = "calendar"
	ViewList      View = "list"
)

func (v View) IsValid() bool {
	switch v {
	case ViewDashboard, ViewCalendar, ViewList:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	IsCompleted bool     `json:"isCompleted" yaml:"isCompleted"`
	Priority    Priority `json:"priority" yaml:"priority"`
	CreatedAt   int64    `json:"createdAt" yaml:"createdAt"`
	ListID      string   `json:"listId" yaml:"listId"`
	DueDate     *int64   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

type TodoList struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	CreatedAt int64  `json:"createdAt" yaml:"createdAt"`
}
