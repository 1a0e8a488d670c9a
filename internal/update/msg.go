package update

import "github.com/sandeepkv93/tasklists/internal/model"

// Msg is an action accepted by the reducer.
type Msg interface {
	ActionType() string
}

type AddTaskMsg struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *int64
	// ListID overrides the active list when set.
	ListID string
}

type UpdateTaskMsg struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *int64
	// ListID moves the task when set; empty keeps its current list.
	ListID string
}

type DeleteTaskMsg struct{ ID string }

type ToggleTaskCompletionMsg struct{ ID string }

type CreateListMsg struct {
	Name  string
	Color string
}

type UpdateListColorMsg struct {
	ID    string
	Color string
}

type SwitchListMsg struct{ ID string }

type DeleteListMsg struct{ ID string }

// ReorderListsMsg moves the list at index From to index To.
type ReorderListsMsg struct {
	From int
	To   int
}

type SetSortPreferenceMsg struct {
	ListID string
	Option model.SortOption
}

type SetErrorMsg struct{ Message string }

type ClearErrorMsg struct{}

type SetViewMsg struct{ View model.View }

type LoadStateMsg struct{ State model.State }

func (AddTaskMsg) ActionType() string              { return "ADD_TASK" }
func (UpdateTaskMsg) ActionType() string           { return "UPDATE_TASK" }
func (DeleteTaskMsg) ActionType() string           { return "DELETE_TASK" }
func (ToggleTaskCompletionMsg) ActionType() string { return "TOGGLE_TASK_COMPLETION" }
func (CreateListMsg) ActionType() string           { return "CREATE_LIST" }
func (UpdateListColorMsg) ActionType() string      { return "UPDATE_LIST_COLOR" }
func (SwitchListMsg) ActionType() string           { return "SWITCH_LIST" }
func (DeleteListMsg) ActionType() string           { return "DELETE_LIST" }
func (ReorderListsMsg) ActionType() string         { return "REORDER_LISTS" }
func (SetSortPreferenceMsg) ActionType() string    { return "SET_SORT_PREFERENCE" }
func (SetErrorMsg) ActionType() string             { return "SET_ERROR" }
func (ClearErrorMsg) ActionType() string           { return "CLEAR_ERROR" }
func (SetViewMsg) ActionType() string              { return "SET_VIEW" }
func (LoadStateMsg) ActionType() string            { return "LOAD_STATE" }
