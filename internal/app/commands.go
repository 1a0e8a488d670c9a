package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/tasklists/internal/commands"
	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/update"
)

// CommandHandlers maps parsed palette commands onto reducer actions. Task
// numbers refer to the active list in its preferred sort order.
func (c *Container) CommandHandlers(now func() time.Time) commands.Handlers {
	if now == nil {
		now = time.Now
	}
	return commands.Handlers{
		Add: func(a commands.TaskArgs) (commands.Result, error) {
			state := c.State()
			listID, err := listIDByName(state, a.List)
			if err != nil {
				return commands.Result{}, err
			}
			due, err := parseDue(a.Due, now())
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := c.Apply(update.AddTaskMsg{Title: a.Title, Priority: a.Priority, DueDate: due, ListID: listID}); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Title)}, nil
		},
		Edit: func(a commands.TaskArgs) (commands.Result, error) {
			state := c.State()
			task, err := taskAt(state, a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			listID, err := listIDByName(state, a.List)
			if err != nil {
				return commands.Result{}, err
			}
			msg := update.UpdateTaskMsg{
				ID:          task.ID,
				Title:       a.Title,
				Description: task.Description,
				Priority:    task.Priority,
				DueDate:     task.DueDate,
				ListID:      listID,
			}
			if a.Priority != "" {
				msg.Priority = a.Priority
			}
			switch {
			case strings.EqualFold(a.Due, "none"):
				msg.DueDate = nil
			case a.Due != "":
				if msg.DueDate, err = parseDue(a.Due, now()); err != nil {
					return commands.Result{}, err
				}
			}
			if _, err := c.Apply(msg); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("updated #%d", a.Index)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := taskAt(c.State(), a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := c.Apply(update.ToggleTaskCompletionMsg{ID: task.ID}); err != nil {
				return commands.Result{}, err
			}
			if task.IsCompleted {
				return commands.Result{Message: fmt.Sprintf("reopened: %s", task.Title)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("completed: %s", task.Title)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := taskAt(c.State(), a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := c.Apply(update.DeleteTaskMsg{ID: task.ID}); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted: %s", task.Title)}, nil
		},
		List:    c.runListCommand,
		Sort: func(cmd commands.Command) (commands.Result, error) {
			active, ok := c.State().ActiveList()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active list selected"}
			}
			if _, err := c.Apply(update.SetSortPreferenceMsg{ListID: active.ID, Option: cmd.Sort}); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s sorted by %s", active.Name, cmd.Sort)}, nil
		},
		View: func(cmd commands.Command) (commands.Result, error) {
			if _, err := c.Apply(update.SetViewMsg{View: cmd.View}); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("view: %s", cmd.View)}, nil
		},
		Summary: func(cmd commands.Command) (commands.Result, error) {
			n := len(model.FilterSummary(c.State(), cmd.Summary, now()))
			return commands.Result{Message: fmt.Sprintf("%d %s task(s)", n, cmd.Summary)}, nil
		},
	}
}

func (c *Container) runListCommand(a commands.ListArgs) (commands.Result, error) {
	state := c.State()
	switch a.Action {
	case commands.ListNew:
		color := a.Color
		if color == "" {
			color = model.PaletteColor(len(state.Lists))
		}
		if _, err := c.Apply(update.CreateListMsg{Name: a.Name, Color: color}); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: fmt.Sprintf("created list: %s", strings.TrimSpace(a.Name))}, nil
	case commands.ListMove:
		for _, pos := range []int{a.From, a.To} {
			if pos < 1 || pos > len(state.Lists) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no list #%d (have %d)", pos, len(state.Lists))}
			}
		}
		if _, err := c.Apply(update.ReorderListsMsg{From: a.From - 1, To: a.To - 1}); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: fmt.Sprintf("moved list %d to %d", a.From, a.To)}, nil
	}

	list, ok := state.FindListByName(a.Name)
	if !ok {
		return commands.Result{}, unknownList(a.Name)
	}
	var msg update.Msg
	var done string
	switch a.Action {
	case commands.ListSwitch:
		msg, done = update.SwitchListMsg{ID: list.ID}, "switched to"
	case commands.ListDelete:
		msg, done = update.DeleteListMsg{ID: list.ID}, "deleted list"
	case commands.ListColor:
		msg, done = update.UpdateListColorMsg{ID: list.ID, Color: a.Color}, "recolored"
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown list action %q", a.Action)}
	}
	if _, err := c.Apply(msg); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s %s", done, list.Name)}, nil
}

func taskAt(state model.State, index int) (model.Task, error) {
	visible := state.VisibleTasks()
	if index < 1 || index > len(visible) {
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task #%d in the active list", index)}
	}
	return visible[index-1], nil
}

func listIDByName(state model.State, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	list, ok := state.FindListByName(name)
	if !ok {
		return "", unknownList(name)
	}
	return list.ID, nil
}

func unknownList(name string) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown list %q", name)}
}

func parseDue(s string, now time.Time) (*int64, error) {
	return commands.ParseDue(s, now, now.Location())
}
