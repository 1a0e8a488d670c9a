package update

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

const (
	msgNoActiveList      = "No active list selected"
	msgTargetListMissing = "Target list does not exist"
	msgTaskNotFound      = "Task not found"
)

// Saver receives every state that changes durable data.
type Saver interface {
	Save(state model.State)
}

type SaverFunc func(state model.State)

func (f SaverFunc) Save(state model.State) { f(state) }

type Reducer struct {
	saver  Saver
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

type Option func(*Reducer)

func WithClock(now func() time.Time) Option {
	return func(r *Reducer) {
		if now != nil {
			r.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(r *Reducer) {
		if newID != nil {
			r.newID = newID
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reducer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewReducer builds a reducer. A nil saver keeps state in memory only.
func NewReducer(saver Saver, opts ...Option) *Reducer {
	if saver == nil {
		saver = SaverFunc(func(model.State) {})
	}
	r := &Reducer{
		saver:  saver,
		now:    time.Now,
		newID:  model.NewID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce returns the state that results from applying msg. The input state is
// never modified. Rejected actions return the prior durable data with Error set.
func (r *Reducer) Reduce(state model.State, msg Msg) (next model.State) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reducer panic", "action", actionName(msg), "panic", fmt.Sprint(rec))
			next = state
		}
	}()

	switch typed := msg.(type) {
	case AddTaskMsg:
		return r.addTask(state, typed)
	case UpdateTaskMsg:
		return r.updateTask(state, typed)
	case DeleteTaskMsg:
		return r.deleteTask(state, typed)
	case ToggleTaskCompletionMsg:
		return r.toggleTask(state, typed)
	case CreateListMsg:
		return r.createList(state, typed)
	case UpdateListColorMsg:
		return r.updateListColor(state, typed)
	case SwitchListMsg:
		next := state.Clone()
		next.ActiveListID = model.StringPtr(typed.ID)
		next.Error = nil
		return r.persist(next)
	case DeleteListMsg:
		return r.deleteList(state, typed)
	case ReorderListsMsg:
		return r.reorderLists(state, typed)
	case SetSortPreferenceMsg:
		if !typed.Option.IsValid() {
			return state
		}
		next := state.Clone()
		next.SortPreferences[typed.ListID] = typed.Option
		return r.persist(next)
	case SetErrorMsg:
		next := state.Clone()
		next.Error = model.StringPtr(typed.Message)
		return next
	case ClearErrorMsg:
		next := state.Clone()
		next.Error = nil
		return next
	case SetViewMsg:
		if !typed.View.IsValid() {
			return state
		}
		next := state.Clone()
		next.ActiveView = typed.View
		return r.persist(next)
	case LoadStateMsg:
		next := typed.State.Clone()
		if !next.ActiveView.IsValid() {
			next.ActiveView = model.ViewDashboard
		}
		return r.persist(next)
	default:
		r.logger.Debug("ignoring unknown action", "action", actionName(msg))
		return state
	}
}

func (r *Reducer) addTask(state model.State, msg AddTaskMsg) model.State {
	target := msg.ListID
	if target == "" {
		if state.ActiveListID == nil {
			return reject(state, msgNoActiveList)
		}
		target = *state.ActiveListID
	}
	if _, ok := state.FindList(target); !ok {
		return reject(state, msgTargetListMissing)
	}
	title, description, priority, err := validateTaskFields(msg.Title, msg.Description, msg.Priority)
	if err != nil {
		return rejectErr(state, err)
	}

	task := model.Task{
		ID:          r.newID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   r.now().UnixMilli(),
		ListID:      target,
		DueDate:     model.NormalizeDueDate(msg.DueDate),
	}
	next := state.Clone()
	next.Tasks = append([]model.Task{task}, next.Tasks...)
	next.Error = nil
	return r.persist(next)
}

func (r *Reducer) updateTask(state model.State, msg UpdateTaskMsg) model.State {
	current, idx, ok := state.FindTask(msg.ID)
	if !ok {
		return reject(state, msgTaskNotFound)
	}
	title, description, priority, err := validateTaskFields(msg.Title, msg.Description, msg.Priority)
	if err != nil {
		return rejectErr(state, err)
	}
	listID := current.ListID
	if msg.ListID != "" {
		if _, ok := state.FindList(msg.ListID); !ok {
			return reject(state, msgTargetListMissing)
		}
		listID = msg.ListID
	}

	next := state.Clone()
	updated := next.Tasks[idx]
	updated.Title = title
	updated.Description = description
	updated.Priority = priority
	updated.DueDate = model.NormalizeDueDate(msg.DueDate)
	updated.ListID = listID
	next.Tasks[idx] = updated
	next.Error = nil
	return r.persist(next)
}

func (r *Reducer) deleteTask(state model.State, msg DeleteTaskMsg) model.State {
	next := state.Clone()
	kept := next.Tasks[:0]
	for _, t := range next.Tasks {
		if t.ID != msg.ID {
			kept = append(kept, t)
		}
	}
	next.Tasks = kept
	return r.persist(next)
}

func (r *Reducer) toggleTask(state model.State, msg ToggleTaskCompletionMsg) model.State {
	_, idx, ok := state.FindTask(msg.ID)
	if !ok {
		return state
	}
	next := state.Clone()
	next.Tasks[idx].IsCompleted = !next.Tasks[idx].IsCompleted
	return r.persist(next)
}

func (r *Reducer) createList(state model.State, msg CreateListMsg) model.State {
	name, err := model.ValidateListName(msg.Name, state.Lists)
	if err != nil {
		return rejectErr(state, err)
	}
	color, err := model.ValidateColor(msg.Color)
	if err != nil {
		return rejectErr(state, err)
	}
	list := model.TodoList{
		ID:        r.newID(),
		Name:      name,
		Color:     color,
		CreatedAt: r.now().UnixMilli(),
	}
	next := state.Clone()
	next.Lists = append(next.Lists, list)
	next.ActiveListID = model.StringPtr(list.ID)
	next.Error = nil
	return r.persist(next)
}

func (r *Reducer) updateListColor(state model.State, msg UpdateListColorMsg) model.State {
	color, err := model.ValidateColor(msg.Color)
	if err != nil {
		return rejectErr(state, err)
	}
	next := state.Clone()
	for i := range next.Lists {
		if next.Lists[i].ID == msg.ID {
			next.Lists[i].Color = color
			return r.persist(next)
		}
	}
	return state
}

func (r *Reducer) deleteList(state model.State, msg DeleteListMsg) model.State {
	next := state.Clone()
	lists := make([]model.TodoList, 0, len(next.Lists))
	for _, l := range next.Lists {
		if l.ID != msg.ID {
			lists = append(lists, l)
		}
	}
	tasks := make([]model.Task, 0, len(next.Tasks))
	for _, t := range next.Tasks {
		if t.ListID != msg.ID {
			tasks = append(tasks, t)
		}
	}
	next.Lists = lists
	next.Tasks = tasks
	delete(next.SortPreferences, msg.ID)

	if next.ActiveListID != nil && *next.ActiveListID == msg.ID {
		next.ActiveListID = nil
		if len(lists) > 0 {
			next.ActiveListID = model.StringPtr(lists[0].ID)
		}
	}
	next.Error = nil
	return r.persist(next)
}

func (r *Reducer) reorderLists(state model.State, msg ReorderListsMsg) model.State {
	n := len(state.Lists)
	if msg.From < 0 || msg.From >= n || msg.To < 0 || msg.To >= n {
		return state
	}
	if msg.From == msg.To {
		return state
	}
	next := state.Clone()
	moved := next.Lists[msg.From]
	rest := append(next.Lists[:msg.From:msg.From], next.Lists[msg.From+1:]...)
	lists := make([]model.TodoList, 0, n)
	lists = append(lists, rest[:msg.To]...)
	lists = append(lists, moved)
	lists = append(lists, rest[msg.To:]...)
	next.Lists = lists
	return r.persist(next)
}

func (r *Reducer) persist(state model.State) (out model.State) {
	out = state
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("save failed", "panic", fmt.Sprint(rec))
		}
	}()
	r.saver.Save(state)
	return out
}

func validateTaskFields(title, description string, priority model.Priority) (string, string, model.Priority, error) {
	t, err := model.ValidateTitle(title)
	if err != nil {
		return "", "", "", err
	}
	d, err := model.ValidateDescription(description)
	if err != nil {
		return "", "", "", err
	}
	p, err := model.ValidatePriority(priority)
	if err != nil {
		return "", "", "", err
	}
	return t, d, p, nil
}

func reject(state model.State, message string) model.State {
	next := state.Clone()
	next.Error = model.StringPtr(message)
	return next
}

func rejectErr(state model.State, err error) model.State {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return reject(state, ve.Message)
	}
	return reject(state, err.Error())
}

func actionName(msg Msg) string {
	if msg == nil {
		return "<nil>"
	}
	return msg.ActionType()
}
