package update

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

var t0 = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

type recordingSaver struct {
	saved []model.State
}

func (s *recordingSaver) Save(state model.State) {
	s.saved = append(s.saved, state.Clone())
}

func newTestReducer() (*Reducer, *recordingSaver) {
	saver := &recordingSaver{}
	n := 0
	r := NewReducer(saver,
		WithClock(func() time.Time { return t0 }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	return r, saver
}

func workState() model.State {
	s := model.EmptyState()
	s.Lists = []model.TodoList{{ID: "L1", Name: "Work", Color: "#3B82F6", CreatedAt: 1}}
	s.ActiveListID = model.StringPtr("L1")
	return s
}

func twoListState() model.State {
	s := workState()
	s.Lists = append(s.Lists, model.TodoList{ID: "L2", Name: "Home", Color: "#10B981", CreatedAt: 2})
	s.Tasks = []model.Task{
		{ID: "T1", Title: "Ship", Priority: model.PriorityHigh, CreatedAt: 10, ListID: "L1"},
		{ID: "T2", Title: "Cook", Priority: model.PriorityLow, CreatedAt: 20, ListID: "L2"},
		{ID: "T3", Title: "Review", Priority: model.PriorityMedium, CreatedAt: 30, ListID: "L1"},
	}
	s.SortPreferences["L2"] = model.SortPriority
	return s
}

func errorOf(s model.State) string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

func TestAddTaskToActiveList(t *testing.T) {
	r, saver := newTestReducer()
	due := t0.Add(48 * time.Hour).UnixMilli()
	next := r.Reduce(workState(), AddTaskMsg{Title: "  Buy milk  ", Priority: model.PriorityHigh, DueDate: &due})

	if len(next.Tasks) != 1 || errorOf(next) != "" {
		t.Fatalf("unexpected state: %#v", next)
	}
	task := next.Tasks[0]
	want := model.Task{ID: "id-1", Title: "Buy milk", Priority: model.PriorityHigh, CreatedAt: t0.UnixMilli(), ListID: "L1", DueDate: &due}
	if !reflect.DeepEqual(task, want) {
		t.Fatalf("task = %#v, want %#v", task, want)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(saver.saved))
	}
}

func TestAddTaskPrependsAndClearsError(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()
	s.Error = model.StringPtr("old")
	next := r.Reduce(s, AddTaskMsg{Title: "New", ListID: "L2"})

	if len(next.Tasks) != len(s.Tasks)+1 || next.Tasks[0].ID != "id-1" {
		t.Fatalf("task not prepended: %#v", next.Tasks)
	}
	if next.Tasks[0].ListID != "L2" || next.Tasks[0].Priority != model.PriorityMedium {
		t.Fatalf("unexpected task: %#v", next.Tasks[0])
	}
	if next.Error != nil {
		t.Fatalf("error not cleared: %q", errorOf(next))
	}
	if errorOf(s) != "old" || len(s.Tasks) != 3 {
		t.Fatal("input state mutated")
	}
}

func TestAddTaskRejections(t *testing.T) {
	noActive := workState()
	noActive.ActiveListID = nil
	dangling := workState()
	dangling.ActiveListID = model.StringPtr("gone")

	cases := []struct {
		name  string
		state model.State
		msg   AddTaskMsg
		want  string
	}{
		{"no active list", noActive, AddTaskMsg{Title: "x"}, "No active list selected"},
		{"dangling active list", dangling, AddTaskMsg{Title: "x"}, "Target list does not exist"},
		{"explicit missing list", workState(), AddTaskMsg{Title: "x", ListID: "nope"}, "Target list does not exist"},
		{"blank title", workState(), AddTaskMsg{Title: "   "}, "Task title cannot be empty"},
		{"long title", workState(), AddTaskMsg{Title: strings.Repeat("a", 201)}, "Task title too long (max 200 characters)"},
		{"long description", workState(), AddTaskMsg{Title: "x", Description: strings.Repeat("d", 2001)}, "Task description too long (max 2000 characters)"},
		{"bad priority", workState(), AddTaskMsg{Title: "x", Priority: "urgent"}, "Invalid task priority"},
	}
	for _, tc := range cases {
		r, saver := newTestReducer()
		next := r.Reduce(tc.state, tc.msg)
		if errorOf(next) != tc.want {
			t.Fatalf("%s: error = %q, want %q", tc.name, errorOf(next), tc.want)
		}
		if len(next.Tasks) != len(tc.state.Tasks) {
			t.Fatalf("%s: tasks changed", tc.name)
		}
		if len(saver.saved) != 0 {
			t.Fatalf("%s: rejected action persisted", tc.name)
		}
	}
}

func TestAddTaskDropsInvalidDueDate(t *testing.T) {
	r, _ := newTestReducer()
	for _, due := range []int64{0, -5, model.MaxTimestamp + 1} {
		v := due
		next := r.Reduce(workState(), AddTaskMsg{Title: "x", DueDate: &v})
		if errorOf(next) != "" || next.Tasks[0].DueDate != nil {
			t.Fatalf("due %d: expected task without due date, got %#v", due, next.Tasks[0])
		}
	}
}

func TestUpdateTask(t *testing.T) {
	r, saver := newTestReducer()
	s := twoListState()
	s.Tasks[2].IsCompleted = true

	next := r.Reduce(s, UpdateTaskMsg{ID: "T3", Title: "Review PR", Description: " notes ", Priority: model.PriorityHigh})
	got := next.Tasks[2]
	if got.Title != "Review PR" || got.Description != "notes" || got.Priority != model.PriorityHigh {
		t.Fatalf("fields not updated: %#v", got)
	}
	if !got.IsCompleted || got.CreatedAt != 30 || got.ListID != "L1" {
		t.Fatalf("preserved fields changed: %#v", got)
	}
	if next.Tasks[0].ID != "T1" || next.Tasks[1].ID != "T2" {
		t.Fatal("position not preserved")
	}

	moved := r.Reduce(next, UpdateTaskMsg{ID: "T3", Title: "Review PR", Priority: model.PriorityLow, ListID: "L2"})
	if moved.Tasks[2].ListID != "L2" {
		t.Fatalf("task not moved: %#v", moved.Tasks[2])
	}
	if len(saver.saved) != 2 {
		t.Fatalf("saves = %d", len(saver.saved))
	}
}

func TestUpdateTaskRejections(t *testing.T) {
	cases := []struct {
		name string
		msg  UpdateTaskMsg
		want string
	}{
		{"missing task", UpdateTaskMsg{ID: "nonexistent", Title: "x", Priority: model.PriorityLow}, "Task not found"},
		{"blank title", UpdateTaskMsg{ID: "T1", Title: ""}, "Task title cannot be empty"},
		{"missing list", UpdateTaskMsg{ID: "T1", Title: "x", ListID: "L9"}, "Target list does not exist"},
	}
	for _, tc := range cases {
		r, _ := newTestReducer()
		s := twoListState()
		next := r.Reduce(s, tc.msg)
		if errorOf(next) != tc.want {
			t.Fatalf("%s: error = %q, want %q", tc.name, errorOf(next), tc.want)
		}
		if !reflect.DeepEqual(next.Tasks, s.Tasks) {
			t.Fatalf("%s: tasks changed", tc.name)
		}
	}
}

func TestDeleteAndToggleTask(t *testing.T) {
	r, saver := newTestReducer()
	s := twoListState()

	next := r.Reduce(s, DeleteTaskMsg{ID: "T2"})
	if len(next.Tasks) != 2 || next.Tasks[1].ID != "T3" {
		t.Fatalf("unexpected tasks: %#v", next.Tasks)
	}
	same := r.Reduce(next, DeleteTaskMsg{ID: "absent"})
	if !reflect.DeepEqual(same.Tasks, next.Tasks) {
		t.Fatal("deleting absent id changed tasks")
	}

	toggled := r.Reduce(same, ToggleTaskCompletionMsg{ID: "T1"})
	if !toggled.Tasks[0].IsCompleted {
		t.Fatal("task not toggled")
	}
	back := r.Reduce(toggled, ToggleTaskCompletionMsg{ID: "T1"})
	if back.Tasks[0].IsCompleted {
		t.Fatal("task not toggled back")
	}
	saves := len(saver.saved)
	unchanged := r.Reduce(back, ToggleTaskCompletionMsg{ID: "absent"})
	if !reflect.DeepEqual(unchanged, back) || len(saver.saved) != saves {
		t.Fatal("toggle of absent task changed state")
	}
}

func TestCreateList(t *testing.T) {
	r, _ := newTestReducer()
	next := r.Reduce(model.EmptyState(), CreateListMsg{Name: " Work ", Color: "#3B82F6"})
	if len(next.Lists) != 1 || next.Lists[0].Name != "Work" || next.Lists[0].ID != "id-1" {
		t.Fatalf("unexpected lists: %#v", next.Lists)
	}
	if next.ActiveListID == nil || *next.ActiveListID != "id-1" || next.Error != nil {
		t.Fatalf("unexpected state: %#v", next)
	}

	dup := r.Reduce(next, CreateListMsg{Name: "work", Color: "#10B981"})
	if errorOf(dup) != "List name must be unique" || len(dup.Lists) != 1 {
		t.Fatalf("duplicate accepted: %#v", dup)
	}
}

func TestCreateListRejections(t *testing.T) {
	cases := []struct {
		msg  CreateListMsg
		want string
	}{
		{CreateListMsg{Name: "", Color: "#000000"}, "List name cannot be empty"},
		{CreateListMsg{Name: "   ", Color: "#F59E0B"}, "List name cannot be empty"},
		{CreateListMsg{Name: strings.Repeat("n", 101), Color: "#000000"}, "List name too long (max 100 characters)"},
		{CreateListMsg{Name: "Ok", Color: "red"}, "Invalid color format"},
		{CreateListMsg{Name: "Ok", Color: "#12345"}, "Invalid color format"},
	}
	for _, tc := range cases {
		r, saver := newTestReducer()
		next := r.Reduce(model.EmptyState(), tc.msg)
		if errorOf(next) != tc.want || len(next.Lists) != 0 || len(saver.saved) != 0 {
			t.Fatalf("%+v: error = %q lists = %d", tc.msg, errorOf(next), len(next.Lists))
		}
	}
}

func TestUpdateListColor(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()

	next := r.Reduce(s, UpdateListColorMsg{ID: "L2", Color: "#EC4899"})
	if next.Lists[1].Color != "#EC4899" {
		t.Fatalf("color = %q", next.Lists[1].Color)
	}
	bad := r.Reduce(s, UpdateListColorMsg{ID: "L2", Color: "pink"})
	if errorOf(bad) != "Invalid color format" || bad.Lists[1].Color != "#10B981" {
		t.Fatalf("unexpected state: %#v", bad)
	}
	missing := r.Reduce(s, UpdateListColorMsg{ID: "L9", Color: "#EC4899"})
	if !reflect.DeepEqual(missing, s) {
		t.Fatal("unknown list changed state")
	}
}

func TestSwitchList(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()
	s.Error = model.StringPtr("boom")
	next := r.Reduce(s, SwitchListMsg{ID: "L2"})
	if *next.ActiveListID != "L2" || next.Error != nil {
		t.Fatalf("unexpected state: %#v", next)
	}
}

func TestDeleteOnlyActiveList(t *testing.T) {
	r, _ := newTestReducer()
	s := workState()
	s.Tasks = []model.Task{{ID: "T1", Title: "x", ListID: "L1"}}
	s.SortPreferences["L1"] = model.SortAlphabetical

	next := r.Reduce(s, DeleteListMsg{ID: "L1"})
	if len(next.Lists) != 0 || len(next.Tasks) != 0 || next.ActiveListID != nil || next.Error != nil {
		t.Fatalf("unexpected state: %#v", next)
	}
	if _, ok := next.SortPreferences["L1"]; ok {
		t.Fatal("sort preference kept for deleted list")
	}
}

func TestDeleteListReassignsOrKeepsActive(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()

	active := r.Reduce(s, DeleteListMsg{ID: "L1"})
	if *active.ActiveListID != "L2" || len(active.Tasks) != 1 || active.Tasks[0].ID != "T2" {
		t.Fatalf("unexpected state after deleting active list: %#v", active)
	}

	other := r.Reduce(s, DeleteListMsg{ID: "L2"})
	if *other.ActiveListID != "L1" || len(other.Lists) != 1 || len(other.Tasks) != 2 {
		t.Fatalf("unexpected state after deleting other list: %#v", other)
	}
}

func TestReorderLists(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()
	s.Lists = append(s.Lists, model.TodoList{ID: "L3", Name: "Gym", Color: "#EF4444"})

	names := func(st model.State) string {
		out := ""
		for _, l := range st.Lists {
			out += l.ID
		}
		return out
	}
	if got := names(r.Reduce(s, ReorderListsMsg{From: 0, To: 2})); got != "L2L3L1" {
		t.Fatalf("forward move = %s", got)
	}
	if got := names(r.Reduce(s, ReorderListsMsg{From: 2, To: 0})); got != "L3L1L2" {
		t.Fatalf("backward move = %s", got)
	}
	if got := names(r.Reduce(s, ReorderListsMsg{From: 0, To: 3})); got != "L1L2L3" {
		t.Fatalf("out of range move = %s", got)
	}
	if names(s) != "L1L2L3" {
		t.Fatal("input mutated")
	}
}

func TestSortPreferenceAndView(t *testing.T) {
	r, saver := newTestReducer()
	s := twoListState()

	next := r.Reduce(s, SetSortPreferenceMsg{ListID: "L1", Option: model.SortAlphabetical})
	if next.SortPreferences["L1"] != model.SortAlphabetical || next.SortPreferences["L2"] != model.SortPriority {
		t.Fatalf("unexpected preferences: %#v", next.SortPreferences)
	}
	if _, ok := s.SortPreferences["L1"]; ok {
		t.Fatal("input preferences mutated")
	}
	if bad := r.Reduce(s, SetSortPreferenceMsg{ListID: "L1", Option: "random"}); !reflect.DeepEqual(bad, s) {
		t.Fatal("invalid option changed state")
	}

	cal := r.Reduce(s, SetViewMsg{View: model.ViewCalendar})
	if cal.ActiveView != model.ViewCalendar {
		t.Fatalf("view = %q", cal.ActiveView)
	}
	if bad := r.Reduce(s, SetViewMsg{View: "kanban"}); bad.ActiveView != model.ViewDashboard {
		t.Fatalf("unknown view accepted: %q", bad.ActiveView)
	}
	if len(saver.saved) != 2 {
		t.Fatalf("saves = %d, want 2", len(saver.saved))
	}
}

func TestErrorActionsDoNotPersist(t *testing.T) {
	r, saver := newTestReducer()
	s := r.Reduce(workState(), SetErrorMsg{Message: "Test error"})
	if errorOf(s) != "Test error" {
		t.Fatalf("error = %q", errorOf(s))
	}
	s = r.Reduce(s, ClearErrorMsg{})
	if s.Error != nil {
		t.Fatal("error not cleared")
	}
	if len(saver.saved) != 0 {
		t.Fatalf("saves = %d, want 0", len(saver.saved))
	}
}

func TestLoadStateReplacesWholesale(t *testing.T) {
	r, _ := newTestReducer()
	loaded := twoListState()
	loaded.ActiveView = ""
	next := r.Reduce(workState(), LoadStateMsg{State: loaded})
	if len(next.Lists) != 2 || len(next.Tasks) != 3 || next.ActiveView != model.ViewDashboard {
		t.Fatalf("unexpected state: %#v", next)
	}
}

func TestUnknownAndNilMessages(t *testing.T) {
	r, _ := newTestReducer()
	s := workState()
	if got := r.Reduce(s, nil); !reflect.DeepEqual(got, s) {
		t.Fatal("nil message changed state")
	}
}

func TestSaveFailureDoesNotBlockState(t *testing.T) {
	r := NewReducer(SaverFunc(func(model.State) { panic("store exploded") }))
	s := r.Reduce(workState(), AddTaskMsg{Title: "x"})
	if s.Error != nil || len(s.Tasks) != 1 {
		t.Fatalf("state update lost: %#v", s)
	}
}

func TestAddTaskProperty(t *testing.T) {
	r, _ := newTestReducer()
	s := twoListState()
	priorities := []model.Priority{"", model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	for i := 0; i < 200; i++ {
		msg := AddTaskMsg{
			Title:    strings.Repeat("t", 1+i%model.MaxTitleLength),
			Priority: priorities[i%len(priorities)],
		}
		if i%3 == 0 {
			msg.ListID = "L2"
		}
		next := r.Reduce(s, msg)
		if len(next.Tasks) != len(s.Tasks)+1 {
			t.Fatalf("iteration %d: tasks %d -> %d", i, len(s.Tasks), len(next.Tasks))
		}
		if next.Error != nil {
			t.Fatalf("iteration %d: unexpected error %q", i, errorOf(next))
		}
		if next.Tasks[0].Title != msg.Title {
			t.Fatalf("iteration %d: new task not first", i)
		}
		s = next
	}
}
