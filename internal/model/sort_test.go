package model

import (
	"math/rand/v2"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "banana", Priority: PriorityLow, CreatedAt: 100},
		{ID: "2", Title: "Apple", Priority: PriorityHigh, CreatedAt: 200},
		{ID: "3", Title: "cherry", Priority: PriorityMedium, CreatedAt: 300},
		{ID: "4", Title: "apple", Priority: PriorityHigh, CreatedAt: 400},
		{ID: "5", Title: "date", Priority: "", CreatedAt: 500},
	}
}

func ids(tasks []Task) string {
	out := ""
	for _, t := range tasks {
		out += t.ID
	}
	return out
}

func TestSortTasks(t *testing.T) {
	cases := []struct {
		option SortOption
		want   string
	}{
		{SortDateAdded, "54321"},
		{SortPriority, "42351"},
		{SortAlphabetical, "42135"},
		{SortOption(""), "54321"},
	}
	for _, tc := range cases {
		got := ids(SortTasks(sampleTasks(), tc.option))
		if got != tc.want {
			t.Fatalf("sort %q = %s, want %s", tc.option, got, tc.want)
		}
	}
}

func TestSortTasksByDue(t *testing.T) {
	due := func(ms int64) *int64 { return &ms }
	cases := []struct {
		name  string
		tasks []Task
		want  string
	}{
		{
			name: "dated ascending then undated newest first",
			tasks: []Task{
				{ID: "1", CreatedAt: 100},
				{ID: "2", CreatedAt: 200, DueDate: due(9000)},
				{ID: "3", CreatedAt: 300},
				{ID: "4", CreatedAt: 400, DueDate: due(5000)},
				{ID: "5", CreatedAt: 50, DueDate: due(7000)},
			},
			want: "45231",
		},
		{
			name: "same due date keeps newest first",
			tasks: []Task{
				{ID: "1", CreatedAt: 100, DueDate: due(5000)},
				{ID: "2", CreatedAt: 200, DueDate: due(5000)},
			},
			want: "21",
		},
		{
			name: "zero due counts as undated",
			tasks: []Task{
				{ID: "1", CreatedAt: 100, DueDate: due(0)},
				{ID: "2", CreatedAt: 50, DueDate: due(1)},
				{ID: "3", CreatedAt: 300},
			},
			want: "231",
		},
		{name: "empty", tasks: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ids(SortTasksByDue(tc.tasks)); got != tc.want {
				t.Fatalf("order = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	in := sampleTasks()
	_ = SortTasks(in, SortPriority)
	if ids(in) != "12345" {
		t.Fatalf("input reordered: %s", ids(in))
	}
}

func TestSortByPriorityProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	priorities := []Priority{PriorityHigh, PriorityMedium, PriorityLow, ""}
	for round := 0; round < 50; round++ {
		tasks := make([]Task, 30)
		for i := range tasks {
			tasks[i] = Task{
				ID:        NewID(),
				Priority:  priorities[r.IntN(len(priorities))],
				CreatedAt: int64(r.IntN(20)),
			}
		}
		sorted := SortTasks(tasks, SortPriority)
		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if prev.Priority.Rank() > cur.Priority.Rank() {
				t.Fatalf("round %d: priority rank decreased at %d", round, i)
			}
			if prev.Priority.Rank() == cur.Priority.Rank() && prev.CreatedAt < cur.CreatedAt {
				t.Fatalf("round %d: createdAt increased within a priority group at %d", round, i)
			}
		}
	}
}

func TestVisibleTasksUsesListPreference(t *testing.T) {
	s := EmptyState()
	s.Lists = []TodoList{{ID: "L1"}, {ID: "L2"}}
	s.Tasks = []Task{
		{ID: "a", Title: "zeta", ListID: "L1", CreatedAt: 3},
		{ID: "b", Title: "other", ListID: "L2", CreatedAt: 2},
		{ID: "c", Title: "alpha", ListID: "L1", CreatedAt: 1},
	}
	s.ActiveListID = StringPtr("L1")
	s.SortPreferences["L1"] = SortAlphabetical

	if got := ids(s.VisibleTasks()); got != "ca" {
		t.Fatalf("visible = %s, want ca", got)
	}
	s.ActiveListID = nil
	if got := s.VisibleTasks(); len(got) != 0 {
		t.Fatalf("expected no visible tasks, got %d", len(got))
	}
}
