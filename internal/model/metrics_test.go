package model

import (
	"testing"
	"time"
)

func metricsFixture(now time.Time) State {
	hour := int64(time.Hour / time.Millisecond)
	day := 24 * hour
	nowMs := now.UnixMilli()
	s := EmptyState()
	s.Lists = []TodoList{{ID: "L1"}, {ID: "L2"}}
	s.Tasks = []Task{
		{ID: "overdue", ListID: "L1", CreatedAt: nowMs - 3*day, DueDate: Int64Ptr(nowMs - 2*hour)},
		{ID: "today", ListID: "L1", CreatedAt: nowMs - day, DueDate: Int64Ptr(nowMs + 8*hour)},
		{ID: "done", ListID: "L2", CreatedAt: nowMs - 10*day, IsCompleted: true, DueDate: Int64Ptr(nowMs - day)},
		{ID: "nodue", ListID: "L2", CreatedAt: nowMs - 2*hour},
		{ID: "tomorrow", ListID: "L2", CreatedAt: nowMs, DueDate: Int64Ptr(nowMs + 15*hour)},
	}
	return s
}

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	m := ComputeMetrics(metricsFixture(now), now)

	if m.OpenTasks != 4 {
		t.Fatalf("open = %d, want 4", m.OpenTasks)
	}
	if m.OverdueTasks != 1 || m.DueTodayTasks != 1 {
		t.Fatalf("overdue=%d dueToday=%d", m.OverdueTasks, m.DueTodayTasks)
	}
	if m.OldestTaskAgeDays == nil || *m.OldestTaskAgeDays != 10 {
		t.Fatalf("oldest = %v, want 10", m.OldestTaskAgeDays)
	}
	if m.TotalLists != 2 {
		t.Fatalf("lists = %d", m.TotalLists)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(EmptyState(), time.Now())
	if m.OldestTaskAgeDays != nil || m.OpenTasks != 0 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestFilterSummary(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	s := metricsFixture(now)

	cases := []struct {
		kind SummaryKind
		want string
	}{
		{SummaryOpen, "overduetodaynoduetomorrow"},
		{SummaryOverdue, "overdue"},
		{SummaryDueToday, "today"},
	}
	for _, tc := range cases {
		got := ""
		for _, task := range FilterSummary(s, tc.kind, now) {
			got += task.ID
		}
		if got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.kind, got, tc.want)
		}
	}
}
