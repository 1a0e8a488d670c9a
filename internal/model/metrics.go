package model

import "time"

type Metrics struct {
	OpenTasks     int
	OverdueTasks  int
	DueTodayTasks int
	// OldestTaskAgeDays is nil when there are no tasks.
	OldestTaskAgeDays *int
	TotalLists        int
}

type SummaryKind string

const (
	SummaryOpen     SummaryKind = "open"
	SummaryOverdue  SummaryKind = "overdue"
	SummaryDueToday SummaryKind = "dueToday"
)

func (k SummaryKind) IsValid() bool {
	switch k {
	case SummaryOpen, SummaryOverdue, SummaryDueToday:
		return true
	default:
		return false
	}
}

func ComputeMetrics(s State, now time.Time) Metrics {
	m := Metrics{TotalLists: len(s.Lists)}
	nowMs := now.UnixMilli()
	var oldest *Task
	for i := range s.Tasks {
		t := s.Tasks[i]
		if oldest == nil || t.CreatedAt < oldest.CreatedAt {
			oldest = &s.Tasks[i]
		}
		if t.IsCompleted {
			continue
		}
		m.OpenTasks++
		if IsOverdue(t, nowMs) {
			m.OverdueTasks++
		}
		if IsDueToday(t, now) {
			m.DueTodayTasks++
		}
	}
	if oldest != nil {
		days := int((nowMs - oldest.CreatedAt) / msPerDay)
		if days < 0 {
			days = 0
		}
		m.OldestTaskAgeDays = &days
	}
	return m
}

func IsOverdue(t Task, nowMs int64) bool {
	return !t.IsCompleted && t.DueDate != nil && *t.DueDate < nowMs
}

// IsDueToday reports an incomplete task due later on now's calendar day.
func IsDueToday(t Task, now time.Time) bool {
	if t.IsCompleted || t.DueDate == nil {
		return false
	}
	if *t.DueDate < now.UnixMilli() {
		return false
	}
	due := time.UnixMilli(*t.DueDate).In(now.Location())
	return daysBetween(startOfDay(now), startOfDay(due)) == 0
}

// FilterSummary returns the tasks behind a dashboard tile, in storage order.
func FilterSummary(s State, kind SummaryKind, now time.Time) []Task {
	out := make([]Task, 0)
	for _, t := range s.Tasks {
		var keep bool
		switch kind {
		case SummaryOverdue:
			keep = IsOverdue(t, now.UnixMilli())
		case SummaryDueToday:
			keep = IsDueToday(t, now)
		default:
			keep = !t.IsCompleted
		}
		if keep {
			out = append(out, t)
		}
	}
	return out
}
