package model

import "time"

type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	Tasks          []Task
}

// CalendarMonth lays out whole weeks (Sunday first) covering the month, with
// the tasks due on each day.
func CalendarMonth(tasks []Task, year int, month time.Month, loc *time.Location) []CalendarDay {
	loc = orUTC(loc)
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	lead := int(first.Weekday())
	total := ((lead + daysInMonth + 6) / 7) * 7

	byDay := make(map[string][]Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := dayKey(time.UnixMilli(*t.DueDate).In(loc))
		byDay[key] = append(byDay[key], t)
	}

	out := make([]CalendarDay, 0, total)
	for i := 0; i < total; i++ {
		date := time.Date(year, month, 1-lead+i, 0, 0, 0, 0, loc)
		out = append(out, CalendarDay{
			Date:           date,
			IsCurrentMonth: date.Month() == month,
			Tasks:          byDay[dayKey(date)],
		})
	}
	return out
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
