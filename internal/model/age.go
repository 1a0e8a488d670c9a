package model

import (
	"fmt"
	"time"
)

const (
	msPerHour = int64(time.Hour / time.Millisecond)
	msPerDay  = 24 * msPerHour
)

// FormatTaskAge describes how long ago a task was created: "Just now" for
// clock skew, "New" under a day, then whole days and whole weeks.
func FormatTaskAge(createdAt int64, now time.Time) string {
	ageMs := now.UnixMilli() - createdAt
	if ageMs < 0 {
		return "Just now"
	}
	if ageMs < msPerDay {
		return "New"
	}
	days := ageMs / msPerDay
	if days < 7 {
		return plural(days, "day")
	}
	return plural(days/7, "week")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatCreatedDate renders "Jan 2" in loc.
func FormatCreatedDate(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(orUTC(loc)).Format("Jan 2")
}

// FormatDueDate renders "Jan 15, 10:00 AM" in loc.
func FormatDueDate(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(orUTC(loc)).Format("Jan 2, 3:04 PM")
}

// FormatDueRelative compares calendar days in now's location.
func FormatDueRelative(ts int64, now time.Time) string {
	due := time.UnixMilli(ts).In(now.Location())
	diff := daysBetween(startOfDay(now), startOfDay(due))
	switch {
	case diff == 0:
		return "Today at " + due.Format("03:04 PM")
	case diff == -1:
		return "Due yesterday"
	case diff < -1:
		return fmt.Sprintf("Due %d days ago", -diff)
	case diff == 1:
		return "Due tomorrow"
	default:
		return "Due " + due.Format("1/2/2006")
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, immune to DST-length days.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
