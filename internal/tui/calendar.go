package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftMonth(-1)
	case "l", "right":
		m.shiftMonth(1)
	case "t":
		m.Month = firstOfMonth(m.now())
		m.Status = StatusBar{Text: "calendar: " + m.Month.Format("January 2006")}
	}
	return m
}

func (m *Model) shiftMonth(delta int) {
	m.Month = m.Month.AddDate(0, delta, 0)
	m.Status = StatusBar{Text: "calendar: " + m.Month.Format("January 2006")}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
