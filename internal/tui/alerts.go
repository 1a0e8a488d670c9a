package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklists/internal/scheduler"
)

func waitForDueCmd(ch <-chan scheduler.DueEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DueAlertMsg{Event: ev}
	}
}

// applyDueAlert ignores events for tasks that were completed or removed
// after the event was queued.
func (m *Model) applyDueAlert(ev scheduler.DueEvent) {
	m.State = m.container.State()
	task, _, ok := m.State.FindTask(ev.TaskID)
	if !ok || task.IsCompleted {
		m.logger.Debug("skipping stale due alert", "task", ev.TaskID)
		return
	}
	text := fmt.Sprintf("task due: %s", task.Title)
	m.Status = StatusBar{Text: text}
	m.notify("Due", text, "warn")
	m.logger.Info("task due", "task", ev.TaskID, "due", ev.DueAt.Format(time.RFC3339))
}
