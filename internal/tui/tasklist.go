package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklists/internal/update"
	"github.com/sandeepkv93/tasklists/internal/views"
)

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 1 {
			m.Cursor--
		}
	case "down", "j":
		m.Cursor++
		m.clampCursor()
	case "x", " ":
		if item, ok := m.selectedItem(); ok {
			m.dispatch(update.ToggleTaskCompletionMsg{ID: item.ID})
			verb := "completed"
			if item.Completed {
				verb = "reopened"
			}
			m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", verb, item.Title)}
		}
	case "d":
		m.ByDue = !m.ByDue
		m.Status = StatusBar{Text: fmt.Sprintf("sorted by %s", views.BuildTaskList(m.State, m.now(), m.ByDue).Sort)}
	case "X", "delete":
		if item, ok := m.selectedItem(); ok {
			m.dispatch(update.DeleteTaskMsg{ID: item.ID})
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", item.Title)}
		}
	}
	return m
}

func (m Model) selectedItem() (views.TaskItemData, bool) {
	items := views.BuildTaskList(m.State, m.now(), m.ByDue).Items
	if m.Cursor < 1 || m.Cursor > len(items) {
		return views.TaskItemData{}, false
	}
	return items[m.Cursor-1], true
}

// storedIndex maps a task number as displayed to its number in the list's
// stored order, which palette commands use.
func (m Model) storedIndex(shown int) int {
	if !m.ByDue {
		return shown
	}
	items := views.BuildTaskList(m.State, m.now(), true).Items
	if shown < 1 || shown > len(items) {
		return shown
	}
	for i, t := range m.State.VisibleTasks() {
		if t.ID == items[shown-1].ID {
			return i + 1
		}
	}
	return shown
}

func (m *Model) clampCursor() {
	n := len(m.State.VisibleTasks())
	if m.Cursor > n {
		m.Cursor = n
	}
	if m.Cursor < 1 && n > 0 {
		m.Cursor = 1
	}
}

func (m Model) renderTaskListView() string {
	data := views.BuildTaskList(m.State, m.now(), m.ByDue)
	data.Cursor = m.Cursor
	out := views.RenderTaskList(data)
	item, ok := m.selectedItem()
	if !ok || item.Description == "" {
		return out
	}
	notes := m.notes
	notes.SetContent(views.RenderMarkdown(item.Description))
	return out + "\n\nnotes:\n" + notes.View()
}
