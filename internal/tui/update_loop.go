package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/update"
	"github.com/sandeepkv93/tasklists/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForDueCmd(m.alerts)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		switch typed.String() {
		case "/", ":":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Dashboard:
			m.setView(model.ViewDashboard)
			return m, nil
		case m.Keys.List:
			m.setView(model.ViewList)
			return m, nil
		case m.Keys.Calendar:
			m.setView(model.ViewCalendar)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "tab":
			m.cycleList(1)
			return m, nil
		case "shift+tab":
			m.cycleList(-1)
			return m, nil
		case "s":
			m.cycleSummary()
			return m, nil
		case "esc":
			m.Summary = ""
			if m.State.Error != nil {
				m.dispatch(update.ClearErrorMsg{})
			}
			m.Status = StatusBar{}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.State.ActiveView {
		case model.ViewList:
			return m.handleListKey(typed), nil
		case model.ViewCalendar:
			return m.handleCalendarKey(typed), nil
		}
	case SwitchViewMsg:
		if typed.View.IsValid() {
			m.setView(typed.View)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case DueAlertMsg:
		m.applyDueAlert(typed.Event)
		return m, waitForDueCmd(m.alerts)
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	switch {
	case m.State.Error != nil:
		status = fmt.Sprintf("status: error: %s", *m.State.Error)
	case m.Status.Text != "" && m.Status.IsError:
		status = fmt.Sprintf("status: error: %s", m.Status.Text)
	case m.Status.Text != "":
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}

	listName := "-"
	if active, ok := m.State.ActiveList(); ok {
		listName = active.Name
	}

	main := m.renderMainPane()
	if palette := m.renderCommandPalette(); palette != "" {
		main += "\n\n" + palette
	}
	main += m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("tasklists | view: %s | list: %s", m.State.ActiveView, listName),
		Sidebar:      views.RenderSidebar(views.BuildSidebar(m.State)),
		Main:         main,
		StatusLine:   status,
		StatusError:  m.State.Error != nil || m.Status.IsError,
		Notification: strings.TrimSpace(m.renderNotificationsView()),
		Footer: fmt.Sprintf("keys: %s dashboard | %s list | %s calendar | tab next list | s summary | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.List, m.Keys.Calendar, m.Keys.Help, m.Keys.Quit),
	})
}

// dispatch sends msg through the container and refreshes the mirrored state.
func (m *Model) dispatch(msg update.Msg) model.State {
	m.State = m.container.Dispatch(msg)
	m.clampCursor()
	return m.State
}

func (m *Model) setView(v model.View) {
	m.Summary = ""
	if m.State.ActiveView == v {
		return
	}
	m.dispatch(update.SetViewMsg{View: v})
}

func (m *Model) cycleList(delta int) {
	n := len(m.State.Lists)
	if n == 0 {
		return
	}
	idx := 0
	for i, l := range m.State.Lists {
		if m.State.ActiveListID != nil && l.ID == *m.State.ActiveListID {
			idx = (i + delta + n) % n
		}
	}
	next := m.State.Lists[idx]
	m.dispatch(update.SwitchListMsg{ID: next.ID})
	m.Cursor = 1
	m.clampCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("list: %s", next.Name)}
}

func (m *Model) cycleSummary() {
	order := []model.SummaryKind{model.SummaryOpen, model.SummaryOverdue, model.SummaryDueToday, ""}
	for i, k := range order {
		if k == m.Summary {
			m.Summary = order[(i+1)%len(order)]
			return
		}
	}
	m.Summary = ""
}

func (m Model) renderMainPane() string {
	now := m.now()
	if m.Summary != "" {
		return views.RenderSummary(views.BuildSummary(m.State, m.Summary, now))
	}
	switch m.State.ActiveView {
	case model.ViewList:
		return m.renderTaskListView()
	case model.ViewCalendar:
		return views.RenderCalendar(views.BuildCalendar(m.State, m.Month.Year(), m.Month.Month(), now.In(m.Month.Location())))
	default:
		return views.RenderDashboard(views.BuildDashboard(m.State, now))
	}
}
