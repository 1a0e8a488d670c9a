// Package tui is the interactive bubbletea front-end over an app.Container.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasklists/internal/app"
	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/scheduler"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	List      string
	Calendar  string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	// State mirrors the container after the last dispatch.
	State model.State
	// Cursor is the 1-based task number highlighted in the list view.
	Cursor int
	// Month is the first day of the month shown in the calendar view.
	Month time.Time
	// ByDue lists tasks soonest due first without changing the stored sort.
	ByDue bool
	// Summary replaces the main pane while set.
	Summary       model.SummaryKind
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	container    *app.Container
	alerts       <-chan scheduler.DueEvent
	now          func() time.Time
	logger       *slog.Logger
	commandInput textinput.Model
	helpModel    help.Model
	notes        viewport.Model
}

type Option func(*Model)

// WithAlerts makes the model listen for due events on ch.
func WithAlerts(ch <-chan scheduler.DueEvent) Option {
	return func(m *Model) { m.alerts = ch }
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

type SwitchViewMsg struct {
	View model.View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DueAlertMsg struct {
	Event scheduler.DueEvent
}

func NewModel(c *app.Container, opts ...Option) Model {
	m := Model{
		container: c,
		now:       time.Now,
		logger:    slog.Default(),
		Keys: GlobalKeyMap{
			Dashboard: "1",
			List:      "2",
			Calendar:  "3",
			Help:      "?",
			Quit:      "q",
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.State = c.State()
	m.Month = firstOfMonth(m.now())
	m.Cursor = 1
	m.clampCursor()
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 60

	m.helpModel = help.New()
	m.notes = viewport.New(70, 8)
}
