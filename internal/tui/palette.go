package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklists/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	shown := 0
	switch {
	case cmd.Target != nil:
		shown = cmd.Target.Index
		cmd.Target.Index = m.storedIndex(shown)
	case cmd.Type == commands.TypeEdit && cmd.Task != nil:
		shown = cmd.Task.Index
		cmd.Task.Index = m.storedIndex(shown)
	}

	handlers := m.container.CommandHandlers(m.now)
	summary := handlers.Summary
	handlers.Summary = func(c commands.Command) (commands.Result, error) {
		m.Summary = c.Summary
		return summary(c)
	}
	view := handlers.View
	handlers.View = func(c commands.Command) (commands.Result, error) {
		m.Summary = ""
		return view(c)
	}

	res, err := commands.Execute(cmd, handlers)
	m.State = m.container.State()
	m.clampCursor()
	if err != nil {
		m.logger.Debug("palette command failed", "command", raw, "err", err)
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m
	}
	if cmd.Type == commands.TypeEdit {
		res.Message = fmt.Sprintf("updated #%d", shown)
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	if cmd.Type == commands.TypeAdd {
		m.Cursor = 1
		m.clampCursor()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func paletteCommands() []string {
	return []string{
		"/add <title> [!high|!medium|!low] [due:YYYY-MM-DD[THH:MM]] [list:NAME]",
		"/edit <n> <title> [!priority] [due:...|due:none] [list:NAME]",
		"/done <n>   /delete <n>",
		"/list new <name> [#RRGGBB] | switch <name> | delete <name>",
		"/list color <name> #RRGGBB | move <from> <to>",
		"/sort dateAdded|priority|alphabetical",
		"/view dashboard|list|calendar   /summary open|overdue|dueToday",
	}
}
