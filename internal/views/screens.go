package views

import (
	"fmt"
	"strings"
)

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	b.WriteString("lists:\n")
	if len(data.Lists) == 0 {
		b.WriteString("  (no lists, try /list new Work)")
		return b.String()
	}
	for i, l := range data.Lists {
		cursor := " "
		if l.Active {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d %s %s (%d)\n", cursor, i+1, Swatch(l.Color), l.Name, l.Open))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTaskList(data TaskListData) string {
	if data.ListName == "" {
		return "list:\n(no active list selected)"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  sort: %s\n", Swatch(data.Color), data.ListName, data.Sort))
	if len(data.Items) == 0 {
		b.WriteString("(no tasks, try /add Buy milk !high due:tomorrow)")
		return b.String()
	}
	for _, item := range data.Items {
		marker := "  "
		if data.Cursor > 0 && item.Index == data.Cursor {
			marker = "> "
		}
		b.WriteString(marker + renderTaskLine(item, false) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDashboard(data DashboardData) string {
	m := data.Metrics
	oldest := "-"
	if m.OldestTaskAgeDays != nil {
		oldest = fmt.Sprintf("%dd", *m.OldestTaskAgeDays)
	}

	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("open: %d | overdue: %d | due today: %d | oldest: %s | lists: %d\n",
		m.OpenTasks, m.OverdueTasks, m.DueTodayTasks, oldest, m.TotalLists))

	if len(data.Lists) > 0 {
		b.WriteString("\nby list:\n")
		for _, l := range data.Lists {
			b.WriteString(fmt.Sprintf("  %s %-20s %d open\n", Swatch(l.Color), l.Name, l.Open))
		}
	}

	b.WriteString("\nneeds attention:\n")
	if len(data.DueSoon) == 0 {
		b.WriteString("  (nothing due today)")
		return b.String()
	}
	for _, item := range data.DueSoon {
		b.WriteString(renderTaskLine(item, true) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCalendar(data CalendarData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("calendar: %s\n", data.Title))
	b.WriteString(" Sun  Mon  Tue  Wed  Thu  Fri  Sat\n")
	agenda := make([]string, 0)
	for i, cell := range data.Cells {
		label := fmt.Sprintf("%3d", cell.Day)
		mark := " "
		if len(cell.Titles) > 0 {
			mark = "*"
		}
		if cell.Today {
			mark = "@"
		}
		text := label + mark + " "
		if !cell.InMonth {
			text = mutedStyle.Render(text)
		}
		b.WriteString(text)
		if i%7 == 6 {
			b.WriteString("\n")
		}
		if cell.InMonth {
			for _, title := range cell.Titles {
				agenda = append(agenda, fmt.Sprintf("  %2d  %s", cell.Day, title))
			}
		}
	}
	b.WriteString("\nagenda:\n")
	if len(agenda) == 0 {
		b.WriteString("  (no due dates this month)")
		return b.String()
	}
	b.WriteString(strings.Join(agenda, "\n"))
	return b.String()
}

func RenderSummary(data SummaryData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d):\n", strings.ToLower(data.Title), len(data.Items)))
	if len(data.Items) == 0 {
		b.WriteString("  (none)")
		return b.String()
	}
	for _, item := range data.Items {
		b.WriteString(renderTaskLine(item, true) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	Commands    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s view):\nkeys:\n%s\ncommands:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		strings.Join(data.Commands, "\n"),
		data.HelpView,
	)
}

func renderTaskLine(item TaskItemData, withList bool) string {
	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}
	title := item.Title
	if item.Completed {
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%2d %s %s %s", item.Index, check, priorityBadge(item.Priority), title)
	if withList && item.ListName != "" {
		line += " " + Swatch(item.ListColor) + " " + item.ListName
	}
	if item.Due != "" {
		due := item.Due
		if item.Overdue {
			due = overdueStyle.Render(due)
		}
		line += " | " + due
	}
	if item.Age != "" {
		line += " | " + item.Age
	}
	if item.Description != "" {
		line += "\n     " + mutedStyle.Render(firstLine(item.Description))
	}
	return line
}

func priorityBadge(p string) string {
	switch p {
	case "high":
		return "[HIGH]"
	case "medium":
		return "[MED]"
	default:
		return "[LOW]"
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
