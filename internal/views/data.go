package views

import (
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

type ListItemData struct {
	Name   string
	Color  string
	Open   int
	Active bool
}

type SidebarData struct {
	Lists []ListItemData
}

type TaskItemData struct {
	ID          string
	Index       int
	Title       string
	Description string
	Priority    string
	Completed   bool
	Age         string
	Due         string
	Overdue     bool
	ListName    string
	ListColor   string
}

type TaskListData struct {
	ListName string
	Color    string
	Sort     string
	Items    []TaskItemData
	// Cursor marks the highlighted item index; 0 marks none.
	Cursor int
}

type DashboardData struct {
	Metrics model.Metrics
	Lists   []ListItemData
	DueSoon []TaskItemData
}

type CalendarCellData struct {
	Day     int
	InMonth bool
	Today   bool
	Titles  []string
}

type CalendarData struct {
	Title string
	Cells []CalendarCellData
}

type SummaryData struct {
	Title string
	Items []TaskItemData
}

func BuildSidebar(s model.State) SidebarData {
	out := SidebarData{Lists: make([]ListItemData, 0, len(s.Lists))}
	for _, l := range s.Lists {
		open := 0
		for _, t := range s.Tasks {
			if t.ListID == l.ID && !t.IsCompleted {
				open++
			}
		}
		out.Lists = append(out.Lists, ListItemData{
			Name:   l.Name,
			Color:  l.Color,
			Open:   open,
			Active: s.ActiveListID != nil && *s.ActiveListID == l.ID,
		})
	}
	return out
}

// BuildTaskList describes the active list in its preferred sort order, or
// soonest due first when byDue is set.
// Item indexes are the 1-based numbers accepted by /done, /edit and /delete.
func BuildTaskList(s model.State, now time.Time, byDue bool) TaskListData {
	out := TaskListData{}
	active, ok := s.ActiveList()
	if !ok {
		return out
	}
	out.ListName = active.Name
	out.Color = active.Color
	out.Sort = string(s.SortPreference(active.ID))
	tasks := s.VisibleTasks()
	if byDue {
		out.Sort = "due date"
		tasks = model.SortTasksByDue(tasks)
	}
	for i, t := range tasks {
		out.Items = append(out.Items, taskItem(s, t, i+1, now))
	}
	return out
}

func BuildDashboard(s model.State, now time.Time) DashboardData {
	out := DashboardData{
		Metrics: model.ComputeMetrics(s, now),
		Lists:   BuildSidebar(s).Lists,
	}
	due := model.FilterSummary(s, model.SummaryOverdue, now)
	due = append(due, model.FilterSummary(s, model.SummaryDueToday, now)...)
	for i, t := range due {
		out.DueSoon = append(out.DueSoon, taskItem(s, t, i+1, now))
	}
	return out
}

func BuildCalendar(s model.State, year int, month time.Month, now time.Time) CalendarData {
	loc := now.Location()
	days := model.CalendarMonth(s.Tasks, year, month, loc)
	out := CalendarData{
		Title: time.Date(year, month, 1, 0, 0, 0, 0, loc).Format("January 2006"),
		Cells: make([]CalendarCellData, 0, len(days)),
	}
	ny, nm, nd := now.Date()
	for _, d := range days {
		dy, dm, dd := d.Date.Date()
		cell := CalendarCellData{
			Day:     dd,
			InMonth: d.IsCurrentMonth,
			Today:   dy == ny && dm == nm && dd == nd,
		}
		for _, t := range d.Tasks {
			cell.Titles = append(cell.Titles, t.Title)
		}
		out.Cells = append(out.Cells, cell)
	}
	return out
}

func BuildSummary(s model.State, kind model.SummaryKind, now time.Time) SummaryData {
	titles := map[model.SummaryKind]string{
		model.SummaryOpen:     "Open tasks",
		model.SummaryOverdue:  "Overdue tasks",
		model.SummaryDueToday: "Due today",
	}
	out := SummaryData{Title: titles[kind]}
	for i, t := range model.FilterSummary(s, kind, now) {
		out.Items = append(out.Items, taskItem(s, t, i+1, now))
	}
	return out
}

func taskItem(s model.State, t model.Task, index int, now time.Time) TaskItemData {
	item := TaskItemData{
		ID:          t.ID,
		Index:       index,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Completed:   t.IsCompleted,
		Age:         model.FormatTaskAge(t.CreatedAt, now),
		ListColor:   s.ListColor(t.ListID),
	}
	if l, ok := s.FindList(t.ListID); ok {
		item.ListName = l.Name
	}
	if t.DueDate != nil {
		item.Due = model.FormatDueRelative(*t.DueDate, now)
		item.Overdue = model.IsOverdue(t, now.UnixMilli())
	}
	return item
}
