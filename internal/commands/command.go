package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeEdit    Type = "edit"
	TypeDone    Type = "done"
	TypeDelete  Type = "delete"
	TypeList    Type = "list"
	TypeSort    Type = "sort"
	TypeView    Type = "view"
	TypeSummary Type = "summary"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidArg(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// TaskArgs carries /add and /edit input. Index is the 1-based position in
// the visible task list and is only set for /edit.
type TaskArgs struct {
	Index    int
	Title    string
	Priority model.Priority
	Due      string
	List     string
}

type TargetArgs struct {
	Index int
}

type ListAction string

const (
	ListNew    ListAction = "new"
	ListSwitch ListAction = "switch"
	ListDelete ListAction = "delete"
	ListColor  ListAction = "color"
	ListMove   ListAction = "move"
)

type ListArgs struct {
	Action ListAction
	Name   string
	Color  string
	From   int
	To     int
}

type Command struct {
	Type    Type
	Raw     string
	Task    *TaskArgs
	Target  *TargetArgs
	List    *ListArgs
	Sort    model.SortOption
	View    model.View
	Summary model.SummaryKind
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeEdit:
		return parseEdit(input, args)
	case TypeDone, TypeDelete:
		return parseTarget(input, Type(head), args)
	case TypeList:
		return parseList(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeView:
		return parseView(input, args)
	case TypeSummary:
		return parseSummary(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	task, err := parseTaskWords(args)
	if err != nil {
		return Command{}, err
	}
	if task.Title == "" {
		return Command{}, invalidArg("add requires a title")
	}
	return Command{Type: TypeAdd, Raw: raw, Task: &task}, nil
}

func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalidArg("edit requires a task number and a title")
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return Command{}, err
	}
	task, err := parseTaskWords(args[1:])
	if err != nil {
		return Command{}, err
	}
	if task.Title == "" {
		return Command{}, invalidArg("edit requires a title")
	}
	task.Index = idx
	return Command{Type: TypeEdit, Raw: raw, Task: &task}, nil
}

// parseTaskWords splits free text from !priority, due:<when> and list:<name> tokens.
func parseTaskWords(args []string) (TaskArgs, error) {
	var out TaskArgs
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(arg, "!") && len(arg) > 1:
			p := model.Priority(strings.ToLower(arg[1:]))
			if !p.IsValid() {
				return TaskArgs{}, invalidArg("unknown priority %q", arg[1:])
			}
			out.Priority = p
		case strings.HasPrefix(lower, "due:"):
			out.Due = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "list:"):
			out.List = strings.TrimSpace(arg[len("list:"):])
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(words, " "))
	return out, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalidArg("%s requires a task number", typ)
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Index: idx}}, nil
}

func parseList(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalidArg("list requires an action: new, switch, delete, color or move")
	}
	action := ListAction(strings.ToLower(args[0]))
	rest := args[1:]
	out := ListArgs{Action: action}
	switch action {
	case ListNew:
		if n := len(rest); n > 1 && strings.HasPrefix(rest[n-1], "#") {
			out.Color = rest[n-1]
			rest = rest[:n-1]
		}
		out.Name = strings.Join(rest, " ")
		if strings.TrimSpace(out.Name) == "" {
			return Command{}, invalidArg("list new requires a name")
		}
	case ListSwitch, ListDelete:
		out.Name = strings.Join(rest, " ")
		if out.Name == "" {
			return Command{}, invalidArg("list %s requires a name", action)
		}
	case ListColor:
		if len(rest) < 2 {
			return Command{}, invalidArg("list color requires a name and a color")
		}
		out.Color = rest[len(rest)-1]
		out.Name = strings.Join(rest[:len(rest)-1], " ")
	case ListMove:
		if len(rest) != 2 {
			return Command{}, invalidArg("list move requires two positions")
		}
		from, err := parseIndex(rest[0])
		if err != nil {
			return Command{}, err
		}
		to, err := parseIndex(rest[1])
		if err != nil {
			return Command{}, err
		}
		out.From, out.To = from, to
	default:
		return Command{}, invalidArg("unknown list action %q", args[0])
	}
	return Command{Type: TypeList, Raw: raw, List: &out}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalidArg("sort requires one of dateAdded, priority, alphabetical")
	}
	for _, opt := range []model.SortOption{model.SortDateAdded, model.SortPriority, model.SortAlphabetical} {
		if strings.EqualFold(args[0], string(opt)) {
			return Command{Type: TypeSort, Raw: raw, Sort: opt}, nil
		}
	}
	return Command{}, invalidArg("unknown sort option %q", args[0])
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalidArg("view requires one of dashboard, calendar, list")
	}
	v := model.View(strings.ToLower(args[0]))
	if !v.IsValid() {
		return Command{}, invalidArg("unknown view %q", args[0])
	}
	return Command{Type: TypeView, Raw: raw, View: v}, nil
}

func parseSummary(raw string, args []string) (Command, error) {
	kind := model.SummaryOpen
	if len(args) > 0 {
		kind = ""
		for _, k := range []model.SummaryKind{model.SummaryOpen, model.SummaryOverdue, model.SummaryDueToday} {
			if strings.EqualFold(args[0], string(k)) {
				kind = k
			}
		}
		if kind == "" {
			return Command{}, invalidArg("unknown summary %q", args[0])
		}
	}
	return Command{Type: TypeSummary, Raw: raw, Summary: kind}, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || n < 1 {
		return 0, invalidArg("%q is not a task number", s)
	}
	return n, nil
}

var dueLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// ParseDue reads "today", "tomorrow" or a date in one of dueLayouts,
// interpreted in loc. Date-only values fall at the end of that day.
func ParseDue(s string, now time.Time, loc *time.Location) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	endOfDay := func(t time.Time) *int64 {
		y, m, d := t.In(loc).Date()
		ms := time.Date(y, m, d, 23, 59, 0, 0, loc).UnixMilli()
		return &ms
	}
	switch strings.ToLower(s) {
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}
	for _, layout := range dueLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			return endOfDay(t), nil
		}
		ms := t.UnixMilli()
		return &ms, nil
	}
	return nil, invalidArg("cannot parse due date %q (use YYYY-MM-DD or YYYY-MM-DDTHH:MM)", s)
}
