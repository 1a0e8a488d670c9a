package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent !high due:2026-02-01", TypeAdd},
		{"edit 2 pay rent twice", TypeEdit},
		{"/done 1", TypeDone},
		{"/delete #3", TypeDelete},
		{"/list new Side Projects #8B5CF6", TypeList},
		{"/sort priority", TypeSort},
		{"/view calendar", TypeView},
		{"/summary overdue", TypeSummary},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseTaskTokens(t *testing.T) {
	cmd, err := Parse("/add  pay   rent !HIGH due:2026-02-01T09:30 list:Home")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := TaskArgs{Title: "pay rent", Priority: model.PriorityHigh, Due: "2026-02-01T09:30", List: "Home"}
	if *cmd.Task != want {
		t.Fatalf("task args = %+v, want %+v", *cmd.Task, want)
	}

	edit, err := Parse("/edit 4 new title !low")
	if err != nil {
		t.Fatalf("parse edit failed: %v", err)
	}
	if edit.Task.Index != 4 || edit.Task.Title != "new title" || edit.Task.Priority != model.PriorityLow {
		t.Fatalf("edit args = %+v", *edit.Task)
	}
}

func TestParseListActions(t *testing.T) {
	cases := []struct {
		in   string
		want ListArgs
	}{
		{"/list new Side Projects #8B5CF6", ListArgs{Action: ListNew, Name: "Side Projects", Color: "#8B5CF6"}},
		{"/list new Errands", ListArgs{Action: ListNew, Name: "Errands"}},
		{"/list switch Side Projects", ListArgs{Action: ListSwitch, Name: "Side Projects"}},
		{"/list delete Errands", ListArgs{Action: ListDelete, Name: "Errands"}},
		{"/list color Errands #EF4444", ListArgs{Action: ListColor, Name: "Errands", Color: "#EF4444"}},
		{"/list move 3 1", ListArgs{Action: ListMove, From: 3, To: 1}},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if *cmd.List != tc.want {
			t.Fatalf("parse %q = %+v, want %+v", tc.in, *cmd.List, tc.want)
		}
	}
}

func TestParseInvalidArguments(t *testing.T) {
	inputs := []string{
		"/add",
		"/add !high",
		"/add thing !urgent",
		"/done",
		"/done zero",
		"/done 0",
		"/edit 1",
		"/list",
		"/list rename a b",
		"/list color Home",
		"/list move 1",
		"/sort random",
		"/view kanban",
		"/summary everything",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input, got %v", in, err)
		}
	}
}

func TestParseDue(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, loc)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"today", time.Date(2026, 1, 15, 23, 59, 0, 0, loc)},
		{"Tomorrow", time.Date(2026, 1, 16, 23, 59, 0, 0, loc)},
		{"2026-03-01", time.Date(2026, 3, 1, 23, 59, 0, 0, loc)},
		{"2026-03-01T08:15", time.Date(2026, 3, 1, 8, 15, 0, 0, loc)},
	}
	for _, tc := range cases {
		got, err := ParseDue(tc.in, now, loc)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got == nil || *got != tc.want.UnixMilli() {
			t.Fatalf("%q: got %v, want %d", tc.in, got, tc.want.UnixMilli())
		}
	}
	if got, err := ParseDue("", now, loc); got != nil || err != nil {
		t.Fatalf("empty due: %v %v", got, err)
	}
	if _, err := ParseDue("next blue moon", now, loc); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a TaskArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("/view list")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
