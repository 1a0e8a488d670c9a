package model

import (
	"bytes"
	"encoding/json"
	"math"
)

// UnmarshalJSON accepts fractional or out-of-range timestamps. createdAt is
// truncated to whole milliseconds; a dueDate that is not a usable number
// becomes no due date.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var wire struct {
		plain
		CreatedAt json.RawMessage `json:"createdAt"`
		DueDate   json.RawMessage `json:"dueDate"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*t = Task(wire.plain)
	t.CreatedAt, _ = millis(wire.CreatedAt)
	t.DueDate = nil
	if f, ok := number(wire.DueDate); ok {
		t.DueDate = DueDateFromFloat(f)
	}
	return nil
}

func (l *TodoList) UnmarshalJSON(data []byte) error {
	type plain TodoList
	var wire struct {
		plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*l = TodoList(wire.plain)
	l.CreatedAt, _ = millis(wire.CreatedAt)
	return nil
}

func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func millis(raw json.RawMessage) (int64, bool) {
	f, ok := number(raw)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
