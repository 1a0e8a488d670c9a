package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength             = 200
	MaxDescriptionLength       = 2000
	MaxLegacyDescriptionLength = 500
	MaxListNameLength          = 100

	// MaxTimestamp is the largest epoch-millisecond value a date can hold.
	MaxTimestamp int64 = 8_640_000_000_000_000
)

var ErrValidation = errors.New("model: validation failed")

// ValidationError carries the message shown to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", invalid("Task title cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", invalid(fmt.Sprintf("Task title too long (max %d characters)", MaxTitleLength))
	}
	return trimmed, nil
}

// ValidateDescription checks the optional notes field. Blank notes normalize to "".
func ValidateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return "", invalid(fmt.Sprintf("Task description too long (max %d characters)", MaxDescriptionLength))
	}
	return trimmed, nil
}

// ValidateLegacyDescription applies the rules of the single-field schema,
// where the description was the task text itself.
func ValidateLegacyDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", invalid("Task cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxLegacyDescriptionLength {
		return "", invalid(fmt.Sprintf("Task description too long (max %d characters)", MaxLegacyDescriptionLength))
	}
	return trimmed, nil
}

func ValidateListName(name string, existing []TodoList) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("List name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxListNameLength {
		return "", invalid(fmt.Sprintf("List name too long (max %d characters)", MaxListNameLength))
	}
	for _, l := range existing {
		if sameListName(l.Name, trimmed) {
			return "", invalid("List name must be unique")
		}
	}
	return trimmed, nil
}

func ValidateColor(color string) (string, error) {
	if !colorPattern.MatchString(color) {
		return "", invalid("Invalid color format")
	}
	return color, nil
}

// ValidatePriority defaults an empty priority to medium.
func ValidatePriority(p Priority) (Priority, error) {
	if p == "" {
		return PriorityMedium, nil
	}
	normalized := Priority(strings.ToLower(strings.TrimSpace(string(p))))
	if !normalized.IsValid() {
		return "", invalid("Invalid task priority")
	}
	return normalized, nil
}

// NormalizeDueDate drops timestamps outside (0, MaxTimestamp]. An invalid due
// date means "no due date", never an error.
func NormalizeDueDate(due *int64) *int64 {
	if due == nil {
		return nil
	}
	if *due <= 0 || *due > MaxTimestamp {
		return nil
	}
	v := *due
	return &v
}

// DueDateFromFloat converts a wire number to a due date. Non-finite and
// out-of-range values yield nil; fractional milliseconds are truncated.
func DueDateFromFloat(f float64) *int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f <= 0 || f > float64(MaxTimestamp) {
		return nil
	}
	v := int64(f)
	return NormalizeDueDate(&v)
}

func sameListName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
