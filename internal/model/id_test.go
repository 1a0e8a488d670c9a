package model

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewIDIsUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("id %q is not a uuid: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestFallbackIDShape(t *testing.T) {
	now := time.UnixMilli(1767225600000)
	id := fallbackID(now)
	if !regexp.MustCompile(`^1767225600000-[0-9a-z]{9}$`).MatchString(id) {
		t.Fatalf("unexpected fallback id %q", id)
	}
}
