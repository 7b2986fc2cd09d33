package mcp

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// TestUserIDFromContextDefault verifies the zero UUID is returned when no
// value is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != uuid.Nil {
		t.Errorf("UserIDFromContext(empty) = %v, want zero UUID", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	want := uuid.New()
	ctx := WithUserID(context.Background(), want)
	if id := UserIDFromContext(ctx); id != want {
		t.Errorf("UserIDFromContext = %v, want %v", id, want)
	}
}

// TestCompletedFilter verifies date parsing for the completed-workout filter.
func TestCompletedFilter(t *testing.T) {
	f, rng, err := completedFilter("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(f.Status) != "completed" {
		t.Errorf("status = %q, want completed", f.Status)
	}
	if f.StartDate != nil || f.EndDate != nil || rng.Start != nil || rng.End != nil {
		t.Error("empty bounds should stay open")
	}

	f, rng, err = completedFilter("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.StartDate == nil || f.StartDate.Day() != 1 {
		t.Errorf("start = %v, want 2024-01-01", f.StartDate)
	}
	if rng.End == nil || rng.End.Day() != 31 {
		t.Errorf("range end = %v, want 2024-01-31", rng.End)
	}

	if _, _, err := completedFilter("not-a-date", ""); err == nil {
		t.Error("expected error for invalid date")
	}
}

// TestParseFlexTime verifies both accepted timestamp formats.
func TestParseFlexTime(t *testing.T) {
	ts, err := parseFlexTime("2024-06-15T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Hour() != 10 || ts.Minute() != 30 {
		t.Errorf("time = %v, want 10:30", ts)
	}

	ts, err = parseFlexTime("2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Year() != 2024 || ts.Month() != 6 || ts.Day() != 15 {
		t.Errorf("time = %v, want 2024-06-15", ts)
	}
}
