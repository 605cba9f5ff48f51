package tui

import (
	"testing"
	"time"
)

func TestFormatUntil(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		check time.Time
		want  string
	}{
		{now.Add(-time.Hour), "verify now"},
		{now, "verify now"},
		{now.Add(30 * time.Second), "in 1m"},
		{now.Add(45 * time.Minute), "in 45m"},
		{now.Add(5 * time.Hour), "in 5h"},
		{now.Add(30 * time.Hour), "tomorrow"},
		{now.Add(5 * 24 * time.Hour), "in 5d"},
	}
	for _, c := range cases {
		if got := formatUntil(c.check, now); got != c.want {
			t.Errorf("formatUntil(%v) = %q, want %q", c.check, got, c.want)
		}
	}
}

func TestClampDay(t *testing.T) {
	if got := clampDay(2026, time.February, 31); got != 28 {
		t.Fatalf("clampDay feb = %d, want 28", got)
	}
	if got := clampDay(2028, time.February, 31); got != 29 {
		t.Fatalf("clampDay leap feb = %d, want 29", got)
	}
	if got := clampDay(2026, time.April, 0); got != 1 {
		t.Fatalf("clampDay zero = %d, want 1", got)
	}
	if got := clampDay(2026, time.April, 15); got != 15 {
		t.Fatalf("clampDay in-range = %d, want 15", got)
	}
}

func TestBreathPhase(t *testing.T) {
	cases := []struct {
		elapsed   int
		label     string
		remaining int
	}{
		{0, "Breathe in", 4},
		{3, "Breathe in", 1},
		{4, "Hold", 4},
		{7, "Hold", 1},
		{8, "Breathe out", 6},
		{13, "Breathe out", 1},
		{14, "Breathe in", 4}, // cycle wraps
	}
	for _, c := range cases {
		label, remaining := breathPhase(c.elapsed)
		if label != c.label || remaining != c.remaining {
			t.Errorf("breathPhase(%d) = %q/%d, want %q/%d", c.elapsed, label, remaining, c.label, c.remaining)
		}
	}
}
