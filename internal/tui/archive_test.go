package tui

import (
	"strings"
	"testing"
	"time"

	"lucid-cli/internal/model"
)

func TestArchiveDetailShowsVerificationInstant(t *testing.T) {
	check := time.Date(2026, 7, 1, 9, 30, 0, 0, time.Local)
	w := model.Worry{
		ID:        "w",
		Text:      "x",
		Status:    model.StatusPending,
		CheckDate: model.TimeMillis(check),
	}

	out := renderArchiveDetail(w, 60)
	if !strings.Contains(out, "Jul 1, 2026 09:30") {
		t.Fatalf("detail pane missing the verification instant:\n%s", out)
	}
}

func TestArchiveDetailResolvedShowsReflectionNotDate(t *testing.T) {
	w := model.Worry{
		ID:         "w",
		Text:       "x",
		Status:     model.StatusDidNotHappen,
		Reflection: "nothing came of it",
	}

	out := renderArchiveDetail(w, 60)
	if !strings.Contains(out, "nothing came of it") {
		t.Fatalf("detail pane missing the reflection:\n%s", out)
	}
	if strings.Contains(out, "verify") {
		t.Fatalf("resolved worry shows a verification date:\n%s", out)
	}
}
