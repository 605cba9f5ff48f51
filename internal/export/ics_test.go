package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid-cli/internal/model"
)

func TestCalendarInvite(t *testing.T) {
	check := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 13, 15, 30, 0, 0, time.UTC)
	w := model.Worry{
		ID:        "abc",
		Text:      "the review; it will go badly",
		CheckDate: model.TimeMillis(check),
		Status:    model.StatusPending,
	}

	got := CalendarInvite(w, now)

	assert.True(t, strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(got, "END:VCALENDAR\r\n"))
	assert.Contains(t, got, "UID:abc@lucid\r\n")
	assert.Contains(t, got, "DTSTAMP:20260513T153000Z\r\n")
	assert.Contains(t, got, "DTSTART:20260520T090000Z\r\n")
	assert.Contains(t, got, "DTEND:20260520T100000Z\r\n", "event spans one hour")
	assert.Contains(t, got, "TRIGGER:-PT15M\r\n")
	// Semicolons must be escaped per RFC 5545.
	assert.Contains(t, got, "DESCRIPTION:the review\\; it will go badly\r\n")

	for _, line := range strings.Split(strings.TrimSuffix(got, "\r\n"), "\r\n") {
		require.NotContains(t, line, "\n", "bare newlines are not valid in ics output")
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 60))
	long := strings.Repeat("a", 80)
	got := truncateText(long, 60)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 60)
}
