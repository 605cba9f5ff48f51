package export

import (
	"strings"
	"time"

	"lucid-cli/internal/model"
)

// CalendarInvite renders a standalone VCALENDAR block for a worry's
// verification instant: a one-hour event with a reminder 15 minutes before.
// Pure string formatting; the caller decides where the bytes go.
func CalendarInvite(w model.Worry, now time.Time) string {
	start := model.MillisTime(w.CheckDate).UTC()
	end := start.Add(time.Hour)

	summary := "Reality check: " + icsEscape(truncateText(w.Text, 60))

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//lucid//worry journal//EN",
		"BEGIN:VEVENT",
		"UID:" + icsEscape(w.ID) + "@lucid",
		"DTSTAMP:" + icsTime(now.UTC()),
		"DTSTART:" + icsTime(start),
		"DTEND:" + icsTime(end),
		"SUMMARY:" + summary,
		"DESCRIPTION:" + icsEscape(w.Text),
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"DESCRIPTION:" + summary,
		"TRIGGER:-PT15M",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	// RFC 5545 wants CRLF line endings.
	return strings.Join(lines, "\r\n") + "\r\n"
}

func icsTime(t time.Time) string {
	return t.Format("20060102T150405Z")
}

func icsEscape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}

func truncateText(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
