package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2})(?::\d{2})?$`)
)

// resolveCheckDate turns --in/--on flags into the verification instant.
// Presets are computed from "now" at save time, matching the capture screen.
func resolveCheckDate(in, on string, now time.Time) (time.Time, error) {
	in = strings.TrimSpace(in)
	on = strings.TrimSpace(on)
	switch {
	case in != "" && on != "":
		return time.Time{}, fmt.Errorf("use either --in or --on, not both")
	case in != "":
		return resolvePreset(in, now)
	case on != "":
		return parseCheckDate(on, now)
	default:
		// Default mirrors the capture screen's initial selection.
		return now.AddDate(0, 0, 1), nil
	}
}

func resolvePreset(preset string, now time.Time) (time.Time, error) {
	switch strings.ToLower(preset) {
	case "1d", "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "3d":
		return now.AddDate(0, 0, 3), nil
	case "1w", "week":
		return now.AddDate(0, 0, 7), nil
	case "1m", "month":
		return now.AddDate(0, 0, 30), nil
	}
	return time.Time{}, fmt.Errorf("invalid preset %q (expected 1d, 3d, 1w, or 1m)", preset)
}

// parseCheckDate parses:
// - YYYY-MM-DD (local, at 09:00)
// - YYYY-MM-DD HH:MM (local)
// - RFC3339 (timezone-aware)
// and rejects instants earlier than now.
func parseCheckDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	var ts time.Time
	switch {
	case reDateOnly.MatchString(s):
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, err
		}
		ts = d.Add(9 * time.Hour)
	default:
		if m := reDateTime.FindStringSubmatch(s); m != nil {
			d, err := time.ParseInLocation("2006-01-02 15:04", m[1]+" "+m[2], time.Local)
			if err != nil {
				return time.Time{}, err
			}
			ts = d
		} else if d, err := time.Parse(time.RFC3339, s); err == nil {
			ts = d
		} else {
			return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
		}
	}
	if ts.Before(now) {
		return time.Time{}, fmt.Errorf("verification date %s is in the past", s)
	}
	return ts, nil
}
