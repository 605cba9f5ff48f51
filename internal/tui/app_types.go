package tui

import (
	"time"

	"lucid-cli/internal/model"
)

type view int

const (
	// Gating screens. The app screens below are unreachable until these are
	// dismissed, and the due poller does not run while they are active.
	viewLanding view = iota
	viewOnboarding

	viewDashboard
	viewCapture
	viewArchive
	viewSettings
	viewBreathing
)

func viewName(v view) string {
	switch v {
	case viewLanding:
		return "landing"
	case viewOnboarding:
		return "onboarding"
	case viewDashboard:
		return "dashboard"
	case viewCapture:
		return "capture"
	case viewArchive:
		return "archive"
	case viewSettings:
		return "settings"
	case viewBreathing:
		return "breathing"
	}
	return "unknown"
}

func (v view) gating() bool {
	return v == viewLanding || v == viewOnboarding
}

// duePollInterval is deliberately coarse: check dates are minutes apart at
// minimum, so a 10s sweep is plenty.
const duePollInterval = 10 * time.Second

type dueTickMsg struct{}

type breathTickMsg struct{ seq int }

// captureDoneMsg carries the capture form result back to the app model,
// which owns the store.
type captureDoneMsg struct {
	canceled  bool
	text      string
	checkDate time.Time
	category  model.Category
	reframing *model.Reframing
}

type verifyDoneMsg struct {
	canceled   bool
	id         string
	status     model.Status
	reflection string
}
