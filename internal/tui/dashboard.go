package tui

import (
	"strings"

	"lucid-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// The dashboard is the home screen: the big lucidity number, an
// encouragement line, and the pending worries newest first.

func (m appModel) renderDashboard() string {
	w := contentWidth(m.width)
	now := m.now()

	sum := model.Summarize(m.st.Worries.All())

	rate := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Render(bigRate(sum.RateLabel()))
	phrase := styleMuted().Width(w).Render(model.Phrase(sum, m.userName))

	var b strings.Builder
	b.WriteString(rate + "\n")
	b.WriteString(styleMuted().Render("lucidity rate") + "\n\n")
	b.WriteString(phrase + "\n\n")

	pending := 0
	for _, worry := range model.SortForDisplay(m.st.Worries.All()) {
		if worry.Status != model.StatusPending {
			continue
		}
		pending++
		if pending > 6 {
			b.WriteString(styleMuted().Render("  …") + "\n")
			break
		}
		until := formatUntil(model.MillisTime(worry.CheckDate), now)
		cue := styleMuted().Render(until)
		if worry.Due(now) {
			cue = lipgloss.NewStyle().Foreground(colorDue).Bold(true).Render(until)
		}
		line := "  " + truncateLine(worry.Text, w-16)
		b.WriteString(line + "  " + cue + "\n")
	}
	if pending == 0 {
		b.WriteString(styleMuted().Render("  Nothing locked away right now.") + "\n")
	}

	b.WriteString("\n" + styleMuted().Width(w).Render("c: capture   a: archive   s: settings   b: breathe   q: quit"))
	return b.String()
}

// bigRate spells the rate with some air around it; no giant font machinery,
// just spacing that reads large in a terminal.
func bigRate(label string) string {
	spaced := make([]string, 0, len(label))
	for _, r := range label {
		spaced = append(spaced, string(r))
	}
	return "  " + strings.Join(spaced, " ")
}
