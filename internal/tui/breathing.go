package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// A guided 4-4-6 breathing cycle, driven by a one-second tick. The tick
// chain carries a sequence number so leaving the screen orphans any tick
// still in flight instead of animating a torn-down view.

const breathCycle = 14 // 4s in, 4s hold, 6s out

const breathingGuideMD = `Follow the cue. In through the nose, out through the mouth.

Three cycles are usually enough to take the edge off.`

func breathPhase(elapsed int) (label string, remaining int) {
	sec := elapsed % breathCycle
	switch {
	case sec < 4:
		return "Breathe in", 4 - sec
	case sec < 8:
		return "Hold", 8 - sec
	default:
		return "Breathe out", breathCycle - sec
	}
}

func (m *appModel) startBreathing() tea.Cmd {
	m.view = viewBreathing
	m.breathSeq++
	m.breathElapsed = 0
	return tickBreath(m.breathSeq)
}

func (m appModel) updateBreathTick(msg breathTickMsg) (appModel, tea.Cmd) {
	if msg.seq != m.breathSeq || m.view != viewBreathing {
		// Stale tick from a left screen; let the chain die.
		return m, nil
	}
	m.breathElapsed++
	return m, tickBreath(m.breathSeq)
}

func (m appModel) renderBreathing() string {
	w := contentWidth(m.width)
	label, remaining := breathPhase(m.breathElapsed)

	// The circle "grows" while inhaling and "shrinks" while exhaling.
	size := 3
	switch label {
	case "Breathe in":
		size = 3 + (4 - remaining)
	case "Hold":
		size = 7
	case "Breathe out":
		size = 1 + remaining
	}
	circle := styleAccent().Render(strings.Repeat("●", size))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(label) + "\n\n")
	b.WriteString(circle + "\n\n")
	b.WriteString(styleMuted().Render(strings.Repeat("·", remaining)) + "\n\n")
	b.WriteString(renderMarkdown(breathingGuideMD, w) + "\n\n")
	b.WriteString(styleMuted().Render("esc: dashboard"))
	return b.String()
}
