package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Landing and onboarding gate the app screens: nothing else is reachable
// (and the due poller does not run) until they are dismissed. Onboarding
// runs once; its completion flag is persisted.

const welcomeMD = `# Lucid

You write down what you are afraid of and pick the day of the verdict.
When that day comes, Lucid asks one question: **did it actually happen?**

Over time the numbers speak for themselves. Most feared things never do.
`

const notifyMD = `## One last thing

When a worry is due, Lucid will quietly offer a reality check inside the
app. Would you also like a reminder outside of it?

Either answer is fine. Nothing in Lucid depends on it.
`

func (m appModel) updateLanding(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		if m.st.OnboardingDone() {
			m.userName = m.st.UserName()
			m.view = viewDashboard
			return m, m.startPolling()
		}
		m.view = viewOnboarding
		m.onboard.step = 0
	}
	return m, nil
}

func (m appModel) updateOnboarding(msg tea.KeyMsg) (appModel, tea.Cmd) {
	o := &m.onboard
	switch o.step {
	case 0:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			o.step = 1
			o.nameInput.Focus()
		}
	case 1:
		switch msg.String() {
		case "enter":
			o.step = 2
			o.nameInput.Blur()
		case "esc":
			o.step = 0
			o.nameInput.Blur()
		default:
			var cmd tea.Cmd
			o.nameInput, cmd = o.nameInput.Update(msg)
			return m, cmd
		}
	case 2:
		// The answer is deliberately not tracked; the flow is identical
		// whether reminders are wanted or not.
		switch msg.String() {
		case "y", "n", "enter":
			m.st.SetUserName(o.nameInput.Value())
			m.st.SetOnboardingDone(true)
			m.userName = m.st.UserName()
			m.view = viewDashboard
			return m, m.startPolling()
		case "esc":
			o.step = 1
			o.nameInput.Focus()
		}
	}
	return m, nil
}

func (m appModel) renderLanding() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("L U C I D")
	sub := styleMuted().Render("a journal for worries that usually never happen")
	hint := styleMuted().Render("press enter")
	return strings.Join([]string{title, "", sub, "", "", hint}, "\n")
}

func (m appModel) renderOnboarding() string {
	w := contentWidth(m.width)
	switch m.onboard.step {
	case 0:
		return renderMarkdown(welcomeMD, w) + "\n\n" + styleMuted().Render("enter: continue")
	case 1:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("What is your name?") + "\n\n")
		b.WriteString(m.onboard.nameInput.View() + "\n\n")
		b.WriteString(styleMuted().Render("enter: continue (a name is optional)"))
		return b.String()
	default:
		return renderMarkdown(notifyMD, w) + "\n\n" + styleMuted().Render("y / n: answer   enter: continue")
	}
}
