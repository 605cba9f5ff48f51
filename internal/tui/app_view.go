package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var screenStyle = lipgloss.NewStyle().Padding(1, 3)

func (m appModel) View() string {
	if !m.seenWindowSize {
		return ""
	}

	// Gating screens are centered and carry no chrome.
	switch m.view {
	case viewLanding:
		return overlayCentered(m.width, m.height, m.renderLanding())
	case viewOnboarding:
		return overlayCentered(m.width, m.height, screenStyle.Render(m.renderOnboarding()))
	}

	// The verification overlay replaces whatever is underneath.
	if m.verify != nil {
		return overlayCentered(m.width, m.height, m.verify.View())
	}

	var body string
	switch m.view {
	case viewCapture:
		if m.capture != nil {
			body = m.capture.View()
		}
	case viewArchive:
		body = m.renderArchive()
	case viewSettings:
		body = m.renderSettings()
	case viewBreathing:
		return overlayCentered(m.width, m.height, m.renderBreathing())
	default:
		body = m.renderDashboard()
	}

	var parts []string
	if m.view != viewCapture {
		parts = append(parts, m.renderHeader())
	}
	if m.toast != nil && m.view != viewCapture {
		parts = append(parts, renderToast(*m.toast, m.width))
	}
	parts = append(parts, body)
	if m.minibufferText != "" {
		parts = append(parts, "", styleMuted().Render(truncateLine(m.minibufferText, contentWidth(m.width))))
	}
	return screenStyle.Render(strings.Join(parts, "\n\n"))
}

func (m appModel) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("LUCID")
	crumb := "  ·  " + viewName(m.view)
	if m.userName != "" {
		crumb += "  ·  " + m.userName
	}
	return title + styleMuted().Render(crumb)
}
