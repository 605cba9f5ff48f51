package tui

import (
	"strings"

	"lucid-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// renderToast draws the non-blocking due-worry banner above the current
// screen. It offers exactly two actions: open the verification flow, or
// dismiss and be reminded on a later sweep.
func renderToast(w model.Worry, width int) string {
	bodyW := contentWidth(width)

	title := lipgloss.NewStyle().Foreground(colorDue).Bold(true).Render("Time for a reality check")
	text := truncateLine("“"+w.Text+"”", bodyW-2)
	help := styleMuted().Render("enter: verify now   x: later")

	content := strings.Join([]string{title, text, help}, "\n")
	return lipgloss.NewStyle().
		Width(bodyW + 2).
		Padding(0, 1).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Render(content)
}
