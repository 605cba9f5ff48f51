package tui

import (
	"fmt"
	"strings"
	"time"

	"lucid-cli/internal/export"
	"lucid-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsRowName = iota
	settingsRowTheme
	settingsRowExport
	settingsRowImport
	settingsRowReset
	settingsRowCount
)

func themeCycle(t store.Theme) store.Theme {
	switch t {
	case store.ThemeLight:
		return store.ThemeDark
	case store.ThemeDark:
		return store.ThemeSystem
	default:
		return store.ThemeLight
	}
}

func (m appModel) updateSettings(msg tea.KeyMsg) (appModel, tea.Cmd) {
	s := &m.settings

	if s.confirmReset {
		switch msg.String() {
		case "tab", "shift+tab", "left", "right":
			if s.confirmFocus == confirmFocusConfirm {
				s.confirmFocus = confirmFocusCancel
			} else {
				s.confirmFocus = confirmFocusConfirm
			}
		case "esc":
			s.confirmReset = false
		case "enter":
			s.confirmReset = false
			if s.confirmFocus == confirmFocusConfirm {
				m.st.Reset()
				m.userName = ""
				m.toast = nil
				m.view = viewLanding
				m.showMinibuffer("All data deleted.")
			}
		}
		return m, nil
	}

	if s.editingName {
		switch msg.String() {
		case "enter":
			m.st.SetUserName(s.nameInput.Value())
			m.userName = m.st.UserName()
			s.editingName = false
			s.nameInput.Blur()
			m.showMinibuffer("Name updated.")
		case "esc":
			s.editingName = false
			s.nameInput.Blur()
		default:
			var cmd tea.Cmd
			s.nameInput, cmd = s.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if s.importing {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(s.pathInput.Value())
			if path == "" {
				return m, nil
			}
			s.importing = false
			s.pathInput.Blur()
			ws, err := export.ReadFile(path)
			if err != nil {
				// Reject loudly and keep the store exactly as it was.
				m.showMinibuffer("Import failed: " + err.Error())
				return m, nil
			}
			if err := m.st.Worries.ReplaceAll(ws); err != nil {
				m.showMinibuffer("Import failed: " + err.Error())
				return m, nil
			}
			m.toast = nil
			m.showMinibuffer(fmt.Sprintf("Imported %d worries.", len(ws)))
		case "esc":
			s.importing = false
			s.pathInput.Blur()
		default:
			var cmd tea.Cmd
			s.pathInput, cmd = s.pathInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < settingsRowCount-1 {
			s.row++
		}
	case "enter":
		switch s.row {
		case settingsRowName:
			s.editingName = true
			s.nameInput.SetValue(m.userName)
			s.nameInput.Focus()
		case settingsRowTheme:
			next := themeCycle(m.st.Theme())
			m.st.SetTheme(next)
			applyThemePreference(next)
			m.showMinibuffer("Theme: " + string(next))
		case settingsRowExport:
			path := fmt.Sprintf("lucid-export-%s.json", time.Now().Format("20060102"))
			ws := m.st.Worries.All()
			if err := export.WriteFile(path, ws); err != nil {
				m.showMinibuffer("Export failed: " + err.Error())
			} else {
				m.showMinibuffer(fmt.Sprintf("Exported %d worries to %s", len(ws), path))
			}
		case settingsRowImport:
			s.importing = true
			s.pathInput.SetValue("")
			s.pathInput.Focus()
		case settingsRowReset:
			s.confirmReset = true
			s.confirmFocus = confirmFocusCancel
		}
	case "esc":
		m.view = viewDashboard
	}
	return m, nil
}

func (m appModel) renderSettings() string {
	s := m.settings

	if s.confirmReset {
		return overlayCentered(m.width, m.height, renderConfirmModal(
			m.width,
			"Delete everything?",
			"Every worry, your name and your preferences will be gone. There is no undo.",
			"Delete", "Keep",
			s.confirmFocus,
		))
	}

	w := contentWidth(m.width)
	rowStyle := lipgloss.NewStyle()
	selStyle := lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)

	name := m.userName
	if name == "" {
		name = styleMuted().Render("(not set)")
	}

	rows := []string{
		"Name     " + name,
		"Theme    " + string(m.st.Theme()),
		"Export   write a JSON backup next to you",
		"Import   replace the journal from a backup",
		"Reset    delete all data",
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Settings") + "\n\n")
	for i, row := range rows {
		st := rowStyle
		if i == s.row {
			st = selStyle
		}
		b.WriteString(st.Render(padLine("  "+row, w)) + "\n")
	}

	if s.editingName {
		b.WriteString("\n" + s.nameInput.View() + "\n")
		b.WriteString(styleMuted().Render("enter: save   esc: cancel") + "\n")
	}
	if s.importing {
		b.WriteString("\n" + s.pathInput.View() + "\n")
		b.WriteString(styleMuted().Render("enter: import   esc: cancel") + "\n")
	}

	b.WriteString("\n" + styleMuted().Width(w).Render("Your data never leaves this device."))
	b.WriteString("\n" + styleMuted().Render("enter: select   esc: dashboard"))
	return b.String()
}
