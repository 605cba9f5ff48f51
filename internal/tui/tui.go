package tui

import (
	"lucid-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s *store.Store) error {
	applyColorProfilePreference()
	applyThemePreference(s.Theme())

	m := newAppModel(s)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
