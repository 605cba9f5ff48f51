package tui

import (
	"lucid-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.archiveList.SetSize(contentWidth(msg.Width), listHeight(msg.Height))
		if m.capture != nil {
			c, _ := m.capture.Update(msg)
			*m.capture = c
		}
		if m.verify != nil {
			v, _ := m.verify.Update(msg)
			*m.verify = v
		}
		return m, nil

	case dueTickMsg:
		if m.view.gating() {
			// Gate re-entered: let the chain die so no timer outlives the
			// screens it serves. startPolling restarts it later.
			m.polling = false
			return m, nil
		}
		m.offerDue()
		return m, tickDue()

	case breathTickMsg:
		return m.updateBreathTick(msg)

	case captureDoneMsg:
		m.capture = nil
		m.view = viewDashboard
		if !msg.canceled {
			w := m.st.Worries.Add(msg.text, msg.checkDate, msg.category, msg.reframing)
			m.showMinibuffer("Locked away. The verdict comes " + formatUntil(model.MillisTime(w.CheckDate), m.now()) + ".")
		}
		// Leaving capture lifts the suppression rule; check right away.
		m.offerDue()
		return m, nil

	case verifyDoneMsg:
		m.verify = nil
		if !msg.canceled {
			m.st.Worries.Resolve(msg.id, msg.status, msg.reflection)
			m.clearToastFor(msg.id)
			if msg.status == model.StatusDidNotHappen {
				m.showMinibuffer("One more fear that never happened.")
			} else {
				m.showMinibuffer("It happened, and you are still here.")
			}
			if m.view == viewArchive {
				m.refreshArchive()
			}
		}
		return m, nil

	case tea.KeyMsg:
		// Any keypress consumes the transient status line.
		m.minibufferText = ""

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The verification overlay has the highest priority.
		if m.verify != nil {
			v, cmd := m.verify.Update(msg)
			*m.verify = v
			return m, cmd
		}

		// Toast actions, valid on any non-gating screen it is shown on.
		if m.toast != nil && !m.view.gating() && m.view != viewCapture {
			switch msg.String() {
			case "enter":
				w := *m.toast
				m.toast = nil
				m.verify = newVerifyModel(w, m.width, m.height)
				return m, nil
			case "x":
				// Stays pending; a later sweep may offer it again.
				m.toast = nil
				return m, nil
			}
		}

		switch m.view {
		case viewLanding:
			return m.updateLanding(msg)
		case viewOnboarding:
			return m.updateOnboarding(msg)
		case viewCapture:
			if m.capture == nil {
				m.view = viewDashboard
				return m, nil
			}
			c, cmd := m.capture.Update(msg)
			*m.capture = c
			return m, cmd
		case viewArchive:
			return m.updateArchive(msg)
		case viewSettings:
			return m.updateSettings(msg)
		case viewBreathing:
			switch msg.String() {
			case "esc", "q":
				m.view = viewDashboard
			}
			return m, nil
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.capture = newCaptureModel(m.width, m.height)
		m.view = viewCapture
		return m, nil
	case "a":
		m.refreshArchive()
		m.view = viewArchive
		return m, nil
	case "s":
		m.view = viewSettings
		m.settings.row = 0
		return m, nil
	case "b":
		return m, m.startBreathing()
	}
	return m, nil
}

func (m appModel) updateArchive(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// Delete confirmation modal.
	if m.archiveConfirmID != "" {
		switch msg.String() {
		case "tab", "shift+tab", "left", "right":
			if m.archiveConfirmFocus == confirmFocusConfirm {
				m.archiveConfirmFocus = confirmFocusCancel
			} else {
				m.archiveConfirmFocus = confirmFocusConfirm
			}
		case "esc":
			m.archiveConfirmID = ""
		case "enter":
			id := m.archiveConfirmID
			m.archiveConfirmID = ""
			if m.archiveConfirmFocus == confirmFocusConfirm {
				m.st.Worries.Remove(id)
				// The offered worry may be the one that just went away.
				m.clearToastFor(id)
				m.refreshArchive()
				m.showMinibuffer("Deleted.")
			}
		}
		return m, nil
	}

	if !m.archiveList.SettingFilter() {
		switch msg.String() {
		case "esc":
			if m.archiveList.IsFiltered() {
				break // let the list clear its own filter
			}
			m.view = viewDashboard
			return m, nil
		case "x":
			if it, ok := m.archiveList.SelectedItem().(archiveItem); ok {
				m.archiveConfirmID = it.worry.ID
				m.archiveConfirmFocus = confirmFocusCancel
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.archiveList, cmd = m.archiveList.Update(msg)
	return m, cmd
}

func listHeight(height int) int {
	h := height - 10
	if h < 4 {
		h = 4
	}
	return h
}
