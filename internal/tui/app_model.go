package tui

import (
	"time"

	"lucid-cli/internal/model"
	"lucid-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsState struct {
	row          int // 0 name, 1 theme, 2 export, 3 import, 4 reset
	editingName  bool
	nameInput    textinput.Model
	importing    bool
	pathInput    textinput.Model
	confirmReset bool
	confirmFocus confirmFocus
}

type onboardState struct {
	step      int // 0 welcome, 1 name, 2 notifications
	nameInput textinput.Model
}

type appModel struct {
	st *store.Store

	width  int
	height int
	// The very first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	view     view
	userName string

	// Due-worry poller. polling guards against stacking tick chains; the
	// chain stops itself while a gating screen is active.
	polling bool
	// toast is the single due worry currently offered, or nil.
	toast *model.Worry

	capture *captureModel
	verify  *verifyModel

	archiveList         list.Model
	archiveConfirmID    string
	archiveConfirmFocus confirmFocus

	settings settingsState
	onboard  onboardState

	breathSeq     int
	breathElapsed int

	minibufferText string

	// now is injectable for tests.
	now func() time.Time
}

func newAppModel(s *store.Store) appModel {
	m := appModel{
		st:   s,
		view: viewLanding,
		now:  time.Now,
	}
	m.userName = s.UserName()
	m.archiveList = newArchiveList()

	m.settings.nameInput = textinput.New()
	m.settings.nameInput.Placeholder = "Your name"
	m.settings.nameInput.CharLimit = 40
	m.settings.nameInput.Width = 28

	m.settings.pathInput = textinput.New()
	m.settings.pathInput.Placeholder = "path/to/backup.json"
	m.settings.pathInput.CharLimit = 200
	m.settings.pathInput.Width = 36

	m.onboard.nameInput = textinput.New()
	m.onboard.nameInput.Placeholder = "How should we greet you?"
	m.onboard.nameInput.CharLimit = 40
	m.onboard.nameInput.Width = 28

	return m
}

func (m appModel) Init() tea.Cmd {
	// The poller starts only once the gating screens are dismissed.
	return nil
}

func tickDue() tea.Cmd {
	return tea.Tick(duePollInterval, func(time.Time) tea.Msg { return dueTickMsg{} })
}

func tickBreath(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return breathTickMsg{seq: seq} })
}

// startPolling runs an immediate due check and schedules the repeating
// sweep. Safe to call on every gate dismissal; only one chain ever runs.
func (m *appModel) startPolling() tea.Cmd {
	m.offerDue()
	if m.polling {
		return nil
	}
	m.polling = true
	return tickDue()
}

// offerDue surfaces the first due worry as a toast, unless the user is
// already being prompted or is mid-capture. At most one worry is offered at
// a time; the rest stay queued for later sweeps.
func (m *appModel) offerDue() {
	if m.view.gating() {
		return
	}
	if m.toast != nil || m.verify != nil || m.view == viewCapture {
		return
	}
	due := m.st.Worries.Due(m.now())
	if len(due) == 0 {
		return
	}
	w := due[0]
	m.toast = &w
}

func (m *appModel) clearToastFor(id string) {
	if m.toast != nil && m.toast.ID == id {
		m.toast = nil
	}
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
}
