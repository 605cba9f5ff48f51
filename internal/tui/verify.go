package tui

import (
	"strings"

	"lucid-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The verification overlay is the only path to a terminal worry status.
// Step one picks the outcome, step two optionally captures a reflection;
// going back discards the outcome choice. Nothing is persisted mid-flow.

type verifyStep int

const (
	verifyStepOutcome verifyStep = iota
	verifyStepReflect
)

type verifyFocus int

const (
	// The outcome step opens with nothing focused: both answers carry equal
	// weight and Enter resolves nothing until the user picks one.
	verifyFocusNone verifyFocus = iota
	verifyFocusNo // did not happen
	verifyFocusYes
	verifyFocusFinish
)

type verifyModel struct {
	width  int
	height int

	worry   model.Worry
	step    verifyStep
	outcome model.Status
	focus   verifyFocus

	reflection textarea.Model
}

func newVerifyModel(w model.Worry, width, height int) *verifyModel {
	v := &verifyModel{
		width:  width,
		height: height,
		worry:  w,
		step:   verifyStepOutcome,
		focus:  verifyFocusNone,
	}
	v.reflection = textarea.New()
	v.reflection.CharLimit = 0
	v.reflection.SetWidth(modalBodyWidth(width))
	v.reflection.SetHeight(4)
	v.reflection.ShowLineNumbers = false
	return v
}

func (v *verifyModel) chooseOutcome(s model.Status) {
	v.outcome = s
	v.step = verifyStepReflect
	v.focus = verifyFocusFinish
	if s == model.StatusDidNotHappen {
		v.reflection.Placeholder = "Why did I worry over nothing?"
	} else {
		v.reflection.Placeholder = "How did I handle it?"
	}
	v.reflection.Focus()
}

func (v verifyModel) finishCmd() tea.Cmd {
	msg := verifyDoneMsg{
		id:         v.worry.ID,
		status:     v.outcome,
		reflection: strings.TrimSpace(v.reflection.Value()),
	}
	return func() tea.Msg { return msg }
}

func (v verifyModel) Update(msg tea.Msg) (verifyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.reflection.SetWidth(modalBodyWidth(msg.Width))
		return v, nil

	case tea.KeyMsg:
		if v.step == verifyStepOutcome {
			switch msg.String() {
			case "left", "tab", "shift+tab":
				if v.focus == verifyFocusNo {
					v.focus = verifyFocusYes
				} else {
					v.focus = verifyFocusNo
				}
			case "right":
				if v.focus == verifyFocusYes {
					v.focus = verifyFocusNo
				} else {
					v.focus = verifyFocusYes
				}
			case "n":
				v.chooseOutcome(model.StatusDidNotHappen)
			case "y":
				v.chooseOutcome(model.StatusHappened)
			case "enter":
				// Enter only confirms an explicit selection; with nothing
				// focused it does nothing.
				switch v.focus {
				case verifyFocusNo:
					v.chooseOutcome(model.StatusDidNotHappen)
				case verifyFocusYes:
					v.chooseOutcome(model.StatusHappened)
				}
			}
			return v, nil
		}

		// Reflection step.
		switch msg.String() {
		case "esc":
			// Back to outcome selection; the choice is discarded.
			v.step = verifyStepOutcome
			v.outcome = ""
			v.focus = verifyFocusNone
			v.reflection.Blur()
			return v, nil
		case "ctrl+s":
			return v, v.finishCmd()
		case "enter":
			if v.focus == verifyFocusFinish && !v.reflection.Focused() {
				return v, v.finishCmd()
			}
		case "tab":
			if v.reflection.Focused() {
				v.reflection.Blur()
			} else {
				v.reflection.Focus()
			}
			return v, nil
		}

		if v.reflection.Focused() {
			var cmd tea.Cmd
			v.reflection, cmd = v.reflection.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

func (v verifyModel) View() string {
	bodyW := modalBodyWidth(v.width)
	var b strings.Builder

	tag := styleAccent().Bold(true).Render("REALITY CHECK")
	b.WriteString(tag + "\n\n")

	when := styleMuted().Render("On " + formatDate(model.MillisTime(v.worry.CreatedAt)) + ", you were afraid of this:")
	b.WriteString(when + "\n")
	quote := lipgloss.NewStyle().Italic(true).Width(bodyW).Render("“" + v.worry.Text + "”")
	b.WriteString(quote + "\n\n")

	if v.step == verifyStepOutcome {
		b.WriteString("Did it actually happen?\n\n")

		btn := lipgloss.NewStyle().Padding(0, 2).Background(colorControlBg).Foreground(colorSurfaceFg)
		no := btn.Foreground(colorCalm).Render("NO (n)")
		yes := btn.Render("YES (y)")
		switch v.focus {
		case verifyFocusNo:
			no = btn.Foreground(colorCalm).Bold(true).Underline(true).Render("NO (n)")
		case verifyFocusYes:
			yes = btn.Bold(true).Underline(true).Render("YES (y)")
		}
		b.WriteString(no + "  " + yes + "\n\n")
		b.WriteString(styleMuted().Width(bodyW).Render("Be honest; the score is only useful if it is true."))
	} else {
		b.WriteString("What did you learn? (optional)\n\n")
		b.WriteString(v.reflection.View() + "\n\n")
		finish := lipgloss.NewStyle().Padding(0, 2).Foreground(colorAccentFg).Background(colorAccent).Render("Finish (ctrl+s)")
		b.WriteString(finish + "\n\n")
		b.WriteString(styleMuted().Width(bodyW).Render("tab: toggle writing   esc: back"))
	}

	return renderModalBox(v.width, "Verification", b.String())
}
