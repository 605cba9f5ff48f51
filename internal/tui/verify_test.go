package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lucid-cli/internal/model"
)

func TestVerifyChooseOutcomeAdvances(t *testing.T) {
	v := newVerifyModel(model.Worry{ID: "w", Text: "x"}, 100, 40)

	got, _ := v.Update(keyRune('n'))
	if got.step != verifyStepReflect || got.outcome != model.StatusDidNotHappen {
		t.Fatalf("step=%v outcome=%q after 'n'", got.step, got.outcome)
	}
}

func TestVerifyBackDiscardsOutcome(t *testing.T) {
	v := newVerifyModel(model.Worry{ID: "w", Text: "x"}, 100, 40)
	got, _ := v.Update(keyRune('y'))

	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got.step != verifyStepOutcome {
		t.Fatalf("esc did not return to outcome selection")
	}
	if got.outcome != "" {
		t.Fatalf("outcome %q survived going back", got.outcome)
	}
}

func TestVerifyFinishCarriesReflection(t *testing.T) {
	v := newVerifyModel(model.Worry{ID: "w", Text: "x"}, 100, 40)
	got, _ := v.Update(keyRune('n'))
	got.reflection.SetValue("  nothing happened  ")

	got2, cmd := got.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	_ = got2
	if cmd == nil {
		t.Fatalf("ctrl+s did not finish")
	}
	msg, ok := cmd().(verifyDoneMsg)
	if !ok {
		t.Fatalf("cmd() = %#v", cmd())
	}
	if msg.canceled || msg.id != "w" || msg.status != model.StatusDidNotHappen {
		t.Fatalf("msg = %+v", msg)
	}
	if msg.reflection != "nothing happened" {
		t.Fatalf("reflection = %q, want trimmed text", msg.reflection)
	}
}

func TestVerifyEnterNeedsExplicitChoice(t *testing.T) {
	v := newVerifyModel(model.Worry{ID: "w", Text: "x"}, 100, 40)

	// Neither answer is preselected; a bare Enter resolves nothing.
	got, _ := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got.step != verifyStepOutcome || got.outcome != "" {
		t.Fatalf("enter with no focused answer chose %q", got.outcome)
	}

	// After an explicit focus move, Enter confirms that answer.
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyRight})
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got.outcome != model.StatusHappened {
		t.Fatalf("enter after focusing YES chose %q", got.outcome)
	}
}

func TestVerifyBackClearsFocus(t *testing.T) {
	v := newVerifyModel(model.Worry{ID: "w", Text: "x"}, 100, 40)
	got, _ := v.Update(keyRune('y'))
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// Returning to the outcome step must not leave an answer preselected.
	got, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got.outcome != "" {
		t.Fatalf("enter after going back chose %q", got.outcome)
	}
}
