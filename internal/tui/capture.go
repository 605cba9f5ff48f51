package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lucid-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The capture screen collects a worry, an optional category, the
// verification instant (relative preset or explicit date+time) and the
// optional reframing fields. Nothing is persisted until save; Esc on a
// non-empty draft asks before discarding.

type captureFocus int

const (
	capFocusText captureFocus = iota
	capFocusCategory
	capFocusDate
	capFocusYear
	capFocusMonth
	capFocusDay
	capFocusHour
	capFocusMinute
	capFocusThought
	capFocusPlan
	capFocusSave
)

const dateModeCustom = 4

var datePresets = []struct {
	label string
	days  int
}{
	{"Tomorrow", 1},
	{"3 days", 3},
	{"1 week", 7},
	{"1 month", 30},
}

type captureModel struct {
	width  int
	height int

	text        textarea.Model
	categoryIdx int
	// dateMode 0..3 selects a preset; dateModeCustom enables the explicit
	// date/time inputs.
	dateMode    int
	yearInput   textinput.Model
	monthInput  textinput.Model
	dayInput    textinput.Model
	hourInput   textinput.Model
	minuteInput textinput.Model

	showReframing bool
	thoughtInput  textinput.Model
	planInput     textinput.Model

	focus        captureFocus
	confirmExit  bool
	confirmFocus confirmFocus

	now func() time.Time
}

func newCaptureModel(width, height int) *captureModel {
	c := &captureModel{
		width:       width,
		height:      height,
		categoryIdx: len(model.Categories()) - 1, // "other"
		now:         time.Now,
	}

	c.text = textarea.New()
	c.text.Placeholder = "I am afraid that…"
	c.text.CharLimit = 0
	c.text.SetWidth(contentWidth(width))
	c.text.SetHeight(4)
	c.text.ShowLineNumbers = false
	c.text.Focus()

	mk := func(placeholder string, limit, w int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = w
		return in
	}
	c.yearInput = mk("YYYY", 4, 6)
	c.monthInput = mk("MM", 2, 4)
	c.dayInput = mk("DD", 2, 4)
	c.hourInput = mk("HH", 2, 4)
	c.minuteInput = mk("MM", 2, 4)

	c.thoughtInput = mk("A more realistic way to see this?", 200, contentWidth(width))
	c.planInput = mk("What can you actually do about it?", 200, contentWidth(width))

	return c
}

func (c captureModel) draftEmpty() bool {
	return strings.TrimSpace(c.text.Value()) == ""
}

// customDate builds the explicit verification instant from the date inputs.
// The instant must not be earlier than now at the moment of selection.
func (c captureModel) customDate() (time.Time, error) {
	year, err := strconv.Atoi(strings.TrimSpace(c.yearInput.Value()))
	if err != nil || year < 1970 {
		return time.Time{}, fmt.Errorf("invalid year")
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.monthInput.Value()))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month")
	}
	day, err := strconv.Atoi(strings.TrimSpace(c.dayInput.Value()))
	if err != nil || day < 1 {
		return time.Time{}, fmt.Errorf("invalid day")
	}
	day = clampDay(year, time.Month(month), day)
	hour, minute := 9, 0
	if v := strings.TrimSpace(c.hourInput.Value()); v != "" {
		hour, err = strconv.Atoi(v)
		if err != nil || hour < 0 || hour > 23 {
			return time.Time{}, fmt.Errorf("invalid hour")
		}
	}
	if v := strings.TrimSpace(c.minuteInput.Value()); v != "" {
		minute, err = strconv.Atoi(v)
		if err != nil || minute < 0 || minute > 59 {
			return time.Time{}, fmt.Errorf("invalid minute")
		}
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if ts.Before(c.now()) {
		return time.Time{}, fmt.Errorf("verification date is in the past")
	}
	return ts, nil
}

// checkDate resolves the verification instant at save time, so presets are
// relative to "now at save", not "now at form open".
func (c captureModel) checkDate() (time.Time, error) {
	if c.dateMode == dateModeCustom {
		return c.customDate()
	}
	return c.now().AddDate(0, 0, datePresets[c.dateMode].days), nil
}

func (c captureModel) saveDisabled() bool {
	if c.draftEmpty() {
		return true
	}
	if c.dateMode == dateModeCustom {
		if _, err := c.customDate(); err != nil {
			return true
		}
	}
	return false
}

func (c captureModel) reframing() *model.Reframing {
	if !c.showReframing {
		return nil
	}
	r := &model.Reframing{
		RationalThought: strings.TrimSpace(c.thoughtInput.Value()),
		ActionPlan:      strings.TrimSpace(c.planInput.Value()),
	}
	if r.Empty() {
		return nil
	}
	return r
}

func (c captureModel) finishCmd() tea.Cmd {
	checkDate, err := c.checkDate()
	if err != nil {
		return nil
	}
	msg := captureDoneMsg{
		text:      strings.TrimSpace(c.text.Value()),
		checkDate: checkDate,
		category:  model.Categories()[c.categoryIdx],
		reframing: c.reframing(),
	}
	return func() tea.Msg { return msg }
}

func captureCancelCmd() tea.Cmd {
	return func() tea.Msg { return captureDoneMsg{canceled: true} }
}

// focusOrder lists the currently reachable focus stops, which depends on
// whether custom date inputs and reframing fields are visible.
func (c captureModel) focusOrder() []captureFocus {
	order := []captureFocus{capFocusText, capFocusCategory, capFocusDate}
	if c.dateMode == dateModeCustom {
		order = append(order, capFocusYear, capFocusMonth, capFocusDay, capFocusHour, capFocusMinute)
	}
	if c.showReframing {
		order = append(order, capFocusThought, capFocusPlan)
	}
	return append(order, capFocusSave)
}

func (c *captureModel) moveFocus(delta int) {
	order := c.focusOrder()
	idx := 0
	for i, f := range order {
		if f == c.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	c.setFocus(order[idx])
}

func (c *captureModel) setFocus(f captureFocus) {
	c.focus = f
	c.text.Blur()
	for _, in := range c.inputs() {
		in.Blur()
	}
	switch f {
	case capFocusText:
		c.text.Focus()
	case capFocusYear:
		c.yearInput.Focus()
	case capFocusMonth:
		c.monthInput.Focus()
	case capFocusDay:
		c.dayInput.Focus()
	case capFocusHour:
		c.hourInput.Focus()
	case capFocusMinute:
		c.minuteInput.Focus()
	case capFocusThought:
		c.thoughtInput.Focus()
	case capFocusPlan:
		c.planInput.Focus()
	}
}

func (c *captureModel) inputs() []*textinput.Model {
	return []*textinput.Model{
		&c.yearInput, &c.monthInput, &c.dayInput, &c.hourInput, &c.minuteInput,
		&c.thoughtInput, &c.planInput,
	}
}

func (c *captureModel) focusedInput() *textinput.Model {
	switch c.focus {
	case capFocusYear:
		return &c.yearInput
	case capFocusMonth:
		return &c.monthInput
	case capFocusDay:
		return &c.dayInput
	case capFocusHour:
		return &c.hourInput
	case capFocusMinute:
		return &c.minuteInput
	case capFocusThought:
		return &c.thoughtInput
	case capFocusPlan:
		return &c.planInput
	}
	return nil
}

func (c captureModel) Update(msg tea.Msg) (captureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.text.SetWidth(contentWidth(msg.Width))
		return c, nil

	case tea.KeyMsg:
		if c.confirmExit {
			switch msg.String() {
			case "tab", "shift+tab", "left", "right":
				if c.confirmFocus == confirmFocusConfirm {
					c.confirmFocus = confirmFocusCancel
				} else {
					c.confirmFocus = confirmFocusConfirm
				}
				return c, nil
			case "enter":
				c.confirmExit = false
				if c.confirmFocus == confirmFocusConfirm {
					return c, captureCancelCmd()
				}
				return c, nil
			case "esc":
				c.confirmExit = false
				return c, nil
			}
			return c, nil
		}

		switch msg.String() {
		case "esc":
			if c.draftEmpty() {
				return c, captureCancelCmd()
			}
			c.confirmExit = true
			c.confirmFocus = confirmFocusConfirm
			return c, nil
		case "tab", "down":
			if c.focus == capFocusText && msg.String() == "down" {
				break // let the textarea handle cursor movement
			}
			c.moveFocus(1)
			return c, nil
		case "shift+tab", "up":
			if c.focus == capFocusText && msg.String() == "up" {
				break
			}
			c.moveFocus(-1)
			return c, nil
		case "ctrl+r":
			c.showReframing = !c.showReframing
			if !c.showReframing && (c.focus == capFocusThought || c.focus == capFocusPlan) {
				c.setFocus(capFocusSave)
			}
			return c, nil
		case "ctrl+s":
			if c.saveDisabled() {
				return c, nil
			}
			return c, c.finishCmd()
		case "enter":
			if c.focus == capFocusSave {
				if c.saveDisabled() {
					return c, nil
				}
				return c, c.finishCmd()
			}
			if c.focus != capFocusText {
				c.moveFocus(1)
				return c, nil
			}
		case "left":
			switch c.focus {
			case capFocusCategory:
				c.categoryIdx = (c.categoryIdx + len(model.Categories()) - 1) % len(model.Categories())
				return c, nil
			case capFocusDate:
				c.dateMode = (c.dateMode + dateModeCustom) % (dateModeCustom + 1)
				return c, nil
			}
		case "right":
			switch c.focus {
			case capFocusCategory:
				c.categoryIdx = (c.categoryIdx + 1) % len(model.Categories())
				return c, nil
			case capFocusDate:
				c.dateMode = (c.dateMode + 1) % (dateModeCustom + 1)
				return c, nil
			}
		}
	}

	var cmd tea.Cmd
	if c.focus == capFocusText {
		c.text, cmd = c.text.Update(msg)
		return c, cmd
	}
	if in := c.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c captureModel) View() string {
	if c.confirmExit {
		return overlayCentered(c.width, c.height, renderConfirmModal(
			c.width,
			"Abandon this thought?",
			"The text you entered will be lost if you leave now.",
			"Leave", "Stay",
			c.confirmFocus,
		))
	}

	w := contentWidth(c.width)
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render("What is worrying you?")
	b.WriteString(title + "\n\n")
	b.WriteString(c.text.View() + "\n\n")

	b.WriteString(c.renderCategories() + "\n\n")
	b.WriteString(c.renderDates() + "\n")

	if c.showReframing {
		label := styleMuted().Render("RATIONAL THOUGHT")
		b.WriteString("\n" + label + "\n" + c.thoughtInput.View() + "\n")
		label = styleMuted().Render("ACTION PLAN")
		b.WriteString(label + "\n" + c.planInput.View() + "\n")
	} else {
		b.WriteString("\n" + styleMuted().Render("ctrl+r: add a rational perspective") + "\n")
	}

	save := "Lock this thought away"
	saveStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(colorAccentFg).Background(colorAccent)
	if c.saveDisabled() {
		saveStyle = styleMuted().Padding(0, 2)
	} else if c.focus == capFocusSave {
		saveStyle = saveStyle.Bold(true).Underline(true)
	}
	b.WriteString("\n" + saveStyle.Render(save) + "\n\n")

	help := "tab: next field   ctrl+s: save   esc: close"
	b.WriteString(styleMuted().Width(w).Render(help))

	return b.String()
}

func (c captureModel) renderCategories() string {
	chip := lipgloss.NewStyle().Padding(0, 1)
	chipOn := chip.Foreground(colorAccentFg).Background(colorAccent).Bold(true)

	parts := make([]string, 0, len(model.Categories()))
	for i, cat := range model.Categories() {
		st := chip
		if i == c.categoryIdx {
			st = chipOn
		}
		parts = append(parts, st.Render(cat.Label()))
	}
	label := styleMuted().Render("Category ")
	if c.focus == capFocusCategory {
		label = styleAccent().Render("Category ")
	}
	return label + strings.Join(parts, " ")
}

func (c captureModel) renderDates() string {
	chip := lipgloss.NewStyle().Padding(0, 1)
	chipOn := chip.Foreground(colorAccentFg).Background(colorAccent).Bold(true)

	parts := make([]string, 0, len(datePresets)+1)
	for i, p := range datePresets {
		st := chip
		if i == c.dateMode {
			st = chipOn
		}
		parts = append(parts, st.Render(p.label))
	}
	st := chip
	if c.dateMode == dateModeCustom {
		st = chipOn
	}
	parts = append(parts, st.Render("Custom"))

	label := styleMuted().Render("Verify   ")
	if c.focus == capFocusDate {
		label = styleAccent().Render("Verify   ")
	}
	out := label + strings.Join(parts, " ")

	if c.dateMode == dateModeCustom {
		fields := strings.Join([]string{
			c.yearInput.View(), c.monthInput.View(), c.dayInput.View(),
			c.hourInput.View(), c.minuteInput.View(),
		}, " ")
		out += "\n" + styleMuted().Render("         exact date and time of the verdict: ") + "\n         " + fields
		if _, err := c.customDate(); err != nil && !c.draftEmpty() {
			out += "\n         " + lipgloss.NewStyle().Foreground(colorDanger).Render(err.Error())
		}
	}
	return out
}
