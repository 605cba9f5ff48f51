package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"lucid-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// The archive lists every worry, newest first: resolved ones with their
// outcome, pending ones with their verification distance. Deletion is the
// only mutation offered here.

type archiveItem struct {
	worry model.Worry
	now   time.Time
}

func (a archiveItem) FilterValue() string { return a.worry.Text }

func (a archiveItem) line() string {
	w := a.worry
	var marker string
	switch {
	case w.Status == model.StatusDidNotHappen:
		marker = lipgloss.NewStyle().Foreground(colorCalm).Render("✓")
	case w.Status == model.StatusHappened:
		marker = lipgloss.NewStyle().Foreground(colorAlarm).Render("!")
	case w.Due(a.now):
		marker = lipgloss.NewStyle().Foreground(colorDue).Render("●")
	default:
		marker = styleMuted().Render("·")
	}

	date := styleMuted().Render(formatDate(model.MillisTime(w.CreatedAt)))
	line := fmt.Sprintf("%s %s  %s", marker, date, w.Text)
	if w.Category != "" {
		line += "  " + styleMuted().Render("["+w.Category.Label()+"]")
	}
	if w.Status == model.StatusPending {
		line += "  " + styleMuted().Render(formatUntil(model.MillisTime(w.CheckDate), a.now))
	} else if w.Reflection != "" {
		line += "  " + styleMuted().Render("✎")
	}
	return line
}

type worryDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newWorryDelegate() worryDelegate {
	return worryDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d worryDelegate) Height() int  { return 1 }
func (d worryDelegate) Spacing() int { return 0 }
func (d worryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d worryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	it, ok := item.(archiveItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}

	line := it.line()
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}
	fmt.Fprint(w, style.Render(line))
}

func newArchiveList() list.Model {
	l := list.New([]list.Item{}, newWorryDelegate(), 0, 0)
	l.Title = "Archive"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	return l
}

func (m *appModel) refreshArchive() {
	now := m.now()
	ws := model.SortForDisplay(m.st.Worries.All())
	items := make([]list.Item, 0, len(ws))
	for _, w := range ws {
		items = append(items, archiveItem{worry: w, now: now})
	}
	m.archiveList.SetItems(items)
}

func (m appModel) renderArchive() string {
	sum := model.Summarize(m.st.Worries.All())
	footer := styleMuted().Render(fmt.Sprintf(
		"%d worries · %d did not happen · %d happened · %d pending",
		sum.Total, sum.DidNotHappen, sum.Happened, sum.Pending,
	))

	var detail string
	if it, ok := m.archiveList.SelectedItem().(archiveItem); ok {
		detail = renderArchiveDetail(it.worry, contentWidth(m.width))
	}

	help := styleMuted().Render("x: delete   /: filter   esc: dashboard")
	return strings.Join([]string{m.archiveList.View(), detail, footer, help}, "\n")
}

func renderArchiveDetail(w model.Worry, width int) string {
	var b strings.Builder
	if w.Status == model.StatusPending {
		b.WriteString(styleMuted().Render("verify   ") + formatDateTime(model.MillisTime(w.CheckDate)) + "\n")
	}
	if w.Reframing != nil {
		if w.Reframing.RationalThought != "" {
			b.WriteString(styleMuted().Render("thought  ") + truncateLine(w.Reframing.RationalThought, width-9) + "\n")
		}
		if w.Reframing.ActionPlan != "" {
			b.WriteString(styleMuted().Render("plan     ") + truncateLine(w.Reframing.ActionPlan, width-9) + "\n")
		}
	}
	if w.Reflection != "" {
		b.WriteString(styleMuted().Render("learned  ") + truncateLine(w.Reflection, width-9) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
