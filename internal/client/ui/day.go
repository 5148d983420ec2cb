package ui

import (
	"fmt"
	"strings"

	"github.com/harudiary/haru/internal/diary"
)

// renderDay draws the selected date's question and answers and, depending on
// mode, the composer, the inline editor, or the delete prompt.
func (m Model) renderDay() string {
	var b strings.Builder

	dateKey := m.store.SelectedDate()
	b.WriteString(m.styles.Accent.Render(dateKey))
	b.WriteString("\n")
	if q := diary.QuestionFor(dateKey); q != "" {
		b.WriteString(m.styles.Text.Render("Q " + q))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	entries := m.selectedEntries()
	if len(entries) == 0 {
		b.WriteString(m.styles.Muted.Render("no answers yet — press n"))
		b.WriteString("\n")
	}

	for i, entry := range entries {
		line := fmt.Sprintf("• %s", entry.Content)

		if m.mode == modeEdit && entry.ID == m.editID {
			b.WriteString(m.styles.Selected.Render("✎ " + m.input.View()))
			b.WriteString("\n")
			continue
		}

		switch {
		case i == m.selIdx && m.mode == modeConfirmDelete:
			b.WriteString(m.styles.Danger.Render(line + "  delete? y/n"))
		case i == m.selIdx && m.mode == modeBrowse:
			b.WriteString(m.styles.Selected.Render(line))
		default:
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	if m.mode == modeCompose {
		b.WriteString("\n")
		b.WriteString("+ " + m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Danger.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("n new · e edit · d delete · ? help"))

	return m.styles.Pane.Render(b.String())
}

func (m Model) renderHelp() string {
	lines := []struct{ keys, desc string }{
		{"←/→", "previous / next day"},
		{"↑/↓", "previous / next answer"},
		{"[ / ]", "previous / next month"},
		{"t", "jump to today"},
		{"n", "new answer"},
		{"e", "edit selected answer"},
		{"d", "delete selected answer"},
		{"esc", "cancel input"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("haru"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.styles.Text.Render(fmt.Sprintf("%-6s", l.keys)),
			m.styles.Muted.Render(l.desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return m.styles.Pane.Render(b.String())
}
