package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/harudiary/haru/internal/dateutil"
)

// daysIn returns the number of days in a month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// leadingBlanks returns how many empty cells precede day 1 in the first row
// of a grid whose week starts on first.
func leadingBlanks(year int, month time.Month, first time.Weekday) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) - int(first) + 7) % 7
}

// monthGrid lays a month out as week rows of seven day numbers, 0 marking
// cells outside the month.
func monthGrid(year int, month time.Month, first time.Weekday) [][7]int {
	var grid [][7]int
	row := [7]int{}
	col := leadingBlanks(year, month, first)

	for day := 1; day <= daysIn(year, month); day++ {
		row[col] = day
		col++
		if col == 7 {
			grid = append(grid, row)
			row = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid
}

// weekdayHeader returns the two-letter day labels starting from first.
func weekdayHeader(first time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(first) + i) % 7)
		labels[i] = wd.String()[:2]
	}
	return labels
}

// shiftMonth moves a date key by delta months, clamping the day to the
// target month's length.
func shiftMonth(dateKey string, delta int) string {
	t, err := dateutil.Parse(dateKey)
	if err != nil {
		return dateKey
	}
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if max := daysIn(firstOfTarget.Year(), firstOfTarget.Month()); day > max {
		day = max
	}
	return dateutil.Key(time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location()))
}

// renderCalendar draws the month grid. Days with entries carry a marker dot;
// the selected day is highlighted.
func (m Model) renderCalendar() string {
	t, err := dateutil.Parse(m.store.SelectedDate())
	if err != nil {
		return ""
	}
	year, month := t.Year(), t.Month()
	marked := m.marks.snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, label := range weekdayHeader(m.firstWeekday) {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%4s", label)))
	}
	b.WriteString("\n")

	for _, week := range monthGrid(year, month, m.firstWeekday) {
		for _, day := range week {
			if day == 0 {
				b.WriteString("    ")
				continue
			}
			key := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			dot := " "
			if marked[key] {
				dot = "•"
			}
			cell := fmt.Sprintf("%s%2d", dot, day)
			switch {
			case key == m.store.SelectedDate():
				b.WriteString(" " + m.styles.Selected.Render(cell))
			case marked[key]:
				b.WriteString(" " + m.styles.Marker.Render(cell))
			default:
				b.WriteString(" " + m.styles.Text.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	return m.styles.Pane.Render(b.String())
}
