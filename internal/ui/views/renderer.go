package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"boundless/internal/timeline"
)

// DayCardHeight returns the number of rows a day card occupies: one title
// row, one row per entry, one blank separator row. Must mirror DayCard.
func DayCardHeight(d timeline.Day) int {
	return len(timeline.Entries(d)) + 2
}

// DayCard renders one day as a fixed set of rows for the scroll host.
func DayCard(d timeline.Day, width int) []string {
	lines := make([]string, 0, DayCardHeight(d))
	lines = append(lines, dayTitleStyle.Render(d.String()))
	for _, e := range timeline.Entries(d) {
		lines = append(lines, entryStyle.Render("  "+e))
	}
	lines = append(lines, "")
	return lines
}

// DayDetail renders the full-page detail content shown in the pager.
func DayDetail(d timeline.Day) string {
	var b strings.Builder
	b.WriteString(d.String())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(d.String())))
	b.WriteString("\n\n")
	for _, e := range timeline.Entries(d) {
		b.WriteString(e)
		b.WriteString("\n")
	}
	b.WriteString("\nPress q to return.\n")
	return b.String()
}

// MonthPage renders a month calendar page for the paged navigator.
func MonthPage(m timeline.Month, today timeline.Day, width int) string {
	var b strings.Builder
	b.WriteString(monthTitleStyle.Render(m.String()))
	b.WriteString("\n\n")
	b.WriteString(weekdayStyle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	first := m.FirstDay().Time()
	daysIn := time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	col := int(first.Weekday())

	b.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= daysIn; day++ {
		cell := fmt.Sprintf("%2d", day)
		if m.Contains(today) && today.Day == day {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("h/l: previous/next month   g: jump to today"))
	return b.String()
}

// TitleBar renders the top bar with the application name and current mode.
func TitleBar(current string, mode string, width int) string {
	left := titleBarStyle.Render("boundless")
	right := modeStyle.Render(mode) + dimStyle.Render(" · "+current)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// StatusBar renders the bottom status line.
func StatusBar(text string, width int) string {
	bar := statusStyle.Render(text)
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += statusStyle.Render(strings.Repeat(" ", pad))
	}
	return bar
}
