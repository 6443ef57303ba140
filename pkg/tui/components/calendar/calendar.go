// Package calendar renders the month view of planned items.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ledger/pkg/ledger"
)

// Day describes a single rendered day cell.
type Day struct {
	Day        int
	HasDue     bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DueStyle      lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DueStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}

// DueDays buckets the month's planned items by day of month.
func DueDays(month time.Time, items []ledger.Transaction) map[int]bool {
	due := make(map[int]bool)
	for _, t := range items {
		if t.Date.Year() == month.Year() && t.Date.Month() == month.Month() {
			due[t.Date.Day()] = true
		}
	}
	return due
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// Render produces the multi-line month grid. dueDays marks days carrying
// planned items; selectedDay highlights the cursor (0 for none).
func Render(month time.Time, dueDays map[int]bool, selectedDay int, now time.Time, opts Options) string {
	if month.IsZero() {
		return ""
	}
	if dueDays == nil {
		dueDays = make(map[int]bool)
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	todayDay := 0
	if month.Year() == now.Year() && month.Month() == now.Month() {
		todayDay = now.Day()
	}

	var lines []string
	lines = append(lines, opts.TitleStyle.Render(month.Format("January 2006")))
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	offset := int(first.Weekday())
	totalCells := offset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			info := Day{
				Day:        day,
				HasDue:     dueDays[day],
				IsToday:    day == todayDay,
				IsSelected: day == selectedDay && selectedDay > 0,
			}
			cells = append(cells, renderDay(info, day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasDue {
		style = opts.DueStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
