// Package theme centralizes Lip Gloss styles for the transaction UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the views.
type Theme struct {
	List     ListTheme
	Calendar CalendarTheme
	Modal    ModalTheme
	Footer   FooterTheme
}

// ListTheme styles the grouped transaction list.
type ListTheme struct {
	DayHeader lipgloss.Style
	Expense   lipgloss.Style
	Income    lipgloss.Style
	Planned   lipgloss.Style
	Note      lipgloss.Style
	Selected  lipgloss.Style
	Empty     lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Due      lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Title    lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Filter lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		List: ListTheme{
			DayHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Expense:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Income:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Planned:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true),
			Note:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Due:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Reverse(true),
			Title:    lipgloss.NewStyle().Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:  lipgloss.NewStyle(),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		},
	}
}
