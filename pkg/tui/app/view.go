package ledgerui

import (
	"fmt"
	"strings"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/session"
	"tableflip.dev/ledger/pkg/timeutil"
	"tableflip.dev/ledger/pkg/tui/components/calendar"
)

func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.session.Mode() != session.Closed {
		sections = append(sections, m.renderModal())
	} else if m.currentView == viewCalendar {
		sections = append(sections, m.renderCalendar())
	} else {
		sections = append(sections, m.renderList())
	}

	if m.inputCtx != inputNone {
		prompt := "/"
		if m.inputCtx == inputCommand {
			prompt = ":"
		}
		sections = append(sections, prompt+m.input.View())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	title := m.theme.List.DayHeader.Render("Ledger")

	var badges []string
	if m.filters.Recurring {
		badges = append(badges, "planned")
	}
	if m.filters.Type != "" {
		badges = append(badges, m.filters.Type)
	}
	if m.filters.Search != "" {
		badges = append(badges, fmt.Sprintf("search:%q", m.filters.Search))
	}
	if m.filters.From != "" || m.filters.To != "" {
		badges = append(badges, fmt.Sprintf("%s..%s", m.filters.From, m.filters.To))
	}
	if m.filters.Min != nil {
		badges = append(badges, "min:"+m.filters.Min.String())
	}
	if m.filters.Max != nil {
		badges = append(badges, "max:"+m.filters.Max.String())
	}

	right := fmt.Sprintf("page %d/%d · %d total", m.page+1, m.totalPages, m.total)
	if m.loading {
		right += " · " + m.spin.View() + "loading"
	}

	line := title
	if len(badges) > 0 {
		line += "  " + m.theme.Footer.Filter.Render(strings.Join(badges, " "))
	}
	line += "  " + m.theme.Footer.Status.Render(right)
	return line
}

func (m *Model) renderList() string {
	if len(m.groups) == 0 {
		return m.theme.List.Empty.Render("No transactions match the current filters.")
	}

	var b strings.Builder
	idx := 0
	for gi, g := range m.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.List.DayHeader.Render(g.Day.Format("Mon, Jan 2 2006")))
		b.WriteString("\n")
		for _, t := range g.Items {
			line := m.renderRow(t)
			if idx == m.cursor {
				line = m.theme.List.Selected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			idx++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderRow(t ledger.Transaction) string {
	amount := t.Amount.StringFixed(2)
	var amt string
	if t.Kind == ledger.Income {
		amt = m.theme.List.Income.Render("+" + amount)
	} else {
		amt = m.theme.List.Expense.Render("-" + amount)
	}

	parts := []string{"  " + t.Icon, fmt.Sprintf("%10s", amt), t.Category}
	if t.Note != "" {
		parts = append(parts, m.theme.List.Note.Render(t.Note))
	}
	if t.Planned {
		parts = append(parts, m.theme.List.Planned.Render("(planned)"))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderCalendar() string {
	opts := calendar.Options{
		TitleStyle:    m.theme.Calendar.Title,
		HeaderStyle:   m.theme.Calendar.Header,
		EmptyStyle:    m.theme.Calendar.Empty,
		DueStyle:      m.theme.Calendar.Due,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		ShowHeader:    true,
	}
	due := calendar.DueDays(m.calMonth, m.calItems)
	grid := calendar.Render(m.calMonth, due, m.calSelected, m.now(), opts)

	var b strings.Builder
	b.WriteString(grid)

	day := m.calSelected
	var onDay []ledger.Transaction
	for _, t := range m.calItems {
		if t.Date.Day() == day && t.Date.Month() == m.calMonth.Month() && t.Date.Year() == m.calMonth.Year() {
			onDay = append(onDay, t)
		}
	}
	if len(onDay) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.List.DayHeader.Render("Due " + timeutil.StartOfDay(onDay[0].Date).Format("Jan 2")))
		b.WriteString("\n")
		for _, t := range onDay {
			b.WriteString(m.renderRow(t))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderModal() string {
	frame := m.theme.Modal.Frame
	title := m.theme.Modal.Title

	switch m.session.Mode() {
	case session.View:
		sel := m.session.Selected()
		if sel == nil {
			return ""
		}
		lines := []string{
			title.Render("Transaction"),
			"",
			m.renderRow(*sel),
			"",
			"Date: " + sel.Date.Format("2006-01-02 15:04"),
		}
		if sel.Category != "" {
			lines = append(lines, "Category: "+sel.Category)
		}
		lines = append(lines, "", m.theme.Footer.Help.Render("e edit · E full edit · d delete · esc close"))
		return frame.Render(strings.Join(lines, "\n"))
	case session.Delete:
		sel := m.session.Selected()
		if sel == nil {
			return ""
		}
		lines := []string{
			title.Render("Delete?"),
			"",
			m.renderRow(*sel),
			"",
			m.theme.Footer.Help.Render("y confirm · n cancel"),
		}
		return frame.Render(strings.Join(lines, "\n"))
	default:
		return frame.Render(m.renderForm())
	}
}

func (m *Model) renderForm() string {
	fields := m.formFields()

	heading := "Edit transaction"
	switch m.session.Mode() {
	case session.QuickEdit:
		heading = "Quick edit"
	case session.PlanEdit:
		heading = "Edit planned transaction"
	case session.NewTx:
		heading = "New transaction"
	case session.NewPlan:
		heading = "New planned transaction"
	}

	lines := []string{m.theme.Modal.Title.Render(heading), ""}
	for i, f := range fields {
		marker := "  "
		if i == m.formFocus {
			marker = "> "
		}
		value := m.formValueDisplay(f, i == m.formFocus)
		lines = append(lines, fmt.Sprintf("%s%-9s %s", marker, f.label(), value))
	}
	lines = append(lines, "", m.theme.Footer.Help.Render("tab next · ctrl+s save · esc cancel"))
	return strings.Join(lines, "\n")
}

func (m *Model) formValueDisplay(f formField, focused bool) string {
	form := m.session.Form()
	if focused && isTextField(f) {
		return m.input.View()
	}
	switch f {
	case fieldKind:
		if form.Kind == ledger.Income {
			return "income"
		}
		return "expense"
	case fieldAmount:
		return form.Amount.String()
	case fieldCategory:
		if form.CategoryID == nil {
			return "(none)"
		}
		return m.directory.Name(form.CategoryID)
	case fieldTitle:
		return form.Title
	case fieldDate:
		return form.Date
	case fieldNote:
		return form.Note
	case fieldGeo:
		if form.UseGeo {
			return "attach current position"
		}
		return "off"
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	help := "j/k move · n/p page · / search · t type · R planned · tab calendar · a add · q quit"
	if m.currentView == viewCalendar {
		help = "h/l/j/k move · [/] month · enter filter day · A plan · tab list"
	}
	parts := []string{m.theme.Footer.Help.Render(help)}
	if m.session.Loading() {
		parts = append(parts, m.spin.View()+m.theme.Footer.Status.Render("Loading detail"))
	} else if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	return strings.Join(parts, "\n")
}
