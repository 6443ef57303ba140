package ledgerui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/session"
)

type formField int

const (
	fieldKind formField = iota
	fieldAmount
	fieldCategory
	fieldTitle
	fieldDate
	fieldNote
	fieldGeo
)

func (f formField) label() string {
	switch f {
	case fieldKind:
		return "Type"
	case fieldAmount:
		return "Amount"
	case fieldCategory:
		return "Category"
	case fieldTitle:
		return "Title"
	case fieldDate:
		return "Date"
	case fieldNote:
		return "Note"
	case fieldGeo:
		return "Location"
	default:
		return ""
	}
}

func isTextField(f formField) bool {
	switch f {
	case fieldAmount, fieldTitle, fieldDate, fieldNote:
		return true
	default:
		return false
	}
}

// formFields returns the fields the active modal edits, in display order.
func (m *Model) formFields() []formField {
	form := m.session.Form()
	switch {
	case m.session.Mode() == session.QuickEdit:
		return []formField{fieldAmount, fieldCategory}
	case form.Planned:
		return []formField{fieldKind, fieldAmount, fieldCategory, fieldTitle, fieldDate}
	default:
		fields := []formField{fieldKind, fieldAmount, fieldCategory, fieldDate, fieldNote}
		if m.session.Mode() == session.NewTx && m.locator != nil {
			fields = append(fields, fieldGeo)
		}
		return fields
	}
}

func (m *Model) currentFormField() formField {
	fields := m.formFields()
	if m.formFocus < 0 || m.formFocus >= len(fields) {
		return fields[0]
	}
	return fields[m.formFocus]
}

func (m *Model) enterForm(cmds *[]tea.Cmd) {
	m.formFocus = 0
	m.syncFormInput(cmds)
}

func (m *Model) syncFormInput(cmds *[]tea.Cmd) {
	f := m.currentFormField()
	if !isTextField(f) {
		m.input.Reset()
		m.input.Blur()
		return
	}
	form := m.session.Form()
	switch f {
	case fieldAmount:
		m.input.SetValue(form.Amount.String())
		m.input.Placeholder = "0.00"
	case fieldTitle:
		m.input.SetValue(form.Title)
		m.input.Placeholder = "Title"
	case fieldDate:
		m.input.SetValue(form.Date)
		if form.Planned {
			m.input.Placeholder = session.PlanDateLayout
		} else {
			m.input.Placeholder = session.TxDateLayout
		}
	case fieldNote:
		m.input.SetValue(form.Note)
		m.input.Placeholder = "Note"
	}
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

// commitFormField writes the text input back into the form. It reports false
// when the value does not parse; focus stays on the offending field.
func (m *Model) commitFormField() bool {
	f := m.currentFormField()
	if !isTextField(f) {
		return true
	}
	form := m.session.Form()
	value := strings.TrimSpace(m.input.Value())
	switch f {
	case fieldAmount:
		if value == "" {
			form.Amount = decimal.Zero
			return true
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			m.setStatus("Invalid amount: " + value)
			return false
		}
		form.Amount = d
	case fieldTitle:
		form.Title = value
	case fieldDate:
		form.Date = value
	case fieldNote:
		form.Note = value
	}
	return true
}

func (m *Model) moveFormFocus(delta int, cmds *[]tea.Cmd) {
	if !m.commitFormField() {
		return
	}
	count := len(m.formFields())
	m.formFocus = (m.formFocus + delta + count) % count
	m.syncFormInput(cmds)
}

func (m *Model) cycleCategory(delta int) {
	form := m.session.Form()
	cats := m.directory.All()
	// index 0 is "no category"
	idx := 0
	if form.CategoryID != nil {
		for i, c := range cats {
			if c.ID == *form.CategoryID {
				idx = i + 1
				break
			}
		}
	}
	count := len(cats) + 1
	idx = (idx + delta + count) % count
	if idx == 0 {
		form.CategoryID = nil
		return
	}
	id := cats[idx-1].ID
	form.CategoryID = &id
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	f := m.currentFormField()
	key := msg.String()

	switch key {
	case "esc":
		m.session.Close()
		m.input.Reset()
		m.input.Blur()
		m.setStatus("Edit cancelled")
		return
	case "tab", "down":
		m.moveFormFocus(1, cmds)
		return
	case "shift+tab", "up":
		m.moveFormFocus(-1, cmds)
		return
	case "ctrl+s":
		m.submitForm(cmds)
		return
	case "enter":
		if m.formFocus == len(m.formFields())-1 {
			m.submitForm(cmds)
		} else {
			m.moveFormFocus(1, cmds)
		}
		return
	}

	form := m.session.Form()
	switch f {
	case fieldKind:
		switch key {
		case "left", "right", "h", "l", "space":
			if form.Kind == ledger.Expense {
				form.Kind = ledger.Income
			} else {
				form.Kind = ledger.Expense
			}
		}
	case fieldCategory:
		switch key {
		case "left", "h":
			m.cycleCategory(-1)
		case "right", "l", "space":
			m.cycleCategory(1)
		}
	case fieldGeo:
		switch key {
		case "left", "right", "h", "l", "space":
			form.UseGeo = !form.UseGeo
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) submitForm(cmds *[]tea.Cmd) {
	if !m.commitFormField() {
		return
	}
	if err := m.session.Form().Validate(); err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.input.Reset()
	m.input.Blur()
	*cmds = append(*cmds, m.saveCmd())
}
