package ledgerui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/fence"
	"tableflip.dev/ledger/pkg/filter"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/session"
	"tableflip.dev/ledger/pkg/timeutil"
	"tableflip.dev/ledger/pkg/tui/components/calendar"
	"tableflip.dev/ledger/pkg/tui/events"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case events.CategoriesLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("categories load failed", log.FieldError, msg.Err)
			break
		}
		m.directory.Replace(msg.Cats)
		if m.cache != nil {
			if err := m.cache.SaveCategories(msg.Cats); err != nil {
				m.logger.Error("category cache write failed", log.FieldError, err)
			}
		}
	case events.PageLoadedMsg:
		if !m.fence.Accept(fence.Page, msg.Token) {
			m.logger.Debug("stale page response dropped", log.FieldToken, msg.Token, log.FieldPage, msg.Page)
			break
		}
		m.loading = false
		if msg.Err != nil {
			m.items = nil
			m.groups = nil
			m.flat = nil
			m.total = 0
			m.totalPages = 1
			m.cursor = 0
			m.setStatus("ERR: " + msg.Err.Error())
			break
		}
		m.page = msg.Page
		m.items = msg.Items
		m.total = msg.Total
		m.totalPages = filter.TotalPages(msg.Total, m.pageSize)
		m.groups = ledger.GroupByDay(msg.Items, m.filters.Recurring)
		m.flat = flatten(m.groups)
		if m.cursor >= len(m.flat) {
			m.cursor = len(m.flat) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
	case events.CalendarLoadedMsg:
		if !m.fence.Accept(fence.Calendar, msg.Token) {
			m.logger.Debug("stale calendar response dropped", log.FieldToken, msg.Token)
			break
		}
		if msg.Err != nil {
			m.calMonth = msg.Month
			m.calItems = nil
			m.setStatus("ERR: " + msg.Err.Error())
			break
		}
		m.calMonth = msg.Month
		m.calItems = msg.Items
		if max := calendar.DaysIn(m.calMonth); m.calSelected > max {
			m.calSelected = max
		}
		if m.calSelected < 1 {
			m.calSelected = 1
		}
	case events.DetailLoadedMsg:
		if msg.Err != nil {
			m.session.DetailFailed()
			m.setStatus("ERR: " + msg.Err.Error())
			break
		}
		m.session.DetailLoaded(msg.Rec, m.directory)
		if !m.session.IsEdit() {
			m.setStatus("Record could not be loaded")
			break
		}
		m.enterForm(&cmds)
	case events.SaveDoneMsg:
		if msg.Err != nil {
			m.setStatus("ERR: " + msg.Err.Error())
			break
		}
		m.session.Close()
		m.setStatus(msg.Message)
		cmds = append(cmds, m.fetchPage(m.page), m.loadMonth(m.calMonth))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.session.Loading() {
		if msg.String() == "esc" {
			m.session.DetailFailed()
			m.setStatus("Edit cancelled")
		}
		return
	}
	switch {
	case m.session.Mode() != session.Closed:
		m.handleModalKey(msg, cmds)
	case m.inputCtx != inputNone:
		m.handleInputKey(msg, cmds)
	case m.currentView == viewCalendar:
		m.handleCalendarKey(msg, cmds)
	default:
		m.handleListKey(msg, cmds)
	}
}

func (m *Model) handleListKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	case "/":
		m.inputCtx = inputSearch
		m.input.SetValue(m.filters.Search)
		m.input.Placeholder = "Search note, title, or category"
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case ":":
		m.inputCtx = inputCommand
		m.input.Reset()
		m.input.Placeholder = "min | max | from | to | clear | q"
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "t":
		switch m.filters.Type {
		case "":
			m.filters.Type = "expense"
		case "expense":
			m.filters.Type = "income"
		default:
			m.filters.Type = ""
		}
		m.applyFilters(cmds)
	case "R":
		m.filters.Recurring = !m.filters.Recurring
		m.applyFilters(cmds)
	case "c":
		m.filters.Reset()
		m.applyFilters(cmds)
	case "r":
		*cmds = append(*cmds, m.fetchPage(m.page), m.loadMonth(m.calMonth))
	case "tab":
		m.currentView = viewCalendar
		m.page = 0
		*cmds = append(*cmds, m.loadMonth(m.calMonth))
	case "n", "right", "l":
		if m.page+1 < m.totalPages {
			*cmds = append(*cmds, m.fetchPage(m.page+1))
		}
	case "p", "left", "h":
		if m.page > 0 {
			*cmds = append(*cmds, m.fetchPage(m.page-1))
		}
	case "j", "down":
		if m.cursor+1 < len(m.flat) {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(m.flat) > 0 {
			m.cursor = len(m.flat) - 1
		}
	case "enter", "v":
		if t := m.currentItem(); t != nil {
			m.session.OpenView(*t)
		}
	case "e":
		if t := m.currentItem(); t != nil {
			m.beginQuickEdit(*t, cmds)
		}
	case "E":
		if t := m.currentItem(); t != nil {
			m.beginEdit(*t, cmds)
		}
	case "d":
		if t := m.currentItem(); t != nil {
			m.session.OpenDelete(*t)
		}
	case "a":
		m.session.BeginNewTx(m.now())
		m.enterForm(cmds)
	case "A":
		m.session.BeginNewPlan(m.now())
		m.enterForm(cmds)
	}
}

func (m *Model) beginEdit(t ledger.Transaction, cmds *[]tea.Cmd) {
	if needFetch, id := m.session.OpenEdit(t); needFetch {
		m.setStatus("Loading detail")
		*cmds = append(*cmds, m.fetchDetail(id))
		return
	}
	m.enterForm(cmds)
}

func (m *Model) beginQuickEdit(t ledger.Transaction, cmds *[]tea.Cmd) {
	if needFetch, id := m.session.OpenQuickEdit(t); needFetch {
		m.setStatus("Loading detail")
		*cmds = append(*cmds, m.fetchDetail(id))
		return
	}
	m.enterForm(cmds)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	days := calendar.DaysIn(m.calMonth)
	switch msg.String() {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	case "tab", "esc":
		m.currentView = viewList
		m.page = 0
		*cmds = append(*cmds, m.fetchPage(0))
	case "[":
		m.calMonth = m.calMonth.AddDate(0, -1, 0)
		m.calSelected = 1
		*cmds = append(*cmds, m.loadMonth(m.calMonth))
	case "]":
		m.calMonth = m.calMonth.AddDate(0, 1, 0)
		m.calSelected = 1
		*cmds = append(*cmds, m.loadMonth(m.calMonth))
	case "h", "left":
		if m.calSelected > 1 {
			m.calSelected--
		}
	case "l", "right":
		if m.calSelected < days {
			m.calSelected++
		}
	case "j", "down":
		if m.calSelected+7 <= days {
			m.calSelected += 7
		}
	case "k", "up":
		if m.calSelected-7 >= 1 {
			m.calSelected -= 7
		}
	case "enter":
		day := time.Date(m.calMonth.Year(), m.calMonth.Month(), m.calSelected, 0, 0, 0, 0, time.UTC)
		picked := day.Format(timeutil.DayLayout)
		m.filters.From = picked
		m.filters.To = picked
		m.currentView = viewList
		m.applyFilters(cmds)
	case "A":
		m.session.BeginNewPlan(time.Date(m.calMonth.Year(), m.calMonth.Month(), m.calSelected, 0, 0, 0, 0, time.UTC))
		m.enterForm(cmds)
	}
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputCtx = inputNone
		m.input.Reset()
		m.input.Blur()
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		ctx := m.inputCtx
		m.inputCtx = inputNone
		m.input.Reset()
		m.input.Blur()
		switch ctx {
		case inputSearch:
			m.filters.Search = value
			m.applyFilters(cmds)
		case inputCommand:
			m.executeCommand(value, cmds)
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) executeCommand(input string, cmds *[]tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "q", "quit", "exit":
		*cmds = append(*cmds, tea.Quit)
		return
	case "min":
		if arg == "" {
			m.filters.Min = nil
			break
		}
		d, err := decimal.NewFromString(arg)
		if err != nil {
			m.setStatus("Invalid amount: " + arg)
			return
		}
		m.filters.Min = &d
	case "max":
		if arg == "" {
			m.filters.Max = nil
			break
		}
		d, err := decimal.NewFromString(arg)
		if err != nil {
			m.setStatus("Invalid amount: " + arg)
			return
		}
		m.filters.Max = &d
	case "from":
		if arg != "" {
			if _, err := timeutil.ParseDay(arg); err != nil {
				m.setStatus("Invalid date: " + arg)
				return
			}
		}
		m.filters.From = arg
	case "to":
		if arg != "" {
			if _, err := timeutil.ParseDay(arg); err != nil {
				m.setStatus("Invalid date: " + arg)
				return
			}
		}
		m.filters.To = arg
	case "clear":
		m.filters.Reset()
	default:
		m.setStatus("Unknown command: " + input)
		return
	}
	m.applyFilters(cmds)
}

func (m *Model) handleModalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.session.Mode() {
	case session.View:
		switch msg.String() {
		case "esc", "q", "enter":
			m.session.Close()
		case "e":
			if sel := m.session.Selected(); sel != nil {
				m.beginQuickEdit(*sel, cmds)
			}
		case "E":
			if sel := m.session.Selected(); sel != nil {
				m.beginEdit(*sel, cmds)
			}
		case "d":
			if sel := m.session.Selected(); sel != nil {
				m.session.OpenDelete(*sel)
			}
		}
	case session.Delete:
		switch msg.String() {
		case "y", "enter":
			if cmd := m.deleteCmd(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		case "esc", "n", "q":
			m.session.Close()
			m.setStatus("Delete cancelled")
		}
	default:
		m.handleFormKey(msg, cmds)
	}
}

func flatten(groups []ledger.DayGroup) []ledger.Transaction {
	var out []ledger.Transaction
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

func (m *Model) currentItem() *ledger.Transaction {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	t := m.flat[m.cursor]
	return &t
}
