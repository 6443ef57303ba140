// Package ledgerui hosts the Bubble Tea program for the transaction view.
package ledgerui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/fence"
	"tableflip.dev/ledger/pkg/filter"
	"tableflip.dev/ledger/pkg/geo"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/session"
	"tableflip.dev/ledger/pkg/store"
	"tableflip.dev/ledger/pkg/timeutil"
	"tableflip.dev/ledger/pkg/tui/events"
	"tableflip.dev/ledger/pkg/tui/theme"
)

type view int

const (
	viewList view = iota
	viewCalendar
)

type inputContext int

const (
	inputNone inputContext = iota
	inputSearch
	inputCommand
)

// Model contains UI state for the unified transaction view.
type Model struct {
	svc       api.Services
	directory *ledger.Directory
	cache     *store.Cache
	locator   geo.Locator
	logger    *log.Logger

	filters         filter.State
	lastFingerprint string

	fence *fence.Fence

	page       int
	totalPages int
	pageSize   int
	total      int
	items      []ledger.Transaction
	groups     []ledger.DayGroup
	flat       []ledger.Transaction
	cursor     int
	loading    bool

	calMonth    time.Time
	calItems    []ledger.Transaction
	calSelected int

	session   *session.Session
	formFocus int

	currentView view
	input       textinput.Model
	inputCtx    inputContext
	spin        spinner.Model

	status string
	width  int
	height int
	theme  theme.Theme

	now func() time.Time
}

// Options configures the model beyond its remote services.
type Options struct {
	PageSize int
	Cache    *store.Cache
	Locator  geo.Locator
	Logger   *log.Logger
	Now      func() time.Time
}

// New creates a UI model backed by the remote services.
func New(svc api.Services, opts Options) *Model {
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	var cats []api.Category
	if opts.Cache != nil {
		if cached, err := opts.Cache.Categories(); err == nil && cached != nil {
			cats = cached
		}
	}

	now := opts.Now()
	return &Model{
		svc:         svc,
		directory:   ledger.NewDirectory(cats),
		cache:       opts.Cache,
		locator:     opts.Locator,
		logger:      opts.Logger.WithComponent(log.ComponentUI),
		filters:     filter.Defaults(),
		fence:       fence.New(),
		totalPages:  1,
		pageSize:    opts.PageSize,
		calMonth:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		calSelected: now.Day(),
		session:     session.New(),
		currentView: viewList,
		input:       ti,
		spin:        sp,
		theme:       theme.Default(),
		now:         opts.Now,
	}
}

// Init loads categories, the first page, and the current calendar month.
func (m *Model) Init() tea.Cmd {
	m.lastFingerprint = m.filters.Fingerprint()
	return tea.Batch(
		m.spin.Tick,
		m.loadCategories(),
		m.fetchPage(0),
		m.loadMonth(m.calMonth),
	)
}

func (m *Model) loadCategories() tea.Cmd {
	svc := m.svc.Cats
	return func() tea.Msg {
		cats, err := svc.List(context.Background())
		return events.CategoriesLoadedMsg{Cats: cats, Err: err}
	}
}

// fetchPage launches a load of one page from the source the recurring flag
// selects. The query is snapshotted before the token is issued so a filter
// edit racing the fetch can never leak into an already-tokened request.
func (m *Model) fetchPage(page int) tea.Cmd {
	m.loading = true
	token := m.fence.Begin(fence.Page)
	size := m.pageSize
	dir := m.directory
	logger := m.logger

	if m.filters.Recurring {
		q := m.filters.PlannedQuery(dir)
		svc := m.svc.Plan
		return func() tea.Msg {
			pg, err := svc.Page(context.Background(), page, size, q)
			if err != nil {
				logger.Error("planned page fetch failed", log.FieldPage, page, log.FieldToken, token, log.FieldError, err)
				return events.PageLoadedMsg{Token: token, Page: page, Err: err}
			}
			return events.PageLoadedMsg{
				Token: token,
				Page:  page,
				Items: ledger.MapPlannedAll(pg.Items, dir),
				Total: pg.Total,
			}
		}
	}

	q := m.filters.TxQuery(dir)
	svc := m.svc.Tx
	return func() tea.Msg {
		pg, err := svc.Page(context.Background(), page, size, q)
		if err != nil {
			logger.Error("page fetch failed", log.FieldPage, page, log.FieldToken, token, log.FieldError, err)
			return events.PageLoadedMsg{Token: token, Page: page, Err: err}
		}
		return events.PageLoadedMsg{
			Token: token,
			Page:  page,
			Items: ledger.MapCommittedAll(pg.Items, dir),
			Total: pg.Total,
		}
	}
}

// loadMonth fetches every planned item due inside the month, unpaginated.
// It runs on its own fence channel and never disturbs the page list.
func (m *Model) loadMonth(month time.Time) tea.Cmd {
	token := m.fence.Begin(fence.Calendar)
	first, last := timeutil.MonthRange(month)
	q := api.PlannedQuery{
		From: first.Format(timeutil.DayLayout),
		To:   last.Format(timeutil.DayLayout),
	}
	dir := m.directory
	svc := m.svc.Plan
	logger := m.logger
	return func() tea.Msg {
		recs, err := svc.List(context.Background(), q)
		if err != nil {
			logger.Error("month fetch failed", log.FieldMonth, month.Format("2006-01"), log.FieldToken, token, log.FieldError, err)
			return events.CalendarLoadedMsg{Token: token, Month: month, Err: err}
		}
		return events.CalendarLoadedMsg{
			Token: token,
			Month: month,
			Items: ledger.MapPlannedAll(recs, dir),
		}
	}
}

func (m *Model) fetchDetail(id int64) tea.Cmd {
	svc := m.svc.Tx
	return func() tea.Msg {
		rec, err := svc.Get(context.Background(), id)
		return events.DetailLoadedMsg{Rec: rec, Err: err}
	}
}

func (m *Model) saveCmd() tea.Cmd {
	form := *m.session.Form()
	isNew := m.session.IsNew()
	tx := m.svc.Tx
	plan := m.svc.Plan
	locator := m.locator

	return func() tea.Msg {
		if err := form.Validate(); err != nil {
			return events.SaveDoneMsg{Err: err}
		}

		if form.Planned {
			w, err := form.PlannedWrite()
			if err != nil {
				return events.SaveDoneMsg{Err: err}
			}
			if isNew {
				if err := plan.Create(context.Background(), w); err != nil {
					return events.SaveDoneMsg{Err: err}
				}
				return events.SaveDoneMsg{Message: "Planned transaction created"}
			}
			id, err := sourceID(form.ID)
			if err != nil {
				return events.SaveDoneMsg{Err: err}
			}
			if err := plan.Update(context.Background(), id, w); err != nil {
				return events.SaveDoneMsg{Err: err}
			}
			return events.SaveDoneMsg{Message: "Planned transaction updated"}
		}

		if isNew && form.UseGeo && locator != nil {
			ctx, cancel := context.WithTimeout(context.Background(), geo.Timeout)
			if pos := geo.Resolve(ctx, locator); pos != nil {
				form.Latitude = &pos.Lat
				form.Longitude = &pos.Lon
			}
			cancel()
		}

		w, err := form.TxWrite()
		if err != nil {
			return events.SaveDoneMsg{Err: err}
		}
		if isNew {
			if err := tx.Create(context.Background(), w); err != nil {
				return events.SaveDoneMsg{Err: err}
			}
			return events.SaveDoneMsg{Message: "Transaction created"}
		}
		id, err := sourceID(form.ID)
		if err != nil {
			return events.SaveDoneMsg{Err: err}
		}
		if err := tx.Update(context.Background(), id, w); err != nil {
			return events.SaveDoneMsg{Err: err}
		}
		return events.SaveDoneMsg{Message: "Transaction updated"}
	}
}

func (m *Model) deleteCmd() tea.Cmd {
	sel := m.session.Selected()
	if sel == nil {
		return nil
	}
	target := *sel
	tx := m.svc.Tx
	plan := m.svc.Plan
	return func() tea.Msg {
		id, err := target.SourceID()
		if err != nil {
			return events.SaveDoneMsg{Err: err}
		}
		if target.Planned {
			if err := plan.Delete(context.Background(), id); err != nil {
				return events.SaveDoneMsg{Err: err}
			}
		} else {
			if err := tx.Delete(context.Background(), id); err != nil {
				return events.SaveDoneMsg{Err: err}
			}
		}
		return events.SaveDoneMsg{Message: "Deleted"}
	}
}

// applyFilters refetches the list only when the fingerprint changed. A
// cosmetic edit that lands back on the same values issues no request.
func (m *Model) applyFilters(cmds *[]tea.Cmd) {
	fp := m.filters.Fingerprint()
	if fp == m.lastFingerprint {
		return
	}
	m.lastFingerprint = fp
	m.page = 0
	*cmds = append(*cmds, m.fetchPage(0))
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func sourceID(id string) (int64, error) {
	t := ledger.Transaction{ID: id}
	return t.SourceID()
}

// Run launches the interactive program.
func Run(svc api.Services, opts Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
