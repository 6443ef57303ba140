// Package session governs which modal is open over the transaction list and
// routes saves and deletes to the correct store. It is a closed state machine:
// impossible mode combinations cannot be represented.
package session

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/ledger"
)

// Mode enumerates the modal states. Closed means no selection and no modal.
type Mode int

const (
	Closed Mode = iota
	View
	Delete
	QuickEdit
	FullEdit
	PlanEdit
	NewTx
	NewPlan
)

// String names the mode for status lines and logs.
func (m Mode) String() string {
	switch m {
	case Closed:
		return "closed"
	case View:
		return "view"
	case Delete:
		return "delete"
	case QuickEdit:
		return "quick-edit"
	case FullEdit:
		return "full-edit"
	case PlanEdit:
		return "plan-edit"
	case NewTx:
		return "new-transaction"
	case NewPlan:
		return "new-plan"
	}
	return "unknown"
}

// Form layouts for the two stores.
const (
	TxDateLayout   = "2006-01-02T15:04"
	PlanDateLayout = "2006-01-02"
)

// Form is the editable modal payload.
type Form struct {
	ID         string
	Planned    bool
	Kind       ledger.Kind
	Amount     decimal.Decimal
	CategoryID *int64
	Title      string
	Date       string
	Note       string
	UseGeo     bool
	Latitude   *float64
	Longitude  *float64
}

var (
	ErrNoSelection   = errors.New("session: no entity selected")
	ErrDetailPending = errors.New("session: detail fetch still pending")
	ErrInvalidForm   = errors.New("session: form is invalid")
)

// Session is the modal state machine.
type Session struct {
	mode     Mode
	selected *ledger.Transaction
	form     Form
	loading  bool
	pending  int64 // committed id awaiting detail, 0 when none
	quick    bool  // deferred detail completes into QuickEdit
}

// New returns a closed session.
func New() *Session {
	return &Session{}
}

// Mode returns the current modal mode.
func (s *Session) Mode() Mode { return s.mode }

// Selected returns the entity under inspection, nil when closed.
func (s *Session) Selected() *ledger.Transaction { return s.selected }

// Form returns a pointer to the editable form for mutation by input handlers.
func (s *Session) Form() *Form { return &s.form }

// Loading reports whether a detail fetch is in flight; the edit modal must not
// show until it completes.
func (s *Session) Loading() bool { return s.loading }

// PendingDetail returns the committed id whose detail is being fetched.
func (s *Session) PendingDetail() int64 { return s.pending }

// OpenView selects an entity for inspection.
func (s *Session) OpenView(t ledger.Transaction) {
	copied := t
	s.selected = &copied
	s.mode = View
	s.loading = false
	s.pending = 0
}

// OpenDelete selects an entity for delete confirmation.
func (s *Session) OpenDelete(t ledger.Transaction) {
	copied := t
	s.selected = &copied
	s.mode = Delete
	s.loading = false
	s.pending = 0
}

// OpenEdit starts editing. Planned entities and committed entities that carry
// full detail open synchronously. A committed entity without full detail
// returns needFetch=true: the caller must fetch by id and call DetailLoaded
// before the edit modal opens. Until then Loading() is true and the mode is
// unchanged.
func (s *Session) OpenEdit(t ledger.Transaction) (needFetch bool, id int64) {
	copied := t
	s.selected = &copied
	s.quick = false

	if t.Planned {
		s.form = Form{
			ID:         t.ID,
			Planned:    true,
			Kind:       t.Kind,
			Amount:     t.Amount,
			CategoryID: t.CategoryID,
			Title:      t.Category,
			Date:       t.Date.Format(PlanDateLayout),
		}
		s.mode = PlanEdit
		s.loading = false
		return false, 0
	}

	if t.HasFull {
		s.form = Form{
			ID:         t.ID,
			Kind:       t.Kind,
			Amount:     t.Amount,
			CategoryID: t.CategoryID,
			Date:       t.Date.UTC().Format(TxDateLayout),
			Note:       t.Note,
		}
		s.mode = FullEdit
		s.loading = false
		return false, 0
	}

	srcID, err := t.SourceID()
	if err != nil {
		// identity is not a store id; nothing to fetch
		return false, 0
	}
	s.loading = true
	s.pending = srcID
	return true, srcID
}

// OpenQuickEdit starts an amount-only edit. The write still carries the full
// record, so a committed entity without detail follows the same deferred
// fetch as OpenEdit and completes into QuickEdit instead.
func (s *Session) OpenQuickEdit(t ledger.Transaction) (needFetch bool, id int64) {
	needFetch, id = s.OpenEdit(t)
	if needFetch {
		s.quick = true
		return needFetch, id
	}
	if s.mode == FullEdit || s.mode == PlanEdit {
		s.mode = QuickEdit
	}
	return false, 0
}

// DetailLoaded completes the deferred edit once the full record arrives.
func (s *Session) DetailLoaded(rec api.TxRecord, dir *ledger.Directory) {
	if !s.loading {
		return
	}
	s.loading = false
	s.pending = 0
	t, ok := ledger.MapCommitted(rec, dir)
	if !ok {
		s.quick = false
		return
	}
	t.HasFull = true
	copied := t
	s.selected = &copied
	s.form = Form{
		ID:         t.ID,
		Kind:       t.Kind,
		Amount:     t.Amount,
		CategoryID: t.CategoryID,
		Date:       t.Date.UTC().Format(TxDateLayout),
		Note:       t.Note,
	}
	s.mode = FullEdit
	if s.quick {
		s.mode = QuickEdit
		s.quick = false
	}
}

// DetailFailed abandons the deferred edit; state other than the loading flag
// is untouched.
func (s *Session) DetailFailed() {
	s.loading = false
	s.pending = 0
	s.quick = false
}

// BeginNewTx opens the new-transaction form seeded with defaults.
func (s *Session) BeginNewTx(now time.Time) {
	s.selected = nil
	s.form = Form{
		Kind: ledger.Expense,
		Date: now.UTC().Format(TxDateLayout),
	}
	s.mode = NewTx
	s.loading = false
}

// BeginNewPlan opens the new-plan form seeded with defaults.
func (s *Session) BeginNewPlan(now time.Time) {
	s.selected = nil
	s.form = Form{
		Planned: true,
		Kind:    ledger.Expense,
		Date:    now.UTC().Format(PlanDateLayout),
	}
	s.mode = NewPlan
	s.loading = false
}

// Close clears all modal state.
func (s *Session) Close() {
	s.mode = Closed
	s.selected = nil
	s.form = Form{}
	s.loading = false
	s.pending = 0
	s.quick = false
}

// IsEdit reports whether the mode edits an existing record.
func (s *Session) IsEdit() bool {
	return s.mode == QuickEdit || s.mode == FullEdit || s.mode == PlanEdit
}

// IsNew reports whether the mode creates a record.
func (s *Session) IsNew() bool {
	return s.mode == NewTx || s.mode == NewPlan
}
