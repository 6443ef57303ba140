package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/ledger"
)

func ptr(id int64) *int64 { return &id }

func committed(id string, hasFull bool) ledger.Transaction {
	return ledger.Transaction{
		ID:       id,
		Kind:     ledger.Expense,
		Amount:   decimal.NewFromInt(12),
		Category: "Groceries",
		Date:     time.Date(2025, 8, 3, 10, 0, 0, 0, time.UTC),
		Note:     "weekly shop",
		HasFull:  hasFull,
	}
}

func plannedTx() ledger.Transaction {
	return ledger.Transaction{
		ID:       "p-3",
		Kind:     ledger.Expense,
		Amount:   decimal.NewFromInt(900),
		Category: "Rent",
		Date:     time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		Planned:  true,
		HasFull:  true,
	}
}

func TestOpenViewAndDelete(t *testing.T) {
	s := New()
	if s.Mode() != Closed {
		t.Fatalf("fresh session must be closed")
	}

	s.OpenView(committed("1", true))
	if s.Mode() != View || s.Selected() == nil {
		t.Fatalf("expected view mode with selection")
	}

	s.OpenDelete(committed("1", true))
	if s.Mode() != Delete {
		t.Fatalf("expected delete mode")
	}

	s.Close()
	if s.Mode() != Closed || s.Selected() != nil {
		t.Fatalf("close must clear everything")
	}
}

func TestOpenEditPlanned(t *testing.T) {
	s := New()
	needFetch, _ := s.OpenEdit(plannedTx())
	if needFetch {
		t.Fatalf("planned entities edit synchronously")
	}
	if s.Mode() != PlanEdit {
		t.Fatalf("mode = %s", s.Mode())
	}
	f := s.Form()
	if !f.Planned || f.Title != "Rent" || f.Date != "2025-08-20" {
		t.Fatalf("form derived wrong: %+v", f)
	}
}

func TestOpenEditWithFullDetail(t *testing.T) {
	s := New()
	needFetch, _ := s.OpenEdit(committed("1", true))
	if needFetch {
		t.Fatalf("full-detail entities edit synchronously")
	}
	if s.Mode() != FullEdit {
		t.Fatalf("mode = %s", s.Mode())
	}
	if s.Form().Note != "weekly shop" {
		t.Fatalf("form note = %q", s.Form().Note)
	}
}

func TestOpenEditDeferredDetail(t *testing.T) {
	dir := ledger.NewDirectory([]api.Category{{ID: 1, Name: "Groceries"}})
	s := New()

	needFetch, id := s.OpenEdit(committed("7", false))
	if !needFetch || id != 7 {
		t.Fatalf("expected deferred fetch of id 7, got %v %d", needFetch, id)
	}
	if !s.Loading() {
		t.Fatalf("loading flag must be set during the gap")
	}
	if s.Mode() == FullEdit {
		t.Fatalf("edit modal must not open before detail arrives")
	}

	s.DetailLoaded(api.TxRecord{
		ID: 7, Type: api.TypeExpense, Amount: decimal.NewFromInt(12),
		CategoryID: ptr(1), TxTime: "2025-08-03T10:00:00Z", Note: "late detail",
	}, dir)
	if s.Loading() {
		t.Fatalf("loading must clear once detail arrives")
	}
	if s.Mode() != FullEdit {
		t.Fatalf("mode = %s, want full-edit", s.Mode())
	}
	if s.Form().Note != "late detail" {
		t.Fatalf("form must come from the fetched record, got %q", s.Form().Note)
	}
}

func TestDetailFailedKeepsState(t *testing.T) {
	s := New()
	s.OpenView(committed("7", false))
	s.OpenEdit(committed("7", false))
	s.DetailFailed()
	if s.Loading() {
		t.Fatalf("loading must clear on failure")
	}
	if s.Mode() == FullEdit {
		t.Fatalf("failed detail fetch must not open the edit modal")
	}
}

func TestBeginNewDefaults(t *testing.T) {
	now := time.Date(2025, 8, 3, 14, 30, 0, 0, time.UTC)
	s := New()

	s.BeginNewTx(now)
	if s.Mode() != NewTx || !s.IsNew() {
		t.Fatalf("mode = %s", s.Mode())
	}
	f := s.Form()
	if f.Kind != ledger.Expense || !f.Amount.IsZero() || f.CategoryID != nil {
		t.Fatalf("new-tx defaults wrong: %+v", f)
	}
	if f.Date != "2025-08-03T14:30" {
		t.Fatalf("date seeded wrong: %q", f.Date)
	}

	s.BeginNewPlan(now)
	if s.Mode() != NewPlan {
		t.Fatalf("mode = %s", s.Mode())
	}
	if s.Form().Date != "2025-08-03" {
		t.Fatalf("plan date seeded wrong: %q", s.Form().Date)
	}
}

func TestFormValidation(t *testing.T) {
	f := &Form{Kind: ledger.Expense, Amount: decimal.NewFromInt(5), Date: "2025-08-03T10:00"}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid tx form rejected: %v", err)
	}

	bad := &Form{Kind: ledger.Expense, Amount: decimal.NewFromInt(-1), Date: "2025-08-03T10:00"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("negative amount must fail validation")
	}

	plan := &Form{Planned: true, Kind: ledger.Income, Date: "2025-08-20"}
	if err := plan.Validate(); err == nil {
		t.Fatalf("planned form without title must fail")
	}
	plan.Title = "Salary"
	if err := plan.Validate(); err != nil {
		t.Fatalf("valid plan form rejected: %v", err)
	}
}

func TestWritesCarryTypeCodes(t *testing.T) {
	f := &Form{Kind: ledger.Income, Amount: decimal.NewFromInt(100), Date: "2025-08-03T10:00"}
	w, err := f.TxWrite()
	if err != nil {
		t.Fatalf("TxWrite: %v", err)
	}
	if w.Type != api.TypeIncome {
		t.Fatalf("type code = %q", w.Type)
	}
	if w.TxTime != "2025-08-03T10:00:00Z" {
		t.Fatalf("tx time = %q", w.TxTime)
	}
	if w.Latitude != nil {
		t.Fatalf("coordinates only attach when geo is opted in")
	}

	p := &Form{Planned: true, Kind: ledger.Expense, Title: " Rent ", Amount: decimal.NewFromInt(900), Date: "2025-08-20"}
	pw, err := p.PlannedWrite()
	if err != nil {
		t.Fatalf("PlannedWrite: %v", err)
	}
	if pw.Type != api.TypeExpense || pw.Title != "Rent" || pw.DueDate != "2025-08-20" {
		t.Fatalf("planned write wrong: %+v", pw)
	}
}

func TestOpenQuickEdit(t *testing.T) {
	s := New()

	if needFetch, _ := s.OpenQuickEdit(plannedTx()); needFetch {
		t.Fatalf("planned quick edit must open synchronously")
	}
	if s.Mode() != QuickEdit || !s.Form().Planned {
		t.Fatalf("mode = %s, planned = %v", s.Mode(), s.Form().Planned)
	}
	s.Close()

	needFetch, id := s.OpenQuickEdit(committed("7", false))
	if !needFetch || id != 7 {
		t.Fatalf("summary row must defer: needFetch=%v id=%d", needFetch, id)
	}
	if s.Mode() != Closed || !s.Loading() {
		t.Fatalf("modal must stay closed while detail loads")
	}

	rec := api.TxRecord{
		ID: 7, Type: api.TypeExpense, Amount: decimal.NewFromInt(12),
		CategoryID: ptr(1), TxTime: "2025-08-03T10:00:00Z", Note: "weekly shop",
	}
	s.DetailLoaded(rec, ledger.NewDirectory(nil))
	if s.Mode() != QuickEdit {
		t.Fatalf("deferred quick edit must land in QuickEdit, got %s", s.Mode())
	}
	if s.Loading() {
		t.Fatalf("loading flag must clear")
	}
}
