package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/api"
)

func ptr(id int64) *int64 { return &id }

func testDirectory() *Directory {
	return NewDirectory([]api.Category{
		{ID: 1, Name: "Groceries"},
		{ID: 2, Name: "Salary"},
	})
}

func TestMapCommitted(t *testing.T) {
	dir := testDirectory()
	rec := api.TxRecord{
		ID: 7, Type: api.TypeExpense, Amount: decimal.NewFromFloat(12.50),
		CategoryID: ptr(1), TxTime: "2025-08-03T10:30:00Z", Note: "weekly shop",
	}
	tx, ok := MapCommitted(rec, dir)
	if !ok {
		t.Fatalf("expected record to map")
	}
	if tx.ID != "7" {
		t.Fatalf("id = %q", tx.ID)
	}
	if tx.Kind != Expense {
		t.Fatalf("kind = %q", tx.Kind)
	}
	if tx.Planned {
		t.Fatalf("committed records must not be tagged planned")
	}
	if tx.Category != "Groceries" {
		t.Fatalf("category = %q", tx.Category)
	}
	if tx.Icon != "🛒" {
		t.Fatalf("icon = %q", tx.Icon)
	}
	if tx.HasFull {
		t.Fatalf("page records defer full detail to a by-id fetch")
	}
	if tx.Date.Hour() != 10 {
		t.Fatalf("date = %s", tx.Date)
	}
}

func TestMapCommittedUnresolvedCategory(t *testing.T) {
	dir := testDirectory()
	rec := api.TxRecord{ID: 1, Type: api.TypeIncome, TxTime: "2025-01-01T00:00:00Z", CategoryID: ptr(99)}
	tx, ok := MapCommitted(rec, dir)
	if !ok {
		t.Fatalf("expected record to map")
	}
	if tx.Category != FallbackCategory {
		t.Fatalf("category = %q, want fallback", tx.Category)
	}
	if tx.Kind != Income {
		t.Fatalf("kind = %q", tx.Kind)
	}
}

func TestMapDropsBadDates(t *testing.T) {
	dir := testDirectory()
	if _, ok := MapCommitted(api.TxRecord{ID: 1, TxTime: "yesterday-ish"}, dir); ok {
		t.Fatalf("unparseable timestamp must be dropped")
	}
	if _, ok := MapPlanned(api.PlannedRecord{ID: 1, DueDate: ""}, dir); ok {
		t.Fatalf("unparseable due date must be dropped")
	}

	recs := []api.TxRecord{
		{ID: 1, TxTime: "2025-08-01T00:00:00Z"},
		{ID: 2, TxTime: "bad"},
		{ID: 3, TxTime: "2025-08-02T00:00:00Z"},
	}
	mapped := MapCommittedAll(recs, dir)
	if len(mapped) != 2 {
		t.Fatalf("expected 2 mapped records, got %d", len(mapped))
	}
}

func TestMapPlanned(t *testing.T) {
	dir := testDirectory()
	rec := api.PlannedRecord{
		ID: 3, Type: api.TypeExpense, Amount: decimal.NewFromInt(40),
		CategoryID: nil, Title: "Rent", DueDate: "2025-08-20",
	}
	tx, ok := MapPlanned(rec, dir)
	if !ok {
		t.Fatalf("expected record to map")
	}
	if tx.ID != "p-3" {
		t.Fatalf("planned ids carry the prefix, got %q", tx.ID)
	}
	if !tx.Planned {
		t.Fatalf("planned flag missing")
	}
	if tx.Category != "Rent" {
		t.Fatalf("planned items display their title, got %q", tx.Category)
	}
	if tx.Icon != "🏠" {
		t.Fatalf("icon keys off the title, got %q", tx.Icon)
	}
	if tx.Note != "" {
		t.Fatalf("planned items carry no note")
	}
	id, err := tx.SourceID()
	if err != nil || id != 3 {
		t.Fatalf("SourceID = %d, %v", id, err)
	}
}

func TestKindCodes(t *testing.T) {
	if KindFromCode("E") != Expense || KindFromCode("I") != Income {
		t.Fatalf("code mapping broken")
	}
	if Expense.Code() != "E" || Income.Code() != "I" {
		t.Fatalf("reverse mapping broken")
	}
}
