package filter

import (
	"testing"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/ledger"
)

func dirWith(names ...string) *ledger.Directory {
	cats := make([]api.Category, 0, len(names))
	for i, n := range names {
		cats = append(cats, api.Category{ID: int64(i + 1), Name: n})
	}
	return ledger.NewDirectory(cats)
}

func TestTxQueryCategoryDisambiguation(t *testing.T) {
	dir := dirWith("Groceries", "Salary")

	q := State{Search: "gro"}.TxQuery(dir)
	if q.Category != "Groceries" {
		t.Fatalf("category-matching text becomes a category filter, got %+v", q)
	}
	if q.Note != "" {
		t.Fatalf("only one interpretation is sent, got note %q", q.Note)
	}

	q = State{Search: "coffee with anna"}.TxQuery(dir)
	if q.Note != "coffee with anna" || q.Category != "" {
		t.Fatalf("non-matching text stays a note search, got %+v", q)
	}
}

func TestPlannedQueryTitleDisambiguation(t *testing.T) {
	dir := dirWith("Groceries", "Salary")

	q := State{Search: "SAL"}.PlannedQuery(dir)
	if q.Category != "Salary" || q.Title != "" {
		t.Fatalf("case-insensitive category match expected, got %+v", q)
	}

	q = State{Search: "gym"}.PlannedQuery(dir)
	if q.Title != "gym" || q.Category != "" {
		t.Fatalf("non-matching text becomes a title filter, got %+v", q)
	}
}

func TestTxQueryDayBoundaryExpansion(t *testing.T) {
	dir := dirWith()
	q := State{From: "2025-08-01", To: "2025-08-03"}.TxQuery(dir)
	if q.From != "2025-08-01T00:00:00Z" {
		t.Fatalf("from anchors to midnight UTC, got %q", q.From)
	}
	if q.To != "2025-08-03T23:59:59.999Z" {
		t.Fatalf("to anchors to end of day UTC, got %q", q.To)
	}
}

func TestPlannedQueryKeepsPlainDates(t *testing.T) {
	dir := dirWith()
	q := State{From: "2025-08-01", To: "2025-08-31"}.PlannedQuery(dir)
	if q.From != "2025-08-01" || q.To != "2025-08-31" {
		t.Fatalf("due-date bounds stay plain days, got %+v", q)
	}
}

func TestTypeCodes(t *testing.T) {
	dir := dirWith()
	if q := (State{Type: "expense"}).TxQuery(dir); q.Type != api.TypeExpense {
		t.Fatalf("type = %q", q.Type)
	}
	if q := (State{Type: "income"}).PlannedQuery(dir); q.Type != api.TypeIncome {
		t.Fatalf("type = %q", q.Type)
	}
	if q := (State{}).TxQuery(dir); q.Type != "" {
		t.Fatalf("unset type stays empty, got %q", q.Type)
	}
}

func TestBadDatesAreDropped(t *testing.T) {
	dir := dirWith()
	q := State{From: "08/01/2025", To: "soon"}.TxQuery(dir)
	if q.From != "" || q.To != "" {
		t.Fatalf("unparseable filter dates translate to no bound, got %+v", q)
	}
}
