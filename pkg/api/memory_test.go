package api

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func idPtr(v int64) *int64 { return &v }

func seeded() *Memory {
	m := NewMemory([]Category{{ID: 1, Name: "Groceries"}, {ID: 2, Name: "Salary"}})
	m.SeedTx(
		TxRecord{Type: TypeExpense, Amount: dec("12.50"), CategoryID: idPtr(1), TxTime: "2025-08-01T09:00:00Z", Note: "weekly shop"},
		TxRecord{Type: TypeIncome, Amount: dec("2500"), CategoryID: idPtr(2), TxTime: "2025-08-02T08:00:00Z", Note: "pay"},
		TxRecord{Type: TypeExpense, Amount: dec("60"), CategoryID: nil, TxTime: "2025-08-08T10:00:00Z", Note: "Fuel stop"},
	)
	m.SeedPlans(
		PlannedRecord{Type: TypeExpense, Amount: dec("800"), Title: "Rent", DueDate: "2025-08-03"},
		PlannedRecord{Type: TypeExpense, Amount: dec("35"), Title: "Internet", DueDate: "2025-08-20"},
	)
	return m
}

func TestMemoryPageSortsNewestFirst(t *testing.T) {
	svc := seeded().Services()
	page, err := svc.Tx.Page(context.Background(), 0, 10, TxQuery{})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("total = %d", page.Total)
	}
	if page.Items[0].Note != "Fuel stop" || page.Items[2].Note != "weekly shop" {
		t.Fatalf("wrong order: %v %v", page.Items[0].Note, page.Items[2].Note)
	}
}

func TestMemoryNoteMatchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := seeded().Services()
	page, err := svc.Tx.Page(context.Background(), 0, 10, TxQuery{Note: "fuel"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Total != 1 || page.Items[0].Note != "Fuel stop" {
		t.Fatalf("note match failed: %+v", page)
	}
}

func TestMemoryAmountBoundsInclusive(t *testing.T) {
	svc := seeded().Services()
	page, err := svc.Tx.Page(context.Background(), 0, 10, TxQuery{Min: decPtr("12.50"), Max: decPtr("60")})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, bounds must be inclusive", page.Total)
	}
}

func TestMemoryPlannedDueBounds(t *testing.T) {
	svc := seeded().Services()
	recs, err := svc.Plan.List(context.Background(), PlannedQuery{From: "2025-08-01", To: "2025-08-03"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Rent" {
		t.Fatalf("due bounds failed: %+v", recs)
	}
}

func TestMemoryCRUDRoundTrip(t *testing.T) {
	mem := seeded()
	svc := mem.Services()
	ctx := context.Background()

	if err := svc.Tx.Create(ctx, TxWrite{Type: TypeExpense, Amount: dec("9.99"), TxTime: "2025-08-09T12:00:00Z", Note: "coffee"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	page, _ := svc.Tx.Page(ctx, 0, 10, TxQuery{Note: "coffee"})
	if page.Total != 1 {
		t.Fatalf("created record not found")
	}
	id := page.Items[0].ID

	if err := svc.Tx.Update(ctx, id, TxWrite{Type: TypeExpense, Amount: dec("11.00"), TxTime: "2025-08-09T12:00:00Z", Note: "coffee"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rec, err := svc.Tx.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !rec.Amount.Equal(dec("11.00")) {
		t.Fatalf("amount = %s after update", rec.Amount)
	}

	if err := svc.Tx.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Tx.Get(ctx, id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryFailSwitch(t *testing.T) {
	mem := seeded()
	mem.Fail = true
	svc := mem.Services()
	if _, err := svc.Tx.Page(context.Background(), 0, 10, TxQuery{}); err == nil {
		t.Fatalf("expected failure")
	}
	if _, err := svc.Cats.List(context.Background()); err == nil {
		t.Fatalf("expected failure")
	}
}
