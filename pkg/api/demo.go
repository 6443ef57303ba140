package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemoMemory returns a memory store seeded with a month of sample data,
// backing `ledger ui --demo`.
func DemoMemory() *Memory {
	m := NewMemory([]Category{
		{ID: 1, Name: "Groceries"},
		{ID: 2, Name: "Salary"},
		{ID: 3, Name: "Transport"},
		{ID: 4, Name: "Restaurant"},
		{ID: 5, Name: "Health"},
	})

	id := func(v int64) *int64 { return &v }
	now := time.Now().UTC()
	day := func(d int, hhmm string) string {
		t := time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC)
		return t.Format("2006-01-02") + "T" + hhmm + ":00Z"
	}
	due := func(d int) string {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}

	m.SeedTx(
		TxRecord{Type: TypeIncome, Amount: decimal.NewFromInt(2600), CategoryID: id(2), TxTime: day(1, "08:00"), Note: "salary"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(54.20), CategoryID: id(1), TxTime: day(2, "18:15"), Note: "weekly shop"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(12.00), CategoryID: id(3), TxTime: day(3, "09:05"), Note: "metro card"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(36.80), CategoryID: id(4), TxTime: day(5, "20:40"), Note: "dinner out"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(8.50), CategoryID: id(1), TxTime: day(8, "12:30"), Note: "lunch things"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(22.00), CategoryID: id(5), TxTime: day(9, "16:00"), Note: "pharmacy"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(61.35), CategoryID: id(1), TxTime: day(12, "17:50"), Note: "groceries"},
		TxRecord{Type: TypeIncome, Amount: decimal.NewFromFloat(120.00), CategoryID: nil, TxTime: day(13, "14:00"), Note: "sold old desk"},
		TxRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(15.99), CategoryID: nil, TxTime: day(14, "11:20"), Note: "streaming"},
	)

	m.SeedPlans(
		PlannedRecord{Type: TypeExpense, Amount: decimal.NewFromInt(800), Title: "Rent", DueDate: due(3)},
		PlannedRecord{Type: TypeExpense, Amount: decimal.NewFromInt(35), Title: "Internet", DueDate: due(20)},
		PlannedRecord{Type: TypeExpense, Amount: decimal.NewFromFloat(42.50), Title: "Electricity", DueDate: due(25)},
		PlannedRecord{Type: TypeIncome, Amount: decimal.NewFromInt(2600), CategoryID: id(2), Title: "Salary", DueDate: due(28)},
	)

	return m
}
