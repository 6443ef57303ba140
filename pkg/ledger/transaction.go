// Package ledger holds the unified transaction entity shared by every view,
// plus the mapping from raw store records into it.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/api"
)

// Kind classifies a transaction. Amounts stay unsigned; Kind carries the
// direction.
type Kind string

const (
	Expense Kind = "expense"
	Income  Kind = "income"
)

// KindFromCode converts a store type code into a Kind.
func KindFromCode(code string) Kind {
	if code == api.TypeExpense {
		return Expense
	}
	return Income
}

// Code returns the two-letter store type code for the kind.
func (k Kind) Code() string {
	if k == Expense {
		return api.TypeExpense
	}
	return api.TypeIncome
}

// PlannedPrefix tags planned-item identities so they never collide with
// committed ids.
const PlannedPrefix = "p-"

// Transaction is the one shape both stores map into for display.
type Transaction struct {
	ID         string
	Kind       Kind
	Amount     decimal.Decimal
	CategoryID *int64
	Category   string
	Date       time.Time
	Note       string
	Planned    bool
	Icon       string
	HasFull    bool
}

// SourceID recovers the numeric store id, stripping the planned prefix.
func (t Transaction) SourceID() (int64, error) {
	raw := strings.TrimPrefix(t.ID, PlannedPrefix)
	return strconv.ParseInt(raw, 10, 64)
}
