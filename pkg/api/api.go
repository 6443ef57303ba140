// Package api defines the remote ledger services the client consumes:
// the committed-transaction store, the planned-transaction store, and the
// category directory.
package api

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("api: record not found")
	// ErrUnavailable is returned when a service cannot be reached.
	ErrUnavailable = errors.New("api: service unavailable")
)

// Type codes used on the wire for both stores.
const (
	TypeExpense = "E"
	TypeIncome  = "I"
)

// Category is a directory entry used for id→name resolution.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TxRecord is a committed transaction as the store reports it. TxTime is the
// raw wire timestamp; parsing happens at the mapping boundary so that
// malformed records can be dropped instead of shown.
type TxRecord struct {
	ID         int64           `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *int64          `json:"categoryId"`
	TxTime     string          `json:"txTime"`
	Note       string          `json:"note"`
	Latitude   *float64        `json:"latitude,omitempty"`
	Longitude  *float64        `json:"longitude,omitempty"`
}

// PlannedRecord is a scheduled/recurring item. DueDate is a plain
// year-month-day string.
type PlannedRecord struct {
	ID         int64           `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *int64          `json:"categoryId"`
	Title      string          `json:"title"`
	DueDate    string          `json:"dueDate"`
}

// TxQuery narrows a committed-transaction page request. Zero values mean
// "no constraint". From/To are RFC 3339 instants.
type TxQuery struct {
	Type     string
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	From     string
	To       string
	Note     string
	Category string
}

// PlannedQuery narrows a planned-item request. From/To are year-month-day
// due-date bounds, inclusive.
type PlannedQuery struct {
	Title    string
	From     string
	To       string
	Type     string
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	Category string
}

// TxPage is one page of committed transactions plus the store's total count
// for the query.
type TxPage struct {
	Items []TxRecord `json:"items"`
	Total int        `json:"total"`
}

// PlannedPage is one page of planned items plus the total count.
type PlannedPage struct {
	Items []PlannedRecord `json:"items"`
	Total int             `json:"total"`
}

// TxWrite is the payload for creating or updating a committed transaction.
type TxWrite struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *int64          `json:"categoryId"`
	TxTime     string          `json:"txTime"`
	Note       string          `json:"note"`
	Latitude   *float64        `json:"latitude,omitempty"`
	Longitude  *float64        `json:"longitude,omitempty"`
}

// PlannedWrite is the payload for creating or updating a planned item.
type PlannedWrite struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *int64          `json:"categoryId"`
	Title      string          `json:"title"`
	DueDate    string          `json:"dueDate"`
}

// Transactions is the committed-transaction store.
type Transactions interface {
	Page(ctx context.Context, page, size int, q TxQuery) (TxPage, error)
	Get(ctx context.Context, id int64) (TxRecord, error)
	Create(ctx context.Context, w TxWrite) error
	Update(ctx context.Context, id int64, w TxWrite) error
	Delete(ctx context.Context, id int64) error
}

// Planned is the planned-transaction store. List is the unpaginated form used
// by the calendar, which must see every due item in a range.
type Planned interface {
	Page(ctx context.Context, page, size int, q PlannedQuery) (PlannedPage, error)
	List(ctx context.Context, q PlannedQuery) ([]PlannedRecord, error)
	Create(ctx context.Context, w PlannedWrite) error
	Update(ctx context.Context, id int64, w PlannedWrite) error
	Delete(ctx context.Context, id int64) error
}

// Categories is the category directory. The full list is small and cached for
// the session.
type Categories interface {
	List(ctx context.Context) ([]Category, error)
}

// Services bundles the three remote collaborators behind one handle.
type Services struct {
	Tx   Transactions
	Plan Planned
	Cats Categories
}
