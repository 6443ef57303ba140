// Package events defines the typed messages flowing through the transaction
// view program. Fetch results carry the fence token of the request that
// produced them; the app applies a result only when its token is still the
// channel's newest.
package events

import (
	"fmt"
	"time"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/ledger"
)

// PageLoadedMsg delivers one page of mapped entities from the active source.
// A failed fetch arrives as an empty page with Err set; the list degrades to
// "no results" instead of blocking.
type PageLoadedMsg struct {
	Token uint64
	Page  int
	Items []ledger.Transaction
	Total int
	Err   error
}

// Describe renders the message for logs.
func (m PageLoadedMsg) Describe() string {
	return fmt.Sprintf("token:%d page:%d items:%d total:%d err:%v", m.Token, m.Page, len(m.Items), m.Total, m.Err)
}

// CalendarLoadedMsg delivers the full month aggregate of planned items.
type CalendarLoadedMsg struct {
	Token uint64
	Month time.Time
	Items []ledger.Transaction
	Err   error
}

// Describe renders the message for logs.
func (m CalendarLoadedMsg) Describe() string {
	return fmt.Sprintf("token:%d month:%s items:%d err:%v", m.Token, m.Month.Format("2006-01"), len(m.Items), m.Err)
}

// CategoriesLoadedMsg delivers the category directory.
type CategoriesLoadedMsg struct {
	Cats []api.Category
	Err  error
}

// Describe renders the message for logs.
func (m CategoriesLoadedMsg) Describe() string {
	return fmt.Sprintf("categories:%d err:%v", len(m.Cats), m.Err)
}

// DetailLoadedMsg delivers the full committed record fetched before a
// deferred edit can open.
type DetailLoadedMsg struct {
	Rec api.TxRecord
	Err error
}

// Describe renders the message for logs.
func (m DetailLoadedMsg) Describe() string {
	return fmt.Sprintf("id:%d err:%v", m.Rec.ID, m.Err)
}

// SaveDoneMsg reports the outcome of a save or delete. On success the modal
// closes and the current page is refetched; on failure the modal stays open.
type SaveDoneMsg struct {
	Message string
	Err     error
}

// Describe renders the message for logs.
func (m SaveDoneMsg) Describe() string {
	return fmt.Sprintf("msg:%q err:%v", m.Message, m.Err)
}
