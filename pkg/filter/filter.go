// Package filter models the list view's filter state and its translation into
// store queries.
package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// State holds the current filters. Recurring selects which remote source is
// queried; exactly one source serves any page request.
type State struct {
	Search    string
	Type      string // "expense", "income", or ""
	From      string // year-month-day, "" for unbound
	To        string
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	Recurring bool
}

// Defaults returns the cleared filter state.
func Defaults() State {
	return State{}
}

// Reset restores defaults in place.
func (s *State) Reset() {
	*s = Defaults()
}

// Active reports whether any filter deviates from the defaults.
func (s State) Active() bool {
	return s.Search != "" || s.Type != "" || s.From != "" || s.To != "" ||
		s.Min != nil || s.Max != nil || s.Recurring
}

// fingerprintPayload fixes the field order and canonicalizes unset values so
// the fingerprint is a pure function of query semantics.
type fingerprintPayload struct {
	Search    string  `json:"q"`
	Type      string  `json:"type"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Min       *string `json:"min"`
	Max       *string `json:"max"`
	Recurring bool    `json:"recurring"`
}

func decString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// Fingerprint derives the equality key used to detect whether a state change
// requires a new fetch. Search text is trimmed and lower-cased so cosmetic
// edits do not count as changes.
func (s State) Fingerprint() string {
	payload := fingerprintPayload{
		Search:    strings.ToLower(strings.TrimSpace(s.Search)),
		Type:      s.Type,
		From:      s.From,
		To:        s.To,
		Min:       decString(s.Min),
		Max:       decString(s.Max),
		Recurring: s.Recurring,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		// struct of plain strings and bools; cannot fail
		return ""
	}
	return string(raw)
}

// QueryKey extends the fingerprint with the page index, identifying one exact
// page fetch.
func (s State) QueryKey(page int) string {
	return fmt.Sprintf("%d:%s", page, s.Fingerprint())
}
