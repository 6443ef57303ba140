package filter

import (
	"strings"
	"time"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/timeutil"
)

// TxQuery translates the state into the committed-store query shape. Date
// bounds expand to full UTC days; free text becomes a category filter when it
// matches a known category name, otherwise a note search. Only one
// interpretation is ever sent.
func (s State) TxQuery(dir *ledger.Directory) api.TxQuery {
	q := api.TxQuery{Min: s.Min, Max: s.Max}

	switch strings.ToLower(s.Type) {
	case string(ledger.Expense):
		q.Type = api.TypeExpense
	case string(ledger.Income):
		q.Type = api.TypeIncome
	}

	if from, ok := timeutil.DayStart(s.From); ok {
		q.From = from.Format(time.RFC3339)
	}
	if to, ok := timeutil.DayEnd(s.To); ok {
		q.To = to.UTC().Format("2006-01-02T15:04:05.999Z07:00")
	}

	if text := strings.TrimSpace(s.Search); text != "" {
		if cat, ok := dir.Match(text); ok {
			q.Category = cat.Name
		} else {
			q.Note = text
		}
	}
	return q
}

// PlannedQuery translates the state into the planned-store query shape. Date
// bounds map straight onto due-date bounds; free text becomes a category or
// title filter under the same disambiguation rule.
func (s State) PlannedQuery(dir *ledger.Directory) api.PlannedQuery {
	q := api.PlannedQuery{Min: s.Min, Max: s.Max, From: s.From, To: s.To}

	switch strings.ToLower(s.Type) {
	case string(ledger.Expense):
		q.Type = api.TypeExpense
	case string(ledger.Income):
		q.Type = api.TypeIncome
	}

	if text := strings.TrimSpace(s.Search); text != "" {
		if cat, ok := dir.Match(text); ok {
			q.Category = cat.Name
		} else {
			q.Title = text
		}
	}
	return q
}

// TotalPages derives the page count from the store's reported total:
// ceil(total/size), floor of 1.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
