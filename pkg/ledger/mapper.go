package ledger

import (
	"strconv"
	"time"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/timeutil"
)

// MapCommitted normalizes a committed record into the unified entity. The
// boolean is false when the record's timestamp does not parse; such records
// are dropped rather than shown with a fabricated date.
func MapCommitted(rec api.TxRecord, dir *Directory) (Transaction, bool) {
	ts, err := time.Parse(time.RFC3339, rec.TxTime)
	if err != nil {
		return Transaction{}, false
	}
	name := dir.Name(rec.CategoryID)
	return Transaction{
		ID:         strconv.FormatInt(rec.ID, 10),
		Kind:       KindFromCode(rec.Type),
		Amount:     rec.Amount,
		CategoryID: rec.CategoryID,
		Category:   name,
		Date:       ts,
		Note:       rec.Note,
		Planned:    false,
		Icon:       IconFor(name),
		// page listings are summary-level; the editor fetches by id
		HasFull: false,
	}, true
}

// MapPlanned normalizes a planned record. Planned items display their title as
// the category label and carry no note.
func MapPlanned(rec api.PlannedRecord, _ *Directory) (Transaction, bool) {
	due, err := timeutil.ParseDay(rec.DueDate)
	if err != nil {
		return Transaction{}, false
	}
	return Transaction{
		ID:         PlannedPrefix + strconv.FormatInt(rec.ID, 10),
		Kind:       KindFromCode(rec.Type),
		Amount:     rec.Amount,
		CategoryID: rec.CategoryID,
		Category:   rec.Title,
		Date:       due,
		Note:       "",
		Planned:    true,
		Icon:       IconFor(rec.Title),
		HasFull:    true,
	}, true
}

// MapCommittedAll maps a batch, dropping unmappable records.
func MapCommittedAll(recs []api.TxRecord, dir *Directory) []Transaction {
	out := make([]Transaction, 0, len(recs))
	for _, r := range recs {
		if t, ok := MapCommitted(r, dir); ok {
			out = append(out, t)
		}
	}
	return out
}

// MapPlannedAll maps a batch, dropping unmappable records.
func MapPlannedAll(recs []api.PlannedRecord, dir *Directory) []Transaction {
	out := make([]Transaction, 0, len(recs))
	for _, r := range recs {
		if t, ok := MapPlanned(r, dir); ok {
			out = append(out, t)
		}
	}
	return out
}
