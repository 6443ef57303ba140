package session

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/ledger/pkg/api"
)

// Validate checks the form before a save is attempted. An invalid form never
// reaches the store.
func (f *Form) Validate() error {
	if f.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidForm)
	}
	if f.Planned {
		if strings.TrimSpace(f.Title) == "" {
			return fmt.Errorf("%w: planned items need a title", ErrInvalidForm)
		}
		if _, err := time.Parse(PlanDateLayout, f.Date); err != nil {
			return fmt.Errorf("%w: due date %q", ErrInvalidForm, f.Date)
		}
		return nil
	}
	if _, err := time.Parse(TxDateLayout, f.Date); err != nil {
		return fmt.Errorf("%w: date %q", ErrInvalidForm, f.Date)
	}
	return nil
}

// TxWrite builds the committed-store payload from the form.
func (f *Form) TxWrite() (api.TxWrite, error) {
	if err := f.Validate(); err != nil {
		return api.TxWrite{}, err
	}
	ts, err := time.Parse(TxDateLayout, f.Date)
	if err != nil {
		return api.TxWrite{}, fmt.Errorf("%w: date %q", ErrInvalidForm, f.Date)
	}
	w := api.TxWrite{
		Type:       f.Kind.Code(),
		Amount:     f.Amount,
		CategoryID: f.CategoryID,
		TxTime:     ts.UTC().Format(time.RFC3339),
		Note:       f.Note,
	}
	if f.UseGeo {
		w.Latitude = f.Latitude
		w.Longitude = f.Longitude
	}
	return w, nil
}

// PlannedWrite builds the planned-store payload from the form.
func (f *Form) PlannedWrite() (api.PlannedWrite, error) {
	if err := f.Validate(); err != nil {
		return api.PlannedWrite{}, err
	}
	return api.PlannedWrite{
		Type:       f.Kind.Code(),
		Amount:     f.Amount,
		CategoryID: f.CategoryID,
		Title:      strings.TrimSpace(f.Title),
		DueDate:    f.Date,
	}, nil
}
