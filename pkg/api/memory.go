package api

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory implements all three services against in-process state. Tests use it
// as the remote-store double and `ledger ui --demo` runs against it.
type Memory struct {
	mu    sync.Mutex
	tx    []TxRecord
	plans []PlannedRecord
	cats  []Category

	nextTx   int64
	nextPlan int64

	// Fail switches every call into the failure path, for tests exercising
	// the degrade-to-empty behavior.
	Fail bool
}

// NewMemory creates an empty in-memory store seeded with the given categories.
func NewMemory(cats []Category) *Memory {
	return &Memory{cats: append([]Category(nil), cats...), nextTx: 1, nextPlan: 1}
}

// Services exposes the memory store through the Services bundle.
func (m *Memory) Services() Services {
	return Services{Tx: memTx{m}, Plan: memPlan{m}, Cats: memCats{m}}
}

// SeedTx inserts committed transactions, assigning ids.
func (m *Memory) SeedTx(recs ...TxRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range recs {
		if r.ID == 0 {
			r.ID = m.nextTx
		}
		if r.ID >= m.nextTx {
			m.nextTx = r.ID + 1
		}
		m.tx = append(m.tx, r)
	}
}

// SeedPlans inserts planned items, assigning ids.
func (m *Memory) SeedPlans(recs ...PlannedRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range recs {
		if r.ID == 0 {
			r.ID = m.nextPlan
		}
		if r.ID >= m.nextPlan {
			m.nextPlan = r.ID + 1
		}
		m.plans = append(m.plans, r)
	}
}

func (m *Memory) catName(id *int64) string {
	if id == nil {
		return ""
	}
	for _, c := range m.cats {
		if c.ID == *id {
			return c.Name
		}
	}
	return ""
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (m *Memory) matchTx(r TxRecord, q TxQuery) bool {
	if q.Type != "" && r.Type != q.Type {
		return false
	}
	if q.Min != nil && r.Amount.LessThan(*q.Min) {
		return false
	}
	if q.Max != nil && r.Amount.GreaterThan(*q.Max) {
		return false
	}
	if q.From != "" || q.To != "" {
		ts, err := time.Parse(time.RFC3339, r.TxTime)
		if err != nil {
			return false
		}
		if q.From != "" {
			from, err := time.Parse(time.RFC3339, q.From)
			if err != nil || ts.Before(from) {
				return false
			}
		}
		if q.To != "" {
			to, err := time.Parse(time.RFC3339, q.To)
			if err != nil || ts.After(to) {
				return false
			}
		}
	}
	if q.Note != "" && !containsFold(r.Note, q.Note) {
		return false
	}
	if q.Category != "" && !containsFold(m.catName(r.CategoryID), q.Category) {
		return false
	}
	return true
}

func (m *Memory) matchPlan(r PlannedRecord, q PlannedQuery) bool {
	if q.Title != "" && !containsFold(r.Title, q.Title) {
		return false
	}
	if q.From != "" && r.DueDate < q.From {
		return false
	}
	if q.To != "" && r.DueDate > q.To {
		return false
	}
	if q.Type != "" && r.Type != q.Type {
		return false
	}
	if q.Min != nil && r.Amount.LessThan(*q.Min) {
		return false
	}
	if q.Max != nil && r.Amount.GreaterThan(*q.Max) {
		return false
	}
	if q.Category != "" && !containsFold(m.catName(r.CategoryID), q.Category) {
		return false
	}
	return true
}

func pageSlice[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	start := page * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}

type memTx struct{ m *Memory }

func (s memTx) Page(ctx context.Context, page, size int, q TxQuery) (TxPage, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return TxPage{}, ErrUnavailable
	}
	var matched []TxRecord
	for _, r := range s.m.tx {
		if s.m.matchTx(r, q) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TxTime > matched[j].TxTime
	})
	return TxPage{Items: pageSlice(matched, page, size), Total: len(matched)}, nil
}

func (s memTx) Get(ctx context.Context, id int64) (TxRecord, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return TxRecord{}, ErrUnavailable
	}
	for _, r := range s.m.tx {
		if r.ID == id {
			return r, nil
		}
	}
	return TxRecord{}, ErrNotFound
}

func (s memTx) Create(ctx context.Context, w TxWrite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	s.m.tx = append(s.m.tx, TxRecord{
		ID: s.m.nextTx, Type: w.Type, Amount: w.Amount, CategoryID: w.CategoryID,
		TxTime: w.TxTime, Note: w.Note, Latitude: w.Latitude, Longitude: w.Longitude,
	})
	s.m.nextTx++
	return nil
}

func (s memTx) Update(ctx context.Context, id int64, w TxWrite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	for i, r := range s.m.tx {
		if r.ID == id {
			s.m.tx[i] = TxRecord{
				ID: id, Type: w.Type, Amount: w.Amount, CategoryID: w.CategoryID,
				TxTime: w.TxTime, Note: w.Note, Latitude: w.Latitude, Longitude: w.Longitude,
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s memTx) Delete(ctx context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	for i, r := range s.m.tx {
		if r.ID == id {
			s.m.tx = append(s.m.tx[:i], s.m.tx[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memPlan struct{ m *Memory }

func (s memPlan) matched(q PlannedQuery) []PlannedRecord {
	var matched []PlannedRecord
	for _, r := range s.m.plans {
		if s.m.matchPlan(r, q) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DueDate > matched[j].DueDate
	})
	return matched
}

func (s memPlan) Page(ctx context.Context, page, size int, q PlannedQuery) (PlannedPage, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return PlannedPage{}, ErrUnavailable
	}
	matched := s.matched(q)
	return PlannedPage{Items: pageSlice(matched, page, size), Total: len(matched)}, nil
}

func (s memPlan) List(ctx context.Context, q PlannedQuery) ([]PlannedRecord, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return nil, ErrUnavailable
	}
	return s.matched(q), nil
}

func (s memPlan) Create(ctx context.Context, w PlannedWrite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	s.m.plans = append(s.m.plans, PlannedRecord{
		ID: s.m.nextPlan, Type: w.Type, Amount: w.Amount, CategoryID: w.CategoryID,
		Title: w.Title, DueDate: w.DueDate,
	})
	s.m.nextPlan++
	return nil
}

func (s memPlan) Update(ctx context.Context, id int64, w PlannedWrite) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	for i, r := range s.m.plans {
		if r.ID == id {
			s.m.plans[i] = PlannedRecord{
				ID: id, Type: w.Type, Amount: w.Amount, CategoryID: w.CategoryID,
				Title: w.Title, DueDate: w.DueDate,
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s memPlan) Delete(ctx context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return ErrUnavailable
	}
	for i, r := range s.m.plans {
		if r.ID == id {
			s.m.plans = append(s.m.plans[:i], s.m.plans[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memCats struct{ m *Memory }

func (s memCats) List(ctx context.Context) ([]Category, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Fail {
		return nil, ErrUnavailable
	}
	return append([]Category(nil), s.m.cats...), nil
}
