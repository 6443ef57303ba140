package ledger

import (
	"strings"
	"sync"

	"tableflip.dev/ledger/pkg/api"
)

// FallbackCategory labels committed transactions whose category id cannot be
// resolved.
const FallbackCategory = "General"

// Directory is the session cache of the category list. It resolves ids to
// names and disambiguates free-text search into category filters.
type Directory struct {
	mu   sync.RWMutex
	cats []api.Category
}

// NewDirectory builds a directory over the given categories.
func NewDirectory(cats []api.Category) *Directory {
	d := &Directory{}
	d.Replace(cats)
	return d
}

// Replace swaps in a freshly fetched category list.
func (d *Directory) Replace(cats []api.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cats = append([]api.Category(nil), cats...)
}

// All returns a copy of the cached categories.
func (d *Directory) All() []api.Category {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]api.Category(nil), d.cats...)
}

// Name resolves a category id, falling back to FallbackCategory.
func (d *Directory) Name(id *int64) string {
	if id == nil {
		return FallbackCategory
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.cats {
		if c.ID == *id {
			return c.Name
		}
	}
	return FallbackCategory
}

// Match finds the first category whose name contains text, case-insensitively.
// A hit means free-text search should become a category filter.
func (d *Directory) Match(text string) (api.Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return api.Category{}, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.cats {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, true
		}
	}
	return api.Category{}, false
}
