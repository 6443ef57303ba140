package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ledger/pkg/api"
)

const categoriesKey = "categories"

// Cache persists the category directory between sessions so a cold start can
// resolve names and icons before the first directory fetch lands.
type Cache struct {
	d *diskv.Diskv
}

// OpenCache creates or opens the cache rooted at basePath.
func OpenCache(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}
}

// Categories returns the cached directory, or nil when none is cached yet.
func (c *Cache) Categories() ([]api.Category, error) {
	if !c.d.Has(categoriesKey) {
		return nil, nil
	}
	raw, err := c.d.Read(categoriesKey)
	if err != nil {
		return nil, fmt.Errorf("store: read category cache: %w", err)
	}
	var cats []api.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, fmt.Errorf("store: decode category cache: %w", err)
	}
	return cats, nil
}

// SaveCategories replaces the cached directory.
func (c *Cache) SaveCategories(cats []api.Category) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("store: encode category cache: %w", err)
	}
	if err := c.d.Write(categoriesKey, raw); err != nil {
		return fmt.Errorf("store: write category cache: %w", err)
	}
	return nil
}
