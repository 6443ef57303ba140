package store

import (
	"testing"

	"tableflip.dev/ledger/pkg/api"
)

func TestCacheRoundTrip(t *testing.T) {
	c := OpenCache(t.TempDir())

	cats, err := c.Categories()
	if err != nil {
		t.Fatalf("empty cache read: %v", err)
	}
	if cats != nil {
		t.Fatalf("expected no cached categories, got %v", cats)
	}

	want := []api.Category{{ID: 1, Name: "Groceries"}, {ID: 2, Name: "Salary"}}
	if err := c.SaveCategories(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := c.Categories()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Groceries" || got[1].ID != 2 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}
