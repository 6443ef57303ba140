package ledger

import (
	"testing"
	"time"
)

func onDay(day string, planned bool, id string) Transaction {
	d, err := time.Parse("2006-01-02T15:04:05Z07:00", day)
	if err != nil {
		panic(err)
	}
	return Transaction{ID: id, Date: d, Planned: planned}
}

func TestGroupByDayDescending(t *testing.T) {
	items := []Transaction{
		onDay("2025-08-03T09:00:00Z", false, "a"),
		onDay("2025-08-20T12:00:00Z", false, "b"),
		onDay("2025-08-03T18:00:00Z", false, "c"),
	}
	groups := GroupByDay(items, false)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Day.Day() != 20 {
		t.Fatalf("most recent day first, got %s", groups[0].Day)
	}
	if len(groups[1].Items) != 2 {
		t.Fatalf("expected both Aug 3 entries in one group")
	}
	// source order within a group is preserved
	if groups[1].Items[0].ID != "a" || groups[1].Items[1].ID != "c" {
		t.Fatalf("group order changed: %v", groups[1].Items)
	}
}

func TestGroupByDayFiltersPlannedFlag(t *testing.T) {
	items := []Transaction{
		onDay("2025-08-03T09:00:00Z", false, "committed"),
		onDay("2025-08-03T09:00:00Z", true, "planned"),
	}
	groups := GroupByDay(items, false)
	if len(groups) != 1 || len(groups[0].Items) != 1 || groups[0].Items[0].ID != "committed" {
		t.Fatalf("planned records leaked into a committed page: %v", groups)
	}
	groups = GroupByDay(items, true)
	if len(groups) != 1 || groups[0].Items[0].ID != "planned" {
		t.Fatalf("committed records leaked into a planned page: %v", groups)
	}
}

func TestDirectoryMatch(t *testing.T) {
	dir := testDirectory()
	if c, ok := dir.Match("gro"); !ok || c.Name != "Groceries" {
		t.Fatalf("substring match failed: %v %v", c, ok)
	}
	if c, ok := dir.Match("SALARY"); !ok || c.Name != "Salary" {
		t.Fatalf("match should ignore case: %v %v", c, ok)
	}
	if _, ok := dir.Match("fuel"); ok {
		t.Fatalf("no category should match")
	}
	if _, ok := dir.Match("   "); ok {
		t.Fatalf("blank text never matches")
	}
}
