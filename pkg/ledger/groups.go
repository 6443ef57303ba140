package ledger

import (
	"sort"
	"time"

	"tableflip.dev/ledger/pkg/timeutil"
)

// DayGroup is one list section: all entities on a single calendar day.
type DayGroup struct {
	Day   time.Time
	Items []Transaction
}

// GroupByDay buckets entities by calendar day, most recent day first. Items
// keep their source order within a group. Only entities matching the planned
// flag are kept; the source already filtered, this enforces that committed and
// planned records never mix in one page view.
func GroupByDay(items []Transaction, planned bool) []DayGroup {
	buckets := make(map[time.Time][]Transaction)
	for _, t := range items {
		if t.Planned != planned {
			continue
		}
		day := timeutil.StartOfDay(t.Date)
		buckets[day] = append(buckets[day], t)
	}
	groups := make([]DayGroup, 0, len(buckets))
	for day, list := range buckets {
		groups = append(groups, DayGroup{Day: day, Items: list})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}
