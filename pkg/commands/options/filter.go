// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/filter"
	"tableflip.dev/ledger/pkg/timeutil"
)

// FilterOptions captures the listing filters shared by get and plan.
type FilterOptions struct {
	Search string
	Type   string
	From   string
	To     string
	Min    string
	Max    string
	Page   int
	Size   int
}

// AddFilterArgs wires the filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Substring match against note, title, or category name.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Restrict to 'expense' or 'income'.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Lower date bound, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Upper date bound, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.Min, "min", "",
		"Minimum amount.")
	cmd.Flags().StringVar(&o.Max, "max", "",
		"Maximum amount.")
	cmd.Flags().IntVarP(&o.Page, "page", "p", 0,
		"Page to fetch, starting at 0.")
}

// AddPageSizeArg registers the page size flag with a default from config.
func AddPageSizeArg(cmd *cobra.Command, o *FilterOptions, def int) {
	cmd.Flags().IntVar(&o.Size, "size", def,
		"Records per page.")
}

// State validates the flags and converts them into a filter state.
func (o *FilterOptions) State(recurring bool) (filter.State, error) {
	s := filter.Defaults()
	s.Search = o.Search
	s.Recurring = recurring

	switch o.Type {
	case "", "expense", "income":
		s.Type = o.Type
	default:
		return s, fmt.Errorf("unknown type %q, want expense or income", o.Type)
	}

	for _, day := range []string{o.From, o.To} {
		if day == "" {
			continue
		}
		if _, err := timeutil.ParseDay(day); err != nil {
			return s, fmt.Errorf("invalid date %q: %w", day, err)
		}
	}
	s.From = o.From
	s.To = o.To

	if o.Min != "" {
		d, err := decimal.NewFromString(o.Min)
		if err != nil {
			return s, fmt.Errorf("invalid minimum %q", o.Min)
		}
		s.Min = &d
	}
	if o.Max != "" {
		d, err := decimal.NewFromString(o.Max)
		if err != nil {
			return s, fmt.Errorf("invalid maximum %q", o.Max)
		}
		s.Max = &d
	}

	return s, nil
}
