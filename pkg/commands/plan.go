package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/filter"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/store"
	"tableflip.dev/ledger/pkg/timeutil"
)

func addPlan(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	month := ""

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "list planned transactions",
		Long: "List one page of planned transactions, or with --month every item " +
			"due inside a month.",
		Example: `
ledger plan
ledger plan --search rent
ledger plan --month 2025-08
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if fo.Size <= 0 {
				fo.Size = cfg.PageSize()
			}
			state, err := fo.State(true)
			if err != nil {
				return oo.HandleError(err)
			}

			logger := log.Default()
			svc := api.NewServices(cfg.BaseURL(), logger)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cats, err := svc.Cats.List(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			dir := ledger.NewDirectory(cats)
			pp := printers.PrettyPrint{ShowID: io.ShowID}

			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return oo.HandleError(fmt.Errorf("invalid month %q, want YYYY-MM", month))
				}
				first, last := timeutil.MonthRange(m)
				recs, err := svc.Plan.List(ctx, api.PlannedQuery{
					From: first.Format(timeutil.DayLayout),
					To:   last.Format(timeutil.DayLayout),
				})
				if err != nil {
					return oo.HandleError(err)
				}
				items := ledger.MapPlannedAll(recs, dir)
				pp.Title("Planned · " + m.Format("January 2006"))
				pp.Groups(ledger.GroupByDay(items, true))
				return nil
			}

			page, err := svc.Plan.Page(ctx, fo.Page, fo.Size, state.PlannedQuery(dir))
			if err != nil {
				return oo.HandleError(err)
			}
			items := ledger.MapPlannedAll(page.Items, dir)
			pp.Title("Planned")
			pp.Groups(ledger.GroupByDay(items, true))
			pp.Summary(fo.Page, filter.TotalPages(page.Total, fo.Size), page.Total)
			return nil
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddPageSizeArg(cmd, fo, 0)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVarP(&month, "month", "m", "", "Show every item due in a month, YYYY-MM.")

	topLevel.AddCommand(cmd)
}
