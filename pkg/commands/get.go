package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/filter"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list committed transactions",
		Long:  "List one page of committed transactions, grouped by day, most recent first.",
		Example: `
ledger get
ledger get --search groceries --type expense
ledger get --from 2025-08-01 --to 2025-08-31 --page 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if fo.Size <= 0 {
				fo.Size = cfg.PageSize()
			}
			state, err := fo.State(false)
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

			page, err := svc.Tx.Page(ctx, fo.Page, fo.Size, state.TxQuery(dir))
			if err != nil {
				return oo.HandleError(err)
			}

			items := ledger.MapCommittedAll(page.Items, dir)
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Title("Transactions")
			pp.Groups(ledger.GroupByDay(items, false))
			pp.Summary(fo.Page, filter.TotalPages(page.Total, fo.Size), page.Total)
			return nil
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddPageSizeArg(cmd, fo, 0)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
