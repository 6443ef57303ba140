package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/store"
)

func addCategories(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "list transaction categories",
		Example: `
ledger categories
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			svc := api.NewServices(cfg.BaseURL(), log.Default())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cats, err := svc.Cats.List(ctx)
			if err != nil {
				return oo.HandleError(err)
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			for _, c := range cats {
				if io.ShowID {
					tbl.AddRow(c.ID, ledger.IconFor(c.Name), c.Name)
				} else {
					tbl.AddRow(ledger.IconFor(c.Name), c.Name)
				}
			}
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
