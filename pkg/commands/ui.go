package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/api"
	"tableflip.dev/ledger/pkg/geo"
	"tableflip.dev/ledger/pkg/log"
	"tableflip.dev/ledger/pkg/store"
	ledgerui "tableflip.dev/ledger/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	demo := false
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
ledger ui
ledger ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			logger := log.Default()

			var svc api.Services
			if demo {
				svc = api.DemoMemory().Services()
			} else {
				svc = api.NewServices(cfg.BaseURL(), logger)
			}

			var locator geo.Locator
			if cfg.UseGeo() && cfg.GeoURL() != "" {
				locator = &geo.HTTPLocator{URL: cfg.GeoURL()}
			}

			return ledgerui.Run(svc, ledgerui.Options{
				PageSize: cfg.PageSize(),
				Cache:    store.OpenCache(cfg.CachePath()),
				Locator:  locator,
				Logger:   logger,
			})
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Run against built-in sample data instead of the API.")

	topLevel.AddCommand(cmd)
}
