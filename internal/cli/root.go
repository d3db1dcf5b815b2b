// Package cli wires the fundingcall commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/infra/logger"
	"github.com/pingfanfan/FundingCall-UK/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var sf sourceFlags

	cmd := &cobra.Command{
		Use:          "fundingcall",
		Short:        "FundingCall: browse UK research funding opportunities",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(sf)
			if err != nil {
				return err
			}

			defer setupLogger(ws, sf.debug)()

			deps := tui.Deps{
				Source:     ws.source,
				WatchPaths: ws.watchPaths(),
				Store:      ws.store,
				Config:     ws.cfg,
				Logger:     logger.With("tui"),
				Debug:      sf.debug,
			}

			return tui.Run(cmd.Context(), deps)
		},
	}

	bindSourceFlags(cmd, &sf)

	cmd.AddCommand(
		listCmd(),
		showCmd(),
		statsCmd(),
		validateCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
