package cli

import (
	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/infra/logger"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
)

func showCmd() *cobra.Command {
	var sf sourceFlags
	var format string

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one funding opportunity in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(sf)
			if err != nil {
				return err
			}
			defer setupLogger(ws, sf.debug)()

			loaded, err := usecase.NewLoadRepository(ws.source, usecase.WithLogger(logger.With("cli"))).Execute(cmd.Context())
			if err != nil {
				return err
			}

			rec, err := usecase.NewInspect().Execute(loaded.Repository, args[0])
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), rec, format)
		},
	}

	bindSourceFlags(c, &sf)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
