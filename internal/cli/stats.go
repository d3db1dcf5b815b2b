package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/infra/logger"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
)

func statsCmd() *cobra.Command {
	var sf sourceFlags
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard statistics for the full collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(sf)
			if err != nil {
				return err
			}
			defer setupLogger(ws, sf.debug)()
			log := logger.With("cli")

			loaded, err := usecase.NewLoadRepository(ws.source, usecase.WithLogger(log)).Execute(cmd.Context())
			if err != nil {
				return err
			}

			d := usecase.NewDashboard(usecase.WithTopOrganizations(ws.cfg.UI.TopOrganizations)).Execute(loaded.Repository)
			if err := printDashboard(cmd.OutOrStdout(), d, format); err != nil {
				return err
			}

			if !save {
				return nil
			}
			id, err := usecase.NewSaveReport(ws.store).Execute(d, loaded.Repository.Meta())
			if err != nil {
				return err
			}
			log.Info("report.saved", "id", id)
			if format != "json" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nSaved report %s\n", id)
			}
			return nil
		},
	}

	bindSourceFlags(c, &sf)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save a dashboard snapshot under the reports directory")
	return c
}
