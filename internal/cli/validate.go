package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
)

func validateCmd() *cobra.Command {
	var sf sourceFlags
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check the data file for missing required fields and unreadable values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(sf)
			if err != nil {
				return err
			}
			defer setupLogger(ws, sf.debug)()

			rep, err := usecase.NewValidateDataset(ws.source).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if err := printValidation(cmd.OutOrStdout(), rep, format); err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("validation failed (%d invalid record(s))", len(rep.Invalid))
			}
			return nil
		},
	}

	bindSourceFlags(c, &sf)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
