package cli

import (
	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/logger"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
)

func listCmd() *cobra.Command {
	var sf sourceFlags
	var q domain.Query
	var sortKey string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List funding opportunities matching a search and filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			key, err := parseSortFlag(sortKey)
			if err != nil {
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

			view := usecase.NewBrowse().Execute(loaded.Repository, q, key)
			return printList(cmd.OutOrStdout(), view, loaded.Repository.Len(), format)
		},
	}

	bindSourceFlags(c, &sf)
	c.Flags().StringVarP(&q.SearchTerm, "search", "s", "", "Search title, organization, description and tags")
	c.Flags().StringVarP(&q.Category, "category", "c", "", "Only this category (exact match)")
	c.Flags().StringVar(&q.CareerStage, "career-stage", "", "Only this career stage (exact match)")
	c.Flags().StringVar(&sortKey, "sort", "default", "Sort order: "+sortKeyList())
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
