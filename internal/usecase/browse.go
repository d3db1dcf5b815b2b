package usecase

import (
	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/filter"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/sorting"
)

// Browse derives the visible view: filter first, then sort.
type Browse struct{}

func NewBrowse() *Browse { return &Browse{} }

func (uc *Browse) Execute(repo *domain.Repository, q domain.Query, key domain.SortKey) []domain.FundingRecord {
	return sorting.Sort(filter.Apply(repo.Records(), q), key)
}

// Facets lists the values the category and career stage pickers offer.
func (uc *Browse) Facets(repo *domain.Repository) (categories, careerStages []string) {
	records := repo.Records()
	return filter.Categories(records), filter.CareerStages(records)
}
