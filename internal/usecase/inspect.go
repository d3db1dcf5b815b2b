package usecase

import (
	"fmt"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

type Inspect struct{}

func NewInspect() *Inspect { return &Inspect{} }

func (uc *Inspect) Execute(repo *domain.Repository, id string) (domain.FundingRecord, error) {
	rec, ok := repo.Get(id)
	if !ok {
		return domain.FundingRecord{}, &domain.OpError{
			Op:   "usecase.inspect",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: record %q", domain.ErrNotFound, id),
		}
	}
	return rec, nil
}
