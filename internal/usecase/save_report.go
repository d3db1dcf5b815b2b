package usecase

import (
	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

// SaveReport persists a dashboard snapshot together with where its data came from.
type SaveReport struct {
	store ports.ReportStore
	cfg   settings
}

func NewSaveReport(store ports.ReportStore, opts ...Option) *SaveReport {
	return &SaveReport{store: store, cfg: newSettings(opts)}
}

func (uc *SaveReport) Execute(d domain.Dashboard, meta domain.RepositoryMeta) (string, error) {
	return uc.store.SaveReport(domain.Report{
		Source:    meta,
		Dashboard: d,
		SavedAt:   uc.cfg.now(),
	})
}
