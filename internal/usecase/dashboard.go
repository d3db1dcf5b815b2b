package usecase

import (
	"slices"
	"sync"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/stats"
)

// Dashboard computes the six statistics over a repository's full collection.
//
// Aggregations that do not depend on the clock are cached per repository revision.
// Deadline buckets are recomputed on every call.
type Dashboard struct {
	cfg settings

	mu       sync.Mutex
	revision string
	cached   *domain.Dashboard
}

func NewDashboard(opts ...Option) *Dashboard {
	return &Dashboard{cfg: newSettings(opts)}
}

func (uc *Dashboard) Execute(repo *domain.Repository) domain.Dashboard {
	now := uc.cfg.now()
	records := repo.Records()
	rev := repo.Revision()

	uc.mu.Lock()
	if uc.cached == nil || uc.revision != rev {
		d := domain.Dashboard{
			Total:             len(records),
			Revision:          rev,
			Categories:        stats.CategoryDistribution(records),
			CareerStages:      stats.CareerStageDistribution(records),
			FundingRange:      stats.FundingRange(records),
			TopOrganizations:  stats.TopOrganizations(records, uc.cfg.topOrg),
			CompetitionLevels: stats.Competition(records),
		}
		uc.cached = &d
		uc.revision = rev
	}
	out := *uc.cached
	uc.mu.Unlock()

	out.Categories = slices.Clone(out.Categories)
	out.CareerStages = slices.Clone(out.CareerStages)
	out.TopOrganizations = slices.Clone(out.TopOrganizations)

	out.GeneratedAt = now
	out.Deadlines = stats.DeadlineBuckets(records, now)
	return out
}
