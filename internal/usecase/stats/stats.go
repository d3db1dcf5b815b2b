// Package stats computes the dashboard aggregations.
//
// Every function reads the full record collection and nothing else; none of them look at the
// active filter. Empty input always yields zero or explicitly unavailable results.
package stats

import (
	"math"
	"slices"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// DefaultTopOrganizations is the number of organizations TopOrganizations keeps.
const DefaultTopOrganizations = 5

const msPerDay = 24 * 60 * 60 * 1000

// Compute builds the full dashboard at instant now.
func Compute(records []domain.FundingRecord, now time.Time) domain.Dashboard {
	return domain.Dashboard{
		Total:             len(records),
		GeneratedAt:       now,
		Categories:        CategoryDistribution(records),
		CareerStages:      CareerStageDistribution(records),
		FundingRange:      FundingRange(records),
		Deadlines:         DeadlineBuckets(records, now),
		TopOrganizations:  TopOrganizations(records, DefaultTopOrganizations),
		CompetitionLevels: Competition(records),
	}
}

// CategoryDistribution counts records per category.
func CategoryDistribution(records []domain.FundingRecord) []domain.DistributionEntry {
	return distribution(records, func(r domain.FundingRecord) string {
		if r.Category == "" {
			return domain.DefaultCategory
		}
		return r.Category
	})
}

// CareerStageDistribution counts records per eligible career stage.
func CareerStageDistribution(records []domain.FundingRecord) []domain.DistributionEntry {
	return distribution(records, func(r domain.FundingRecord) string {
		if r.Eligibility.CareerStage == "" {
			return domain.DefaultCareerStage
		}
		return r.Eligibility.CareerStage
	})
}

func distribution(records []domain.FundingRecord, key func(domain.FundingRecord) string) []domain.DistributionEntry {
	counts := countByKey(records, key)
	total := len(records)

	out := make([]domain.DistributionEntry, 0, len(counts))
	for _, c := range counts {
		out = append(out, domain.DistributionEntry{
			Key:        c.Key,
			Count:      c.Count,
			Percentage: percentage(c.Count, total),
		})
	}
	return out
}

// countByKey groups in first-seen order, then orders by count descending.
// The stable sort keeps first-seen order among equal counts.
func countByKey(records []domain.FundingRecord, key func(domain.FundingRecord) string) []domain.CountEntry {
	pos := make(map[string]int)
	var out []domain.CountEntry

	for _, r := range records {
		k := key(r)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, domain.CountEntry{Key: k})
		}
		out[i].Count++
	}

	slices.SortStableFunc(out, func(a, b domain.CountEntry) int {
		return b.Count - a.Count
	})
	if out == nil {
		out = []domain.CountEntry{}
	}
	return out
}

// percentage is rounded to one decimal place.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(1000*float64(count)/float64(total)) / 10
}

// FundingRange summarizes records whose normalized lower bound is positive.
func FundingRange(records []domain.FundingRecord) domain.FundingRange {
	var (
		n              int
		lo, hi         float64
		sumMin, sumMax float64
	)

	for _, r := range records {
		a := r.Funding.Amount
		lower := a.MinValue()
		if lower <= 0 {
			continue
		}
		upper := a.MaxValue()

		if n == 0 || lower < lo {
			lo = lower
		}
		if n == 0 || upper > hi {
			hi = upper
		}
		sumMin += lower
		sumMax += upper
		n++
	}

	if n == 0 {
		return domain.FundingRange{Available: false}
	}
	return domain.FundingRange{
		Available: true,
		Count:     n,
		Min:       lo,
		Max:       hi,
		AvgMin:    sumMin / float64(n),
		AvgMax:    sumMax / float64(n),
	}
}

// DeadlineStatus places one record's deadline relative to now.
// The day difference is rounded up, so a deadline later today counts as 1 day away and
// one that passed earlier today as 0.
func DeadlineStatus(r domain.FundingRecord, now time.Time) domain.DeadlineStatus {
	d := r.Application.Deadline
	if d == nil {
		return domain.DeadlineNone
	}

	diffMS := d.UnixMilli() - now.UnixMilli()
	diffDays := int64(math.Ceil(float64(diffMS) / msPerDay))

	switch {
	case diffDays < 0:
		return domain.DeadlineClosed
	case diffDays <= domain.ClosingSoonDays:
		return domain.DeadlineClosingSoon
	default:
		return domain.DeadlineOpen
	}
}

// DeadlineBuckets counts records per deadline status at instant now.
func DeadlineBuckets(records []domain.FundingRecord, now time.Time) domain.DeadlineBuckets {
	var b domain.DeadlineBuckets
	for _, r := range records {
		switch DeadlineStatus(r, now) {
		case domain.DeadlineClosed:
			b.Closed++
		case domain.DeadlineClosingSoon:
			b.ClosingSoon++
		case domain.DeadlineOpen:
			b.Open++
		default:
			b.NoDeadline++
		}
	}
	return b
}

// TopOrganizations returns the limit organizations with the most records.
// A limit of zero or less means DefaultTopOrganizations.
func TopOrganizations(records []domain.FundingRecord, limit int) []domain.CountEntry {
	if limit <= 0 {
		limit = DefaultTopOrganizations
	}
	counts := countByKey(records, domain.FundingRecord.OrganizationOrDefault)
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// Competition classifies each positive funding value against the mean of all of them.
func Competition(records []domain.FundingRecord) domain.Competition {
	values := make([]float64, 0, len(records))
	var sum float64
	for _, r := range records {
		if v := r.Funding.Amount.MaxValue(); v > 0 {
			values = append(values, v)
			sum += v
		}
	}

	if len(values) == 0 {
		return domain.Competition{Level: domain.CompetitionLow}
	}

	avg := sum / float64(len(values))
	c := domain.Competition{Average: avg, Considered: len(values)}
	for _, v := range values {
		switch {
		case v > 2*avg:
			c.High++
		case v > avg:
			c.Medium++
		default:
			c.Low++
		}
	}

	n := float64(len(values))
	switch {
	case float64(c.High) > 0.30*n:
		c.Level = domain.CompetitionHigh
	case float64(c.Medium) > 0.40*n:
		c.Level = domain.CompetitionMedium
	default:
		c.Level = domain.CompetitionLow
	}
	return c
}
