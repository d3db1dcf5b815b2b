// Package domaintest builds funding records for tests.
package domaintest

import (
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Option customizes a record built by Record.
type Option func(*domain.FundingRecord)

// Record returns a normalized record with defaults applied, then the options.
func Record(id string, opts ...Option) domain.FundingRecord {
	r := domain.FundingRecord{
		ID:           id,
		Title:        id,
		Organization: "",
		Category:     domain.DefaultCategory,
		Tags:         []string{},
		Eligibility: domain.Eligibility{
			CareerStage:  domain.DefaultCareerStage,
			Disciplines:  []string{},
			Requirements: []string{},
		},
		Funding: domain.FundingDetails{
			Amount: domain.Amount{Currency: domain.DefaultCurrency},
			Covers: []string{},
		},
		Status: domain.DefaultStatus,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func Title(s string) Option { return func(r *domain.FundingRecord) { r.Title = s } }

func Organization(s string) Option { return func(r *domain.FundingRecord) { r.Organization = s } }

func Description(s string) Option { return func(r *domain.FundingRecord) { r.Description = s } }

func Category(s string) Option { return func(r *domain.FundingRecord) { r.Category = s } }

func CareerStage(s string) Option {
	return func(r *domain.FundingRecord) { r.Eligibility.CareerStage = s }
}

func Tags(tags ...string) Option { return func(r *domain.FundingRecord) { r.Tags = tags } }

// Amount sets raw bounds and applies the minor-unit heuristic, as the normalizer does.
func Amount(min, max float64) Option {
	return func(r *domain.FundingRecord) {
		rawMin, rawMax := min, max
		nMin, nMax := domain.NormalizeMinorUnits(min), domain.NormalizeMinorUnits(max)
		r.Funding.Amount.RawMin = &rawMin
		r.Funding.Amount.RawMax = &rawMax
		r.Funding.Amount.Min = &nMin
		r.Funding.Amount.Max = &nMax
	}
}

// Deadline sets a parsed deadline.
func Deadline(t time.Time) Option {
	return func(r *domain.FundingRecord) {
		d := t
		r.Application.Deadline = &d
		r.Application.DeadlineRaw = t.Format("2006-01-02")
	}
}

// UnparseableDeadline sets raw deadline text that could not be parsed.
func UnparseableDeadline(raw string) Option {
	return func(r *domain.FundingRecord) {
		r.Application.Deadline = nil
		r.Application.DeadlineRaw = raw
	}
}

// Example returns the two-record collection used throughout the engine tests:
// a UKRI record closing in 20 days and a Wellcome record, stored in pence, closing in 40.
func Example(now time.Time) []domain.FundingRecord {
	return []domain.FundingRecord{
		Record("ukri-1",
			Title("Future Leaders Fellowships"),
			Organization("UKRI"),
			Category("ukri"),
			Amount(10_000, 50_000),
			Deadline(now.Add(20*24*time.Hour)),
		),
		Record("wellcome-1",
			Title("Discovery Awards"),
			Organization("Wellcome"),
			Category("foundations"),
			Amount(2_000_000, 2_000_000),
			Deadline(now.Add(40*24*time.Hour)),
		),
	}
}
