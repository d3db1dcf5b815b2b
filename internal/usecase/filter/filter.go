// Package filter selects the records of a view.
package filter

import (
	"strings"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Apply returns the records matching q, in their original relative order.
//
// A record is kept when the search term, the category and the career stage all match.
// The search term matches a substring of the title, organization or description, or any tag
// containing it, ignoring case. Category and career stage are exact matches. Empty criteria
// match everything.
func Apply(records []domain.FundingRecord, q domain.Query) []domain.FundingRecord {
	term := strings.ToLower(strings.TrimSpace(q.SearchTerm))

	out := make([]domain.FundingRecord, 0, len(records))
	for _, rec := range records {
		if q.Category != "" && rec.Category != q.Category {
			continue
		}
		if q.CareerStage != "" && rec.Eligibility.CareerStage != q.CareerStage {
			continue
		}
		if term != "" && !matchesTerm(rec, term) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesTerm expects term to be trimmed and lower-cased already.
func matchesTerm(rec domain.FundingRecord, term string) bool {
	if strings.Contains(strings.ToLower(rec.Title), term) ||
		strings.Contains(strings.ToLower(rec.Organization), term) ||
		strings.Contains(strings.ToLower(rec.Description), term) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in first-seen order.
func Categories(records []domain.FundingRecord) []string {
	return distinct(records, func(r domain.FundingRecord) string { return r.Category })
}

// CareerStages returns the distinct career stages in first-seen order.
func CareerStages(records []domain.FundingRecord) []string {
	return distinct(records, func(r domain.FundingRecord) string { return r.Eligibility.CareerStage })
}

func distinct(records []domain.FundingRecord, key func(domain.FundingRecord) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
