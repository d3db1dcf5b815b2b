// Package sorting orders a view of funding records.
package sorting

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Locale is the collation used for title ordering.
var Locale = language.BritishEnglish

// Sort returns a new slice holding view ordered by key. The input is left untouched.
// Every ordering is stable: records comparing equal keep their relative input order.
func Sort(view []domain.FundingRecord, key domain.SortKey) []domain.FundingRecord {
	out := slices.Clone(view)
	if out == nil {
		out = []domain.FundingRecord{}
	}

	switch key {
	case domain.SortDeadline:
		slices.SortStableFunc(out, func(a, b domain.FundingRecord) int {
			return deadlineOf(a).Compare(deadlineOf(b))
		})
	case domain.SortAmount:
		slices.SortStableFunc(out, func(a, b domain.FundingRecord) int {
			return cmp.Compare(b.Funding.Amount.MaxValue(), a.Funding.Amount.MaxValue())
		})
	case domain.SortTitle:
		c := collate.New(Locale, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b domain.FundingRecord) int {
			if n := c.CompareString(a.Title, b.Title); n != 0 {
				return n
			}
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	}

	return out
}

// deadlineOf treats a missing or unparseable deadline as the latest possible date.
func deadlineOf(r domain.FundingRecord) time.Time {
	if r.Application.Deadline == nil {
		return domain.MaxTime
	}
	return *r.Application.Deadline
}
