package domain

import "strings"

// Query selects records for a view. Empty fields match everything.
type Query struct {
	SearchTerm  string `json:"search_term"`
	Category    string `json:"category"`
	CareerStage string `json:"career_stage"`
}

// IsEmpty reports whether the query matches every record.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.SearchTerm) == "" && q.Category == "" && q.CareerStage == ""
}

// SortKey names a view ordering.
type SortKey string

const (
	SortDefault  SortKey = "default"
	SortDeadline SortKey = "deadline"
	SortAmount   SortKey = "amount"
	SortTitle    SortKey = "title"
)

// SortKeys lists the orderings in the order a picker cycles through them.
var SortKeys = []SortKey{SortDefault, SortDeadline, SortAmount, SortTitle}

// ParseSortKey maps user input to a SortKey; anything unrecognized is SortDefault.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortDeadline:
		return SortDeadline
	case SortAmount:
		return SortAmount
	case SortTitle:
		return SortTitle
	default:
		return SortDefault
	}
}

// Next returns the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortDefault
}
