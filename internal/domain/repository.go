package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// RepositoryMeta describes where a Repository's records came from.
type RepositoryMeta struct {
	Source      string    `json:"source"`
	LastUpdated string    `json:"last_updated,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
	Issues      int       `json:"issues"`
	Dropped     int       `json:"dropped"`
}

// Repository holds the full, ordered record collection for a session.
//
// A Repository never changes after construction. Reloading builds a new value and the caller
// swaps it in wholesale.
type Repository struct {
	records  []FundingRecord
	index    map[string]int
	meta     RepositoryMeta
	revision string
}

// EmptyRepository is the valid starting state before any data has been loaded.
func EmptyRepository() *Repository {
	return NewRepository(nil, RepositoryMeta{})
}

// NewRepository builds a Repository from normalized records, keeping their order.
// When two records share an id the first one wins; the ids of dropped records are returned.
func NewRepository(records []FundingRecord, meta RepositoryMeta) *Repository {
	r, _ := buildRepository(records, meta)
	return r
}

// NewRepositoryWithDuplicates is NewRepository that also reports which ids were dropped.
func NewRepositoryWithDuplicates(records []FundingRecord, meta RepositoryMeta) (*Repository, []string) {
	return buildRepository(records, meta)
}

func buildRepository(records []FundingRecord, meta RepositoryMeta) (*Repository, []string) {
	kept := make([]FundingRecord, 0, len(records))
	index := make(map[string]int, len(records))
	var dropped []string

	for _, rec := range records {
		if rec.ID != "" {
			if _, dup := index[rec.ID]; dup {
				dropped = append(dropped, rec.ID)
				continue
			}
			index[rec.ID] = len(kept)
		}
		kept = append(kept, rec)
	}

	meta.Dropped = len(dropped)
	return &Repository{
		records:  kept,
		index:    index,
		meta:     meta,
		revision: revisionOf(kept),
	}, dropped
}

// Records returns the full collection in stored order. The slice is a copy.
func (r *Repository) Records() []FundingRecord {
	if r == nil {
		return []FundingRecord{}
	}
	out := make([]FundingRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Get looks a record up by id.
func (r *Repository) Get(id string) (FundingRecord, bool) {
	if r == nil {
		return FundingRecord{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return FundingRecord{}, false
	}
	return r.records[i], true
}

// Meta returns load metadata.
func (r *Repository) Meta() RepositoryMeta {
	if r == nil {
		return RepositoryMeta{}
	}
	return r.meta
}

// Revision identifies the repository content. Equal content yields equal revisions.
func (r *Repository) Revision() string {
	if r == nil {
		return revisionOf(nil)
	}
	return r.revision
}

func revisionOf(records []FundingRecord) string {
	h := sha256.New()
	for _, rec := range records {
		deadline := int64(0)
		if rec.Application.Deadline != nil {
			deadline = rec.Application.Deadline.Unix()
		}
		fmt.Fprintf(h, "%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%g\x1f%g\x1f%d\x1f%s\x1e",
			rec.ID,
			rec.Title,
			rec.Organization,
			rec.Description,
			rec.Category,
			rec.Eligibility.CareerStage,
			rec.Funding.Amount.MinValue(),
			rec.Funding.Amount.MaxValue(),
			deadline,
			strings.Join(rec.Tags, "\x1d"),
		)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
