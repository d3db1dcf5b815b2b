package usecase

import (
	"context"
	"errors"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/normalize"
)

// LoadResult is a freshly built repository plus what was recovered while building it.
type LoadResult struct {
	Repository *domain.Repository
	Issues     []domain.FieldIssue
	Dropped    []string
}

type LoadRepository struct {
	source ports.RecordSource
	cfg    settings
}

func NewLoadRepository(source ports.RecordSource, opts ...Option) *LoadRepository {
	return &LoadRepository{source: source, cfg: newSettings(opts)}
}

// Execute fetches the raw collection and builds an immutable Repository from it.
// On failure the returned result still carries an empty repository the caller can keep using.
func (uc *LoadRepository) Execute(ctx context.Context) (LoadResult, error) {
	empty := LoadResult{Repository: domain.EmptyRepository()}
	log := uc.cfg.log.With("source", uc.source.Name())

	raw, err := uc.source.Fetch(ctx)
	if err != nil {
		log.Warn("source.fetch.failed", "err", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return empty, err
		}
		var oe *domain.OpError
		if errors.As(err, &oe) {
			return empty, err
		}
		return empty, &domain.OpError{
			Op:   "usecase.load",
			Kind: domain.KindSourceUnavailable,
			Path: uc.source.Name(),
			Err:  err,
		}
	}

	records, issues := normalize.Records(raw.Entries)
	for _, is := range issues {
		log.Debug("record.issue", "record", is.RecordID, "index", is.Index, "field", is.Field, "kind", is.Kind, "msg", is.Message)
	}

	meta := domain.RepositoryMeta{
		Source:      raw.Source,
		LastUpdated: raw.LastUpdated,
		LoadedAt:    uc.cfg.now(),
		Issues:      len(issues),
	}
	if meta.Source == "" {
		meta.Source = uc.source.Name()
	}

	repo, dropped := domain.NewRepositoryWithDuplicates(records, meta)
	for _, id := range dropped {
		issues = append(issues, domain.FieldIssue{
			Index:    -1,
			RecordID: id,
			Field:    "id",
			Kind:     domain.KindMalformedField,
			Message:  "duplicate id, first occurrence kept",
		})
	}

	log.Info("repository.loaded",
		"records", repo.Len(),
		"issues", len(issues),
		"dropped", len(dropped),
		"revision", repo.Revision(),
	)

	return LoadResult{Repository: repo, Issues: issues, Dropped: dropped}, nil
}
