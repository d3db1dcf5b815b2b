package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/check"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/normalize"
)

// ValidateDataset checks a data source without building a repository.
type ValidateDataset struct {
	source ports.RecordSource
}

func NewValidateDataset(source ports.RecordSource) *ValidateDataset {
	return &ValidateDataset{source: source}
}

// Execute reports required-field failures and normalization issues for every entry.
// A record is valid when no required field is missing; normalization issues are informative.
func (uc *ValidateDataset) Execute(ctx context.Context) (domain.ValidationReport, error) {
	raw, err := uc.source.Fetch(ctx)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			return domain.ValidationReport{}, err
		}
		return domain.ValidationReport{}, &domain.OpError{
			Op:   "usecase.validate",
			Kind: domain.KindSourceUnavailable,
			Path: uc.source.Name(),
			Err:  err,
		}
	}

	rep := domain.ValidationReport{
		Source:  raw.Source,
		Total:   len(raw.Entries),
		Issues:  []domain.FieldIssue{},
		Invalid: []string{},
	}
	if rep.Source == "" {
		rep.Source = uc.source.Name()
	}

	seen := make(map[string]bool, len(raw.Entries))
	for i, entry := range raw.Entries {
		failures := check.Required(i, entry, check.RequiredRules)
		rep.Issues = append(rep.Issues, failures...)

		id := ""
		if obj, ok := entry.(map[string]any); ok {
			id, _ = obj["id"].(string)
			if id != "" && seen[id] {
				failures = append(failures, domain.FieldIssue{
					Index:    i,
					RecordID: id,
					Field:    "id",
					Kind:     domain.KindMalformedField,
					Message:  "duplicate id",
				})
				rep.Issues = append(rep.Issues, failures[len(failures)-1])
			}
			seen[id] = true
		}

		if len(failures) == 0 {
			rep.Valid++
			continue
		}
		if id == "" {
			id = fmt.Sprintf("#%d", i)
		}
		rep.Invalid = append(rep.Invalid, id)
	}

	reported := make(map[string]bool, len(rep.Issues))
	for _, is := range rep.Issues {
		reported[issueKey(is)] = true
	}
	_, issues := normalize.Records(raw.Entries)
	for _, is := range issues {
		if !reported[issueKey(is)] {
			rep.Issues = append(rep.Issues, is)
		}
	}

	return rep, nil
}

func issueKey(is domain.FieldIssue) string {
	return fmt.Sprintf("%d/%s", is.Index, is.Field)
}
