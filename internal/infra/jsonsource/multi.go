package jsonsource

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

// MultiSource fetches several sources concurrently and concatenates their entries
// in the order the sources were given.
type MultiSource struct {
	sources []ports.RecordSource
}

func NewMultiSource(sources ...ports.RecordSource) *MultiSource {
	return &MultiSource{sources: sources}
}

var _ ports.RecordSource = (*MultiSource)(nil)

func (m *MultiSource) Name() string {
	names := make([]string, 0, len(m.sources))
	for _, s := range m.sources {
		names = append(names, s.Name())
	}
	return strings.Join(names, "+")
}

// Fetch fails as a whole if any source fails.
func (m *MultiSource) Fetch(ctx context.Context) (domain.RawDataset, error) {
	if len(m.sources) == 1 {
		return m.sources[0].Fetch(ctx)
	}

	results := make([]domain.RawDataset, len(m.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.sources {
		i, src := i, src
		g.Go(func() error {
			ds, err := src.Fetch(gctx)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RawDataset{}, err
	}

	out := domain.RawDataset{Source: m.Name(), Entries: []any{}}
	for _, ds := range results {
		out.Entries = append(out.Entries, ds.Entries...)
		if ds.LastUpdated > out.LastUpdated {
			out.LastUpdated = ds.LastUpdated
		}
	}
	return out, nil
}
