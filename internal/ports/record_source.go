package ports

import (
	"context"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// RecordSource supplies the raw record collection (e.g., a JSON data file or an HTTP endpoint).
type RecordSource interface {
	Name() string
	Fetch(ctx context.Context) (domain.RawDataset, error)
}
