// Package jsonsource reads funding data files.
package jsonsource

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Decode parses a data document and locates its record array.
//
// The document is either the data file layout ({"last_updated": ..., "fundings": [...]}) where
// recordsPath selects the array, or a bare top-level array.
func Decode(name string, body []byte, recordsPath string) (domain.RawDataset, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.RawDataset{}, &domain.OpError{
			Op:   "jsonsource.decode",
			Kind: domain.KindSourceUnavailable,
			Path: name,
			Err:  fmt.Errorf("%w: invalid JSON: %v", domain.ErrSourceUnavailable, err),
		}
	}

	out := domain.RawDataset{Source: name}

	if arr, ok := doc.([]any); ok {
		out.Entries = arr
		return out, nil
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return domain.RawDataset{}, &domain.OpError{
			Op:   "jsonsource.decode",
			Kind: domain.KindSourceUnavailable,
			Path: name,
			Err:  fmt.Errorf("%w: document is neither an object nor an array", domain.ErrSourceUnavailable),
		}
	}
	if s, ok := obj["last_updated"].(string); ok {
		out.LastUpdated = s
	}

	expr := strings.TrimSpace(recordsPath)
	if expr == "" {
		expr = domain.DefaultRecordsPath
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return domain.RawDataset{}, &domain.OpError{
			Op:   "jsonsource.locate",
			Kind: domain.KindInvalidConfig,
			Path: name,
			Err:  fmt.Errorf("records path %q: %v", expr, err),
		}
	}

	switch t := val.(type) {
	case nil:
		out.Entries = []any{}
	case []any:
		out.Entries = t
	default:
		return domain.RawDataset{}, &domain.OpError{
			Op:   "jsonsource.locate",
			Kind: domain.KindInvalidConfig,
			Path: name,
			Err:  fmt.Errorf("records path %q: expected an array, got %T", expr, val),
		}
	}
	return out, nil
}
