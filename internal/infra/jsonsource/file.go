package jsonsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

// FileSource reads a data file from disk on every Fetch.
type FileSource struct {
	name        string
	path        string
	recordsPath string
}

// NewFileSource builds a FileSource. An empty name defaults to the file's base name.
func NewFileSource(name, path, recordsPath string) *FileSource {
	if name == "" {
		name = filepath.Base(path)
	}
	return &FileSource{name: name, path: path, recordsPath: recordsPath}
}

var _ ports.RecordSource = (*FileSource)(nil)

func (s *FileSource) Name() string { return s.name }

// Path is the data file this source reads.
func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Fetch(ctx context.Context) (domain.RawDataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawDataset{}, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		kind := domain.KindSourceUnavailable
		base := domain.ErrSourceUnavailable
		if errors.Is(err, os.ErrNotExist) {
			base = domain.ErrNotFound
		}
		return domain.RawDataset{}, &domain.OpError{
			Op:   "jsonsource.read",
			Kind: kind,
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", base, err),
		}
	}

	ds, err := Decode(s.path, b, s.recordsPath)
	if err != nil {
		return domain.RawDataset{}, err
	}
	return ds, nil
}
