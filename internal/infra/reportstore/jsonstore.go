// Package reportstore persists dashboard snapshots as JSON files.
package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

const (
	defaultReportsDir = "reports"
	indexFile         = "index.jsonl"
	lockFile          = ".index.lock"
)

type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDs replaces the report id generator.
func WithIDs(newID func() string) Option {
	return func(s *JSONStore) { s.newID = newID }
}

// NewJSONStore writes reports into dir; an empty dir means ./reports.
func NewJSONStore(dir string, opts ...Option) *JSONStore {
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		dir:        dir,
		writeIndex: true,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// IndexEntry is one line of index.jsonl.
type IndexEntry struct {
	ID       string    `json:"id"`
	File     string    `json:"file"`
	Source   string    `json:"source"`
	Total    int       `json:"total"`
	Revision string    `json:"revision"`
	SavedAt  time.Time `json:"saved_at"`
}

func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := report.SavedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := report
	toSave.SavedAt = ts
	if toSave.ID == "" {
		toSave.ID = s.newID()
	}

	slug := slugify(strings.TrimSuffix(filepath.Base(report.Source.Source), filepath.Ext(report.Source.Source)))
	if slug == "" {
		slug = "dashboard"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	path := filepath.Join(s.dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		entry := IndexEntry{
			ID:       toSave.ID,
			File:     filename,
			Source:   report.Source.Source,
			Total:    report.Dashboard.Total,
			Revision: report.Dashboard.Revision,
			SavedAt:  ts,
		}
		if err := s.appendIndex(entry); err != nil {
			return toSave.ID, &domain.OpError{
				Op:   "reportstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(s.dir, indexFile),
				Err:  err,
			}
		}
	}

	return toSave.ID, nil
}

// appendIndex serializes writers from concurrent processes with a lock file next to the index.
func (s *JSONStore) appendIndex(entry IndexEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	lock := flock.New(filepath.Join(s.dir, lockFile))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(filepath.Join(s.dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
