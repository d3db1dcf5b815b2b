package reportstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func sampleReport(saved time.Time) domain.Report {
	return domain.Report{
		Source: domain.RepositoryMeta{Source: "data/Funding Database.json", LastUpdated: "2026-10-01"},
		Dashboard: domain.Dashboard{
			Total:    2,
			Revision: "abc123",
			Categories: []domain.DistributionEntry{
				{Key: "ukri", Count: 1, Percentage: 50},
				{Key: "foundations", Count: 1, Percentage: 50},
			},
			Deadlines: domain.DeadlineBuckets{Open: 1, ClosingSoon: 1},
		},
		SavedAt: saved,
	}
}

func TestSaveReport_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "reports")

	store := NewJSONStore(dir)

	saved := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReport(sampleReport(saved))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid id, got %q", id)
	}

	wantFile := filepath.Join(dir, "20260203T101112Z_funding-database.json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}

	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != id {
		t.Fatalf("expected id %s, got %s", id, decoded.ID)
	}
	if decoded.Dashboard.Total != 2 || len(decoded.Dashboard.Categories) != 2 {
		t.Fatalf("unexpected dashboard: %+v", decoded.Dashboard)
	}
	if decoded.Source.LastUpdated != "2026-10-01" {
		t.Fatalf("expected source meta kept, got %+v", decoded.Source)
	}

	if _, err := os.Stat(wantFile + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected no leftover tmp file")
	}
}

func TestSaveReport_UsesClockWhenUnset(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	store := NewJSONStore(tmp, WithNow(func() time.Time { return now }), WithIDs(func() string { return "fixed" }), WithIndex(false))
	rep := sampleReport(time.Time{})
	rep.Source.Source = ""

	id, err := store.SaveReport(rep)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "fixed" {
		t.Fatalf("expected fixed id, got %q", id)
	}
	if _, err := os.Stat(filepath.Join(tmp, "20261018T080000Z_dashboard.json")); err != nil {
		t.Fatalf("expected dashboard fallback slug: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "index.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("expected no index when disabled")
	}
}

func TestSaveReport_IndexConcurrentWriters(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			saved := time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC)
			if _, err := store.SaveReport(sampleReport(saved)); err != nil {
				t.Errorf("SaveReport error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	f, err := os.Open(filepath.Join(tmp, "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e IndexEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("corrupt index line %q: %v", sc.Text(), err)
		}
		if e.Total != 2 || e.Revision != "abc123" {
			t.Fatalf("unexpected index entry %+v", e)
		}
		lines++
	}
	if lines != n {
		t.Fatalf("expected %d index lines, got %d", n, lines)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Funding Database": "funding-database",
		"  ukri__grants  ": "ukri-grants",
		"£££":              "",
		"a+b":              "a-b",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
