package httpsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/httpclient"
)

func TestSource_FetchesDataFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"last_updated":"2026-10-01","fundings":[{"id":"a"},{"id":"b"}]}`))
	}))
	defer srv.Close()

	src := New("remote", srv.URL+"/funding_database.json", "")
	ds, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(ds.Entries) != 2 || ds.LastUpdated != "2026-10-01" {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
	if src.Name() != "remote" {
		t.Fatalf("unexpected name %q", src.Name())
	}
}

func TestSource_Non200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New("", srv.URL, "").Fetch(context.Background())
	if !domain.IsKind(err, domain.KindSourceUnavailable) {
		t.Fatalf("expected source_unavailable, got %v", err)
	}
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable in chain")
	}
}

func TestSource_ClassifiesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	exec := httpclient.NewExecutor(httpclient.WithTimeout(50 * time.Millisecond))
	_, err := New("slow", srv.URL, "", WithExecutor(exec)).Fetch(context.Background())
	if !domain.IsKind(err, domain.KindSourceUnavailable) {
		t.Fatalf("expected source_unavailable, got %v", err)
	}
}

func TestSource_RejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[` + strings.Repeat(`{"id":"x"},`, 100) + `{"id":"y"}]`))
	}))
	defer srv.Close()

	exec := httpclient.NewExecutor(httpclient.WithMaxBodyBytes(64))
	_, err := New("big", srv.URL, "", WithExecutor(exec)).Fetch(context.Background())
	if !domain.IsKind(err, domain.KindSourceUnavailable) {
		t.Fatalf("expected source_unavailable, got %v", err)
	}
}

func TestSource_InvalidURL(t *testing.T) {
	_, err := New("bad", "file:///etc/passwd", "").Fetch(context.Background())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
