package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := BuildGet(context.Background(), server.URL, "")
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	exec := NewExecutor(WithMaxBodyBytes(16))
	req, err := BuildGet(context.Background(), server.URL, "")
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.BodyBytes) != 16 || !resp.Truncated {
		t.Fatalf("expected truncated 16 byte body, got %d truncated=%v", len(resp.BodyBytes), resp.Truncated)
	}
}

func TestBuildGetHeaders(t *testing.T) {
	var gotAccept, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor()
	req, err := BuildGet(context.Background(), server.URL+"/funding_database.json", exec.UserAgent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := exec.Do(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
	if !strings.HasPrefix(gotAgent, "fundingcall/") {
		t.Fatalf("expected fundingcall user agent, got %q", gotAgent)
	}
}

func TestBuildGetRejectsBadURLs(t *testing.T) {
	for _, u := range []string{"", "   ", "ftp://example.com/data.json", "not a url"} {
		if _, err := BuildGet(context.Background(), u, ""); !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("expected invalid_config for %q, got %v", u, err)
		}
	}
}
