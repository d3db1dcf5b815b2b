package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "timeout", err: fmt.Errorf("fetch: %w", context.DeadlineExceeded), want: "Timed out loading data"},
		{
			name: "workspace",
			err:  &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			want: "Workspace not found",
		},
		{
			name: "missing file",
			err:  &domain.OpError{Op: "jsonsource.fetch", Kind: domain.KindNotFound, Path: "/w/data/db.json", Err: domain.ErrNotFound},
			want: "Not found: db.json",
		},
		{
			name: "source down",
			err:  &domain.OpError{Op: "httpsource.fetch", Kind: domain.KindSourceUnavailable, Err: domain.ErrSourceUnavailable},
			want: "Data unavailable",
		},
		{
			name: "yaml line",
			err:  &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/w/fundingcall.yaml", Err: errors.New("yaml: line 4: did not find expected key")},
			want: "Invalid YAML at fundingcall.yaml line 4",
		},
		{
			name: "invalid config",
			err:  &domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig},
			want: "Invalid config",
		},
		{name: "plain", err: errors.New("boom"), want: "Unexpected error (see logs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Fatalf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("Leverhulme", 5); got != "Lever…" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if got := clampString("UKRI", 10); got != "UKRI" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if got := clampString("x", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
