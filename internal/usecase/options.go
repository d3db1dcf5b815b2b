package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

type settings struct {
	now    ports.Clock
	log    *slog.Logger
	topOrg int
}

// Option customizes a use case.
type Option func(*settings)

// WithNow pins the clock used for time-dependent results.
func WithNow(now ports.Clock) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger routes use case events to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTopOrganizations sets how many organizations the dashboard keeps.
func WithTopOrganizations(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.topOrg = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		now:    time.Now,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		topOrg: 5,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
