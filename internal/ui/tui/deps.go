package tui

import (
	"log/slog"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

type Deps struct {
	Source ports.RecordSource
	Store  ports.ReportStore

	// WatchPaths are local data files; a change to any of them reloads the repository.
	WatchPaths []string
	Config     domain.Config

	Logger *slog.Logger
	Debug  bool

	// Now pins the clock for deadline buckets. Nil means time.Now.
	Now func() time.Time
}
