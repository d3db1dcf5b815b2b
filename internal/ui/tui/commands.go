package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/watcher"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase"
)

func cmdLoadRepository(ctx context.Context, deps Deps, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		timeout := deps.Config.Data.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultConfig().Data.Timeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		opts := []usecase.Option{usecase.WithLogger(log)}
		if deps.Now != nil {
			opts = append(opts, usecase.WithNow(deps.Now))
		}
		res, err := usecase.NewLoadRepository(deps.Source, opts...).Execute(ctx)
		return repositoryLoadedMsg{res: res, err: err}
	}
}

func cmdSearchDebounce(seq int, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return searchSettledMsg{seq: seq} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
}

func cmdSaveReport(deps Deps, d domain.Dashboard, meta domain.RepositoryMeta) tea.Cmd {
	return func() tea.Msg {
		if deps.Store == nil {
			return reportSavedMsg{err: &domain.OpError{Op: "tui.save_report", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}}
		}
		id, err := usecase.NewSaveReport(deps.Store, usecase.WithNow(deps.Now)).Execute(d, meta)
		return reportSavedMsg{id: id, err: err}
	}
}

// startWatching watches every data file until ctx is done. Changes are coalesced into a
// single pending signal.
func startWatching(ctx context.Context, paths []string, log *slog.Logger) <-chan struct{} {
	ch := make(chan struct{}, 1)
	notify := func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}

	for _, p := range paths {
		p := p
		go func() {
			if err := watcher.Watch(ctx, p, watcher.DefaultDebounce, notify, watcher.WithLogger(log)); err != nil {
				log.Warn("watch.failed", "path", p, "err", err)
			}
		}()
	}
	return ch
}

func listenChanges(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return dataChangedMsg{}
	}
}
