// Package watcher reports changes to a data file.
package watcher

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

const DefaultDebounce = 200 * time.Millisecond

type Option func(*options)

type options struct {
	log *slog.Logger
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Watch calls onChange after path has been written, created or replaced and then stayed quiet
// for debounce. The parent directory is watched so editors that save via rename are seen.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(), opts ...Option) error {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindExecution, Path: path, Err: err}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindExecution, Path: path, Err: err}
	}
	o.log.Debug("watcher.started", "path", abs, "debounce", debounce)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		o.log.Info("watcher.changed", "path", abs)
		onChange()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(debounce, fire)
			} else {
				timer.Reset(debounce)
			}
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.log.Warn("watcher.error", "path", abs, "err", err)
		}
	}
}
