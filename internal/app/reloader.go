package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/state"
)

// maxBackoff caps the retry delay after repeated load failures. Intervals
// longer than the cap are never shortened.
const maxBackoff = 30 * time.Second

// Reloader re-reads a catalog source on a fixed cadence.
type Reloader struct {
	Catalog  *catalog.Store
	Sync     *state.Store
	Source   catalog.Source
	Interval time.Duration
	Logger   *zap.Logger
}

// StartReloader launches a background goroutine that reloads the catalog
// every interval until ctx is cancelled. It returns immediately. A
// non-positive interval disables reloading.
func StartReloader(ctx context.Context, r Reloader) {
	if r.Interval <= 0 || r.Source == nil || r.Catalog == nil {
		return
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	go r.loop(ctx)
}

func (r Reloader) loop(ctx context.Context) {
	failures := 0
	timer := time.NewTimer(r.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := reload(ctx, r.Catalog, r.Sync, r.Source); err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			delay := calculateBackoff(failures, r.Interval)
			r.Logger.Warn("catalog reload failed",
				zap.Error(err),
				zap.Int("failures", failures),
				zap.Duration("retry_in", delay),
			)
			timer.Reset(delay)
			continue
		}
		if failures > 0 {
			r.Logger.Info("catalog reload recovered", zap.Int("after_failures", failures))
		}
		failures = 0
		timer.Reset(r.Interval)
	}
}

// reload loads the source once and swaps the catalog on success. The
// compare set is left alone; it holds its own copies of the products.
func reload(ctx context.Context, store *catalog.Store, status *state.Store, source catalog.Source) error {
	lists, err := source.Load(ctx)
	if status != nil {
		status.Update(lists, err)
	}
	if err != nil {
		return err
	}
	store.Replace(lists)
	return nil
}

// calculateBackoff returns base * 2^failures, capped at maxBackoff (or at
// base when base is already longer).
func calculateBackoff(failures int, base time.Duration) time.Duration {
	limit := maxBackoff
	if base > limit {
		limit = base
	}
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= limit {
			return limit
		}
	}
	return delay
}
