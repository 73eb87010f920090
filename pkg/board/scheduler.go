package board

import (
	"context"
	"sync"
	"time"

	"pidboard/pkg/dlog"
)

// Refresher is anything that can redraw the board once. *Driver satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler calls a Refresher immediately and then every RefreshInterval.
//
// Refreshes are not serialized: every tick starts its own goroutine, so a
// request slower than the interval overlaps the next one and whichever
// finishes last wins the sink. A new tick never cancels an in-flight request;
// only cancelling the Run context does.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	logger    *dlog.Logger
}

func NewScheduler(r Refresher, logger *dlog.Logger) *Scheduler {
	if logger == nil {
		logger = dlog.Discard()
	}
	return &Scheduler{
		refresher: r,
		interval:  RefreshInterval,
		logger:    logger,
	}
}

// Once refreshes a single time and returns its error.
func (s *Scheduler) Once(ctx context.Context) error {
	return s.refresher.Refresh(ctx)
}

// Run refreshes until ctx is cancelled, then waits for in-flight refreshes
// to return. Failed refreshes never stop the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	tick := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.refresher.Refresh(ctx); err != nil {
				s.logger.Debugf("refresh failed, next attempt in %s: %v", s.interval, err)
			}
		}()
	}

	tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			tick()
		}
	}
}
