package scheduler

import (
	"context"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"MarketTerminal/internal/collector"
	"MarketTerminal/internal/logger"
	"MarketTerminal/internal/metrics"
	"MarketTerminal/internal/render"
)

// Fetcher produces one snapshot per refresh cycle.
type Fetcher interface {
	Collect(ctx context.Context) collector.Snapshot
}

// Surface shows the most recent table.
type Surface interface {
	Update(t table.Writer)
}

// Scheduler drives the fetch and render loop.
type Scheduler struct {
	Fetcher  Fetcher
	Surface  Surface
	Schedule cron.Schedule
	Now      func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(f Fetcher, s Surface, schedule cron.Schedule) *Scheduler {
	return &Scheduler{
		Fetcher:  f,
		Surface:  s,
		Schedule: schedule,
		Now:      time.Now,
	}
}

// RunOnce fetches a snapshot and hands its table to the surface. A cycle
// cancelled mid-fetch draws nothing.
func (s *Scheduler) RunOnce(ctx context.Context) (collector.Snapshot, error) {
	snap := s.Fetcher.Collect(ctx)
	if err := ctx.Err(); err != nil {
		return snap, err
	}

	quotes := snap.Quotes()
	s.Surface.Update(render.Table(quotes))
	metrics.RefreshCycles.Inc()
	metrics.QuotesDisplayed.Set(float64(len(quotes)))
	logger.Log.Debug("refresh cycle",
		zap.Int("quotes", len(quotes)),
		zap.Strings("failed", snap.Failed()))
	return snap, nil
}

// Run refreshes until ctx is cancelled. The next cycle is scheduled from the
// moment the previous fetch finished, so slow upstreams stretch the period.
func (s *Scheduler) Run(ctx context.Context) error {
	logger.Log.Info("refresh loop started")
	defer logger.Log.Info("refresh loop stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.RunOnce(ctx); err != nil {
			return err
		}

		timer := time.NewTimer(s.wait(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// wait is the pause after a fetch that finished at now. "@every" schedules
// sleep their full delay; cron.ConstantDelaySchedule.Next would round down to
// the second and shorten it.
func (s *Scheduler) wait(now time.Time) time.Duration {
	if cd, ok := s.Schedule.(cron.ConstantDelaySchedule); ok {
		return cd.Delay
	}
	return s.Schedule.Next(now).Sub(now)
}

func (s *Scheduler) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
