// Package scheduler runs a job once a day at a fixed wall-clock time.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RunFunc is invoked once per scheduled run. now is the wall-clock time the run started at.
type RunFunc func(ctx context.Context, now time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Hour         int
	Minute       int
	Location     *time.Location
	RunOnStartup bool
}

// Scheduler drives the daily job.
type Scheduler struct {
	opts   Options
	logger *slog.Logger

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// New constructs a Scheduler. A nil Location means UTC.
func New(opts Options, logger *slog.Logger) (*Scheduler, error) {
	if opts.Hour < 0 || opts.Hour > 23 || opts.Minute < 0 || opts.Minute > 59 {
		return nil, fmt.Errorf("invalid schedule time %02d:%02d", opts.Hour, opts.Minute)
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		opts:   opts,
		logger: logger.With(slog.String("component", "scheduler")),
		now:    time.Now,
		after:  time.After,
	}, nil
}

// Run blocks, invoking run at every scheduled time until ctx is cancelled.
// A failed run is logged and the next one is scheduled as usual.
func (s *Scheduler) Run(ctx context.Context, run RunFunc) error {
	if s.opts.RunOnStartup {
		s.execute(ctx, run)
	}

	for {
		now := s.now().In(s.opts.Location)
		next := NextRun(now, s.opts.Hour, s.opts.Minute)
		s.logger.Info("Waiting for next scheduled run", slog.Time("next_run", next))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.after(next.Sub(now)):
		}

		s.execute(ctx, run)
	}
}

func (s *Scheduler) execute(ctx context.Context, run RunFunc) {
	if ctx.Err() != nil {
		return
	}
	started := s.now().In(s.opts.Location)
	s.logger.Info("Executing scheduled run", slog.Time("started_at", started))

	if err := run(ctx, started); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Error("Scheduled run failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled run finished", slog.Duration("took", s.now().Sub(started)))
}

// NextRun returns the first hour:minute strictly after now, in now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return next
}
