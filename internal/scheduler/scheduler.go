// Package scheduler dispatches due reminders. Due-time computation is pure
// and lives in domain; this package owns only the ticking and the dispatch
// to the notification sink.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/verdantly/wellspring/internal/ports"
)

const DefaultCheckInterval = 10 * time.Second

type Scheduler struct {
	reminders ports.ReminderRepository
	notifier  ports.Notifier
	metrics   ports.MetricsExporter
	log       ports.Logger
	loc       *time.Location
	interval  time.Duration
}

func New(
	reminders ports.ReminderRepository,
	notifier ports.Notifier,
	metrics ports.MetricsExporter,
	log ports.Logger,
	loc *time.Location,
	interval time.Duration,
) *Scheduler {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Scheduler{
		reminders: reminders,
		notifier:  notifier,
		metrics:   metrics,
		log:       log,
		loc:       loc,
		interval:  interval,
	}
}

// Run checks immediately, then on every tick, until the context is
// canceled. Check failures are logged and the loop keeps going.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.check(ctx, now)
		}
	}
}

// check fires every due reminder once and persists its fired state so the
// next tick does not fire it again.
func (s *Scheduler) check(ctx context.Context, now time.Time) {
	all, err := s.reminders.ListAll(ctx)
	if err != nil {
		s.log.Error(fmt.Sprintf("list reminders: %v", err))
		return
	}

	for _, r := range all {
		if !r.Due(now, s.loc) {
			continue
		}
		s.notifier.ReminderDue(r.ActivityName())
		s.metrics.ReminderFired(ctx)

		r.MarkNotified(now, s.loc)
		if err := s.reminders.MarkNotified(ctx, r); err != nil {
			s.log.Error(fmt.Sprintf("mark reminder notified: %v", err))
		}
	}
}

// CheckOnce runs a single check pass at the given time.
func (s *Scheduler) CheckOnce(ctx context.Context, now time.Time) {
	s.check(ctx, now)
}
