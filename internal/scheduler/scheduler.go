package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Refresher re-fetches whatever location is currently displayed.
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
}

// Scheduler periodically refreshes the displayed location's weather.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	log       logrus.FieldLogger
}

// New creates a new Scheduler. timeout bounds each refresh.
func New(refresher Refresher, interval, timeout time.Duration, log logrus.FieldLogger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		log:       log,
	}
}

// Start schedules the refresh job and starts the underlying scheduler. A
// non-positive interval disables refreshing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Info("scheduler: refresh interval not set; auto-refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.WithField("interval", s.interval.String()).Info("scheduler: auto-refresh started")
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	refreshed, err := s.refresher.Refresh(ctx)
	switch {
	case err != nil:
		s.log.WithError(err).Warn("scheduler: refresh failed")
	case refreshed:
		s.log.Debug("scheduler: refreshed displayed location")
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
