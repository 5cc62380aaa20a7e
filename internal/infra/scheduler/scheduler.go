package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/usecase/session"

	"github.com/go-co-op/gocron/v2"
)

const venueRefreshJob = "venue-refresh"

type Refresher interface {
	LoadSchedules(ctx context.Context) (session.LoadReport, error)
}

// Scheduler runs the background jobs of the service on a gocron scheduler.
type Scheduler struct {
	sched  gocron.Scheduler
	logger *slog.Logger
}

func New(logger *slog.Logger, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}
	return &Scheduler{sched: sched, logger: logger}, nil
}

// RegisterVenueRefresh reloads every venue schedule each interval. A run that is
// still going when the next one is due pushes that one back. Zero disables it.
func (s *Scheduler) RegisterVenueRefresh(interval time.Duration, r Refresher) error {
	if interval <= 0 {
		s.logger.Info("venue refresh disabled")
		return nil
	}

	job, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			report, err := r.LoadSchedules(ctx)
			if err != nil {
				s.logger.Error("venue refresh failed", "error", err)
				return
			}
			s.logger.Info("venues refreshed", "loaded", report.Loaded, "failed", len(report.Failed))
		}),
		gocron.WithName(venueRefreshJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule venue refresh")
	}

	s.logger.Info("venue refresh scheduled", "job_id", job.ID().String(), "interval", interval)
	return nil
}

func (s *Scheduler) Jobs() int {
	return len(s.sched.Jobs())
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}
