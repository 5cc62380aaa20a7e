package components

import (
	"context"
	"log/slog"

	"gym-reserve/internal/infra/scheduler"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/usecase/session"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(func(*scheduler.Scheduler) {}),
)

func NewScheduler(lc fx.Lifecycle, c *session.Coordinator, cfg config.Config, logger *slog.Logger) (*scheduler.Scheduler, error) {
	s, err := scheduler.New(logger)
	if err != nil {
		return nil, err
	}
	if err := s.RegisterVenueRefresh(cfg.Refresh.VenueInterval, c); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return s, nil
}
