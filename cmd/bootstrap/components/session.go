package components

import (
	"context"
	"log/slog"

	"gym-reserve/internal/handler/api"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/usecase/commands"
	"gym-reserve/internal/usecase/queries"
	"gym-reserve/internal/usecase/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewCoordinator,
		func(c *session.Coordinator) commands.ScheduleSource { return c },
		func(c *session.Coordinator) queries.OccupancySource { return c },
		func(c *session.Coordinator) api.ScheduleRefresher { return c },
	),
)

// NewCoordinator starts the coordinator with the app and loads every venue once.
// A venue that fails here stays unavailable until the next refresh.
func NewCoordinator(lc fx.Lifecycle, b session.Backend, cfg config.Config, logger *slog.Logger) *session.Coordinator {
	c := session.NewCoordinator(b, cfg.Backend, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			// per-venue failures are logged by LoadSchedules
			report, err := c.LoadSchedules(ctx)
			if err != nil {
				logger.Error("no venue schedule loaded at startup", "error", err)
				return nil
			}
			logger.Info("venue schedules loaded", "venues", report.Loaded)
			return nil
		},
		OnStop: func(_ context.Context) error {
			c.Stop()
			return nil
		},
	})

	return c
}
