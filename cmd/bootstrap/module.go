package bootstrap

import (
	"gym-reserve/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.BackendModule,
	components.SessionModule,
	components.SchedulerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
