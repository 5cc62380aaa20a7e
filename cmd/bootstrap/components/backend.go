package components

import (
	"gym-reserve/internal/infra/backend"
	"gym-reserve/internal/usecase/commands"
	"gym-reserve/internal/usecase/session"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(new(session.Backend)),
			fx.As(new(commands.BookingSubmitter)),
		),
	),
)
