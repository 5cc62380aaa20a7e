package components

import (
	"gym-reserve/internal/pkg/clock"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/pkg/identity"
	"gym-reserve/internal/usecase/commands"
	"gym-reserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		func() *identity.FakerGenerator { return identity.NewFakerGenerator(nil) },
		fx.As(new(identity.Generator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOccupancyQueries,
	),
)

// NewClock reads "today" in the venue's time zone, not the host's.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
