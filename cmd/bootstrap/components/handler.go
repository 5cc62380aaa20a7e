package components

import (
	"gym-reserve/internal/handler"
	"gym-reserve/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVenueHandler,
		api.NewOccupancyHandler,
		api.NewBookingHandler,
		func(v *api.VenueHandler, o *api.OccupancyHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Venue: v, Occupancy: o, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
