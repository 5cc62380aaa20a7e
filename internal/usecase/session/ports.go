package session

import (
	"context"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"
)

// Backend is the third-party booking service. Implementations report transport
// failures as-is; nothing on this side retries.
type Backend interface {
	FetchVenueDetail(ctx context.Context, venueID int64) (venue.Detail, error)
	FetchOrders(ctx context.Context, venueID int64, date string) ([]order.Order, error)
	SubmitBooking(ctx context.Context, payload booking.Payload) error
}
