package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/venue"
	reqdto "gym-reserve/internal/handler/dto/request"
	"gym-reserve/internal/pkg/clock"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/pkg/identity"

	"github.com/google/uuid"
)

type BookingResult struct {
	SubmissionID uuid.UUID
	Payload      booking.Payload
}

type ScheduleSource interface {
	Schedule(ctx context.Context, venueID int64) (*venue.Schedule, error)
}

type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, payload booking.Payload) error
}

type BookingCommands interface {
	Book(ctx context.Context, req reqdto.BookingRequest) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	schedules ScheduleSource
	submitter BookingSubmitter
	identity  identity.Generator
	clock     clock.Clock
	window    config.BookingConfig
	logger    *slog.Logger
}

func NewBookingCommands(
	schedules ScheduleSource,
	submitter BookingSubmitter,
	gen identity.Generator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		schedules: schedules,
		submitter: submitter,
		identity:  gen,
		clock:     clk,
		window:    cfg.Booking,
		logger:    logger,
	}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, req reqdto.BookingRequest) (*BookingResult, error) {
	req = req.Normalized()

	// an unparsable date is left for Resolve to report against its field
	if day, err := venue.ParseDate(req.Date); err == nil {
		if err := b.checkWindow(day); err != nil {
			return nil, err
		}
	}

	schedule, err := b.schedules.Schedule(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	slot, err := booking.Resolve(schedule, req.Date, req.Place, req.StartTime)
	if err != nil {
		return nil, err
	}

	name, phone := identity.Fill(b.identity, req.Name, req.Phone)
	payload, err := booking.Assemble(slot, booking.Identity{UID: req.UID, Name: name, Phone: phone})
	if err != nil {
		return nil, errs.Wrap(err, "failed to assemble booking")
	}

	submissionID := uuid.New()
	if err := b.submitter.SubmitBooking(ctx, payload); err != nil {
		b.logger.Warn("booking submission failed",
			"submission_id", submissionID, "venue_id", req.VenueID, "date", slot.Date, "error", err)
		return nil, err
	}

	b.logger.Info("booking submitted",
		"submission_id", submissionID,
		"venue_id", req.VenueID,
		"date", slot.Date,
		"place", slot.Place.Title,
		"slot", slot.Interval.Label(),
	)
	return &BookingResult{SubmissionID: submissionID, Payload: payload}, nil
}

func (b *bookingCommandsImpl) checkWindow(day time.Time) error {
	first, last := venue.DateWindow(clock.Today(b.clock), b.window.LeadDays, b.window.LastDay)
	if day.Before(first) || day.After(last) {
		return errs.Wrapf(errs.ErrDateOutOfWindow, "%s is outside %s..%s",
			venue.FormatDate(day), venue.FormatDate(first), venue.FormatDate(last))
	}
	return nil
}
