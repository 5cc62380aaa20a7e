//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/venue"
	reqdto "gym-reserve/internal/handler/dto/request"
	"gym-reserve/internal/pkg/clock"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/usecase/commands"
	"gym-reserve/tests/common/builder"
	commandsmock "gym-reserve/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIdentity struct{}

func (fixedIdentity) Name() string  { return "李四" }
func (fixedIdentity) Phone() string { return "13911112222" }

type bookingFixture struct {
	schedules *commandsmock.MockScheduleSource
	submitter *commandsmock.MockBookingSubmitter
	commands  commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	// Thursday; the bookable window is 2024-01-08 .. 2024-01-11
	clk := clock.NewMockClock(time.Date(2024, 1, 4, 9, 30, 0, 0, loc))
	f := &bookingFixture{
		schedules: commandsmock.NewMockScheduleSource(ctrl),
		submitter: commandsmock.NewMockBookingSubmitter(ctrl),
	}
	f.commands = commands.NewBookingCommands(
		f.schedules, f.submitter, fixedIdentity{}, clk, config.NewTestConfig(), slog.New(slog.DiscardHandler),
	)
	return f
}

func baseRequest() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		VenueID:   builder.DefaultVenueID,
		Date:      "2024-01-08",
		Place:     "4",
		StartTime: "19:00",
		UID:       "U1",
		Name:      "张三",
		Phone:     "13800000000",
	}
}

func TestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("success: resolved slot is submitted as the order form", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedules.EXPECT().Schedule(gomock.Any(), builder.DefaultVenueID).
			Return(builder.NewScheduleBuilder().MustBuild(), nil)

		var sent booking.Payload
		f.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p booking.Payload) error {
				sent = p
				return nil
			})

		res, err := f.commands.Book(ctx, baseRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.SubmissionID)

		want := booking.Payload{
			UID:           "U1",
			PlaceID:       venue.NumericID(77),
			PlaceTitle:    "4号",
			IntervalID:    venue.NumericID(501),
			StartTime:     "19:00",
			EndTime:       "20:00",
			OrderDate:     "2024-01-08",
			OrderPhone:    "13800000000",
			OrderName:     "张三",
			GymID:         builder.DefaultVenueID,
			GymTitle:      "羽毛球馆",
			CategoryID:    venue.NumericID(3),
			CategoryTitle: "羽毛球",
			StoreID:       venue.NumericID(9),
			OrderState:    booking.OrderStateSucceeded,
		}
		if diff := cmp.Diff(want, res.Payload); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, res.Payload, sent)
	})

	t.Run("success: blank name and phone are generated", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedules.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(builder.NewScheduleBuilder().MustBuild(), nil)
		f.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Return(nil)

		req := baseRequest()
		req.Name = ""
		req.Phone = " "
		res, err := f.commands.Book(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "李四", res.Payload.OrderName)
		assert.Equal(t, "13911112222", res.Payload.OrderPhone)
	})

	t.Run("success: full-width input is converted", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedules.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(builder.NewScheduleBuilder().MustBuild(), nil)
		f.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Return(nil)

		req := baseRequest()
		req.StartTime = "19：00"
		req.Place = " 场地4号 "
		res, err := f.commands.Book(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "19:00", res.Payload.StartTime)
		assert.Equal(t, "4号", res.Payload.PlaceTitle)
	})

	t.Run("error: resolution failures never reach the backend", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*reqdto.BookingRequest)
			errIs  error
			field  string
		}{
			{"held interval", func(r *reqdto.BookingRequest) { r.StartTime = "20:00" }, booking.ErrSlotReserved, "start_time"},
			{"unknown place", func(r *reqdto.BookingRequest) { r.Place = "9" }, booking.ErrUnknownPlace, "place"},
			{"malformed time", func(r *reqdto.BookingRequest) { r.StartTime = "7pm" }, booking.ErrBadTime, "start_time"},
			{"no interval at that time", func(r *reqdto.BookingRequest) { r.StartTime = "08:00" }, booking.ErrNoSuchSlot, "start_time"},
			{"malformed date", func(r *reqdto.BookingRequest) { r.Date = "2024/01/08" }, booking.ErrBadDate, "order_date"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newBookingFixture(t)
				f.schedules.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(builder.NewScheduleBuilder().MustBuild(), nil)

				req := baseRequest()
				tt.mutate(&req)
				res, err := f.commands.Book(ctx, req)

				assert.Nil(t, res)
				require.ErrorIs(t, err, tt.errIs)
				var slotErr *booking.SlotError
				require.ErrorAs(t, err, &slotErr)
				assert.Equal(t, tt.field, slotErr.Field)
			})
		}
	})

	t.Run("error: date outside the bookable window", func(t *testing.T) {
		for _, date := range []string{"2024-01-07", "2024-01-12", "2023-12-31"} {
			t.Run(date, func(t *testing.T) {
				f := newBookingFixture(t)

				req := baseRequest()
				req.Date = date
				_, err := f.commands.Book(ctx, req)
				assert.ErrorIs(t, err, errs.ErrDateOutOfWindow)
			})
		}
	})

	t.Run("error: window edges are bookable", func(t *testing.T) {
		f := newBookingFixture(t)
		sch := builder.NewScheduleBuilder().WithInterval(601, 4, "19:00", "20:00", builder.Bool(false)).MustBuild()
		f.schedules.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(sch, nil)
		f.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Return(nil)

		req := baseRequest()
		req.Date = "2024-01-11"
		res, err := f.commands.Book(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, venue.NumericID(601), res.Payload.IntervalID)
	})

	t.Run("error: unknown venue", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedules.EXPECT().Schedule(gomock.Any(), int64(42)).Return(nil, errs.ErrVenueNotFound)

		req := baseRequest()
		req.VenueID = 42
		_, err := f.commands.Book(ctx, req)
		assert.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("error: backend failure is surfaced as is", func(t *testing.T) {
		f := newBookingFixture(t)
		backendErr := errors.New("addByUid: 502 Bad Gateway")
		f.schedules.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(builder.NewScheduleBuilder().MustBuild(), nil)
		f.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Return(backendErr)

		_, err := f.commands.Book(ctx, baseRequest())
		assert.Equal(t, backendErr, err)
	})
}
