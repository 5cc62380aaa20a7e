//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/venue"
	"gym-reserve/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monday = "2024-01-08"

func TestResolve(t *testing.T) {
	schedule := builder.NewScheduleBuilder().
		WithInterval(601, 0, "09:00", "10:00", builder.Bool(false)).
		MustBuild()

	t.Run("bookable interval resolves", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, monday, "4", "19:00")
		require.NoError(t, err)

		assert.Equal(t, venue.NumericID(501), slot.Interval.ID)
		assert.Equal(t, "20:00", slot.End())
		assert.Equal(t, "4号", slot.Place.Title)
		assert.Equal(t, venue.NumericID(77), slot.Place.ID)
		assert.Equal(t, monday, slot.Date)
		assert.Equal(t, builder.DefaultVenueID, slot.Venue.ID)
	})

	t.Run("same interval for every place", func(t *testing.T) {
		a, err := booking.Resolve(schedule, monday, "4", "19:00")
		require.NoError(t, err)
		b, err := booking.Resolve(schedule, monday, "场地5号", "19:00")
		require.NoError(t, err)

		assert.Equal(t, a.Interval, b.Interval)
		assert.NotEqual(t, a.Place, b.Place)
	})

	t.Run("sunday uses weekday zero", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, "2024-01-07", "5号", "09:00")
		require.NoError(t, err)
		assert.Equal(t, venue.NumericID(601), slot.Interval.ID)
	})

	t.Run("unpadded backend times still resolve", func(t *testing.T) {
		unpadded := builder.NewScheduleBuilder().
			WithInterval(602, 1, "9:00", "10:00", builder.Bool(false)).
			MustBuild()

		for _, input := range []string{"9:00", "09:00"} {
			slot, err := booking.Resolve(unpadded, monday, "4", input)
			require.NoError(t, err, input)
			assert.Equal(t, venue.NumericID(602), slot.Interval.ID)
			assert.Equal(t, "09:00", slot.Start())
		}
	})

	t.Run("full-width input is normalized", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, " 2024-01-08 ", " 4号场 ", "19：00")
		require.NoError(t, err)
		assert.Equal(t, venue.NumericID(501), slot.Interval.ID)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name  string
			date  string
			place string
			start string
			errIs error
			kind  booking.SlotErrorKind
			field string
		}{
			{name: "unknown place", date: monday, place: "9", start: "19:00", errIs: booking.ErrUnknownPlace, kind: booking.KindUnknownPlace, field: "place"},
			{name: "start not a time", date: monday, place: "4", start: "7pm", errIs: booking.ErrBadTime, kind: booking.KindBadTime, field: "start_time"},
			{name: "start with seconds", date: monday, place: "4", start: "19:00:00", errIs: booking.ErrBadTime, kind: booking.KindBadTime, field: "start_time"},
			{name: "date not a date", date: "2024/01/08", place: "4", start: "19:00", errIs: booking.ErrBadDate, kind: booking.KindBadDate, field: "order_date"},
			{name: "no interval at that time", date: monday, place: "4", start: "18:00", errIs: booking.ErrNoSuchSlot, kind: booking.KindNoSuchSlot, field: "start_time"},
			{name: "no interval that weekday", date: "2024-01-09", place: "4", start: "19:00", errIs: booking.ErrNoSuchSlot, kind: booking.KindNoSuchSlot, field: "start_time"},
			{name: "held by the venue", date: monday, place: "4", start: "20:00", errIs: booking.ErrSlotReserved, kind: booking.KindSlotReserved, field: "start_time"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.Resolve(schedule, tc.date, tc.place, tc.start)
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, booking.IsKind(err, tc.kind))

				var slotErr *booking.SlotError
				require.ErrorAs(t, err, &slotErr)
				assert.Equal(t, tc.field, slotErr.Field)
				assert.NotEmpty(t, slotErr.Expected)
			})
		}
	})

	t.Run("unknown place lists the valid ones", func(t *testing.T) {
		_, err := booking.Resolve(schedule, monday, "9", "19:00")

		var slotErr *booking.SlotError
		require.ErrorAs(t, err, &slotErr)
		assert.Contains(t, slotErr.Expected, "4号")
		assert.Contains(t, slotErr.Expected, "5号")
	})
}

func TestResolveEveryScheduledInterval(t *testing.T) {
	b := builder.NewScheduleBuilder().WithoutIntervals()
	id := int64(1000)
	for weekday := 0; weekday < 7; weekday++ {
		for _, start := range []string{"08:00", "12:00", "19:00"} {
			_, end, err := venue.SlotBounds(start)
			require.NoError(t, err)
			id++
			b.WithInterval(id, weekday, start, end, builder.Bool(weekday%2 == 0))
		}
	}
	schedule := b.MustBuild()

	// 2024-01-07 is a Sunday, so day offset == weekday
	for _, iv := range schedule.Intervals() {
		date := "2024-01-" + []string{"07", "08", "09", "10", "11", "12", "13"}[iv.Weekday]

		slot, err := booking.Resolve(schedule, date, "4", iv.Start)
		if iv.Reserved {
			assert.ErrorIs(t, err, booking.ErrSlotReserved, "%s %s", date, iv.Start)
			continue
		}
		require.NoError(t, err, "%s %s", date, iv.Start)
		assert.Equal(t, iv.ID, slot.Interval.ID)
	}
}

func TestAssemble(t *testing.T) {
	schedule := builder.NewScheduleBuilder().MustBuild()

	t.Run("payload carries the resolved ids", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, monday, "4", "19:00")
		require.NoError(t, err)

		payload, err := booking.Assemble(slot, booking.Identity{UID: "U1", Name: "张三", Phone: "13800000000"})
		require.NoError(t, err)

		expected := booking.Payload{
			UID:           "U1",
			PlaceID:       venue.NumericID(77),
			PlaceTitle:    "4号",
			IntervalID:    venue.NumericID(501),
			StartTime:     "19:00",
			EndTime:       "20:00",
			OrderDate:     monday,
			OrderPhone:    "13800000000",
			OrderName:     "张三",
			GymID:         builder.DefaultVenueID,
			GymTitle:      "羽毛球馆",
			CategoryID:    venue.NumericID(3),
			CategoryTitle: "羽毛球",
			StoreID:       venue.NumericID(9),
			OrderState:    booking.OrderStateSucceeded,
		}
		assert.Equal(t, expected, payload)
	})

	t.Run("wire format", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, monday, "4", "19:00")
		require.NoError(t, err)
		payload, err := booking.Assemble(slot, booking.Identity{UID: "U1", Name: "n", Phone: "p"})
		require.NoError(t, err)

		b, err := json.Marshal(booking.Envelope{Form: payload})
		require.NoError(t, err)

		assert.JSONEq(t, `{"form": {
			"uid": "U1",
			"place_id": 77,
			"place_title": "4号",
			"interval_id": 501,
			"start_time": "19:00",
			"end_time": "20:00",
			"order_date": "2024-01-08",
			"order_phone": "p",
			"order_name": "n",
			"order_student_id": "",
			"gym_id": 10001,
			"gym_title": "羽毛球馆",
			"category_id": 3,
			"category_title": "羽毛球",
			"teacher_status": 0,
			"is_audit": 0,
			"store_id": 9,
			"order_state": "用户预约成功",
			"is_admin": ""
		}}`, string(b))
	})

	t.Run("unresolved slot is rejected", func(t *testing.T) {
		_, err := booking.Assemble(booking.Slot{}, booking.Identity{UID: "U1"})
		require.ErrorIs(t, err, booking.ErrUnresolvedSlot)
	})

	t.Run("reserved slot never reaches assembly", func(t *testing.T) {
		slot, err := booking.Resolve(schedule, monday, "4", "20:00")
		require.ErrorIs(t, err, booking.ErrSlotReserved)

		_, err = booking.Assemble(slot, booking.Identity{UID: "U1"})
		require.ErrorIs(t, err, booking.ErrUnresolvedSlot)
	})
}
