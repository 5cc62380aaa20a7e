//go:build unit || e2e

package builder

import (
	"gym-reserve/internal/domain/venue"
)

const (
	DefaultVenueID = int64(10001)
)

type ScheduleBuilder struct {
	VenueID int64
	Detail  venue.Detail
}

// NewScheduleBuilder returns a venue with courts 4号 (id 77) and 5号 (id 78) and a
// Monday evening: 19:00-20:00 open (interval 501), 20:00-21:00 held (interval 502).
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		VenueID: DefaultVenueID,
		Detail: venue.Detail{
			Title:         "羽毛球馆",
			CategoryID:    venue.NumericID(3),
			CategoryTitle: "羽毛球",
			StoreID:       venue.NumericID(9),
			Places: []venue.PlaceDetail{
				{Title: "场地4号", ID: venue.NumericID(77)},
				{Title: "场地5号", ID: venue.NumericID(78)},
			},
			Intervals: []venue.IntervalDetail{
				{ID: venue.NumericID(501), Weekday: 1, Start: "19:00", End: "20:00", Reserve: Bool(false)},
				{ID: venue.NumericID(502), Weekday: 1, Start: "20:00", End: "21:00", Reserve: Bool(true)},
			},
		},
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(b)
	return b
}

func (b *ScheduleBuilder) BuildDomain() (*venue.Schedule, error) {
	return venue.NewSchedule(b.VenueID, b.Detail)
}

// MustBuild panics on a malformed fixture; use BuildDomain when the error is under test.
func (b *ScheduleBuilder) MustBuild() *venue.Schedule {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

// Fluent builder methods
func (b *ScheduleBuilder) WithVenueID(id int64) *ScheduleBuilder {
	b.VenueID = id
	return b
}

func (b *ScheduleBuilder) WithPlace(title string, id int64) *ScheduleBuilder {
	b.Detail.Places = append(b.Detail.Places, venue.PlaceDetail{Title: title, ID: venue.NumericID(id)})
	return b
}

func (b *ScheduleBuilder) WithInterval(id int64, weekday int, start, end string, reserve *bool) *ScheduleBuilder {
	b.Detail.Intervals = append(b.Detail.Intervals, venue.IntervalDetail{
		ID:      venue.NumericID(id),
		Weekday: weekday,
		Start:   start,
		End:     end,
		Reserve: reserve,
	})
	return b
}

func (b *ScheduleBuilder) WithoutIntervals() *ScheduleBuilder {
	b.Detail.Intervals = nil
	return b
}

func (b *ScheduleBuilder) WithoutPlaces() *ScheduleBuilder {
	b.Detail.Places = nil
	return b
}

func Bool(v bool) *bool {
	return &v
}
