package booking

import (
	"strings"

	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/textnorm"
)

// Slot is a concrete bookable (place, date, interval) for one venue.
type Slot struct {
	Venue    venue.Venue
	Place    venue.Place
	Interval venue.Interval
	Date     string

	resolved bool
}

func (s Slot) Start() string { return s.Interval.Start }
func (s Slot) End() string   { return s.Interval.End }

// Resolve turns a free-form request into the venue interval it refers to. The
// interval is venue-wide, so every place maps onto the same one for a given time.
func Resolve(s *venue.Schedule, date, placeLabel, startTime string) (Slot, error) {
	title := textnorm.PlaceTitle(placeLabel)
	placeID, ok := s.PlaceID(title)
	if !ok {
		return Slot{}, &SlotError{
			Kind:     KindUnknownPlace,
			Field:    "place",
			Input:    placeLabel,
			Expected: "one of " + strings.Join(s.PlaceTitles(), ", "),
		}
	}

	start, end, err := venue.SlotBounds(strings.TrimSpace(textnorm.ConvertSymbols(startTime)))
	if err != nil {
		return Slot{}, &SlotError{Kind: KindBadTime, Field: "start_time", Input: startTime, Expected: "HH:MM, 24-hour"}
	}

	day, err := venue.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return Slot{}, &SlotError{Kind: KindBadDate, Field: "order_date", Input: date, Expected: "YYYY-MM-DD"}
	}
	weekday := venue.WeekdayOf(day)

	iv, ok := s.Lookup(weekday, start, end)
	if !ok {
		return Slot{}, &SlotError{
			Kind:     KindNoSuchSlot,
			Field:    "start_time",
			Input:    startTime,
			Expected: "a start time listed for " + venue.FormatDate(day) + " (" + availableStarts(s, weekday) + ")",
		}
	}
	if iv.Reserved {
		return Slot{}, &SlotError{
			Kind:     KindSlotReserved,
			Field:    "start_time",
			Input:    startTime,
			Expected: "a slot not held by the venue",
		}
	}

	return Slot{
		Venue:    s.Venue(),
		Place:    venue.Place{Title: title, ID: placeID},
		Interval: iv,
		Date:     venue.FormatDate(day),
		resolved: true,
	}, nil
}

func availableStarts(s *venue.Schedule, weekday int) string {
	var starts []string
	for _, iv := range s.IntervalsOn(weekday) {
		if iv.Bookable() {
			starts = append(starts, iv.Start)
		}
	}
	if len(starts) == 0 {
		return "none"
	}
	return strings.Join(starts, ", ")
}
