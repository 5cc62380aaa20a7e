package occupancy

import (
	"errors"
	"slices"
	"time"

	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"
)

var (
	ErrNoSlots = errors.New("no slots scheduled on this date")
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
	StatusReserved  Status = "RESERVED"
)

type CellKey struct {
	Place string
	Slot  string
}

type TimeSlot struct {
	Start string
	End   string
}

func (ts TimeSlot) Label() string {
	return venue.SlotLabel(ts.Start, ts.End)
}

// Cell holds the status of one (place, slot); Order is set only when BOOKED.
type Cell struct {
	Status Status
	Order  *order.Order
}

type Grid struct {
	VenueID int64
	Date    string
	Weekday int
	Places  []string
	Slots   []TimeSlot

	cells map[CellKey]Cell
}

func (g *Grid) Cell(key CellKey) (Cell, bool) {
	c, ok := g.cells[key]
	return c, ok
}

func (g *Grid) Empty() bool {
	return len(g.Slots) == 0
}

func (g *Grid) Count(status Status) int {
	n := 0
	for _, c := range g.cells {
		if c.Status == status {
			n++
		}
	}
	return n
}

// BuildGrid classifies every (place, slot) of date's weekday. Orders must carry
// normalized place titles. A weekday without intervals yields an empty grid and ErrNoSlots.
func BuildGrid(s *venue.Schedule, date time.Time, orders []order.Order) (*Grid, error) {
	weekday := venue.WeekdayOf(date)
	g := &Grid{
		VenueID: s.Venue().ID,
		Date:    venue.FormatDate(date),
		Weekday: weekday,
		Places:  s.PlaceTitles(),
		cells:   make(map[CellKey]Cell),
	}

	intervals := s.IntervalsOn(weekday)
	if len(intervals) == 0 {
		return g, ErrNoSlots
	}
	g.Slots = dedupeSlots(intervals)

	for _, place := range g.Places {
		for _, slot := range g.Slots {
			g.cells[CellKey{Place: place, Slot: slot.Label()}] = Cell{Status: StatusAvailable}
		}
	}

	for i := range orders {
		key := CellKey{Place: orders[i].PlaceTitle, Slot: orders[i].SlotLabel()}
		cell, ok := g.cells[key]
		if !ok || cell.Status == StatusBooked {
			continue
		}
		o := orders[i]
		g.cells[key] = Cell{Status: StatusBooked, Order: &o}
	}

	// a confirmed order on a held slot stays BOOKED
	for _, iv := range intervals {
		if iv.Bookable() {
			continue
		}
		for _, place := range g.Places {
			key := CellKey{Place: place, Slot: iv.Label()}
			if g.cells[key].Status == StatusBooked {
				continue
			}
			g.cells[key] = Cell{Status: StatusReserved}
		}
	}

	return g, nil
}

func dedupeSlots(intervals []venue.Interval) []TimeSlot {
	seen := make(map[TimeSlot]struct{}, len(intervals))
	slots := make([]TimeSlot, 0, len(intervals))
	for _, iv := range intervals {
		ts := TimeSlot{Start: iv.Start, End: iv.End}
		if _, ok := seen[ts]; ok {
			continue
		}
		seen[ts] = struct{}{}
		slots = append(slots, ts)
	}

	slices.SortFunc(slots, func(a, b TimeSlot) int {
		if c := clockOf(a.Start).Compare(clockOf(b.Start)); c != 0 {
			return c
		}
		return clockOf(a.End).Compare(clockOf(b.End))
	})
	return slots
}

// schedule intervals are validated at build time, so parse errors cannot occur here
func clockOf(s string) time.Time {
	t, _ := venue.ParseClock(s)
	return t
}
