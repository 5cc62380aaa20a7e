package queries

import (
	"context"
	"errors"
	"slices"
	"time"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/occupancy"
	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/clock"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/internal/pkg/errs"
	"gym-reserve/internal/pkg/textnorm"
	"gym-reserve/internal/usecase/session"
)

type OccupancySource interface {
	Schedule(ctx context.Context, venueID int64) (*venue.Schedule, error)
	Venues(ctx context.Context) ([]venue.Venue, error)
	Occupancy(ctx context.Context, venueID int64, date time.Time) (session.Snapshot, error)
	ToggleFilter(ctx context.Context, venueID int64, date string, cell occupancy.CellKey) ([]order.Order, *occupancy.CellKey, error)
}

type OccupancyQueries interface {
	Venues(ctx context.Context) ([]VenueView, error)
	BookableDates() []DateView
	Occupancy(ctx context.Context, venueID int64, date string, opts ListOptions) (*OccupancyView, error)
	ToggleFilter(ctx context.Context, venueID int64, date, place, slot string, opts ListOptions) (*FilterView, error)
}

type occupancyQueriesImpl struct {
	source OccupancySource
	clock  clock.Clock
	window config.BookingConfig
}

func NewOccupancyQueries(source OccupancySource, clk clock.Clock, cfg config.Config) OccupancyQueries {
	return &occupancyQueriesImpl{
		source: source,
		clock:  clk,
		window: cfg.Booking,
	}
}

func (q *occupancyQueriesImpl) Venues(ctx context.Context) ([]VenueView, error) {
	venues, err := q.source.Venues(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]VenueView, 0, len(venues))
	for _, v := range venues {
		s, err := q.source.Schedule(ctx, v.ID)
		if err != nil {
			// dropped between the two calls by a refresh
			continue
		}
		views = append(views, VenueView{
			ID:            v.ID,
			Title:         v.Title,
			CategoryTitle: v.CategoryTitle,
			Places:        s.PlaceTitles(),
		})
	}
	return views, nil
}

func (q *occupancyQueriesImpl) BookableDates() []DateView {
	first, last := venue.DateWindow(clock.Today(q.clock), q.window.LeadDays, q.window.LastDay)
	days := venue.DatesIn(first, last)
	views := make([]DateView, len(days))
	for i, d := range days {
		views[i] = DateView{Date: venue.FormatDate(d), Weekday: venue.WeekdayOf(d)}
	}
	return views
}

func (q *occupancyQueriesImpl) Occupancy(ctx context.Context, venueID int64, date string, opts ListOptions) (*OccupancyView, error) {
	list, err := parseListOptions(opts)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	snap, err := q.source.Occupancy(ctx, venueID, day)
	noSlots := errors.Is(err, occupancy.ErrNoSlots)
	if err != nil && !noSlots {
		return nil, err
	}

	orders := list.apply(slices.Clone(snap.Orders))

	g := snap.Grid
	view := &OccupancyView{
		VenueID: venueID,
		Date:    g.Date,
		Weekday: g.Weekday,
		Slots:   make([]string, len(g.Slots)),
		Rows:    make([]RowView, 0, len(g.Places)),
		Counts: map[occupancy.Status]int{
			occupancy.StatusAvailable: g.Count(occupancy.StatusAvailable),
			occupancy.StatusBooked:    g.Count(occupancy.StatusBooked),
			occupancy.StatusReserved:  g.Count(occupancy.StatusReserved),
		},
		Orders:  orders,
		NoSlots: noSlots,
	}
	for i, ts := range g.Slots {
		view.Slots[i] = ts.Label()
	}
	for _, place := range g.Places {
		row := RowView{Place: place, Cells: make([]CellView, 0, len(g.Slots))}
		for _, label := range view.Slots {
			cell, _ := g.Cell(occupancy.CellKey{Place: place, Slot: label})
			row.Cells = append(row.Cells, CellView{Slot: label, Status: cell.Status, Order: cell.Order})
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

// ToggleFilter narrows the order list to one grid cell, or clears the narrowing when
// the same cell is toggled again. Only cells of the date's grid can be toggled.
func (q *occupancyQueriesImpl) ToggleFilter(ctx context.Context, venueID int64, date, place, slot string, opts ListOptions) (*FilterView, error) {
	list, err := parseListOptions(opts)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	s, err := q.source.Schedule(ctx, venueID)
	if err != nil {
		return nil, err
	}
	cell, err := gridCell(s, day, place, slot)
	if err != nil {
		return nil, err
	}

	orders, active, err := q.source.ToggleFilter(ctx, venueID, venue.FormatDate(day), cell)
	if err != nil {
		return nil, err
	}

	return &FilterView{VenueID: venueID, Date: venue.FormatDate(day), Filter: active, Orders: list.apply(orders)}, nil
}

func gridCell(s *venue.Schedule, day time.Time, place, slot string) (occupancy.CellKey, error) {
	label, err := venue.CanonicalSlotLabel(textnorm.ConvertSymbols(slot))
	if err != nil {
		return occupancy.CellKey{}, errs.Wrapf(errs.ErrInvalidFilterKey, "slot %q: %v", slot, err)
	}
	key := occupancy.CellKey{Place: textnorm.PlaceTitle(place), Slot: label}

	if _, ok := s.PlaceID(key.Place); !ok {
		return occupancy.CellKey{}, errs.Wrapf(errs.ErrInvalidFilterKey, "no place %q", key.Place)
	}
	for _, iv := range s.IntervalsOn(venue.WeekdayOf(day)) {
		if iv.Label() == key.Slot {
			return key, nil
		}
	}
	return occupancy.CellKey{}, errs.Wrapf(errs.ErrInvalidFilterKey, "no slot %s on %s", key.Slot, venue.FormatDate(day))
}

func parseDate(date string) (time.Time, error) {
	day, err := venue.ParseDate(date)
	if err != nil {
		return time.Time{}, &booking.SlotError{Kind: booking.KindBadDate, Field: "date", Input: date, Expected: "YYYY-MM-DD"}
	}
	return day, nil
}

type listShape struct {
	keys    []order.SortKey
	filters []order.ColumnFilter
}

func parseListOptions(opts ListOptions) (listShape, error) {
	keys, err := order.ParseSortKeys(opts.Sort)
	if err != nil {
		return listShape{}, errs.Wrapf(errs.ErrInvalidSortKey, "sort %q: %v", opts.Sort, err)
	}
	filters, err := order.ParseFilters(opts.Filter)
	if err != nil {
		return listShape{}, errs.Wrapf(errs.ErrInvalidFilterKey, "filter %q: %v", opts.Filter, err)
	}
	return listShape{keys: keys, filters: filters}, nil
}

func (l listShape) apply(orders []order.Order) []order.Order {
	orders = order.Filter(orders, l.filters)
	order.Sort(orders, l.keys)
	return orders
}
