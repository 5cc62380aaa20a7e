package queries

import (
	"gym-reserve/internal/domain/occupancy"
	"gym-reserve/internal/domain/order"
)

// VenueView is a selectable venue with its courts in display order
type VenueView struct {
	ID            int64
	Title         string
	CategoryTitle string
	Places        []string
}

type DateView struct {
	Date    string
	Weekday int
}

type CellView struct {
	Slot   string
	Status occupancy.Status
	Order  *order.Order
}

type RowView struct {
	Place string
	Cells []CellView
}

// ListOptions shapes an order list. Sort uses order.ParseSortKeys syntax and Filter
// order.ParseFilters syntax; both may be empty.
type ListOptions struct {
	Sort   string
	Filter string
}

// OccupancyView is the grid of one venue/date plus its order list.
// NoSlots is set when the date's weekday has no intervals at all.
type OccupancyView struct {
	VenueID int64
	Date    string
	Weekday int
	Slots   []string
	Rows    []RowView
	Counts  map[occupancy.Status]int
	Orders  []order.Order
	NoSlots bool
}

type FilterView struct {
	VenueID int64
	Date    string
	Filter  *occupancy.CellKey
	Orders  []order.Order
}
