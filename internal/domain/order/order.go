package order

import (
	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/textnorm"
)

// Order is a backend reservation snapshot. It is never modified after fetch apart
// from place-title normalization.
type Order struct {
	VenueID    int64
	PlaceTitle string
	StartTime  string
	EndTime    string
	Date       string
	State      string
	UID        string
	Name       string
	Phone      string
	CreateTime string
}

func (o Order) Normalized() Order {
	o.PlaceTitle = textnorm.PlaceTitle(o.PlaceTitle)
	return o
}

func (o Order) SlotLabel() string {
	return venue.SlotLabel(o.StartTime, o.EndTime)
}

func NormalizeAll(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Normalized()
	}
	return out
}
