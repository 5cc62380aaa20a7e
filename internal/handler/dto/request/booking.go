package request

import (
	"strings"

	"gym-reserve/internal/pkg/textnorm"
)

// BookingRequest carries the requester's free-form slot choice. Place and start time
// are resolved against the venue schedule, so only presence is checked here.
type BookingRequest struct {
	VenueID   int64  `json:"venueId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
	Place     string `json:"place" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	UID       string `json:"uid" binding:"required"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Normalized converts full-width punctuation in every free-text field and trims it.
func (r BookingRequest) Normalized() BookingRequest {
	clean := func(s string) string { return strings.TrimSpace(textnorm.ConvertSymbols(s)) }
	r.Date = clean(r.Date)
	r.Place = clean(r.Place)
	r.StartTime = clean(r.StartTime)
	r.UID = clean(r.UID)
	r.Name = clean(r.Name)
	r.Phone = clean(r.Phone)
	return r
}
