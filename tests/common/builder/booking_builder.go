//go:build unit || e2e

package builder

import (
	reqdto "gym-reserve/internal/handler/dto/request"
)

type BookingBuilder struct {
	req reqdto.BookingRequest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		req: reqdto.BookingRequest{
			VenueID:   DefaultVenueID,
			Date:      "2024-01-08",
			Place:     "4",
			StartTime: "19:00",
			UID:       "2021001",
			Name:      "张三",
			Phone:     "13800000000",
		},
	}
}

func (b *BookingBuilder) With(mutate func(*reqdto.BookingRequest)) *BookingBuilder {
	mutate(&b.req)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return b.req
}

func (b *BookingBuilder) WithoutIdentity() *BookingBuilder {
	b.req.Name = ""
	b.req.Phone = ""
	return b
}
