package response

import (
	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/usecase/commands"
)

type BookingResponse struct {
	SubmissionID string          `json:"submission_id"`
	Form         booking.Payload `json:"form"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		SubmissionID: r.SubmissionID.String(),
		Form:         r.Payload,
	}
}
