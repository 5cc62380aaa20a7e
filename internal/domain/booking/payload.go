package booking

import (
	"gym-reserve/internal/domain/venue"
)

const (
	OrderStateSucceeded = "用户预约成功"
)

// Identity is filled in by the caller; blank name or phone must already be replaced.
type Identity struct {
	UID   string
	Name  string
	Phone string
}

// Payload is the order form accepted by the backend's addByUid endpoint.
type Payload struct {
	UID            string           `json:"uid"`
	PlaceID        venue.ExternalID `json:"place_id"`
	PlaceTitle     string           `json:"place_title"`
	IntervalID     venue.ExternalID `json:"interval_id"`
	StartTime      string           `json:"start_time"`
	EndTime        string           `json:"end_time"`
	OrderDate      string           `json:"order_date"`
	OrderPhone     string           `json:"order_phone"`
	OrderName      string           `json:"order_name"`
	OrderStudentID string           `json:"order_student_id"`
	GymID          int64            `json:"gym_id"`
	GymTitle       string           `json:"gym_title"`
	CategoryID     venue.ExternalID `json:"category_id"`
	CategoryTitle  string           `json:"category_title"`
	TeacherStatus  int              `json:"teacher_status"`
	IsAudit        int              `json:"is_audit"`
	StoreID        venue.ExternalID `json:"store_id"`
	OrderState     string           `json:"order_state"`
	IsAdmin        string           `json:"is_admin"`
}

type Envelope struct {
	Form Payload `json:"form"`
}

func Assemble(slot Slot, id Identity) (Payload, error) {
	if !slot.resolved {
		return Payload{}, ErrUnresolvedSlot
	}

	return Payload{
		UID:            id.UID,
		PlaceID:        slot.Place.ID,
		PlaceTitle:     slot.Place.Title,
		IntervalID:     slot.Interval.ID,
		StartTime:      slot.Interval.Start,
		EndTime:        slot.Interval.End,
		OrderDate:      slot.Date,
		OrderPhone:     id.Phone,
		OrderName:      id.Name,
		OrderStudentID: "",
		GymID:          slot.Venue.ID,
		GymTitle:       slot.Venue.Title,
		CategoryID:     slot.Venue.CategoryID,
		CategoryTitle:  slot.Venue.CategoryTitle,
		TeacherStatus:  0,
		IsAudit:        0,
		StoreID:        slot.Venue.StoreID,
		OrderState:     OrderStateSucceeded,
		IsAdmin:        "",
	}, nil
}
