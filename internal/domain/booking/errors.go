package booking

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlace   = errors.New("unknown place")
	ErrBadTime        = errors.New("bad start time")
	ErrBadDate        = errors.New("bad order date")
	ErrNoSuchSlot     = errors.New("no such slot")
	ErrSlotReserved   = errors.New("slot is reserved by the venue")
	ErrUnresolvedSlot = errors.New("slot was not resolved")
)

type SlotErrorKind string

const (
	KindUnknownPlace SlotErrorKind = "UNKNOWN_PLACE"
	KindBadTime      SlotErrorKind = "BAD_TIME"
	KindBadDate      SlotErrorKind = "BAD_DATE"
	KindNoSuchSlot   SlotErrorKind = "NO_SUCH_SLOT"
	KindSlotReserved SlotErrorKind = "SLOT_RESERVED"
)

var kindSentinels = map[SlotErrorKind]error{
	KindUnknownPlace: ErrUnknownPlace,
	KindBadTime:      ErrBadTime,
	KindBadDate:      ErrBadDate,
	KindNoSuchSlot:   ErrNoSuchSlot,
	KindSlotReserved: ErrSlotReserved,
}

// SlotError carries enough context for the requester to fix the input.
type SlotError struct {
	Kind     SlotErrorKind
	Field    string
	Input    string
	Expected string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s %q, expected %s", string(e.Kind), e.Field, e.Input, e.Expected)
}

func (e *SlotError) Unwrap() error {
	return kindSentinels[e.Kind]
}

func IsKind(err error, kind SlotErrorKind) bool {
	var e *SlotError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
