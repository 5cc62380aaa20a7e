package infra

import (
	"errors"

	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/pkg/errs"
)

type BackendErrorKind string

type BackendError struct {
	Kind BackendErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e BackendError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

// Is lets callers match on the layer-neutral sentinels instead of the kind.
func (e BackendError) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == errs.ErrBackendUnavailable
	case KindRejected:
		return target == errs.ErrBookingRejected
	case KindDataShape:
		return target == venue.ErrDataShape
	}
	return false
}

// WrapBackendErr classifies a backend failure. It does not log; the caller that
// knows the venue and date does.
func WrapBackendErr(kind BackendErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return BackendError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Backend error kinds
const (
	KindTransport BackendErrorKind = "TRANSPORT"
	KindDataShape BackendErrorKind = "DATA_SHAPE"
	KindRejected  BackendErrorKind = "REJECTED"
)
