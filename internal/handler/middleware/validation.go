package middleware

import (
	"regexp"
	"sync"

	"gym-reserve/internal/domain/venue"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	slotLabelPattern = regexp.MustCompile(`^\d{1,2}:\d{2}-\d{1,2}:\d{2}$`)
	registerOnce     sync.Once
	registerErr      error
)

// RegisterValidators adds the binding tags used by request DTOs:
// "ymd" for YYYY-MM-DD dates and "slotlabel" for HH:MM-HH:MM cells.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation("ymd", validateYMD); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("slotlabel", validateSlotLabel)
	})
	return registerErr
}

func validateYMD(fl validator.FieldLevel) bool {
	_, err := venue.ParseDate(fl.Field().String())
	return err == nil
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !slotLabelPattern.MatchString(s) {
		return false
	}
	_, err := venue.CanonicalSlotLabel(s)
	return err == nil
}
