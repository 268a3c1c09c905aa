package validator

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

const (
	ErrRequired     = "is required"
	ErrInvalidEmail = "must be a valid email address"
	ErrMinLength    = "must be at least %s characters long"
	ErrMaxLength    = "must be at most %s characters long"
	ErrMaxItems     = "must contain at most %s items"
	ErrMaxBytes     = "must be at most %s bytes long"
	ErrWeekday      = "must be one of MONDAY, TUESDAY, WEDNESDAY, THURSDAY, FRIDAY, SATURDAY, SUNDAY"
	ErrTimeOfDay    = "must be a time of day in HH:MM format"
	ErrInvalid      = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("weekday", validateWeekday)
	validator.RegisterValidation("time_of_day", validateTimeOfDay)
	validator.RegisterValidation("max_bytes", validateMaxBytes)

	return validator
}

func validateWeekday(fl validator.FieldLevel) bool {
	var raw string

	switch v := fl.Field().Interface().(type) {
	case api.Weekday:
		raw = string(v)
	case string:
		raw = v
	default:
		return false
	}

	_, err := domain.ParseWeekday(raw)
	return err == nil
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := domain.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

// validateMaxBytes bounds the UTF-8 encoded length of a string, unlike max
// which counts runes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if err.Kind().String() == "slice" {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "max_bytes":
		return fmt.Sprintf(ErrMaxBytes, err.Param())
	case "weekday":
		return ErrWeekday
	case "time_of_day":
		return ErrTimeOfDay
	default:
		return ErrInvalid
	}
}
