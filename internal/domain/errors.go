package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidRange       = errors.New("end date must not be before start date")
	ErrInvalidSlotCount   = errors.New("a screening run needs exactly 3 weekly slots")
	ErrDuplicateWeekday   = errors.New("weekly slots must fall on 3 different weekdays")
	ErrInvalidCredentials = errors.New("invalid email or secret")
	ErrMissingField       = errors.New("email, secret and role are required")
	ErrDuplicateEmail     = errors.New("email is already in use")
	ErrSecretTooLong      = errors.New("secret must be at most 72 bytes long")
	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day, expected HH:MM")
)

type Entity string

const (
	EntityOwner        Entity = "owner"
	EntityFilm         Entity = "film"
	EntityCinema       Entity = "cinema"
	EntityActor        Entity = "actor"
	EntityScreeningRun Entity = "screening run"
)

// NotFoundError reports a referenced record that does not exist. It matches
// ErrRecordNotFound under errors.Is.
type NotFoundError struct {
	Entity Entity
}

func NewNotFoundError(entity Entity) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// IsNotFound reports whether err is a NotFoundError for the given entity.
func IsNotFound(err error, entity Entity) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Entity == entity
}

type ErrorKind string

const (
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindInvalidRange       ErrorKind = "INVALID_RANGE"
	KindInvalidSlotCount   ErrorKind = "INVALID_SLOT_COUNT"
	KindDuplicateWeekday   ErrorKind = "DUPLICATE_WEEKDAY"
	KindInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	KindMissingField       ErrorKind = "MISSING_FIELD"
	KindDuplicateEmail     ErrorKind = "DUPLICATE_EMAIL"
	KindInvalidSecret      ErrorKind = "INVALID_SECRET"
	KindInternal           ErrorKind = "INTERNAL"
)

// KindOf maps err onto the closed set of failure kinds callers can tell apart.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidRange):
		return KindInvalidRange
	case errors.Is(err, ErrInvalidSlotCount):
		return KindInvalidSlotCount
	case errors.Is(err, ErrDuplicateWeekday):
		return KindDuplicateWeekday
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrMissingField):
		return KindMissingField
	case errors.Is(err, ErrDuplicateEmail):
		return KindDuplicateEmail
	case errors.Is(err, ErrSecretTooLong):
		return KindInvalidSecret
	default:
		return KindInternal
	}
}
