package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSpotNotFound    = errors.New("spot not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrImageNotFound   = errors.New("image not found")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

var (
	ErrStartDateInPast      = fmt.Errorf("%w: startDate cannot be in the past", ErrValidation)
	ErrEndBeforeStart       = fmt.Errorf("%w: endDate cannot be on or before startDate", ErrValidation)
	ErrPastBookingImmutable = errors.New("past bookings can't be modified")
	ErrBookingConflict      = errors.New("spot is already booked for the specified dates")
	ErrBookingStarted       = errors.New("bookings that have been started can't be deleted")
	ErrOwnSpotBooking       = errors.New("spot owner cannot book their own spot")
)

var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrEmailTaken        = errors.New("email is already taken")
	ErrAlreadyReviewed   = errors.New("user already has a review for this spot")
	ErrImageLimitReached = errors.New("maximum number of images for this resource was reached")
)

// FieldError is a rejection that names the request fields at fault.
type FieldError struct {
	Err    error
	Fields map[string]string
}

func NewFieldError(err error, field, message string) *FieldError {
	return &FieldError{Err: err, Fields: map[string]string{field: message}}
}

func (e *FieldError) Error() string {
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), strings.Join(parts, "; "))
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
