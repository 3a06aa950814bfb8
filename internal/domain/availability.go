package domain

import "time"

// AvailabilityCheck decides whether a date range can be booked on a spot.
// It performs no I/O; Today is the caller's notion of the current date.
type AvailabilityCheck struct {
	Candidate DateRange
	// Existing holds the bookings on record for the spot.
	Existing []*Booking
	Today    time.Time
	// Edited is the booking being changed, nil when creating. It is skipped
	// in Existing and must not have elapsed yet.
	Edited *Booking
}

// Validate returns nil when the candidate may be persisted. Preconditions are
// checked in order and the first failure wins; overlaps are inclusive, so a
// range sharing a boundary day with another booking is rejected.
func (c AvailabilityCheck) Validate() error {
	today := DateOf(c.Today)
	start, end := c.Candidate.Start, c.Candidate.End

	if start.Before(today) {
		return NewFieldError(ErrStartDateInPast, "startDate", "startDate cannot be in the past")
	}

	if !start.Before(end) {
		return NewFieldError(ErrEndBeforeStart, "endDate", "endDate cannot be on or before startDate")
	}

	if c.Edited != nil && c.Edited.Elapsed(today) {
		return ErrPastBookingImmutable
	}

	for _, b := range c.Existing {
		if c.Edited != nil && b.ID == c.Edited.ID {
			continue
		}
		if err := conflict(c.Candidate, b.Range()); err != nil {
			return err
		}
	}

	return nil
}

func conflict(candidate, existing DateRange) error {
	switch {
	case existing.Contains(candidate.Start):
		return NewFieldError(ErrBookingConflict, "startDate", "Start date conflicts with an existing booking")
	case existing.Contains(candidate.End):
		return NewFieldError(ErrBookingConflict, "endDate", "End date conflicts with an existing booking")
	case !candidate.Start.After(existing.Start) && !candidate.End.Before(existing.End):
		return NewFieldError(ErrBookingConflict, "endDate", "End date conflicts with an existing booking")
	}
	return nil
}
