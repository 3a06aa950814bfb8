package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func rng(t *testing.T, start, end string) DateRange {
	t.Helper()
	return DateRange{Start: day(t, start), End: day(t, end)}
}

func booked(t *testing.T, id, start, end string) *Booking {
	t.Helper()
	return &Booking{ID: id, SpotID: "s1", StartDate: day(t, start), EndDate: day(t, end)}
}

func assertField(t *testing.T, err error, sentinel error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Fields, field)
	assert.Len(t, fe.Fields, 1)
}

func TestAvailability_StartInPast(t *testing.T) {
	check := AvailabilityCheck{
		Candidate: rng(t, "2025-03-01", "2025-03-05"),
		Existing:  []*Booking{booked(t, "b1", "2025-03-01", "2025-03-05")},
		Today:     day(t, "2025-03-02"),
	}

	err := check.Validate()

	assertField(t, err, ErrStartDateInPast, "startDate")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAvailability_StartTodayAllowed(t *testing.T) {
	check := AvailabilityCheck{
		Candidate: rng(t, "2025-03-02", "2025-03-05"),
		Today:     day(t, "2025-03-02").Add(15 * time.Hour),
	}

	assert.NoError(t, check.Validate())
}

func TestAvailability_EndOnOrBeforeStart(t *testing.T) {
	today := day(t, "2025-01-01")

	for _, c := range []DateRange{
		rng(t, "2025-03-10", "2025-03-10"),
		rng(t, "2025-03-10", "2025-03-09"),
	} {
		err := AvailabilityCheck{Candidate: c, Today: today}.Validate()
		assertField(t, err, ErrEndBeforeStart, "endDate")
	}
}

func TestAvailability_PastStartWinsOverInvertedRange(t *testing.T) {
	err := AvailabilityCheck{
		Candidate: rng(t, "2025-03-01", "2025-02-01"),
		Today:     day(t, "2025-03-02"),
	}.Validate()

	assertField(t, err, ErrStartDateInPast, "startDate")
}

func TestAvailability_Overlaps(t *testing.T) {
	existing := []*Booking{booked(t, "b1", "2025-03-10", "2025-03-15")}
	today := day(t, "2025-01-01")

	tests := []struct {
		name      string
		candidate DateRange
		field     string
	}{
		{"start lands inside", rng(t, "2025-03-12", "2025-03-20"), "startDate"},
		{"end lands inside", rng(t, "2025-03-05", "2025-03-12"), "endDate"},
		{"encloses existing", rng(t, "2025-03-05", "2025-03-20"), "endDate"},
		{"inside existing", rng(t, "2025-03-11", "2025-03-13"), "startDate"},
		{"identical range", rng(t, "2025-03-10", "2025-03-15"), "startDate"},
		{"starts on existing checkout", rng(t, "2025-03-15", "2025-03-18"), "startDate"},
		{"ends on existing checkin", rng(t, "2025-03-07", "2025-03-10"), "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AvailabilityCheck{Candidate: tt.candidate, Existing: existing, Today: today}.Validate()
			assertField(t, err, ErrBookingConflict, tt.field)
		})
	}
}

func TestAvailability_NoSharedDays(t *testing.T) {
	existing := []*Booking{
		booked(t, "b1", "2025-03-10", "2025-03-15"),
		booked(t, "b2", "2025-04-01", "2025-04-03"),
	}
	today := day(t, "2025-01-01")

	for _, c := range []DateRange{
		rng(t, "2025-03-01", "2025-03-09"),
		rng(t, "2025-03-16", "2025-03-31"),
		rng(t, "2025-04-04", "2025-04-10"),
	} {
		err := AvailabilityCheck{Candidate: c, Existing: existing, Today: today}.Validate()
		assert.NoError(t, err, "candidate %v", c)
	}
}

func TestAvailability_StopsAtFirstConflict(t *testing.T) {
	existing := []*Booking{
		booked(t, "b1", "2025-03-01", "2025-03-03"),
		booked(t, "b2", "2025-03-10", "2025-03-15"),
	}

	err := AvailabilityCheck{
		Candidate: rng(t, "2025-03-02", "2025-03-12"),
		Existing:  existing,
		Today:     day(t, "2025-01-01"),
	}.Validate()

	assertField(t, err, ErrBookingConflict, "startDate")
}

func TestAvailability_Idempotent(t *testing.T) {
	check := AvailabilityCheck{
		Candidate: rng(t, "2025-03-12", "2025-03-20"),
		Existing:  []*Booking{booked(t, "b1", "2025-03-10", "2025-03-15")},
		Today:     day(t, "2025-01-01"),
	}

	first := check.Validate()
	second := check.Validate()

	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, "2025-03-12", FormatDate(check.Candidate.Start))
	assert.Len(t, check.Existing, 1)
}

func TestAvailability_EditSkipsItself(t *testing.T) {
	edited := booked(t, "b1", "2025-03-10", "2025-03-15")

	err := AvailabilityCheck{
		Candidate: rng(t, "2025-03-11", "2025-03-16"),
		Existing:  []*Booking{edited, booked(t, "b2", "2025-03-20", "2025-03-22")},
		Today:     day(t, "2025-01-01"),
		Edited:    edited,
	}.Validate()

	assert.NoError(t, err)
}

func TestAvailability_EditConflictsWithSibling(t *testing.T) {
	edited := booked(t, "b1", "2025-03-10", "2025-03-15")

	err := AvailabilityCheck{
		Candidate: rng(t, "2025-03-11", "2025-03-20"),
		Existing:  []*Booking{edited, booked(t, "b2", "2025-03-20", "2025-03-22")},
		Today:     day(t, "2025-01-01"),
		Edited:    edited,
	}.Validate()

	assertField(t, err, ErrBookingConflict, "endDate")
}

func TestAvailability_EditElapsedBooking(t *testing.T) {
	edited := booked(t, "b1", "2025-02-01", "2025-02-05")

	err := AvailabilityCheck{
		Candidate: rng(t, "2025-04-01", "2025-04-05"),
		Existing:  []*Booking{edited},
		Today:     day(t, "2025-03-01"),
		Edited:    edited,
	}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPastBookingImmutable)
}

func TestAvailability_EditEndingTodayIsElapsed(t *testing.T) {
	edited := booked(t, "b1", "2025-02-25", "2025-03-01")

	err := AvailabilityCheck{
		Candidate: rng(t, "2025-04-01", "2025-04-05"),
		Today:     day(t, "2025-03-01"),
		Edited:    edited,
	}.Validate()

	assert.ErrorIs(t, err, ErrPastBookingImmutable)
}

func TestFieldError_Message(t *testing.T) {
	err := NewFieldError(ErrBookingConflict, "endDate", "End date conflicts with an existing booking")

	assert.Equal(t, "spot is already booked for the specified dates (endDate: End date conflicts with an existing booking)", err.Error())
}
