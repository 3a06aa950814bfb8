package domain

import "time"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

// Contains reports whether day d lies within the range, boundaries included.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

type Booking struct {
	ID        string    `json:"id"`
	SpotID    string    `json:"spot_id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// Started reports whether the stay has begun as of today.
func (b *Booking) Started(today time.Time) bool {
	return !b.StartDate.After(today)
}

// Elapsed reports whether the stay is over as of today.
func (b *Booking) Elapsed(today time.Time) bool {
	return !b.EndDate.After(today)
}

// BookingDetails is a booking with the spot and guest it refers to.
type BookingDetails struct {
	Booking
	Spot *SpotSummary
	User *UserSummary
}
