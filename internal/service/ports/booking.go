package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// CreateCheck vets a new booking against the spot's bookings, read inside the write transaction.
type CreateCheck func(existing []*domain.Booking) error

// UpdateCheck vets a date change of current against the spot's bookings.
type UpdateCheck func(current *domain.Booking, existing []*domain.Booking) error

// DeleteCheck vets the removal of current.
type DeleteCheck func(current *domain.Booking) error

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, check CreateCheck) error
	Update(ctx context.Context, id string, dates domain.DateRange, check UpdateCheck) (*domain.Booking, error)
	Delete(ctx context.Context, id string, check DeleteCheck) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListBySpot(ctx context.Context, spotID string) ([]*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	MarkReminded(ctx context.Context, startDate time.Time) ([]*domain.Booking, error)
}
