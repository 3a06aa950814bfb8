package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, spot *domain.Spot, booking *domain.Booking)
	NotifyBookingUpdated(ctx context.Context, user *domain.User, spot *domain.Spot, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, spot *domain.Spot, booking *domain.Booking)
	NotifyCheckInReminder(ctx context.Context, user *domain.User, spot *domain.Spot, booking *domain.Booking)
}
