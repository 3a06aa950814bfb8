package notification

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

// Multi delivers every notification to each of its notifiers in turn.
type Multi struct {
	notifiers []ports.BookingNotifier
}

func NewMulti(notifiers ...ports.BookingNotifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) NotifyBookingCreated(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyBookingCreated(ctx, user, spot, b)
	}
}

func (m *Multi) NotifyBookingUpdated(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyBookingUpdated(ctx, user, spot, b)
	}
}

func (m *Multi) NotifyBookingCancelled(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyBookingCancelled(ctx, user, spot, b)
	}
}

func (m *Multi) NotifyCheckInReminder(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyCheckInReminder(ctx, user, spot, b)
	}
}
