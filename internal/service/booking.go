package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	spotRepo    ports.SpotRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	spotRepo ports.SpotRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *BookingService) today() time.Time {
	return domain.DateOf(s.now())
}

func (s *BookingService) Book(ctx context.Context, spotID, userID string, dates domain.DateRange) (*domain.Booking, error) {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}

	if spot.OwnerID == userID {
		return nil, domain.ErrOwnSpotBooking
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	today := s.today()
	now := s.now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SpotID:    spotID,
		UserID:    userID,
		StartDate: dates.Start,
		EndDate:   dates.End,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.bookingRepo.Create(ctx, booking, func(existing []*domain.Booking) error {
		return domain.AvailabilityCheck{
			Candidate: dates,
			Existing:  existing,
			Today:     today,
		}.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("spot_id", spotID),
		logger.String("user_id", userID),
		logger.String("start_date", domain.FormatDate(booking.StartDate)),
		logger.String("end_date", domain.FormatDate(booking.EndDate)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, spot, booking)

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, bookingID, userID string, dates domain.DateRange) (*domain.Booking, error) {
	today := s.today()

	booking, err := s.bookingRepo.Update(ctx, bookingID, dates, func(current *domain.Booking, existing []*domain.Booking) error {
		if current.UserID != userID {
			return domain.ErrForbidden
		}
		return domain.AvailabilityCheck{
			Candidate: dates,
			Existing:  existing,
			Today:     today,
			Edited:    current,
		}.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", booking.ID),
		logger.String("spot_id", booking.SpotID),
		logger.String("start_date", domain.FormatDate(booking.StartDate)),
		logger.String("end_date", domain.FormatDate(booking.EndDate)),
	)

	user, spot, err := s.participants(ctx, booking)
	if err != nil {
		s.logger.Error("failed to load booking for notification",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}

	go s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), user, spot, booking)

	return booking, nil
}

// Cancel deletes a booking that has not started yet. The guest and the spot owner may cancel.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	spot, err := s.spotRepo.GetByID(ctx, booking.SpotID)
	if err != nil {
		return fmt.Errorf("get spot: %w", err)
	}

	if booking.UserID != userID && spot.OwnerID != userID {
		return domain.ErrForbidden
	}

	today := s.today()
	deleted, err := s.bookingRepo.Delete(ctx, bookingID, func(current *domain.Booking) error {
		if current.Started(today) {
			return domain.ErrBookingStarted
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("spot_id", deleted.SpotID),
		logger.String("cancelled_by", userID),
	)

	user, err := s.userRepo.GetByID(ctx, deleted.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", deleted.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, spot, deleted)

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// ListBySpot returns the spot's bookings and whether the requester owns the spot.
func (s *BookingService) ListBySpot(ctx context.Context, spotID, userID string) ([]*domain.BookingDetails, bool, error) {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, false, fmt.Errorf("get spot: %w", err)
	}

	bookings, err := s.bookingRepo.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, false, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, spot.OwnerID == userID, nil
}

// RemindUpcoming flags the bookings starting tomorrow and sends each guest a check-in reminder.
func (s *BookingService) RemindUpcoming(ctx context.Context) ([]*domain.Booking, error) {
	tomorrow := s.today().AddDate(0, 0, 1)

	reminded, err := s.bookingRepo.MarkReminded(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}

	if len(reminded) > 0 {
		s.logger.Info("check-in reminders due",
			logger.Int("count", len(reminded)),
			logger.String("start_date", domain.FormatDate(tomorrow)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), reminded)
	}

	return reminded, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, spot, err := s.participants(ctx, b)
		if err != nil {
			s.logger.Error("failed to load booking for reminder",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyCheckInReminder(ctx, user, spot, b)
	}
}

func (s *BookingService) participants(ctx context.Context, b *domain.Booking) (*domain.User, *domain.Spot, error) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	spot, err := s.spotRepo.GetByID(ctx, b.SpotID)
	if err != nil {
		return nil, nil, fmt.Errorf("get spot: %w", err)
	}

	return user, spot, nil
}
