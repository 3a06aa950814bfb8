package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingReminder interface {
	RemindUpcoming(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	bookingService bookingReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

// Start sends check-in reminders once right away and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	reminded, err := s.bookingService.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send check-in reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Debug("check-in reminder queued",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("spot_id", b.SpotID),
		)
	}
}
