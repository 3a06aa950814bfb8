package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventCheckInReminder  = "booking.check_in_reminder"

	headerEventType = "event-type"
)

// BookingEvent is the payload published for every booking change.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	SpotID     string    `json:"spotId"`
	SpotName   string    `json:"spotName"`
	UserID     string    `json:"userId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	OccurredAt time.Time `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher streams booking events keyed by spot id, so the events of one spot stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	logger logger.Logger
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration, logger logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: writeTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}

	return &KafkaPublisher{writer: writer, logger: logger, now: time.Now}
}

func (p *KafkaPublisher) NotifyBookingCreated(ctx context.Context, _ *domain.User, spot *domain.Spot, b *domain.Booking) {
	p.publish(ctx, EventBookingCreated, spot, b)
}

func (p *KafkaPublisher) NotifyBookingUpdated(ctx context.Context, _ *domain.User, spot *domain.Spot, b *domain.Booking) {
	p.publish(ctx, EventBookingUpdated, spot, b)
}

func (p *KafkaPublisher) NotifyBookingCancelled(ctx context.Context, _ *domain.User, spot *domain.Spot, b *domain.Booking) {
	p.publish(ctx, EventBookingCancelled, spot, b)
}

func (p *KafkaPublisher) NotifyCheckInReminder(ctx context.Context, _ *domain.User, spot *domain.Spot, b *domain.Booking) {
	p.publish(ctx, EventCheckInReminder, spot, b)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, spot *domain.Spot, b *domain.Booking) {
	msg, err := p.message(eventType, spot, b)
	if err != nil {
		p.logger.Error("failed to encode booking event",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("type", eventType),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *KafkaPublisher) message(eventType string, spot *domain.Spot, b *domain.Booking) (kafka.Message, error) {
	now := p.now().UTC()
	value, err := json.Marshal(BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		SpotID:     b.SpotID,
		SpotName:   spot.Name,
		UserID:     b.UserID,
		StartDate:  domain.FormatDate(b.StartDate),
		EndDate:    domain.FormatDate(b.EndDate),
		OccurredAt: now,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(b.SpotID),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(eventType)},
		},
	}, nil
}
