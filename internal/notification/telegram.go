package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const displayDate = "02.01.2006"

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    messageSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	n.send(ctx, user.TelegramChatID, bookingText("*Booking confirmed!*", spot, b))
}

func (n *TelegramNotifier) NotifyBookingUpdated(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	n.send(ctx, user.TelegramChatID, bookingText("*Booking dates changed*", spot, b))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	n.send(ctx, user.TelegramChatID, bookingText("*Booking cancelled*", spot, b))
}

func (n *TelegramNotifier) NotifyCheckInReminder(ctx context.Context, user *domain.User, spot *domain.Spot, b *domain.Booking) {
	text := bookingText("*Check-in tomorrow*", spot, b) +
		fmt.Sprintf("\nAddress: %s, %s, %s", spot.Address, spot.City, spot.Country)
	n.send(ctx, user.TelegramChatID, text)
}

func bookingText(title string, spot *domain.Spot, b *domain.Booking) string {
	return fmt.Sprintf(
		"%s\n\n"+"Spot: %s\n"+"Check-in: %s\n"+"Check-out: %s",
		title, spot.Name,
		b.StartDate.Format(displayDate),
		b.EndDate.Format(displayDate),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
