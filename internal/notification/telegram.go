package notification

import (
	"context"
	"fmt"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier mirrors back-office alerts into a staff chat. It is a
// best-effort side channel next to the SMS gateway.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, staff alerts disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) ReservationCreated(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	text := fmt.Sprintf(
		"*New %s reservation*\n\nEvent: %s\nDate: %s\nGuest: %s (party of %d)\nStatus: %s",
		r.Type, e.Name, e.EventDate.Format("01/02/2006 15:04"),
		r.CustomerName, r.PartySize, r.Status,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) ReservationDecided(ctx context.Context, r *domain.Reservation, e *domain.Event) {
	text := fmt.Sprintf(
		"*Reservation %s*\n\nEvent: %s\nGuest: %s (party of %d)",
		r.Status, e.Name, r.CustomerName, r.PartySize,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("staff alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("staff alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
