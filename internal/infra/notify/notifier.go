// Package notify fans a sale event out to the configured channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"clipvault/internal/pkg/config"
	"clipvault/internal/usecase/shared"
)

// Multi sends to every channel and joins their failures.
type Multi struct {
	channels []shared.SaleNotifier
}

func NewMulti(channels ...shared.SaleNotifier) *Multi {
	return &Multi{channels: channels}
}

func (m *Multi) NotifySale(ctx context.Context, ev shared.SaleEvent) error {
	var errList []error
	for _, ch := range m.channels {
		if err := ch.NotifySale(ctx, ev); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

func (m *Multi) Len() int { return len(m.channels) }

// Log is the fallback channel when nothing else is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) NotifySale(_ context.Context, ev shared.SaleEvent) error {
	l.logger.Info("sale recorded",
		"transaction_id", ev.TransactionID,
		"payment_method", ev.Method,
		"amount", ev.Amount,
		"currency", ev.Currency)
	return nil
}

func formatSale(ev shared.SaleEvent) string {
	var b strings.Builder
	b.WriteString("New sale\n")
	fmt.Fprintf(&b, "Item: %s\n", ev.Item)
	if ev.VideoID != nil {
		fmt.Fprintf(&b, "Video: %s\n", *ev.VideoID)
	}
	fmt.Fprintf(&b, "Amount: %s %s\n", ev.Amount, strings.ToUpper(ev.Currency))
	fmt.Fprintf(&b, "Method: %s\n", ev.Method)
	fmt.Fprintf(&b, "Transaction: %s\n", ev.TransactionID)
	fmt.Fprintf(&b, "Buyer: %s\n", ev.BuyerEmail)
	fmt.Fprintf(&b, "At: %s", ev.At.UTC().Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// FromConfig builds the channels that have credentials. With none configured
// sales are only logged.
func FromConfig(cfg config.NotifyConfig, logger *slog.Logger) *Multi {
	var channels []shared.SaleNotifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		channels = append(channels, NewTelegram(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID, cfg.Timeout))
	}
	if cfg.ResendAPIKey != "" && len(cfg.EmailTo) > 0 {
		channels = append(channels, NewEmail(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo))
	}
	if len(channels) == 0 {
		logger.Warn("no sale notification channel configured, sales are only logged")
		channels = append(channels, NewLog(logger))
	}
	return NewMulti(channels...)
}
