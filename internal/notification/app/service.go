package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/HamsavardhanS/Zyno-Sample/internal/notification/domain"
)

type Sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

type Service struct {
	sender Sender
	log    *slog.Logger
}

func NewService(sender Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{sender: sender, log: log}
}

// SendOrderConfirmation sends the same confirmation by email and by SMS.
// Failures are logged and reported in the result, never returned.
func (s *Service) SendOrderConfirmation(ctx context.Context, to domain.Recipient, transactionID string) domain.Result {
	body := domain.ConfirmationText(to.OrderID, transactionID)

	return domain.Result{
		EmailSent: s.send(ctx, domain.ChannelEmail, to.Email, to.OrderID, transactionID, body),
		SMSSent:   s.send(ctx, domain.ChannelSMS, to.Phone, to.OrderID, transactionID, body),
	}
}

func (s *Service) send(ctx context.Context, ch domain.Channel, to, orderID, txnID, body string) bool {
	if strings.TrimSpace(to) == "" {
		s.log.Warn("notification skipped, no recipient",
			slog.String("channel", string(ch)),
			slog.String("order_id", orderID),
		)
		return false
	}

	err := s.sender.Send(ctx, domain.Message{
		Channel:       ch,
		To:            to,
		OrderID:       orderID,
		TransactionID: txnID,
		Body:          body,
	})
	if err != nil {
		s.log.Error("notification failed",
			slog.String("channel", string(ch)),
			slog.String("order_id", orderID),
			slog.Any("err", err),
		)
		return false
	}
	return true
}
