package logsender

import (
	"context"
	"log/slog"

	"github.com/HamsavardhanS/Zyno-Sample/internal/notification/domain"
)

// Sender records each notification as a structured log line instead of
// delivering it.
type Sender struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, msg domain.Message) error {
	s.log.InfoContext(ctx, "notification sent",
		slog.String("channel", string(msg.Channel)),
		slog.String("to", msg.To),
		slog.String("order_id", msg.OrderID),
		slog.String("transaction_id", msg.TransactionID),
		slog.String("body", msg.Body),
	)
	return nil
}
