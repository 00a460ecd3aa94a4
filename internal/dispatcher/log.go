package dispatcher

import (
	"context"
	"log/slog"

	"github.com/am-saksham/rescue-api/internal/domain"
)

// Log only writes the notification to the logger. Used in development and
// when no push provider is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (d *Log) Send(ctx context.Context, token string, msg domain.PushMessage) domain.DeliveryResult {
	const op = "dispatcher.Log.Send"

	if token == "" {
		return failed(op, errEmptyToken)
	}
	if err := ctx.Err(); err != nil {
		return failed(op, err)
	}

	d.logger.Info("push notification",
		slog.String("op", op),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data),
	)
	return domain.DeliveryResult{Delivered: true}
}
