// Package dispatcher sends push notifications to volunteer devices.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

var errEmptyToken = errors.New("empty push token")

// Sender matches service.Dispatcher.
type Sender interface {
	Send(ctx context.Context, token string, msg domain.PushMessage) domain.DeliveryResult
}

func New(cfg config.PushConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case config.PushExpo:
		return NewExpo(ExpoConfig{AccessToken: cfg.ExpoAccessToken, Timeout: cfg.Timeout}, logger), nil
	case config.PushLog, "":
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("dispatcher.New: unknown driver %q: %w", cfg.Driver, e.ErrInvalidInput)
	}
}
