package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

type ExpoConfig struct {
	AccessToken string
	Timeout     time.Duration
	// Host overrides the Expo API host, mostly for tests.
	Host string
}

// Expo delivers push notifications through the Expo push service.
type Expo struct {
	client *expo.PushClient
	logger *slog.Logger
}

func NewExpo(cfg ExpoConfig, logger *slog.Logger) *Expo {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Expo{
		client: expo.NewPushClient(&expo.ClientConfig{
			Host:        cfg.Host,
			AccessToken: cfg.AccessToken,
			HTTPClient:  &http.Client{Timeout: timeout},
		}),
		logger: logger,
	}
}

func (d *Expo) Send(ctx context.Context, token string, msg domain.PushMessage) domain.DeliveryResult {
	const op = "dispatcher.Expo.Send"

	if err := ctx.Err(); err != nil {
		return failed(op, err)
	}

	to, err := expo.NewExponentPushToken(token)
	if err != nil {
		return failed(op, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
	}

	resp, err := d.client.Publish(&expo.PushMessage{
		To:       []expo.ExponentPushToken{to},
		Title:    msg.Title,
		Body:     msg.Body,
		Data:     msg.Data,
		Sound:    "default",
		Priority: expo.HighPriority,
	})
	if err != nil {
		d.logger.Warn("expo publish failed", slog.String("op", op), slog.Any("error", err))
		return failed(op, err)
	}

	if err := resp.ValidateResponse(); err != nil {
		var unregistered *expo.DeviceNotRegisteredError
		if errors.As(err, &unregistered) {
			d.logger.Info("expo token no longer registered", slog.String("op", op))
		}
		return failed(op, err)
	}

	return domain.DeliveryResult{Delivered: true}
}

func failed(op string, err error) domain.DeliveryResult {
	return domain.DeliveryResult{
		Error: fmt.Errorf("%s: %w: %w", op, e.ErrDispatchFailed, err).Error(),
	}
}
