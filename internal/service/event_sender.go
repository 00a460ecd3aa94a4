package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/internal/domain"
)

// EventSender POSTs request events to the configured webhook.
type EventSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	http   *resty.Client
}

func NewEventSender(logger *slog.Logger, cfg config.WebhookConfig) *EventSender {
	client := resty.New().
		SetTimeout(5*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetHeader("Content-Type", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &EventSender{
		logger: logger,
		cfg:    cfg,
		http:   client,
	}
}

// Send delivers a single event; resty retries transport errors and 5xx.
func (s *EventSender) Send(ctx context.Context, ev domain.RequestEvent) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(ev).
		Post(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post webhook: unexpected status %s", resp.Status())
	}

	s.logger.Debug("webhook sent",
		slog.String("type", string(ev.Type)),
		slog.String("request_id", ev.RequestID.String()),
	)
	return nil
}
