package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/pkg/e"
)

// Redis owns the client shared by the GEO index and the event queue.
type Redis struct {
	Client *redis.Client
	logger *slog.Logger
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	const op = "redis.NewRedis"

	logger.Info("Connecting to Redis", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	r := &Redis{Client: client, logger: logger}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.Ping(pingCtx); err != nil {
		logger.Error("Redis unreachable", slog.String("addr", cfg.Addr), slog.Any("error", err))
		_ = client.Close()
		return nil, e.Wrap(op, err)
	}

	logger.Info("Redis ready", slog.String("geo_key", cfg.GeoKey), slog.String("event_key", cfg.EventKey))
	return r, nil
}

// Ping doubles as the health check.
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if err := r.Client.Close(); err != nil {
		r.logger.Error("Redis close failed", slog.Any("error", err))
		return err
	}
	return nil
}
