package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/am-saksham/rescue-api/internal/api"
	"github.com/am-saksham/rescue-api/internal/api/handlers/http/system"
	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/internal/dispatcher"
	"github.com/am-saksham/rescue-api/internal/observability"
	"github.com/am-saksham/rescue-api/internal/redis"
	"github.com/am-saksham/rescue-api/internal/service"
	"github.com/am-saksham/rescue-api/internal/storage/memory"
	"github.com/am-saksham/rescue-api/internal/storage/postgres"
	"github.com/am-saksham/rescue-api/internal/workers"
	"github.com/am-saksham/rescue-api/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	// EventRelay is nil when the webhook is disabled.
	EventRelay *workers.EventRelay

	shutdownTracing func(context.Context) error
}

type stores struct {
	volunteers  service.VolunteerRepository
	emergencies service.EmergencyRepository
	locator     service.VolunteerLocator
	indexer     service.VolunteerIndexer
	// source feeds the redis GEO index with batch reads and rebuilds
	source redis.VolunteerSource
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}
	c.shutdownTracing = shutdownTracing

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	st, err := c.initStores(ctx, cfg)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	push, err := dispatcher.New(cfg.Push, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init dispatcher: %w", err)
	}
	logger.Info("Push dispatcher ready", slog.String("driver", cfg.Push.Driver))

	var events service.EventQueue = service.DiscardEvents{}
	if !cfg.Webhook.Disabled {
		queue := redis.NewEventQueue(c.Redis.Client, cfg.Redis.EventKey)
		events = queue
		c.EventRelay = workers.NewEventRelay(queue, service.NewEventSender(logger, cfg.Webhook), cfg.Webhook.Workers, logger)
	}

	srv := service.NewService(
		service.NewVolunteerService(st.volunteers, st.indexer, logger),
		service.NewEmergencyService(st.emergencies, st.locator, push, events, metrics, logger, cfg.Dispatch.MaxFanout),
		service.NewResponseService(st.emergencies, st.volunteers, events, metrics, logger),
	)

	c.HttpServer = api.NewServer(cfg, logger, srv, c.healthChecks(), metrics.Handler())
	logger.Info("Initialized server")

	return c, nil
}

func (c *Components) initStores(ctx context.Context, cfg *config.Config) (stores, error) {
	var st stores

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		c.logger.Info("Using in-memory storage")
		mem := memory.NewVolunteers()
		st.volunteers = mem
		st.emergencies = memory.NewEmergencies()
		st.locator = mem
		st.source = mem
	default:
		c.logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			c.logger.Error("Failed to init postgres", slog.Any("error", err))
			return st, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		st.volunteers = pg.Volunteers()
		st.emergencies = pg.Emergencies()
		st.locator = pg.Geo()
		st.source = pg.Volunteer
	}

	if cfg.UsesRedis() {
		c.logger.Info("Initializing Redis")
		rdb, err := redis.NewRedis(ctx, cfg.Redis, c.logger)
		if err != nil {
			return st, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = rdb
	}

	if cfg.Storage.GeoIndex == config.IndexRedis {
		idx := redis.NewGeoIndex(c.Redis.Client, cfg.Redis.GeoKey, st.source, c.logger)
		// the set may be empty or behind after a Redis restart or an index switch
		if _, err := idx.Rebuild(ctx); err != nil {
			return st, fmt.Errorf("failed to rebuild geo index: %w", err)
		}
		st.locator = idx
		st.indexer = idx
	}
	c.logger.Info("Geo index ready", slog.String("index", cfg.Storage.GeoIndex))

	return st, nil
}

func (c *Components) healthChecks() map[string]system.Check {
	checks := make(map[string]system.Check)
	if c.Postgres != nil {
		checks["postgres"] = c.Postgres.Pool.Ping
	}
	if c.Redis != nil {
		checks["redis"] = c.Redis.Ping
	}
	return checks
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.shutdownTracing(ctx); err != nil {
			c.logger.Error("Tracing shutdown failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
