package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	IndexMemory   = "memory"
	IndexPostgres = "postgres"
	IndexRedis    = "redis"

	PushExpo = "expo"
	PushLog  = "log"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Storage  StorageConfig  `json:"storage"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Dispatch DispatchConfig `json:"dispatch"`
	Push     PushConfig     `json:"push"`
	Webhook  WebhookConfig  `json:"webhook"`
	Tracing  TracingConfig  `json:"tracing"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	// CORSOrigins lists allowed browser origins; "*" allows any.
	CORSOrigins []string `json:"cors_origins"`
}

type StorageConfig struct {
	Driver   string `json:"driver"`
	GeoIndex string `json:"geo_index"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`
	Migrate  bool   `json:"migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
	GeoKey   string `json:"geo_key"`
	EventKey string `json:"event_key"`
}

type DispatchConfig struct {
	MaxFanout int `json:"max_fanout"`
}

type PushConfig struct {
	Driver          string        `json:"driver"`
	ExpoAccessToken string        `json:"expo_access_token,omitempty"`
	Timeout         time.Duration `json:"timeout"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	Workers  int    `json:"workers"`
}

type TracingConfig struct {
	Enabled     bool    `json:"enabled"`
	Exporter    string  `json:"exporter"`
	ServiceName string  `json:"service_name"`
	SampleRatio float64 `json:"sample_ratio"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":5000"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", StoragePostgres),
			GeoIndex: getEnv("GEO_INDEX", IndexPostgres),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "emergency_app"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			Migrate:         getEnvBool("POSTGRES_MIGRATE", true),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			GeoKey:   getEnv("REDIS_GEO_KEY", "volunteers:geo"),
			EventKey: getEnv("REDIS_EVENT_KEY", "events:queue"),
		},
		Dispatch: DispatchConfig{
			MaxFanout: getEnvInt("DISPATCH_MAX_FANOUT", 20),
		},
		Push: PushConfig{
			Driver:          getEnv("PUSH_DRIVER", PushLog),
			ExpoAccessToken: getEnv("EXPO_ACCESS_TOKEN", ""),
			Timeout:         getEnvDuration("PUSH_TIMEOUT", 5*time.Second),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", true),
			Workers:  getEnvInt("WEBHOOK_WORKERS", 2),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvBool("TRACING_ENABLED", false),
			Exporter:    getEnv("TRACING_EXPORTER", "stdout"),
			ServiceName: getEnv("TRACING_SERVICE_NAME", "rescue-api"),
			SampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1.0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("geo_index", cfg.Storage.GeoIndex),
		slog.String("push", cfg.Push.Driver),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageMemory:
		if c.Storage.GeoIndex == IndexPostgres {
			return errors.New("GEO_INDEX=postgres requires STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Storage.GeoIndex {
	case IndexMemory:
		if c.Storage.Driver != StorageMemory {
			return errors.New("GEO_INDEX=memory requires STORAGE_DRIVER=memory")
		}
	case IndexPostgres:
	case IndexRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR required for GEO_INDEX=redis")
		}
	default:
		return fmt.Errorf("unknown GEO_INDEX %q", c.Storage.GeoIndex)
	}

	if c.Dispatch.MaxFanout <= 0 || c.Dispatch.MaxFanout > 100 {
		return errors.New("DISPATCH_MAX_FANOUT must be in 1..100")
	}

	switch c.Push.Driver {
	case PushExpo, PushLog:
	default:
		return fmt.Errorf("unknown PUSH_DRIVER %q", c.Push.Driver)
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required unless WEBHOOK_DISABLED=true")
	}

	return nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.Storage.GeoIndex == IndexRedis || !c.Webhook.Disabled
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := make([]string, 0, 4)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
