package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/am-saksham/rescue-api/internal/api/handlers/http/emergency"
	"github.com/am-saksham/rescue-api/internal/api/handlers/http/system"
	"github.com/am-saksham/rescue-api/internal/api/handlers/http/volunteers"
	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/internal/middleware"
	"github.com/am-saksham/rescue-api/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Volunteers *volunteers.Handler
	Emergency  *emergency.Handler
	System     *system.Handler
	Metrics    http.Handler
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Check, metrics http.Handler) *Server {
	h := Handlers{
		Volunteers: volunteers.NewHandler(logger, svc.VolunteerService),
		Emergency:  emergency.NewHandler(logger, svc.EmergencyService, svc.ResponseService),
		System:     system.NewHandler(logger, checks),
		Metrics:    metrics,
	}

	return &Server{
		logger: logger,
		router: InitRouter(h, cfg.Http.CORSOrigins, logger),
		cfg:    *cfg,
	}
}

func InitRouter(h Handlers, corsOrigins []string, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// RequestID first so chi's Logger and handler logs share it
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// answers preflights before routing, so OPTIONS never hits the limiters
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/volunteers", func(vr chi.Router) {
			vr.With(middleware.Limit(2, 5, 10*time.Minute, logger)).Post("/", h.Volunteers.VolunteerRegister)
			vr.Get("/", h.Volunteers.VolunteerFind)

			vr.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Volunteers.VolunteerGet)

				rr.Group(func(wr chi.Router) {
					wr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
					wr.Put("/location", h.Volunteers.VolunteerUpdateLocation)
					wr.Put("/push-token", h.Volunteers.VolunteerSetPushToken)
					wr.Put("/photo", h.Volunteers.VolunteerSetPhoto)
				})
			})
		})

		api.Route("/emergencies", func(er chi.Router) {
			er.With(middleware.Limit(1, 3, 10*time.Minute, logger)).Post("/", h.Emergency.EmergencyCreate)

			er.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Emergency.EmergencyGet)
				rr.With(middleware.Limit(5, 10, 5*time.Minute, logger)).Post("/responses", h.Emergency.EmergencyRespond)
			})
		})

		api.Get("/health", h.System.SystemHealth)
	})

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
