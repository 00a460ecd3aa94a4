package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/am-saksham/rescue-api/internal/components"
	"github.com/am-saksham/rescue-api/internal/config"
)

// Run loads config, starts the HTTP server and the event relay, and blocks
// until SIGINT/SIGTERM or until the server fails.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		components.SetupLogger("local").Error("load config failed", slog.Any("error", err))
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", slog.Any("error", err))
		return err
	}
	defer comps.ShutdownAll()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		serverErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		// a dead server takes the relay down with it
		defer cancel()
		serverErr = comps.HttpServer.Run(runCtx)
	}()

	if comps.EventRelay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.EventRelay.Run(runCtx)
		}()
	}

	<-runCtx.Done()
	if ctx.Err() != nil {
		logger.Info("shutdown signal received")
	}
	wg.Wait()

	if serverErr != nil {
		logger.Error("http server failed", slog.Any("error", serverErr))
		return serverErr
	}
	logger.Info("stopped cleanly")
	return nil
}
