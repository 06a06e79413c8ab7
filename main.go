package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htmxtodo/internal/app"
	"htmxtodo/internal/config"
	"htmxtodo/internal/db"
	"htmxtodo/internal/logger"
	"htmxtodo/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, os.Getenv("NODE_ENV")).Fatal(err)
	}

	log := logger.New(os.Stdout, cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, log *logger.Logger) (err error) {
	conns := db.NewConnections(cfg, log)

	conn, err := db.Open(conns.App)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close db: %w", closeErr))
		}
	}()

	db.SetQueryLogger(log)

	appConfig := app.NewConfig(cfg, repo.New(conn), log)
	a := app.New(&appConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := a.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error(err, "shutdown failed")
		}
	}()

	log.Info("listening", "addr", cfg.Addr(), "env", cfg.Env)
	return a.Listen(cfg.Addr())
}
