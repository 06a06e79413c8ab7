// Command migrate applies pending schema migrations. It refuses to run unless DB_MIGRATING=true.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"htmxtodo/internal/config"
	"htmxtodo/internal/db"
	"htmxtodo/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, os.Getenv("NODE_ENV")).Fatal(err)
	}

	log := logger.New(os.Stdout, cfg.Env).With("cmd", "migrate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	applied, err := db.Migrate(ctx, cfg, db.NewConnections(cfg, log), log)
	if err != nil {
		stop()
		log.Fatal(err)
	}

	log.Info("migrations complete", "applied", applied)
}
