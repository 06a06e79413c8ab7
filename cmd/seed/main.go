// Command seed inserts sample todos into an empty database. It refuses to run unless DB_SEEDING=true.
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

	log := logger.New(os.Stdout, cfg.Env).With("cmd", "seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db.SetQueryLogger(log)

	inserted, err := db.Seed(ctx, cfg, db.NewConnections(cfg, log), log)
	if err != nil {
		stop()
		log.Fatal(err)
	}

	log.Info("seeding complete", "inserted", inserted)
}
