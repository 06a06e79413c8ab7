package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"htmxtodo/gen/htmxtodo/public/model"
	"htmxtodo/internal/config"
	"htmxtodo/internal/logger"
	"htmxtodo/internal/repo"
)

var ErrSeedingNotSet = errors.New(`DB_SEEDING must be set to "true" when seeding`)

// SampleTitles are inserted by Seed into an empty todo table.
var SampleTitles = []string{
	"Buy milk",
	"Walk the dog",
	"Write the weekly report",
}

// Seed fills an empty todo table with SampleTitles over the migration connection and
// closes it. A table that already has rows is left alone.
func Seed(ctx context.Context, cfg *config.Config, conns Connections, log *logger.Logger) (int, error) {
	if !cfg.DBSeeding {
		return 0, ErrSeedingNotSet
	}

	conn, err := Open(conns.Migration)
	if err != nil {
		return 0, err
	}

	return seed(ctx, conn, log)
}

func seed(ctx context.Context, conn *sql.DB, log *logger.Logger) (inserted int, err error) {
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close db: %w", closeErr))
		}
	}()

	r := repo.New(conn)

	existing, err := r.FilterTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read todos: %w", err)
	}
	if len(existing) > 0 {
		log.Info("todo table already has rows, skipping seed", "count", len(existing))
		return 0, nil
	}

	for _, title := range SampleTitles {
		if _, err := r.CreateTodo(ctx, model.Todo{ID: uuid.New(), Title: title}); err != nil {
			return inserted, fmt.Errorf("failed to insert %q: %w", title, err)
		}
		inserted++
	}

	log.Info("seeded todos", "count", inserted)
	return inserted, nil
}
