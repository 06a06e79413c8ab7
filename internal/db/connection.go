package db

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
	"htmxtodo/internal/config"
	"htmxtodo/internal/logger"
)

// Options describes how to open a database handle. It does not hold a connection.
type Options struct {
	URL string
	// OnNotice receives NOTICE and WARNING messages sent by the server.
	OnNotice func(*pq.Error)
	// MaxOpenConns caps the pool. Zero keeps database/sql's default.
	MaxOpenConns int
}

// Connections holds the options for general app traffic and for schema changes.
type Connections struct {
	App       Options
	Migration Options
}

// NewConnections derives the app and migration options from one base. The migration
// options allow a single connection so schema changes are never run concurrently.
func NewConnections(cfg *config.Config, log *logger.Logger) Connections {
	base := Options{
		URL: cfg.DatabaseURL(),
		OnNotice: func(notice *pq.Error) {
			log.Info("Postgres Notice",
				"severity", notice.Severity,
				"code", string(notice.Code),
				"message", notice.Message,
				"detail", notice.Detail,
				"hint", notice.Hint,
			)
		},
	}

	app := base

	migration := base
	migration.MaxOpenConns = 1

	return Connections{
		App:       app,
		Migration: migration,
	}
}

// Open returns a handle configured by opts. Connections are established lazily.
func Open(opts Options) (*sql.DB, error) {
	pqConnector, err := pq.NewConnector(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	var connector driver.Connector = pqConnector
	if opts.OnNotice != nil {
		connector = pq.ConnectorWithNoticeHandler(pqConnector, opts.OnNotice)
	}

	db := sql.OpenDB(connector)
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	return db, nil
}
