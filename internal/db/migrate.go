package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"htmxtodo/internal/config"
	"htmxtodo/internal/db/migrations"
	"htmxtodo/internal/logger"
)

var ErrMigratingNotSet = errors.New(`DB_MIGRATING must be set to "true" when running migrations`)

// Migrate applies every pending migration over a single connection and closes it.
// It refuses to run unless DB_MIGRATING is set. Running it against an up-to-date schema
// applies nothing and succeeds.
func Migrate(ctx context.Context, cfg *config.Config, conns Connections, log *logger.Logger) (int, error) {
	if !cfg.DBMigrating {
		return 0, ErrMigratingNotSet
	}

	conn, err := Open(conns.Migration)
	if err != nil {
		return 0, err
	}

	return migrateUp(ctx, conn, migrations.FS, log)
}

// migrateUp owns conn and closes it before returning.
func migrateUp(ctx context.Context, conn *sql.DB, files fs.FS, log *logger.Logger) (applied int, err error) {
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close db: %w", closeErr))
		}
	}()

	src, err := iofs.New(files, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	return runMigrations(ctx, src, "postgres", driver, log)
}

// runMigrations applies everything in src that is newer than the driver's version
// and reports how many migrations ran.
func runMigrations(ctx context.Context, src source.Driver, driverName string, driver database.Driver, log *logger.Logger) (applied int, err error) {
	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return 0, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			err = errors.Join(err, srcErr, dbErr)
		}
	}()
	m.Log = migrateLogger{log: log}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	before, err := currentVersion(m)
	if err != nil {
		return 0, err
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no pending migrations", "version", before)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := currentVersion(m)
	if err != nil {
		return 0, err
	}

	applied, err = countVersions(src, before, after)
	if err != nil {
		return 0, err
	}

	log.Info("applied migrations", "count", applied, "from", before, "to", after)
	return applied, nil
}

// currentVersion returns 0 for a database that has never been migrated.
func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return 0, fmt.Errorf("schema version %d is dirty, fix it by hand before migrating", version)
	}
	return version, nil
}

// countVersions counts the migrations in src with a version in (from, to].
func countVersions(src source.Driver, from, to uint) (int, error) {
	version, err := src.First()
	if err != nil {
		return 0, fmt.Errorf("failed to list migrations: %w", err)
	}

	count := 0
	for {
		if version > from && version <= to {
			count++
		}

		version, err = src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to list migrations: %w", err)
		}
	}
}

type migrateLogger struct {
	log *logger.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...))
}

func (l migrateLogger) Verbose() bool {
	return true
}
