package db

import (
	"context"

	"github.com/go-jet/jet/v2/postgres"
	"htmxtodo/internal/logger"
)

// SetQueryLogger sends every statement executed through jet to log at debug level.
// Failed statements are logged at error level.
func SetQueryLogger(log *logger.Logger) {
	postgres.SetQueryLogger(func(ctx context.Context, info postgres.QueryInfo) {
		query := info.Statement.DebugSql()
		if info.Err != nil {
			log.Error(info.Err, "query failed", "query", query, "duration", info.Duration)
			return
		}
		log.Debug("query", "query", query, "rows", info.RowsProcessed, "duration", info.Duration)
	})
}
