package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/database"
)

// SQLRepository is embedded by every repository. It owns no state besides the
// injected pool handle.
type SQLRepository struct {
	db      *sql.DB
	dialect database.Dialect
	logger  zerolog.Logger
}

func NewSQLRepository(db *sql.DB, dialect database.Dialect, logger zerolog.Logger) *SQLRepository {
	return &SQLRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

// Session pins one pooled connection for the duration of fn. The connection goes back
// to the pool on every exit path, panics included.
func (r *SQLRepository) Session(ctx context.Context, fn func(q database.Querier) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			r.logger.Warn().Err(cerr).Msg("Failed to release connection")
		}
	}()

	return fn(conn)
}

func scanScalar(ctx context.Context, q database.Querier, query string, dest any, args ...any) error {
	return q.QueryRowContext(ctx, query, args...).Scan(dest)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
