package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect hides the two places where the supported stores differ: bind variables and
// how an inserted id is returned. Queries are written with '?' placeholders.
type Dialect struct {
	driver string
}

func NewDialect(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres, "":
		return Dialect{driver: DriverPostgres}, nil
	case DriverMySQL:
		return Dialect{driver: DriverMySQL}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Rebind rewrites '?' placeholders into $1..$n for postgres.
func (d Dialect) Rebind(query string) string {
	if d.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InsertID runs an INSERT and returns the generated id column.
func (d Dialect) InsertID(ctx context.Context, q Querier, query string, args ...any) (int64, error) {
	if d.driver == DriverPostgres {
		var id int64
		err := q.QueryRowContext(ctx, d.Rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
