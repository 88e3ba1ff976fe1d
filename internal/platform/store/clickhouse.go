package store

import (
	"context"
	"fmt"

	"addressbook/internal/platform/store/ch"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// chClient is what ClickhouseStore drives, *ch.CH in production
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (driver.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ chClient   = (*ch.CH)(nil)
	_ Clickhouse = (*ClickhouseStore)(nil)
)

// ClickhouseStore narrows a clickhouse client to the Clickhouse seam
type ClickhouseStore struct{ c chClient }

// NewClickhouse wraps an open client
func NewClickhouse(c chClient) *ClickhouseStore { return &ClickhouseStore{c: c} }

// Insert accepts a batch as [][]any or a single row as []any
func (s *ClickhouseStore) Insert(ctx context.Context, table string, data any) error {
	switch rows := data.(type) {
	case [][]any:
		return s.c.Insert(ctx, table, rows)
	case []any:
		return s.c.Insert(ctx, table, [][]any{rows})
	default:
		return fmt.Errorf("store: clickhouse insert into %s: unsupported shape %T", table, data)
	}
}

// Exec runs a statement that returns no rows
func (s *ClickhouseStore) Exec(ctx context.Context, sql string, args ...any) error {
	return s.c.Exec(ctx, sql, args...)
}

// Query streams rows through the Rows seam
func (s *ClickhouseStore) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := s.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

// Ping checks the server answers
func (s *ClickhouseStore) Ping(ctx context.Context) error { return s.c.Ping(ctx) }

// Close releases the client
func (s *ClickhouseStore) Close() error { return s.c.Close() }

// chRows drops the error from driver.Rows.Close
type chRows struct{ driver.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
