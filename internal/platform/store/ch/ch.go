// Package ch provides a clickhouse client on clickhouse-go
package ch

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL        string
	ClientName string
	ClientTag  string
}

// CH is a clickhouse client over a native driver connection
type CH struct {
	Conn driver.Conn
}

var openConn = clickhouse.Open

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Open parses the dsn, dials and pings clickhouse
func Open(ctx context.Context, cfg Config) (*CH, error) {
	if cfg.URL == "" {
		return nil, errors.New("ch: empty url")
	}
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	opts.ClientInfo = ClientInfo(cfg.ClientName, cfg.ClientTag)

	conn, err := openConn(opts)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}
	return &CH{Conn: conn}, nil
}

// Insert appends rows to table in one batch
// each row holds the values in table column order
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("ch: invalid table name %q", table)
	}
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.Conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			_ = batch.Abort()
			return err
		}
	}
	return batch.Send()
}

// Exec runs a statement that returns no rows
func (c *CH) Exec(ctx context.Context, sql string, args ...any) error {
	return c.Conn.Exec(ctx, sql, args...)
}

// Query runs a query and returns driver rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (driver.Rows, error) {
	return c.Conn.Query(ctx, sql, args...)
}

// Ping checks connectivity
func (c *CH) Ping(ctx context.Context) error { return c.Conn.Ping(ctx) }

// Close closes resources
func (c *CH) Close() error {
	if c == nil || c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}
