// Package store holds the database seams repos are written against and opens the backends behind them
package store

import (
	"context"
	"errors"
	"fmt"

	"addressbook/internal/platform/logger"
)

// Row scans a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set; callers must Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs statements
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside one transaction
// fn returning nil commits; an error or a panic rolls back
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the journal backend
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Store holds the opened backends; a disabled backend is nil
type Store struct {
	Log logger.Logger
	PG  TxRunner
	CH  Clickhouse
}

// Option adjusts a Store before backends open
type Option func(*Store)

// WithLogger sets the logger backends trace on
func WithLogger(l logger.Logger) Option { return func(s *Store) { s.Log = l } }

// Open dials every enabled backend; on failure nothing stays open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Named("store")}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		p, err := openPostgres(ctx, cfg, s.Log)
		if err != nil {
			return nil, fmt.Errorf("store: postgres: %w", err)
		}
		s.PG = p
	}
	if cfg.CH.Enabled {
		c, err := openClickhouse(ctx, cfg)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("store: clickhouse: %w", err)
		}
		s.CH = c
	}
	return s, nil
}

type pinger interface{ Ping(context.Context) error }

// Guard pings every backend that supports it and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for name, b := range map[string]any{"pg": s.PG, "ch": s.CH} {
		p, ok := b.(pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every opened backend
func (s *Store) Close(context.Context) error {
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
