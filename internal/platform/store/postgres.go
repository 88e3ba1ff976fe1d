package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is what *pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxTx interface {
	pgxQuerier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Postgres is the TxRunner over a pgx pool
// statement tracing is a pgx tracer on the pool, see pg.Config.Trace
type Postgres struct {
	querier
	begin func(context.Context) (pgxTx, error)
	ping  func(context.Context) error
	close func()
}

var _ TxRunner = (*Postgres)(nil)

// NewPostgres wraps pool
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		querier: querier{pool},
		begin:   func(ctx context.Context) (pgxTx, error) { return pool.Begin(ctx) },
		ping:    pool.Ping,
		close:   pool.Close,
	}
}

// Tx runs fn on one transaction
// a panic in fn rolls back and keeps unwinding; a failed commit is the result
func (p *Postgres) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}
	done := false
	defer func() {
		if !done {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(querier{tx}); err != nil {
		return err
	}
	done = true
	return tx.Commit(ctx)
}

// Ping checks a pooled connection answers
func (p *Postgres) Ping(ctx context.Context) error { return p.ping(ctx) }

// Close closes the pool
func (p *Postgres) Close() error {
	p.close()
	return nil
}

// querier narrows pgx results to the store seams
type querier struct{ q pgxQuerier }

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return q.q.Exec(ctx, sql, args...)
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := q.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return q.q.QueryRow(ctx, sql, args...)
}
