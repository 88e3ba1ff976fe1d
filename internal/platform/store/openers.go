package store

import (
	"context"
	"fmt"
	"time"

	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/store/ch"
	"addressbook/internal/platform/store/pg"

	"github.com/jackc/pgx/v5/pgxpool"
)

// readiness waits for postgres to accept connections, doubling the pause up to a ceiling
var readiness = struct {
	attempts int
	perTry   time.Duration
	first    time.Duration
	ceiling  time.Duration
}{attempts: 20, perTry: 3 * time.Second, first: 150 * time.Millisecond, ceiling: 2 * time.Second}

func openPostgres(ctx context.Context, cfg Config, log logger.Logger) (*Postgres, error) {
	pc := pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		Slow:     cfg.PG.Slow,
	}
	if cfg.PG.LogSQL {
		pc.Trace = &log
	}
	pool, err := pg.Open(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := awaitPostgres(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	return NewPostgres(pool), nil
}

// awaitPostgres pings through the pool directly, before tracing matters
func awaitPostgres(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
	pause := readiness.first
	var err error
	for try := 1; try <= readiness.attempts; try++ {
		pctx, cancel := context.WithTimeout(ctx, readiness.perTry)
		err = pool.Ping(pctx)
		cancel()
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Int("try", try).Dur("pause", pause).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
		pause = min(2*pause, readiness.ceiling)
	}
	return fmt.Errorf("not ready after %d pings: %w", readiness.attempts, err)
}

func openClickhouse(ctx context.Context, cfg Config) (Clickhouse, error) {
	name := cfg.CH.ClientName
	if name == "" {
		name = cfg.AppName
	}
	c, err := ch.Open(ctx, ch.Config{URL: cfg.CH.URL, ClientName: name, ClientTag: cfg.CH.ClientTag})
	if err != nil {
		return nil, err
	}
	return NewClickhouse(c), nil
}
