// Package pg dials the pgx pool contacts live in and runs its migrations
package pg

import (
	"context"
	"time"

	"addressbook/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config selects the database and how statements are traced
type Config struct {
	URL      string
	AppName  string // application_name unless the URL sets one
	MaxConns int32  // 0 keeps the pgxpool default

	// Trace receives every statement when non nil
	Trace *logger.Logger
	// Slow promotes traced statements at or above it to warn, 0 never promotes
	Slow time.Duration
}

var newPool = pgxpool.NewWithConfig

// PoolConfig turns cfg into a pgxpool config
func PoolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	params := pc.ConnConfig.RuntimeParams
	if params == nil {
		params = map[string]string{}
		pc.ConnConfig.RuntimeParams = params
	}
	if _, ok := params["application_name"]; !ok && cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}
	if cfg.Trace != nil {
		pc.ConnConfig.Tracer = NewTracer(*cfg.Trace, cfg.Slow)
	}
	return pc, nil
}

// Open builds the pool; tune runs last and may override anything
// no connection is made until first use or Ping
func Open(ctx context.Context, cfg Config, tune ...func(*pgxpool.Config)) (*pgxpool.Pool, error) {
	pc, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, t := range tune {
		t(pc)
	}
	return newPool(ctx, pc)
}
