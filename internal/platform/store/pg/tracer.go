package pg

import (
	"context"
	"strings"
	"time"

	"addressbook/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Tracer logs every statement pgx runs
// it satisfies pgx.QueryTracer and is installed through Config.Trace
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

// NewTracer logs on l at debug or above regardless of the level l was built with
func NewTracer(l logger.Logger, slow time.Duration) *Tracer {
	if l.GetLevel() > zerolog.DebugLevel {
		l = l.Level(zerolog.DebugLevel)
	}
	return &Tracer{
		log:  l.With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

type traceKey struct{}

type started struct {
	sql  string
	args []any
	at   time.Time
}

// TraceQueryStart implements pgx.QueryTracer
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, started{sql: d.SQL, args: d.Args, at: t.now()})
}

// TraceQueryEnd implements pgx.QueryTracer
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	s, ok := ctx.Value(traceKey{}).(started)
	if !ok {
		return
	}
	took := t.now().Sub(s.at)
	slow := t.slow > 0 && took >= t.slow

	ev := t.log.Debug()
	switch {
	case d.Err != nil:
		ev = t.log.Error().Err(d.Err)
	case slow:
		ev = t.log.Warn()
	}
	ev.Str("sql", oneLine(s.sql)).
		Int("args", len(s.args)).
		Str("tag", d.CommandTag.String()).
		Dur("elapsed", took).
		Bool("slow", slow).
		Msg("pg query")
}

// oneLine collapses whitespace runs so statements fit a log line
func oneLine(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
