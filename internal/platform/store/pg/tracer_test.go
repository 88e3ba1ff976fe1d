package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock advances by step on every read
func clock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func trace(t *testing.T, tr *Tracer, buf *bytes.Buffer, sql string, err error) map[string]any {
	t.Helper()
	buf.Reset()
	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql, Args: []any{"Ada", "Lovelace"}})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1"), Err: err})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestTracer_Levels(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(zerolog.New(&buf).Level(zerolog.ErrorLevel), 50*time.Millisecond)

	tr.now = clock(10 * time.Millisecond)
	line := trace(t, tr, &buf, "select *\n  from list_contacts()", nil)
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "pg", line["component"])
	assert.Equal(t, "select * from list_contacts()", line["sql"])
	assert.EqualValues(t, 2, line["args"])
	assert.Equal(t, "SELECT 1", line["tag"])
	assert.Equal(t, false, line["slow"])

	tr.now = clock(time.Second)
	line = trace(t, tr, &buf, "select 1", nil)
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, true, line["slow"])

	line = trace(t, tr, &buf, "select 1", errors.New("relation missing"))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "relation missing", line["error"])
}

func TestTracer_NoSlowThreshold(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(zerolog.New(&buf), 0)
	tr.now = clock(time.Hour)

	assert.Equal(t, "debug", trace(t, tr, &buf, "select 1", nil)["level"])
}

func TestTracer_EndWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	NewTracer(zerolog.New(&buf), 0).TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	assert.Zero(t, buf.Len())
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "select a, b from t", oneLine("\tselect a,\n\t  b\r\nfrom   t  "))
	assert.Empty(t, oneLine(" \n "))
}
