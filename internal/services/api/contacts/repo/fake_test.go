package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"addressbook/internal/platform/store"

	"github.com/google/uuid"
)

// fakeRows serves scripted rows; nil cells scan as NULL into pointer dests
type fakeRows struct {
	data   [][]any
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d dests for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		if err := assign(d, row[i]); err != nil {
			return fmt.Errorf("col %d: %w", i, err)
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }

func assign(dest, v any) error {
	switch p := dest.(type) {
	case *int:
		*p = v.(int)
	case *int64:
		*p = v.(int64)
	case *string:
		*p = v.(string)
	case *uuid.UUID:
		*p = v.(uuid.UUID)
	case *time.Time:
		*p = v.(time.Time)
	case **int:
		if v == nil {
			*p = nil
			return nil
		}
		n := v.(int)
		*p = &n
	case **int64:
		if v == nil {
			*p = nil
			return nil
		}
		n := v.(int64)
		*p = &n
	case **string:
		if v == nil {
			*p = nil
			return nil
		}
		s := v.(string)
		*p = &s
	default:
		return fmt.Errorf("unsupported dest %T", dest)
	}
	return nil
}

type fakeRow struct {
	rows *fakeRows
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if !r.rows.Next() {
		return errors.New("no rows")
	}
	return r.rows.Scan(dest...)
}

type call struct {
	sql  string
	args []any
}

// fakeQuerier answers every statement with one scripted result
type fakeQuerier struct {
	rows  *fakeRows
	err   error
	calls []call
}

func (f *fakeQuerier) record(sql string, args []any) {
	f.calls = append(f.calls, call{sql: sql, args: append([]any(nil), args...)})
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.record(sql, args)
	return nil, f.err
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.record(sql, args)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	f.record(sql, args)
	return fakeRow{rows: f.rows, err: f.err}
}

// fakeCH records inserts and serves scripted query rows
type fakeCH struct {
	inserts []struct {
		table string
		data  any
	}
	execs     []string
	queryArgs []any
	rows      *fakeRows
	err       error
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	f.inserts = append(f.inserts, struct {
		table string
		data  any
	}{table, data})
	return f.err
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.err
}

func (f *fakeCH) Query(_ context.Context, _ string, args ...any) (store.Rows, error) {
	f.queryArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeCH) Close() error { return nil }

func ip(n int) *int       { return &n }
func sp(s string) *string { return &s }
