package ch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"addressbook/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// fakeConn overrides the driver.Conn methods CH uses
type fakeConn struct {
	driver.Conn

	pingErr  error
	execSQL  string
	execArgs []any
	batch    *fakeBatch
	prepSQL  string
	closed   bool
}

func (f *fakeConn) Ping(context.Context) error { return f.pingErr }
func (f *fakeConn) Close() error               { f.closed = true; return nil }
func (f *fakeConn) Exec(_ context.Context, sql string, args ...any) error {
	f.execSQL, f.execArgs = sql, args
	return nil
}
func (f *fakeConn) PrepareBatch(_ context.Context, sql string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	f.prepSQL = sql
	return f.batch, nil
}

type fakeBatch struct {
	driver.Batch

	appendErr error
	rows      [][]any
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Send() error  { b.sent = true; return nil }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

func TestOpen_EmptyAndBadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := Open(context.Background(), Config{URL: "://nope"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_SetsClientInfoAndPings(t *testing.T) {
	testkit.Serial(t)

	fc := &fakeConn{}
	var seen *clickhouse.Options
	testkit.Swap(t, &openConn, func(o *clickhouse.Options) (driver.Conn, error) {
		seen = o
		return fc, nil
	})

	c, err := Open(context.Background(), Config{URL: "clickhouse://localhost:9000/default", ClientName: "addressbook", ClientTag: "api"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Conn != fc {
		t.Fatalf("conn not stored")
	}
	if seen == nil || len(seen.ClientInfo.Products) == 0 || seen.ClientInfo.Products[0].Name != "addressbook" {
		t.Fatalf("client info not applied: %+v", seen)
	}
}

func TestOpen_PingFailureClosesConn(t *testing.T) {
	testkit.Serial(t)

	fc := &fakeConn{pingErr: errors.New("down")}
	testkit.Swap(t, &openConn, func(*clickhouse.Options) (driver.Conn, error) { return fc, nil })

	if _, err := Open(context.Background(), Config{URL: "clickhouse://localhost:9000/default"}); err == nil {
		t.Fatalf("expected ping error")
	}
	if !fc.closed {
		t.Fatalf("conn must be closed on ping failure")
	}
}

func TestInsert_BatchesRows(t *testing.T) {
	t.Parallel()

	fb := &fakeBatch{}
	fc := &fakeConn{batch: fb}
	c := &CH{Conn: fc}

	err := c.Insert(context.Background(), "contact_events", [][]any{{"a", 1}, {"b", 2}})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.prepSQL != "INSERT INTO contact_events" {
		t.Fatalf("prepare sql = %q", fc.prepSQL)
	}
	if len(fb.rows) != 2 || !fb.sent {
		t.Fatalf("batch not sent: %+v", fb)
	}
}

func TestInsert_AppendErrorAborts(t *testing.T) {
	t.Parallel()

	fb := &fakeBatch{appendErr: errors.New("bad column")}
	c := &CH{Conn: &fakeConn{batch: fb}}

	if err := c.Insert(context.Background(), "t", [][]any{{1}}); err == nil {
		t.Fatalf("expected append error")
	}
	if !fb.aborted || fb.sent {
		t.Fatalf("batch must abort, got %+v", fb)
	}
}

func TestInsert_RejectsBadTableAndSkipsEmpty(t *testing.T) {
	t.Parallel()

	c := &CH{Conn: &fakeConn{}}
	if err := c.Insert(context.Background(), "t; drop", [][]any{{1}}); err == nil {
		t.Fatalf("expected invalid table error")
	}
	if err := c.Insert(context.Background(), "db.t", nil); err != nil {
		t.Fatalf("empty insert should be a no op: %v", err)
	}
}

func TestExec_Delegates(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	c := &CH{Conn: fc}
	if err := c.Exec(context.Background(), "OPTIMIZE TABLE t", 1); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if fc.execSQL != "OPTIMIZE TABLE t" || len(fc.execArgs) != 1 {
		t.Fatalf("exec not delegated: %q %v", fc.execSQL, fc.execArgs)
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var c *CH
	if err := c.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestClientInfo(t *testing.T) {
	t.Parallel()

	ci := ClientInfo(" addressbook ", "")
	if len(ci.Products) != 4 {
		t.Fatalf("want 4 products got %d", len(ci.Products))
	}
	if ci.Products[0].Name != "addressbook" {
		t.Fatalf("name not trimmed: %q", ci.Products[0].Name)
	}
	if ci.Products[1].Version != "unknown" {
		t.Fatalf("empty tag should read unknown, got %q", ci.Products[1].Version)
	}
	if !strings.HasPrefix(ci.Products[3].Version, "go") {
		t.Fatalf("go version missing: %q", ci.Products[3].Version)
	}
}
