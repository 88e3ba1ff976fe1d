// Package logger owns the process zerolog logger and the request scoped children built from ctx
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"addressbook/internal/platform/config/raw"
)

// Logger is the logging type used across the tree
type Logger = zerolog.Logger

// Options configures New
type Options struct {
	Level        string // trace..panic, "warning" accepted, unknown means debug
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer // stdout when nil
	WithCaller   bool
	SampleEvery  int // keep 1 in N events when > 1
	StaticFields map[string]string
}

// FromEnv builds Options from the LOG_* block
// a malformed block falls back to the defaults, there is no logger yet to report it
func FromEnv() Options {
	b, _ := raw.Load()
	return Options{
		Level:       strings.ToLower(strings.TrimSpace(b.Log.Level)),
		Format:      strings.ToLower(strings.TrimSpace(b.Log.Format)),
		Service:     strings.TrimSpace(b.Log.Service),
		Component:   strings.TrimSpace(b.Log.Component),
		WithCaller:  b.Log.Caller,
		SampleEvery: b.Log.SampleEvery,
	}
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

// New builds a logger from opt without touching the process root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	c := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if opt.Component != "" {
		c = c.Str("component", opt.Component)
	}
	for k, v := range opt.StaticFields {
		c = c.Str(k, v)
	}
	if opt.WithCaller {
		c = c.Caller()
	}

	l := c.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init installs the process root logger; only the first call has effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named is the root logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey uint8

const (
	keyRequestID ctxKey = iota
	keyOp
)

// WithRequest puts a request id on ctx, "" is a no-op
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithOp puts an operation name such as contacts.create on ctx, "" is a no-op
func WithOp(ctx context.Context, op string) context.Context {
	if op == "" {
		return ctx
	}
	return context.WithValue(ctx, keyOp, op)
}

// C is the root logger carrying request_id and op from ctx
func C(ctx context.Context) *Logger {
	c := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		c = c.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyOp).(string); s != "" {
		c = c.Str("op", s)
	}
	l := c.Logger()
	return &l
}
