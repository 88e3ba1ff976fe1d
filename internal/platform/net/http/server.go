package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"addressbook/internal/platform/config"
	"addressbook/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// ServerConfig is the listener block of a config scope
type ServerConfig struct {
	Addr        string
	Grace       time.Duration
	ReadHeaders time.Duration
	Idle        time.Duration
}

// ServerConfigFrom reads API_ADDR, or API_PORT (default 4000) when no addr is set
// plus SHUTDOWN_GRACE, READ_HEADER_TIMEOUT and IDLE_TIMEOUT
func ServerConfigFrom(cfg config.Conf) ServerConfig {
	addr := cfg.MayString("API_ADDR", "")
	if addr == "" {
		addr = cfg.MayPort("API_PORT", 4000)
	}
	return ServerConfig{
		Addr:        addr,
		Grace:       cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		ReadHeaders: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		Idle:        cfg.MayDuration("IDLE_TIMEOUT", 60*time.Second),
	}
}

// Server owns the root chi mux and its listener
type Server struct {
	cfg ServerConfig
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server from cfg; opts see the root mux before any module mounts
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	sc := ServerConfigFrom(cfg)
	mux := chi.NewRouter()
	for _, o := range opts {
		o(mux)
	}
	return &Server{
		cfg: sc,
		mux: mux,
		srv: &stdhttp.Server{
			Addr:              sc.Addr,
			Handler:           mux,
			ReadHeaderTimeout: sc.ReadHeaders,
			IdleTimeout:       sc.Idle,
		},
	}
}

// Router is the root mux behind the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.cfg.Addr }

// Run serves until ctx is cancelled or the listener fails
// a cancelled ctx drains in-flight requests for up to the grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		log.Info().Str("addr", s.cfg.Addr).Msg("http listening")
		if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Grace)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Dur("grace", s.cfg.Grace).Msg("http shutdown")
		}
		return nil
	})
	return g.Wait()
}

// Shutdown drains the server; Run then returns nil
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
