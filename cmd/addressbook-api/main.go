// @title         Address Book API
// @version       0.1.0
// @description   Contacts and their phone numbers
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"addressbook/internal/modkit/repokit"
	"addressbook/internal/platform/config"
	"addressbook/internal/platform/config/raw"
	"addressbook/internal/platform/logger"
	phttp "addressbook/internal/platform/net/http"
	"addressbook/internal/platform/net/middleware"
	"addressbook/internal/platform/store"
	"addressbook/internal/platform/store/pg"

	"addressbook/internal/services/api"
	contactsrepo "addressbook/internal/services/api/contacts/repo"

	"github.com/go-chi/chi/v5"
)

func main() {
	// bring up logging before anything can log
	boot, bootErr := raw.Load()
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = boot.AppName
	}
	logger.Init(opts)
	l := logger.Get()
	if bootErr != nil {
		l.Warn().Err(bootErr).Msg("bootstrap env malformed, using defaults")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")         // CORE_API_*
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // SERVICE_CLICKHOUSE_*

	// the dsn is read once here and injected everywhere else
	dsn := pgCfg.MustString("DBURL")
	if pgCfg.MayBool("MIGRATE", true) {
		if err := pg.Migrate(dsn, contactsrepo.Migrations, contactsrepo.MigrationsDir, *logger.Named("migrate")); err != nil {
			l.Fatal().Err(err).Msg("migrations failed")
		}
	}

	chOn := chCfg.MayBool("ENABLED", false)
	chURL := ""
	if chOn {
		chURL = chCfg.MustString("DBURL")
	}

	st, err := store.Open(ctx,
		store.Config{
			AppName: "addressbook",
			PG: store.PGConfig{
				Enabled:  true,
				URL:      dsn,
				MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
				Slow:     time.Duration(pgCfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
				LogSQL:   pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled:    chOn,
				URL:        chURL,
				ClientName: "addressbook",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	if st.CH != nil {
		if err := contactsrepo.NewJournal(st.CH).Ensure(ctx); err != nil {
			l.Fatal().Err(err).Msg("journal table")
		}
	}

	// http server (reads CORE_API_API_ADDR / CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/health"))
	})

	reg := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("addr", srv.Addr()).Strs("modules", reg.Names()).Msg("address book api listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
