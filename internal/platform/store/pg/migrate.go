package pg

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"addressbook/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	// registers the pgx5 scheme
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

// Migrate applies every pending up migration found in dir of fsys
// a dirty schema is reported and left for manual repair
func Migrate(dsn string, fsys fs.FS, dir string, log logger.Logger) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migrate: init: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source_err", srcErr).AnErr("db_err", dbErr).Msg("migrate close")
		}
	}()
	m.Log = migrateLog{log: log}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrate: version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migrate: schema dirty at version %d", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Uint("version", from).Msg("schema up to date")
			return nil
		}
		return fmt.Errorf("migrate: up: %w", err)
	}

	to, _, _ := m.Version()
	log.Info().Uint("from", from).Uint("to", to).Msg("schema migrated")
	return nil
}

// pgx5DSN rewrites postgres urls to the pgx5 scheme golang-migrate expects
func pgx5DSN(dsn string) string {
	for _, p := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, p); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLog bridges migrate.Logger to zerolog
type migrateLog struct{ log logger.Logger }

func (l migrateLog) Printf(format string, args ...any) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l migrateLog) Verbose() bool { return l.log.GetLevel() <= zerolog.TraceLevel }
