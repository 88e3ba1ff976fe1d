package modkit

import (
	"addressbook/internal/modkit/repokit"
	"addressbook/internal/platform/config"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// RequirePG returns PG or panics naming the module that needed it
func (d Deps) RequirePG(module string) repokit.TxRunner {
	if d.PG == nil {
		panic(module + ": postgres is required")
	}
	return d.PG
}

// Named returns the deps logger tagged with a module name
func (d Deps) Named(module string) logger.Logger {
	return d.Log.With().Str("module", module).Logger()
}
