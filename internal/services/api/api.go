// Package api assembles the HTTP API from its modules
package api

import (
	"addressbook/internal/modkit"
	"addressbook/internal/modkit/httpkit"
	"addressbook/internal/modkit/swaggerkit"
	"addressbook/internal/platform/config"
	"addressbook/internal/platform/logger"
	phttp "addressbook/internal/platform/net/http"
	"addressbook/internal/platform/store"

	contactsmod "addressbook/internal/services/api/contacts/module"
	metamod "addressbook/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// builders in mount order
var builders = []modkit.Builder{metamod.New, contactsmod.New}

// Mount mounts docs, the profiler and every module under /api/v1
// the returned registry holds each module's ports by name
func Mount(r phttp.Router, opt Options) *modkit.Registry {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	mods := make([]modkit.Module, 0, len(builders))
	for _, build := range builders {
		mods = append(mods, build(deps))
	}

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.TitleSuffix(opt.Config.MayString("DOCS_TITLE_SUFFIX", "")))
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	reg := modkit.NewRegistry()
	httpkit.MountAPI(r, httpkit.V1, httpkit.Stack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		modkit.Mount(api, reg, mods...)
	})
	return reg
}
