// Package modkit composes API modules from shared deps and options
package modkit

import (
	phttp "addressbook/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring, may be nil
	Ports() any
	// Name identifies the module in the registry and logs
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Mount registers each module's ports under its name and mounts its routes on r, in order
// reg may be nil when nothing needs cross-module lookups
func Mount(r phttp.Router, reg *Registry, mods ...Module) {
	for _, m := range mods {
		if reg != nil {
			reg.Register(m.Name(), m.Ports())
		}
		m.MountRoutes(r)
	}
}
