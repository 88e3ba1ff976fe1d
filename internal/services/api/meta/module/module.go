// Package module mounts the meta endpoints
package module

import (
	"context"
	"time"

	"addressbook/internal/core/version"
	"addressbook/internal/modkit"
	"addressbook/internal/modkit/httpkit"
	metahttp "addressbook/internal/services/api/meta/http"
)

// Module serves health, readiness and build info; it exposes no ports
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New builds the meta module, mounted under /meta unless overridden
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	m := &Module{startedAt: time.Now()}
	backends := []metahttp.Backend{backendOf("pg", deps.PG), backendOf("ch", deps.CH)}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   m.startedAt,
			Backends:    backends,
		})
	})
	return m
}

// backendOf leaves Ping nil for a disabled or unpingable backend
func backendOf(name string, backend any) metahttp.Backend {
	p := metahttp.Backend{Name: name}
	if b, ok := backend.(interface{ Ping(context.Context) error }); ok {
		p.Ping = b.Ping
	}
	return p
}

// Ports is nil, nothing depends on meta
func (m *Module) Ports() any { return nil }
