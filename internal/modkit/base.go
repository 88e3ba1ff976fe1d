package modkit

import (
	"net/http"
	"strings"

	phttp "addressbook/internal/platform/net/http"
)

// Base carries the routing half of a module; modules embed it and add Ports
type Base struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	subrouter func(phttp.Router) phttp.Router
	routes    func(phttp.Router)
}

// NewBase builds a Base from resolved options
// routes attaches the module's own endpoints; b.Register runs after it
func NewBase(b Built, routes func(phttp.Router)) Base {
	external := b.Register
	return Base{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		routes: func(r phttp.Router) {
			if routes != nil {
				routes(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (b Base) MountRoutes(r phttp.Router) {
	r.Route(b.Prefix(), func(rr phttp.Router) {
		for _, mw := range b.mws {
			rr.Use(mw)
		}
		if b.subrouter != nil {
			rr = b.subrouter(rr)
		}
		b.routes(rr)
	})
}

// Name returns the module name, panics when unset
func (b Base) Name() string {
	if strings.TrimSpace(b.name) == "" {
		panic("modkit: module name is required")
	}
	return b.name
}

// Prefix returns the prefix as /seg with no trailing slash, panics when unset
func (b Base) Prefix() string {
	p := strings.Trim(strings.TrimSpace(b.prefix), "/")
	if p == "" {
		panic("modkit: module prefix is required")
	}
	return "/" + p
}

// Middlewares returns the module middlewares
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.mws }
