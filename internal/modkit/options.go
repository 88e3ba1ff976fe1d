package modkit

import (
	"net/http"
	"slices"

	phttp "addressbook/internal/platform/net/http"
)

// Built is what a module reads back from its options
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Subrouter func(phttp.Router) phttp.Router
	Register  func(phttp.Router)
}

// Option sets one field of Built
type Option func(*Built)

// WithName names the module in logs and the registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithSubrouter wraps the module router before any route is attached
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds endpoints after the module's own
func WithRegister(fn func(phttp.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts in order so later ones win
// a nil Subrouter means identity and a nil Register means none
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(phttp.Router) {}
	}
	b.Mw = slices.Clone(b.Mw)
	return b
}
