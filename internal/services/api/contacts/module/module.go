// Package module wires the contacts service into the API
package module

import (
	"context"

	"addressbook/internal/modkit"
	"addressbook/internal/modkit/httpkit"
	"addressbook/internal/modkit/repokit"
	contactsdom "addressbook/internal/services/api/contacts/domain"
	contactshttp "addressbook/internal/services/api/contacts/http"
	contactsrepo "addressbook/internal/services/api/contacts/repo"
	contactssvc "addressbook/internal/services/api/contacts/service"
)

// Module mounts the contact endpoints and exposes the service as its port
type Module struct {
	modkit.Base
	svc contactssvc.Service
}

// New builds the contacts module
// keys read from deps.Cfg
//
//	STATEMENT_TIMEOUT  per tx statement timeout, 0 disables (default 0)
//	DISTINCT_PASS      drop structurally equal contacts after folding (default true)
//	                   one map lookup per contact, compared only against earlier ones with its id
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("contacts"), modkit.WithPrefix("/contacts")}, opts...)...)

	db := deps.RequirePG("contacts")
	timeout := deps.Cfg.MayDuration("STATEMENT_TIMEOUT", 0)
	if timeout > 0 {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(timeout))
	}
	distinct := deps.Cfg.MayBool("DISTINCT_PASS", true)

	svc := contactssvc.New(db, contactsrepo.NewPG(),
		contactssvc.WithJournal(contactsrepo.NewJournal(deps.CH)),
		contactssvc.WithDistinct(distinct),
	)
	log := deps.Named("contacts")
	log.Debug().Dur("statement_timeout", timeout).Bool("distinct", distinct).Bool("journal", deps.CH != nil).
		Msg("contacts module built")

	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { contactshttp.Register(r, m.svc) })
	return m
}

// Ports returns a contactsdom.ServicePort
func (m *Module) Ports() any { return port{svc: m.svc} }

// port narrows the service to the domain port for other modules
type port struct{ svc contactssvc.Service }

var _ contactsdom.ServicePort = port{}

func (p port) List(ctx context.Context) ([]contactsdom.Contact, error) { return p.svc.List(ctx) }

func (p port) ByID(ctx context.Context, id int) (contactsdom.Contact, bool, error) {
	return p.svc.ByID(ctx, id)
}

func (p port) Create(ctx context.Context, c contactsdom.Contact) (int, error) {
	return p.svc.Create(ctx, c)
}

func (p port) Update(ctx context.Context, id int, c contactsdom.Contact) (int, error) {
	return p.svc.Update(ctx, id, c)
}

func (p port) Delete(ctx context.Context, id int) (int, error) { return p.svc.Delete(ctx, id) }
