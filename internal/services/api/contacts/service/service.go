// Package service runs the contact repository operations, one transaction each
package service

import (
	"context"

	"addressbook/internal/core/fold"
	"addressbook/internal/modkit/repokit"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/store"
	"addressbook/internal/services/api/contacts/domain"
	"addressbook/internal/services/api/contacts/repo"
)

// Operation names used for logging and the journal
const (
	OpList   = "contacts.list"
	OpByID   = "contacts.by_id"
	OpCreate = "contacts.create"
	OpUpdate = "contacts.update"
	OpDelete = "contacts.delete"
)

// Service defines the service contract for contacts
type Service interface {
	domain.ServicePort
	History(ctx context.Context, id, limit int) ([]repo.Event, error)
}

// Svc implements the Service interface
type Svc struct {
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	journal  repo.Journal
	distinct bool
}

// Option tweaks a Svc
type Option func(*Svc)

// WithJournal records committed writes to j
func WithJournal(j repo.Journal) Option {
	return func(s *Svc) {
		if j != nil {
			s.journal = j
		}
	}
}

// WithDistinct toggles the structural duplicate pass on List
func WithDistinct(on bool) Option {
	return func(s *Svc) { s.distinct = on }
}

// New creates a new contacts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("contacts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("contacts.Service requires a non nil Repo binder")
	}
	s := &Svc{binder: binder, db: db, journal: repo.NewJournal(nil), distinct: true}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns every contact with its phones, possibly empty
func (s *Svc) List(ctx context.Context) ([]domain.Contact, error) {
	out, err := store.Scoped(ctx, s.db, OpList, func(ctx context.Context, q store.RowQuerier) ([]domain.Contact, error) {
		return s.binder.Bind(q).List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if !s.distinct {
		return out, nil
	}
	kept, dropped := fold.Distinct(out, contactID, domain.Contact.Equal)
	if dropped > 0 {
		logger.C(ctx).Warn().Str("op", OpList).Int("dropped", dropped).Int("kept", len(kept)).
			Msg("contact grouping anomaly, duplicate contacts dropped")
	}
	return kept, nil
}

func contactID(c domain.Contact) int { return c.ContactID }

type found struct {
	c  domain.Contact
	ok bool
}

// ByID returns a contact and whether it exists
func (s *Svc) ByID(ctx context.Context, id int) (domain.Contact, bool, error) {
	res, err := store.Scoped(ctx, s.db, OpByID, func(ctx context.Context, q store.RowQuerier) (found, error) {
		c, ok, err := s.binder.Bind(q).ByID(ctx, id)
		return found{c: c, ok: ok}, err
	})
	if err != nil {
		return domain.Contact{}, false, err
	}
	return res.c, res.ok, nil
}

type created struct{ affected, id int }

// Create inserts the contact scalars and returns the affected count
func (s *Svc) Create(ctx context.Context, c domain.Contact) (int, error) {
	res, err := store.Scoped(ctx, s.db, OpCreate, func(ctx context.Context, q store.RowQuerier) (created, error) {
		n, id, err := s.binder.Bind(q).Create(ctx, c.FirstName, c.LastName, c.Address)
		return created{affected: n, id: id}, err
	})
	if err != nil {
		return 0, err
	}
	s.record(ctx, OpCreate, res.id, res.affected)
	return res.affected, nil
}

// Update replaces the contact scalars; zero means no such contact
func (s *Svc) Update(ctx context.Context, id int, c domain.Contact) (int, error) {
	n, err := store.Scoped(ctx, s.db, OpUpdate, func(ctx context.Context, q store.RowQuerier) (int, error) {
		return s.binder.Bind(q).Update(ctx, id, c.FirstName, c.LastName, c.Address)
	})
	if err != nil {
		return 0, err
	}
	s.record(ctx, OpUpdate, id, n)
	return n, nil
}

// Delete removes the contact and its phones; zero means no such contact
func (s *Svc) Delete(ctx context.Context, id int) (int, error) {
	n, err := store.Scoped(ctx, s.db, OpDelete, func(ctx context.Context, q store.RowQuerier) (int, error) {
		return s.binder.Bind(q).Delete(ctx, id)
	})
	if err != nil {
		return 0, err
	}
	s.record(ctx, OpDelete, id, n)
	return n, nil
}

// History returns journaled writes for a contact, newest first
func (s *Svc) History(ctx context.Context, id, limit int) ([]repo.Event, error) {
	return s.journal.History(ctx, id, limit)
}

// record journals a committed write; failures are logged and swallowed
func (s *Svc) record(ctx context.Context, op string, id, affected int) {
	if affected <= 0 {
		return
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), op, id, affected); err != nil {
		logger.C(ctx).Warn().Err(err).Str("op", op).Int("contact_id", id).Msg("journal write failed")
	}
}
