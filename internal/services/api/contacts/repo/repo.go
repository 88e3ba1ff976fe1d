// Package repo provides postgres access for contacts through stored functions
package repo

import (
	"context"

	"addressbook/internal/core/fold"
	"addressbook/internal/modkit/repokit"
	"addressbook/internal/platform/store"
	"addressbook/internal/services/api/contacts/domain"
)

// Repo defines the repository contract for contacts
// it runs on whatever Queryer it was bound to, usually a transaction
type Repo interface {
	List(ctx context.Context) ([]domain.Contact, error)
	ByID(ctx context.Context, id int) (domain.Contact, bool, error)
	// Create returns the affected count and the new contact id (0 when nothing was inserted)
	Create(ctx context.Context, first, last, address string) (affected, id int, err error)
	Update(ctx context.Context, id int, first, last, address string) (int, error)
	Delete(ctx context.Context, id int) (int, error)
}

const (
	sqlList   = `select contact_id, first_name, last_name, address, phone_id, phone_contact_id, number from get_contacts()`
	sqlByID   = `select contact_id, first_name, last_name, address, phone_id, phone_contact_id, number from get_contact_by_id(id => $1)`
	sqlCreate = `select affected, contact_id from insert_contact(first_name => $1, last_name => $2, address => $3)`
	sqlUpdate = `select update_contact(contact_id => $1, first_name => $2, last_name => $3, address => $4)`
	sqlDelete = `select delete_contact(contact_id => $1)`
)

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) List(ctx context.Context) ([]domain.Contact, error) {
	f, err := r.scanFold(ctx, sqlList)
	if err != nil {
		return nil, err
	}
	return f.Groups(), nil
}

func (r *queries) ByID(ctx context.Context, id int) (domain.Contact, bool, error) {
	f, err := r.scanFold(ctx, sqlByID, id)
	if err != nil {
		return domain.Contact{}, false, err
	}
	c, ok := f.First()
	return c, ok, nil
}

// scanFold streams rows straight into a folder without materializing them
func (r *queries) scanFold(ctx context.Context, sql string, args ...any) (*fold.Folder[Row, int, domain.Contact], error) {
	f := newFolder()
	err := store.Each(ctx, r.q, func(s store.Row) error {
		var row Row
		if err := row.scan(s); err != nil {
			return err
		}
		f.Add(row)
		return nil
	}, sql, args...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *queries) Create(ctx context.Context, first, last, address string) (int, int, error) {
	var affected, id *int
	if err := r.q.QueryRow(ctx, sqlCreate, first, last, address).Scan(&affected, &id); err != nil {
		return 0, 0, err
	}
	return deref(affected), deref(id), nil
}

func (r *queries) Update(ctx context.Context, id int, first, last, address string) (int, error) {
	return store.Affected(ctx, r.q, sqlUpdate, id, first, last, address)
}

func (r *queries) Delete(ctx context.Context, id int) (int, error) {
	return store.Affected(ctx, r.q, sqlDelete, id)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
