package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"addressbook/internal/modkit/repokit"
	"addressbook/internal/platform/store"
	"addressbook/internal/services/api/contacts/domain"
	"addressbook/internal/services/api/contacts/repo"
)

var errNoSQL = errors.New("mem: raw sql not supported")

// memState is the committed data of memTx
type memState struct {
	contacts []domain.Contact
	nextID   int
}

func (s memState) clone() *memState {
	out := &memState{nextID: s.nextID, contacts: make([]domain.Contact, 0, len(s.contacts))}
	for _, c := range s.contacts {
		c.Phones = slices.Clone(c.Phones)
		out.contacts = append(out.contacts, c)
	}
	return out
}

// memTx is a TxRunner over a snapshot: fn works on a copy that only replaces
// the committed state when fn returns nil
type memTx struct {
	mu        sync.Mutex
	state     *memState
	commits   int
	rollbacks int
}

func newMemTx(seed ...domain.Contact) *memTx {
	st := &memState{nextID: 1}
	for _, c := range seed {
		st.contacts = append(st.contacts, c)
		if c.ContactID >= st.nextID {
			st.nextID = c.ContactID + 1
		}
	}
	return &memTx{state: st}
}

func (m *memTx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	defer func() {
		if r := recover(); r != nil {
			m.rollbacks++
			panic(r)
		}
	}()
	if err := fn(&memQ{st: work}); err != nil {
		m.rollbacks++
		return err
	}
	m.state = work
	m.commits++
	return nil
}

func (m *memTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, errNoSQL }
func (m *memTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, errNoSQL }
func (m *memTx) QueryRow(context.Context, string, ...any) store.Row            { return nil }

func (m *memTx) snapshot() []domain.Contact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone().contacts
}

// memQ carries the working state to the binder
type memQ struct{ st *memState }

func (q *memQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, errNoSQL }
func (q *memQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, errNoSQL }
func (q *memQ) QueryRow(context.Context, string, ...any) store.Row            { return nil }

// memBinder binds memRepo to whatever memQ the transaction hands out
func memBinder() repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(q repokit.Queryer) repo.Repo {
		return &memRepo{st: q.(*memQ).st}
	})
}

type memRepo struct{ st *memState }

func (r *memRepo) List(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.clone().contacts, nil
}

func (r *memRepo) ByID(ctx context.Context, id int) (domain.Contact, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Contact{}, false, err
	}
	for _, c := range r.st.contacts {
		if c.ContactID == id {
			return c, true, nil
		}
	}
	return domain.Contact{}, false, nil
}

func (r *memRepo) Create(ctx context.Context, first, last, address string) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	id := r.st.nextID
	r.st.nextID++
	r.st.contacts = append(r.st.contacts, domain.Contact{
		ContactID: id, FirstName: first, LastName: last, Address: address, Phones: []domain.Phone{},
	})
	return 1, id, nil
}

func (r *memRepo) Update(ctx context.Context, id int, first, last, address string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for i := range r.st.contacts {
		if r.st.contacts[i].ContactID == id {
			r.st.contacts[i].FirstName, r.st.contacts[i].LastName, r.st.contacts[i].Address = first, last, address
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memRepo) Delete(ctx context.Context, id int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for i, c := range r.st.contacts {
		if c.ContactID == id {
			r.st.contacts = slices.Delete(r.st.contacts, i, i+1)
			return 1, nil
		}
	}
	return 0, nil
}

// failingRepo performs the write on the working copy, then fails or panics
type failingRepo struct {
	repo.Repo
	err   error
	panic bool
}

func (f failingRepo) Update(ctx context.Context, id int, first, last, address string) (int, error) {
	if _, err := f.Repo.Update(ctx, id, first, last, address); err != nil {
		return 0, err
	}
	if f.panic {
		panic("driver exploded")
	}
	return 0, f.err
}

func failingBinder(err error, panics bool) repokit.Binder[repo.Repo] {
	inner := memBinder()
	return repokit.BindFunc[repo.Repo](func(q repokit.Queryer) repo.Repo {
		return failingRepo{Repo: inner.Bind(q), err: err, panic: panics}
	})
}

// dupBinder returns a fixed list from List regardless of state
func dupBinder(list []domain.Contact) repokit.Binder[repo.Repo] {
	inner := memBinder()
	return repokit.BindFunc[repo.Repo](func(q repokit.Queryer) repo.Repo {
		return dupRepo{Repo: inner.Bind(q), list: list}
	})
}

type dupRepo struct {
	repo.Repo
	list []domain.Contact
}

func (d dupRepo) List(context.Context) ([]domain.Contact, error) { return d.list, nil }

// recJournal records events and can be told to fail
type recJournal struct {
	mu     sync.Mutex
	events []repo.Event
	err    error
}

func (j *recJournal) Ensure(context.Context) error { return nil }

func (j *recJournal) Record(_ context.Context, op string, id, affected int) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.events = append(j.events, repo.Event{Op: op, ContactID: id, Affected: affected})
	return nil
}

func (j *recJournal) History(_ context.Context, id, _ int) ([]repo.Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []repo.Event{}
	for _, e := range j.events {
		if e.ContactID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
