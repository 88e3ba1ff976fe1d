package module

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "addressbook/internal/modkit"
	"addressbook/internal/platform/config"
	phttp "addressbook/internal/platform/net/http"
	"addressbook/internal/platform/store"
	contactsdom "addressbook/internal/services/api/contacts/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoDB = errors.New("no db")

// fakeQ records statements and fails every read
type fakeQ struct{ sqls []string }

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	return nil, nil
}

func (f *fakeQ) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.sqls = append(f.sqls, sql)
	return nil, errNoDB
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	f.sqls = append(f.sqls, sql)
	return nil
}

type fakeTx struct {
	fakeQ
	txs int
}

func (f *fakeTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	f.txs++
	return fn(&f.fakeQ)
}

func mount(t *testing.T, m modkit.Module) http.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return r.Mux()
}

func TestNew_Defaults(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New().Prefix("CONTACTS_TEST_"), PG: &fakeTx{}})

	require.Equal(t, "contacts", m.Name())
	mod, ok := m.(*Module)
	require.True(t, ok)
	assert.Equal(t, "/contacts", mod.Prefix())

	_, ok = m.Ports().(contactsdom.ServicePort)
	assert.True(t, ok, "ports must expose the domain service port")
}

func TestNew_OptionsOverrideDefaults(t *testing.T) {
	m := New(modkit.Deps{PG: &fakeTx{}}, modkit.WithName("people"), modkit.WithPrefix("/people"))
	assert.Equal(t, "people", m.Name())
	assert.Equal(t, "/people", m.(*Module).Prefix())
}

func TestMountRoutes_StoreFailureIs500(t *testing.T) {
	tx := &fakeTx{}
	h := mount(t, New(modkit.Deps{Cfg: config.New().Prefix("CONTACTS_TEST_"), PG: tx}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, tx.txs)
	require.Len(t, tx.sqls, 1, "no timeout statement when disabled")
}

func TestMountRoutes_StatementTimeoutRunsFirst(t *testing.T) {
	t.Setenv("CONTACTS_TEST_STATEMENT_TIMEOUT", "2s")

	tx := &fakeTx{}
	h := mount(t, New(modkit.Deps{Cfg: config.New().Prefix("CONTACTS_TEST_"), PG: tx}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts/1", nil))

	require.Len(t, tx.sqls, 2)
	assert.Contains(t, tx.sqls[0], "statement_timeout")
	assert.Contains(t, tx.sqls[1], "get_contact_by_id")
}

func TestMountRoutes_ExternalRegisterIsMounted(t *testing.T) {
	h := mount(t, New(modkit.Deps{PG: &fakeTx{}}, modkit.WithRegister(func(r phttp.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts/ping", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestNew_WithoutPostgresPanics(t *testing.T) {
	assert.PanicsWithValue(t, "contacts: postgres is required", func() { _ = New(modkit.Deps{}) })
}
