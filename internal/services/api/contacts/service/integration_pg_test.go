//go:build integration_pg

package service

import (
	"context"
	"testing"
	"time"

	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/store"
	"addressbook/internal/platform/store/pg"
	"addressbook/internal/platform/store/pg/pgtest"
	"addressbook/internal/services/api/contacts/domain"
	"addressbook/internal/services/api/contacts/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startStore migrates a fresh postgres and opens the store on it
func startStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := pgtest.Start(t, "addressbook")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := *logger.Get()
	require.NoError(t, pg.Migrate(dsn, repo.Migrations, repo.MigrationsDir, log))

	st, err := store.Open(ctx, store.Config{
		AppName: "addressbook-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4},
	}, store.WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

func TestPostgres_ContactLifecycle(t *testing.T) {
	st := startStore(t)
	ctx := context.Background()
	svc := New(st.PG, repo.NewPG())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	n, err := svc.Create(ctx, domain.Contact{FirstName: "Ada", LastName: "Lovelace", Address: "London"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = svc.Create(ctx, domain.Contact{FirstName: "Alan", LastName: "Turing", Address: "Wilmslow"})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	ada := all[0]
	if ada.FirstName != "Ada" {
		ada = all[1]
	}
	assert.Empty(t, ada.Phones)
	assert.NotNil(t, ada.Phones)

	// phones are owned by the store; seed them directly
	_, err = st.PG.Exec(ctx, "insert into phones (contact_id, number) values ($1, $2), ($1, $3)", ada.ContactID, "555-0001", "555-0002")
	require.NoError(t, err)

	c, ok, err := svc.ByID(ctx, ada.ContactID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, c.Phones, 2)
	assert.Equal(t, "555-0001", c.Phones[0].Number)
	assert.Equal(t, ada.ContactID, c.Phones[1].ContactID)

	n, err = svc.Update(ctx, ada.ContactID, domain.Contact{FirstName: "Augusta Ada", LastName: "King", Address: "London"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, _, err = svc.ByID(ctx, ada.ContactID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta Ada King", c.FullName())
	assert.Len(t, c.Phones, 2, "update never touches phones")

	n, err = svc.Update(ctx, 999, domain.Contact{FirstName: "x", LastName: "y", Address: "z"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.Delete(ctx, ada.ContactID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var phones int
	require.NoError(t, st.PG.QueryRow(ctx, "select count(*) from phones").Scan(&phones))
	assert.Zero(t, phones, "phones cascade with their contact")

	n, err = svc.Delete(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, ok, err = svc.ByID(ctx, ada.ContactID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgres_FailedWriteRollsBack(t *testing.T) {
	st := startStore(t)
	ctx := context.Background()

	err := st.PG.Tx(ctx, func(q store.RowQuerier) error {
		if _, _, err := repo.NewPG().Bind(q).Create(ctx, "Grace", "Hopper", "Arlington"); err != nil {
			return err
		}
		return fmt.Errorf("abort after write")
	})
	require.Error(t, err)

	all, err := New(st.PG, repo.NewPG()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
