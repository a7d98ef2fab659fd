//go:build integration_test || all_tests

package pgxstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/notesbox/internal/db"
	"github.com/2beens/notesbox/internal/notes"
	"github.com/2beens/notesbox/internal/notes/notestest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreSetup(t *testing.T) (*Store, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		PostgresParams: db.PostgresParams{
			DBHost:     host,
			DBPort:     "5432",
			DBName:     "notesbox",
			DBPassword: os.Getenv("POSTGRES_PASS"),
			SSLMode:    "disable",
		},
		TracingEnabled: false,
	})
	require.NoError(t, err)

	return New(dbPool), func() {
		dbPool.Close()
	}
}

func TestStore_Contract(t *testing.T) {
	store, shutdown := testStoreSetup(t)
	defer shutdown()

	notestest.RunStoreContract(t, store, notestest.IntIDContract())
}

func TestStore_ListOrderedByID(t *testing.T) {
	store, shutdown := testStoreSetup(t)
	defer shutdown()

	ctx := context.Background()
	require.NoError(t, store.DeleteAll(ctx))
	defer func() {
		assert.NoError(t, store.DeleteAll(ctx))
	}()

	var ids []notes.ID
	for _, title := range []string{"title1", "title2", "title3"} {
		added, err := store.Add(ctx, notes.NewNote(title, "content"))
		require.NoError(t, err)
		ids = append(ids, added.ID)
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range all {
		assert.Equal(t, ids[i], all[i].ID)
	}
}
