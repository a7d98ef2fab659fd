//go:build integration_test || all_tests

package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/notesbox/internal/db"
	"github.com/2beens/notesbox/internal/notes/notestest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	t.Logf("using mongo uri: %s", uri)

	client, err := db.NewMongoClient(timeoutCtx, uri)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, client.Disconnect(context.Background()))
	}()

	notestest.RunStoreContract(t, New(client.Database("notesbox_test")), notestest.ObjectIDContract())
}
