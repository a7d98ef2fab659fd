//go:build integration_test || all_tests

package test

import (
	"context"

	"github.com/2beens/notesbox/internal/notes"
	"github.com/2beens/notesbox/internal/notes/notestest"
	"github.com/2beens/notesbox/internal/storage"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestStoreContracts() {
	for _, backend := range notes.Backends {
		s.Run(backend, func() {
			t := s.T()

			st, err := storage.Open(context.Background(), s.testConfig(backend))
			require.NoError(t, err)
			defer func() {
				require.NoError(t, st.Close())
			}()

			params := notestest.IntIDContract()
			if backend == notes.BackendMongo || backend == notes.BackendRedis {
				params = notestest.ObjectIDContract()
			}

			notestest.RunStoreContract(t, st.Store, params)
		})
	}
}

// notes written through one relational backend are visible through the others
func (s *IntegrationTestSuite) TestRelationalBackendsShareTable() {
	t := s.T()
	ctx := context.Background()

	writer, err := storage.Open(ctx, s.testConfig(notes.BackendSQL))
	require.NoError(t, err)
	defer func() { require.NoError(t, writer.Close()) }()

	reader, err := storage.Open(ctx, s.testConfig(notes.BackendGorm))
	require.NoError(t, err)
	defer func() { require.NoError(t, reader.Close()) }()

	require.NoError(t, writer.Store.DeleteAll(ctx))
	added, err := writer.Store.Add(ctx, notes.NewNote("shared", "across drivers"))
	require.NoError(t, err)

	read, err := reader.Store.Get(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, read)
	s.Equal("across drivers", read.Body)

	require.NoError(t, reader.Store.DeleteAll(ctx))
}
