// Package notestest holds the behaviour every notes.Store backend must share.
// Backend tests call RunStoreContract against a live store.
package notestest

import (
	"context"
	"testing"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ContractParams struct {
	// WellFormedMissingID is a syntactically valid id that no note uses.
	WellFormedMissingID string
	// MalformedIDs must all be rejected by IsValidID.
	MalformedIDs []string
	// SupportsNewID tells whether NewID is expected to produce ids.
	SupportsNewID bool
}

func RunStoreContract(t *testing.T, store notes.Store, params ContractParams) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, store.DeleteAll(ctx))

	t.Run("add then get", func(t *testing.T) {
		title, body := gofakeit.Sentence(3), gofakeit.Paragraph(1, 2, 6, " ")
		added, err := store.Add(ctx, notes.NewNote(title, body))
		require.NoError(t, err)
		require.NotNil(t, added)
		require.NotNil(t, added.ID)
		assert.False(t, added.ID.IsZero())

		retrieved, err := store.Get(ctx, added.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, added.ID.String(), retrieved.ID.String())
		assert.Equal(t, title, retrieved.Title)
		assert.Equal(t, body, retrieved.Body)
	})

	t.Run("add ignores input id", func(t *testing.T) {
		first, err := store.Add(ctx, notes.NewNote("first", "first body"))
		require.NoError(t, err)
		firstID := first.ID

		second, err := store.Add(ctx, &notes.Note{ID: firstID, Title: "second", Body: "second body"})
		require.NoError(t, err)
		assert.NotEqual(t, firstID.String(), second.ID.String())

		retrievedFirst, err := store.Get(ctx, firstID)
		require.NoError(t, err)
		require.NotNil(t, retrievedFirst)
		assert.Equal(t, "first", retrievedFirst.Title)
	})

	t.Run("update then get", func(t *testing.T) {
		added, err := store.Add(ctx, notes.NewNote("title1", "content1"))
		require.NoError(t, err)
		id := added.ID

		added.Title = "new-title"
		added.Body = "new-body"
		updated, err := store.Update(ctx, added)
		require.NoError(t, err)
		assert.Equal(t, id.String(), updated.ID.String())
		assert.Equal(t, "new-title", updated.Title)

		retrieved, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, id.String(), retrieved.ID.String())
		assert.Equal(t, "new-title", retrieved.Title)
		assert.Equal(t, "new-body", retrieved.Body)
	})

	t.Run("update of missing note is a no-op", func(t *testing.T) {
		missingID, err := store.ParseID(params.WellFormedMissingID)
		require.NoError(t, err)

		note := &notes.Note{ID: missingID, Title: "ghost", Body: "ghost"}
		updated, err := store.Update(ctx, note)
		require.NoError(t, err)
		assert.Equal(t, note, updated)

		retrieved, err := store.Get(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("delete then get", func(t *testing.T) {
		added, err := store.Add(ctx, notes.NewNote("title3", "content3"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, added.ID))
		retrieved, err := store.Get(ctx, added.ID)
		require.NoError(t, err)
		assert.Nil(t, retrieved)

		// second delete is a no-op
		require.NoError(t, store.Delete(ctx, added.ID))
	})

	t.Run("get missing id", func(t *testing.T) {
		missingID, err := store.ParseID(params.WellFormedMissingID)
		require.NoError(t, err)

		retrieved, err := store.Get(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("list and delete all", func(t *testing.T) {
		require.NoError(t, store.DeleteAll(ctx))

		for i := 0; i < 3; i++ {
			_, err := store.Add(ctx, notes.NewNote(gofakeit.Word(), gofakeit.Sentence(5)))
			require.NoError(t, err)
		}

		all, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		require.NoError(t, store.DeleteAll(ctx))
		all, err = store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("id validation", func(t *testing.T) {
		assert.True(t, store.IsValidID(params.WellFormedMissingID))
		for _, malformed := range params.MalformedIDs {
			assert.False(t, store.IsValidID(malformed), "expected %q to be rejected", malformed)
			_, err := store.ParseID(malformed)
			assert.ErrorIs(t, err, notes.ErrInvalidID)
		}
	})

	t.Run("new id", func(t *testing.T) {
		id, err := store.NewID()
		if !params.SupportsNewID {
			assert.ErrorIs(t, err, notes.ErrIDGenerationUnsupported)
			assert.Nil(t, id)
			return
		}
		require.NoError(t, err)
		assert.True(t, store.IsValidID(id.String()))

		other, err := store.NewID()
		require.NoError(t, err)
		assert.NotEqual(t, id.String(), other.String())
	})

	t.Run("groceries", func(t *testing.T) {
		added, err := store.Add(ctx, notes.NewNote("Groceries", "milk, eggs"))
		require.NoError(t, err)
		id := added.ID

		all, err := store.List(ctx)
		require.NoError(t, err)
		found := false
		for _, n := range all {
			if n.ID.String() == id.String() {
				found = true
				assert.Equal(t, "Groceries", n.Title)
			}
		}
		assert.True(t, found)

		_, err = store.Update(ctx, &notes.Note{ID: id, Title: "Groceries", Body: "milk, eggs, bread"})
		require.NoError(t, err)
		retrieved, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, "milk, eggs, bread", retrieved.Body)

		require.NoError(t, store.Delete(ctx, id))
		retrieved, err = store.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	require.NoError(t, store.DeleteAll(ctx))
}

// IntIDContract is the id-related part of ContractParams for auto-increment backends.
func IntIDContract() ContractParams {
	return ContractParams{
		WellFormedMissingID: "12341234",
		MalformedIDs:        []string{"", "abc", "-1", "0", "1.5", "+1", "01", "65f0c1a2b3c4d5e6f7a8b9c0"},
		SupportsNewID:       false,
	}
}

// ObjectIDContract is the id-related part of ContractParams for document backends.
func ObjectIDContract() ContractParams {
	return ContractParams{
		WellFormedMissingID: "65f0c1a2b3c4d5e6f7a8b9c0",
		MalformedIDs:        []string{"", "42", "65f0c1a2b3c4d5e6f7a8b9", "zzf0c1a2b3c4d5e6f7a8b9c0", "65f0c1a2b3c4d5e6f7a8b9c0ff"},
		SupportsNewID:       true,
	}
}
