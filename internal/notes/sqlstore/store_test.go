package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return New(db), mock
}

func TestStore_Add(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
		WithArgs("Groceries", "milk, eggs").
		WillReturnRows(sqlmock.NewRows([]string{"_id"}).AddRow(int64(7)))

	// the input id is ignored
	added, err := store.Add(context.Background(), &notes.Note{ID: notes.IntID(100), Title: "Groceries", Body: "milk, eggs"})
	require.NoError(t, err)
	assert.Equal(t, notes.IntID(7), added.ID)
	assert.Equal(t, "Groceries", added.Title)
}

func TestStore_Get(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(querySelectOne)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"_id", "title", "body"}).AddRow(int64(3), "title3", "content3"))

	note, err := store.Get(ctx, notes.IntID(3))
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, notes.Note{ID: notes.IntID(3), Title: "title3", Body: "content3"}, *note)

	mock.ExpectQuery(regexp.QuoteMeta(querySelectOne)).
		WithArgs(int64(12341234)).
		WillReturnError(sql.ErrNoRows)

	note, err = store.Get(ctx, notes.IntID(12341234))
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestStore_GetInvalidID(t *testing.T) {
	store, _ := newMockStore(t)

	_, err := store.Get(context.Background(), notes.NewObjectID())
	assert.ErrorIs(t, err, notes.ErrInvalidID)
	_, err = store.Get(context.Background(), nil)
	assert.ErrorIs(t, err, notes.ErrInvalidID)
}

func TestStore_List(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(querySelectAll)).
		WillReturnRows(sqlmock.NewRows([]string{"_id", "title", "body"}).
			AddRow(int64(1), "title1", "content1").
			AddRow(int64(2), "title2", "content2"))

	all, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, notes.IntID(1), all[0].ID)
	assert.Equal(t, "content2", all[1].Body)
}

func TestStore_ListEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(querySelectAll)).
		WillReturnRows(sqlmock.NewRows([]string{"_id", "title", "body"}))

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_UpdateMissingIsNoop(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(queryUpdate)).
		WithArgs("ghost", "ghost", int64(12341234)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	note := &notes.Note{ID: notes.IntID(12341234), Title: "ghost", Body: "ghost"}
	updated, err := store.Update(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, note, updated)
}

func TestStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(ctx, notes.IntID(5)))
	require.NoError(t, store.Delete(ctx, notes.IntID(5)))
}

func TestStore_DeleteAll(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(queryTruncate)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, store.DeleteAll(context.Background()))
}

func TestStore_BackendErrors(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()
	connErr := errors.New("connection reset by peer")

	mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).WillReturnError(connErr)
	mock.ExpectQuery(regexp.QuoteMeta(querySelectAll)).WillReturnError(connErr)
	mock.ExpectExec(regexp.QuoteMeta(queryTruncate)).WillReturnError(connErr)

	_, err := store.Add(ctx, notes.NewNote("t", "b"))
	assert.ErrorIs(t, err, connErr)
	assert.True(t, notes.IsPersistenceError(err))

	_, err = store.List(ctx)
	assert.ErrorIs(t, err, connErr)

	err = store.DeleteAll(ctx)
	var pErr *notes.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, notes.BackendSQL, pErr.Backend)
	assert.Equal(t, "delete_all", pErr.Op)
}

func TestStore_IDScheme(t *testing.T) {
	store, _ := newMockStore(t)

	assert.True(t, store.IsValidID("42"))
	assert.False(t, store.IsValidID("65f0c1a2b3c4d5e6f7a8b9c0"))
	_, err := store.NewID()
	assert.ErrorIs(t, err, notes.ErrIDGenerationUnsupported)
}
