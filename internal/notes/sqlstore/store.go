package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/2beens/notesbox/internal/notes"
)

const (
	queryInsert    = `INSERT INTO notes (title, body) VALUES ($1, $2) RETURNING _id;`
	querySelectOne = `SELECT _id, title, body FROM notes WHERE _id = $1;`
	querySelectAll = `SELECT _id, title, body FROM notes ORDER BY _id;`
	queryUpdate    = `UPDATE notes SET title = $1, body = $2 WHERE _id = $3;`
	queryDelete    = `DELETE FROM notes WHERE _id = $1;`
	queryTruncate  = `TRUNCATE TABLE notes;`
)

var _ notes.Store = (*Store)(nil)

// Store keeps notes in postgres through database/sql and the lib/pq driver.
type Store struct {
	notes.IntIDScheme

	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Add(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, queryInsert, note.Title, note.Body).Scan(&id); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendSQL, "add", err)
	}

	note.ID = notes.IntID(id)
	return note, nil
}

func (s *Store) Get(ctx context.Context, id notes.ID) (*notes.Note, error) {
	intID, err := notes.AsIntID(id)
	if err != nil {
		return nil, err
	}

	var (
		noteID int64
		note   notes.Note
	)
	err = s.db.QueryRowContext(ctx, querySelectOne, int64(intID)).Scan(&noteID, &note.Title, &note.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendSQL, "get", err)
	}

	note.ID = notes.IntID(noteID)
	return &note, nil
}

func (s *Store) Update(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	intID, err := notes.AsIntID(note.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, queryUpdate, note.Title, note.Body, int64(intID)); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendSQL, "update", err)
	}
	return note, nil
}

func (s *Store) Delete(ctx context.Context, id notes.ID) error {
	intID, err := notes.AsIntID(id)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, queryDelete, int64(intID)); err != nil {
		return notes.NewPersistenceError(notes.BackendSQL, "delete", err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, queryTruncate); err != nil {
		return notes.NewPersistenceError(notes.BackendSQL, "delete_all", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]notes.Note, error) {
	rows, err := s.db.QueryContext(ctx, querySelectAll)
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendSQL, "list", err)
	}
	defer func() { _ = rows.Close() }()

	var allNotes []notes.Note
	for rows.Next() {
		var (
			id   int64
			note notes.Note
		)
		if err := rows.Scan(&id, &note.Title, &note.Body); err != nil {
			return nil, notes.NewPersistenceError(notes.BackendSQL, "list", err)
		}
		note.ID = notes.IntID(id)
		allNotes = append(allNotes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendSQL, "list", err)
	}

	return allNotes, nil
}
