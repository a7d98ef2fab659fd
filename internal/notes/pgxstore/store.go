package pgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ notes.Store = (*Store)(nil)

type Store struct {
	notes.IntIDScheme

	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Add(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	rows, err := s.db.Query(
		ctx,
		`INSERT INTO notes (title, body) VALUES ($1, $2) RETURNING _id;`,
		note.Title, note.Body,
	)
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "add", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, notes.NewPersistenceError(notes.BackendPgxPool, "add", err)
		}
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "add", errors.New("unexpected error [no rows next]"))
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "add", fmt.Errorf("rows scan: %w", err))
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
		title  string
		body   string
	)
	err = s.db.QueryRow(
		ctx,
		`SELECT _id, title, body FROM notes WHERE _id = $1;`,
		int64(intID),
	).Scan(&noteID, &title, &body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "get", err)
	}

	return &notes.Note{
		ID:    notes.IntID(noteID),
		Title: title,
		Body:  body,
	}, nil
}

func (s *Store) Update(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	intID, err := notes.AsIntID(note.ID)
	if err != nil {
		return nil, err
	}

	// zero rows affected means the note is gone, which is fine
	if _, err := s.db.Exec(
		ctx,
		`UPDATE notes SET title = $1, body = $2 WHERE _id = $3;`,
		note.Title, note.Body, int64(intID),
	); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "update", err)
	}

	return note, nil
}

func (s *Store) Delete(ctx context.Context, id notes.ID) error {
	intID, err := notes.AsIntID(id)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM notes WHERE _id = $1;`, int64(intID)); err != nil {
		return notes.NewPersistenceError(notes.BackendPgxPool, "delete", err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `TRUNCATE TABLE notes;`); err != nil {
		return notes.NewPersistenceError(notes.BackendPgxPool, "delete_all", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]notes.Note, error) {
	rows, err := s.db.Query(
		ctx,
		`
			SELECT
				_id, title, body
			FROM notes
			ORDER BY _id;`,
	)
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "list", err)
	}
	defer rows.Close()

	var allNotes []notes.Note
	for rows.Next() {
		var (
			id    int64
			title string
			body  string
		)
		if err := rows.Scan(&id, &title, &body); err != nil {
			return nil, notes.NewPersistenceError(notes.BackendPgxPool, "list", err)
		}
		allNotes = append(allNotes, notes.Note{
			ID:    notes.IntID(id),
			Title: title,
			Body:  body,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendPgxPool, "list", err)
	}

	return allNotes, nil
}
