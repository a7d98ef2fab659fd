package gormstore

import (
	"context"
	"errors"

	"github.com/2beens/notesbox/internal/notes"

	"gorm.io/gorm"
)

var _ notes.Store = (*Store)(nil)

type Store struct {
	notes.IntIDScheme

	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

// List returns notes ordered by title.
func (s *Store) List(ctx context.Context) ([]notes.Note, error) {
	var records []noteRecord
	if err := s.db.WithContext(ctx).Order("title").Find(&records).Error; err != nil {
		return nil, notes.NewPersistenceError(notes.BackendGorm, "list", err)
	}

	var allNotes []notes.Note
	for _, r := range records {
		allNotes = append(allNotes, r.toNote())
	}
	return allNotes, nil
}

func (s *Store) Get(ctx context.Context, id notes.ID) (*notes.Note, error) {
	intID, err := notes.AsIntID(id)
	if err != nil {
		return nil, err
	}

	var record noteRecord
	if err := s.db.WithContext(ctx).Where("_id = ?", int64(intID)).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, notes.NewPersistenceError(notes.BackendGorm, "get", err)
	}

	note := record.toNote()
	return &note, nil
}

func (s *Store) Add(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	record := noteRecord{
		Title: note.Title,
		Body:  note.Body,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, notes.NewPersistenceError(notes.BackendGorm, "add", err)
	}

	note.ID = notes.IntID(record.ID)
	return note, nil
}

func (s *Store) Update(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	intID, err := notes.AsIntID(note.ID)
	if err != nil {
		return nil, err
	}

	// a map keeps empty title/body in the SET clause
	if err := s.db.WithContext(ctx).
		Model(&noteRecord{}).
		Where("_id = ?", int64(intID)).
		Updates(map[string]any{
			"title": note.Title,
			"body":  note.Body,
		}).Error; err != nil {
		return nil, notes.NewPersistenceError(notes.BackendGorm, "update", err)
	}

	return note, nil
}

func (s *Store) Delete(ctx context.Context, id notes.ID) error {
	intID, err := notes.AsIntID(id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("_id = ?", int64(intID)).Delete(&noteRecord{}).Error; err != nil {
		return notes.NewPersistenceError(notes.BackendGorm, "delete", err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&noteRecord{}).Error; err != nil {
		return notes.NewPersistenceError(notes.BackendGorm, "delete_all", err)
	}
	return nil
}
