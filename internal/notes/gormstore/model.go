package gormstore

import (
	"github.com/2beens/notesbox/internal/notes"
)

type noteRecord struct {
	ID    int64  `gorm:"column:_id;primaryKey;autoIncrement"`
	Title string `gorm:"column:title;type:text;not null"`
	Body  string `gorm:"column:body;type:text;not null"`
}

func (noteRecord) TableName() string {
	return "notes"
}

func (r noteRecord) toNote() notes.Note {
	return notes.Note{
		ID:    notes.IntID(r.ID),
		Title: r.Title,
		Body:  r.Body,
	}
}
