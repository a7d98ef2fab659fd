package mongostore

import (
	"context"
	"errors"

	"github.com/2beens/notesbox/internal/notes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "notes"

var _ notes.Store = (*Store)(nil)

type noteDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
	Body  string             `bson:"body"`
}

func (d noteDocument) toNote() notes.Note {
	return notes.Note{
		ID:    notes.ObjectID(d.ID),
		Title: d.Title,
		Body:  d.Body,
	}
}

type Store struct {
	notes.ObjectIDScheme

	coll *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		coll: db.Collection(CollectionName),
	}
}

func (s *Store) List(ctx context.Context) ([]notes.Note, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendMongo, "list", err)
	}

	var docs []noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendMongo, "list", err)
	}

	var allNotes []notes.Note
	for _, d := range docs {
		allNotes = append(allNotes, d.toNote())
	}
	return allNotes, nil
}

func (s *Store) Get(ctx context.Context, id notes.ID) (*notes.Note, error) {
	oid, err := notes.AsObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc noteDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid.Primitive()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, notes.NewPersistenceError(notes.BackendMongo, "get", err)
	}

	note := doc.toNote()
	return &note, nil
}

func (s *Store) Add(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	doc := noteDocument{
		ID:    primitive.NewObjectID(),
		Title: note.Title,
		Body:  note.Body,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendMongo, "add", err)
	}

	note.ID = notes.ObjectID(doc.ID)
	return note, nil
}

// Update never upserts, a missing note stays missing.
func (s *Store) Update(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	oid, err := notes.AsObjectID(note.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.coll.UpdateOne(
		ctx,
		bson.M{"_id": oid.Primitive()},
		bson.M{"$set": bson.M{
			"title": note.Title,
			"body":  note.Body,
		}},
	); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendMongo, "update", err)
	}

	return note, nil
}

func (s *Store) Delete(ctx context.Context, id notes.ID) error {
	oid, err := notes.AsObjectID(id)
	if err != nil {
		return err
	}

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid.Primitive()}); err != nil {
		return notes.NewPersistenceError(notes.BackendMongo, "delete", err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return notes.NewPersistenceError(notes.BackendMongo, "delete_all", err)
	}
	return nil
}
