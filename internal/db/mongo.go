package db

import (
	"context"
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendMongo, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			log.Warnf("disconnect mongo after failed ping: %s", dErr)
		}
		return nil, notes.NewConnectionError(notes.BackendMongo, fmt.Errorf("ping: %w", err))
	}

	log.Debugln("mongo client connected")

	return client, nil
}
