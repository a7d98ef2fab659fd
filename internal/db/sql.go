package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func NewSQLDB(ctx context.Context, params PostgresParams) (*sql.DB, error) {
	db, err := sql.Open("postgres", params.ConnString())
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendSQL, fmt.Errorf("open db: %w", err))
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warnf("close sql db after failed ping: %s", closeErr)
		}
		return nil, notes.NewConnectionError(notes.BackendSQL, fmt.Errorf("ping: %w", err))
	}

	log.Debugf("sql db connected to: %s:%s/%s", params.DBHost, params.DBPort, params.DBName)

	return db, nil
}
