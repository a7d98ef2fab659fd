package db

import (
	"context"
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type NewDBPoolParams struct {
	PostgresParams
	MaxConns       int32
	TracingEnabled bool
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString())
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendPgxPool, fmt.Errorf("parse db config: %w", err))
	}

	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendPgxPool, fmt.Errorf("create connection pool: %w", err))
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, notes.NewConnectionError(notes.BackendPgxPool, fmt.Errorf("ping: %w", err))
	}

	log.Debugf("pgx pool connected to: %s:%s/%s", params.DBHost, params.DBPort, params.DBName)

	return db, nil
}
