package db

import (
	"context"
	"fmt"
	"net"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type NewRedisClientParams struct {
	Host           string
	Port           string
	Password       string
	TracingEnabled bool
}

func NewRedisClient(ctx context.Context, params NewRedisClientParams) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Host, params.Port),
		Password: params.Password,
		DB:       0, // use default DB
	})

	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		if closeErr := rdb.Close(); closeErr != nil {
			log.Warnf("close redis client after failed ping: %s", closeErr)
		}
		return nil, notes.NewConnectionError(notes.BackendRedis, fmt.Errorf("ping: %w", err))
	}

	log.Debugf("redis ping: %s", rdbStatus.Val())

	return rdb, nil
}
