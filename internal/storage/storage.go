package storage

import (
	"context"
	"fmt"

	"github.com/2beens/notesbox/internal/config"
	"github.com/2beens/notesbox/internal/db"
	"github.com/2beens/notesbox/internal/notes"
	"github.com/2beens/notesbox/internal/notes/gormstore"
	"github.com/2beens/notesbox/internal/notes/mongostore"
	"github.com/2beens/notesbox/internal/notes/pgxstore"
	"github.com/2beens/notesbox/internal/notes/redisstore"
	"github.com/2beens/notesbox/internal/notes/sqlstore"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type closer struct {
	name  string
	close func() error
}

// Storage owns the connections behind the configured notes.Store.
type Storage struct {
	Backend string
	Store   notes.Store
	// RedisClient is set when redis backs the store or the rate limiter.
	RedisClient *redis.Client

	collectors []prometheus.Collector
	closers    []closer
}

func Open(ctx context.Context, cfg *config.Config) (_ *Storage, err error) {
	s := &Storage{
		Backend: cfg.StoreBackend,
	}
	defer func() {
		if err != nil {
			if closeErr := s.Close(); closeErr != nil {
				log.Warnf("close partially opened storage: %s", closeErr)
			}
		}
	}()

	pgParams := db.PostgresParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
		SSLMode:    cfg.PostgresSSLMode,
	}

	if cfg.StoreBackend == notes.BackendRedis || cfg.RateLimitAllowedPerMin > 0 {
		rdb, err := db.NewRedisClient(ctx, db.NewRedisClientParams{
			Host:           cfg.RedisHost,
			Port:           cfg.RedisPort,
			Password:       cfg.RedisPassword,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, err
		}
		s.RedisClient = rdb
		s.addCloser("redis", rdb.Close)
	}

	switch cfg.StoreBackend {
	case notes.BackendMemory:
		s.Store = notes.NewMemStore()
	case notes.BackendSQL:
		sqlDB, err := db.NewSQLDB(ctx, pgParams)
		if err != nil {
			return nil, err
		}
		s.addCloser("sql db", sqlDB.Close)
		s.collectors = append(s.collectors, collectors.NewDBStatsCollector(sqlDB, cfg.PostgresDBName))
		s.Store = sqlstore.New(sqlDB)
	case notes.BackendPgxPool:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			PostgresParams: pgParams,
			MaxConns:       cfg.PostgresMaxConns,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, err
		}
		s.addCloser("pgx pool", func() error {
			pool.Close() // blocking operation
			return nil
		})
		s.collectors = append(s.collectors, pgxpoolprometheus.NewCollector(
			pool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
		s.Store = pgxstore.New(pool)
	case notes.BackendGorm:
		gormDB, err := db.NewGormDB(ctx, pgParams, int(cfg.PostgresMaxConns))
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, notes.NewConnectionError(notes.BackendGorm, err)
		}
		s.addCloser("gorm db", sqlDB.Close)
		s.collectors = append(s.collectors, collectors.NewDBStatsCollector(sqlDB, cfg.PostgresDBName))
		s.Store = gormstore.New(gormDB)
	case notes.BackendMongo:
		client, err := db.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		s.addCloser("mongo client", func() error {
			return client.Disconnect(context.Background())
		})
		s.Store = mongostore.New(client.Database(cfg.MongoDBName))
	case notes.BackendRedis:
		s.Store = redisstore.New(s.RedisClient)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	log.Infof("notes storage opened, backend: %s", cfg.StoreBackend)

	return s, nil
}

func (s *Storage) addCloser(name string, closeFunc func() error) {
	s.closers = append(s.closers, closer{name: name, close: closeFunc})
}

// Collectors returns the prometheus collectors exposing connection pool stats.
func (s *Storage) Collectors() []prometheus.Collector {
	return s.collectors
}

// Close releases every opened connection, newest first.
func (s *Storage) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		log.Debugf("closing %s ...", c.name)
		if closeErr := c.close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", c.name, closeErr))
		}
	}
	s.closers = nil
	return err
}
