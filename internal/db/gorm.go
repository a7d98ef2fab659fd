package db

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/notesbox/internal/notes"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormLogger() logger.Interface {
	level := logger.Warn
	if log.IsLevelEnabled(log.TraceLevel) {
		level = logger.Info
	}

	return logger.New(
		log.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

// GormConfig is shared by the real connection and the sqlmock backed one in tests.
// Every store call is a single statement, so gorm's implicit transactions are off.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 gormLogger(),
		SkipDefaultTransaction: true,
	}
}

func NewGormDB(ctx context.Context, params PostgresParams, maxConns int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(params.ConnString()), GormConfig())
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendGorm, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, notes.NewConnectionError(notes.BackendGorm, err)
	}

	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
		sqlDB.SetMaxIdleConns(maxConns / 2)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			log.Warnf("close gorm db after failed ping: %s", closeErr)
		}
		return nil, notes.NewConnectionError(notes.BackendGorm, fmt.Errorf("ping: %w", err))
	}

	log.Debugf("gorm db connected to: %s:%s/%s", params.DBHost, params.DBPort, params.DBName)

	return db, nil
}
