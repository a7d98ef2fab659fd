//go:build integration_test || all_tests

package gormstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/notesbox/internal/db"
	"github.com/2beens/notesbox/internal/notes/notestest"

	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}

	gormDB, err := db.NewGormDB(timeoutCtx, db.PostgresParams{
		DBHost:     host,
		DBPort:     "5432",
		DBName:     "notesbox",
		DBPassword: os.Getenv("POSTGRES_PASS"),
		SSLMode:    "disable",
	}, 5)
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	notestest.RunStoreContract(t, New(gormDB), notestest.IntIDContract())
}
