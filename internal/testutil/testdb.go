// Package testutil opens throwaway databases for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"camping-fun/server/config"
	"camping-fun/server/internal/model"
	"camping-fun/server/pkg/database"
)

// MemoryDSN is a private in-memory SQLite database with foreign keys on.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// NewDB opens a fresh in-memory SQLite database with the schema applied.
// The database lives on a single pooled connection and is closed when the
// test ends, so every call gets an empty, isolated store.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    MemoryDSN,
	}
	logger := zap.NewNop()

	db, err := database.NewDB(cfg, logger)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db, logger, model.All()...), "migrate test database")
	return db
}
