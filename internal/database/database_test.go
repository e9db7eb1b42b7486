package database

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase(t *testing.T) {
	t.Run("migrates every model", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		for _, model := range Models {
			assert.True(t, db.DB.Migrator().HasTable(model), "missing table for %T", model)
		}
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		err := db.DB.Omit("User", "Book").Create(&entities.UserBook{
			UserID:        42,
			BookID:        42,
			DateAdded:     entities.MustParseDate("2024-01-01"),
			CurrentStatus: entities.StatusUnread,
		}).Error
		require.Error(t, err)
		assert.ErrorIs(t, Classify(err), ErrIntegrityViolation)
	})

	t.Run("postgres requires a DSN", func(t *testing.T) {
		_, err := NewDatabase(config.Database{Driver: config.DriverPostgres})
		assert.ErrorContains(t, err, "DATABASE_DSN")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewDatabase(config.Database{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
	})
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	var lowered string
	require.NoError(t, db.DB.Raw("SELECT LOWER(?)", "ÉLAN Vital").Scan(&lowered).Error)
	assert.Equal(t, "élan vital", lowered)
}

func TestNewDialector_Postgres(t *testing.T) {
	dialector, err := newDialector(config.Database{
		Driver: config.DriverPostgres,
		DSN:    "host=localhost user=bookgoblin dbname=bookgoblin sslmode=disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialector.Name())
}

func TestDatabase_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Ping())

	require.NoError(t, db.Close())
	assert.ErrorIs(t, db.Ping(), ErrInfrastructure)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "books.db?_foreign_keys=1", sqliteDSN("books.db"))
	assert.Equal(t, "books.db?cache=shared&_foreign_keys=1", sqliteDSN("books.db?cache=shared"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, ErrIntegrityViolation},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrIntegrityViolation},
		{"check constraint", gorm.ErrCheckConstraintViolated, ErrIntegrityViolation},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ErrIntegrityViolation},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrInfrastructure},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, ErrIntegrityViolation},
		{"postgres connection", &pgconn.PgError{Code: "08006"}, ErrInfrastructure},
		{"anything else", errors.New("disk on fire"), ErrInfrastructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(fmt.Errorf("wrapped: %w", tt.err))
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("already classified errors pass through", func(t *testing.T) {
		err := fmt.Errorf("%w: user alice", ErrUserNotFound)
		assert.Same(t, err, Classify(err))
	})
}
