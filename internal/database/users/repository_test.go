package users

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db.DB), cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.Create("alice", "hash")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("alice", "hash")
	require.NoError(t, err)

	_, err = repo.Create("alice", "other")
	assert.ErrorIs(t, err, database.ErrIntegrityViolation)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("alice", "hash")
	require.NoError(t, err)

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)

	byID, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	missing, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_SetToken(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("alice", "hash")
	require.NoError(t, err)

	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ok, err := repo.SetToken(created.ID, "abc123", issuedAt)
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := repo.GetByTokenHash("abc123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
	require.NotNil(t, user.TokenCreatedAt)
	assert.True(t, issuedAt.Equal(*user.TokenCreatedAt))

	ok, err = repo.SetToken(created.ID+1, "zzz", issuedAt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_GetByTokenHash_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// users without a token have an empty hash column
	_, err := repo.Create("alice", "hash")
	require.NoError(t, err)

	user, err := repo.GetByTokenHash("")
	require.NoError(t, err)
	assert.Nil(t, user)
}
