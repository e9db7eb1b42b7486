package access

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/readinglogs"
	"github.com/mrlokans/bookgoblin/internal/database/userbooks"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

type fixture struct {
	checker     *Checker
	userBooks   *userbooks.Repository
	readingLogs *readinglogs.Repository
	db          *database.Database
}

func setupTestDB(t *testing.T) (*fixture, func()) {
	dbPath := "./test_access_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, db.DB.Create(&entities.User{Username: name}).Error)
	}
	require.NoError(t, db.DB.Create(&entities.Book{ID: 7, Title: "Piranesi", Author: "Susanna Clarke"}).Error)

	f := &fixture{
		checker:     NewChecker(db.DB),
		userBooks:   userbooks.NewRepository(db.DB),
		readingLogs: readinglogs.NewRepository(db.DB),
		db:          db,
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return f, cleanup
}

func (f *fixture) addEntry(t *testing.T, username string) *entities.UserBookView {
	t.Helper()
	view, err := f.userBooks.Create(&entities.UserBook{
		BookID:        7,
		DateAdded:     entities.MustParseDate("2024-04-01"),
		CurrentStatus: entities.StatusUnread,
	}, username)
	require.NoError(t, err)
	return view
}

func (f *fixture) addLog(t *testing.T, userBookID uint) *entities.ReadingLogView {
	t.Helper()
	view, err := f.readingLogs.Create(&entities.ReadingLog{
		UserBookID: userBookID,
		StartDate:  entities.MustParseDate("2024-04-02"),
	})
	require.NoError(t, err)
	return view
}

func TestChecker_AliceAndBob(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	entry := f.addEntry(t, "alice")
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, entities.StatusUnread, entry.CurrentStatus)

	owns, err := f.checker.UserOwnsUserBook("bob", entry.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	owns, err = f.checker.UserOwnsUserBook("alice", entry.ID)
	require.NoError(t, err)
	assert.True(t, owns)
}

func TestChecker_MissingResources(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	owns, err := f.checker.UserOwnsUserBook("alice", 999)
	require.NoError(t, err)
	assert.False(t, owns)

	owns, err = f.checker.UserOwnsReadingLog("alice", 999)
	require.NoError(t, err)
	assert.False(t, owns)

	entry := f.addEntry(t, "alice")
	owns, err = f.checker.UserOwnsUserBook("nobody", entry.ID)
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestChecker_ReadingLogOwnershipIsTransitive(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	alices := f.addEntry(t, "alice")
	bobs := f.addEntry(t, "bob")
	logs := []*entities.ReadingLogView{
		f.addLog(t, alices.ID),
		f.addLog(t, alices.ID),
		f.addLog(t, bobs.ID),
	}

	for _, log := range logs {
		for _, username := range []string{"alice", "bob", "carol"} {
			ownsLog, err := f.checker.UserOwnsReadingLog(username, log.ID)
			require.NoError(t, err)
			ownsEntry, err := f.checker.UserOwnsUserBook(username, log.UserBookID)
			require.NoError(t, err)
			assert.Equal(t, ownsEntry, ownsLog, "log %d, user %s", log.ID, username)
		}
	}
}

func TestChecker_FollowsMovedLog(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	alices := f.addEntry(t, "alice")
	bobs := f.addEntry(t, "bob")
	created := f.addLog(t, alices.ID)

	log := created.Entity()
	log.UserBookID = bobs.ID
	_, err := f.readingLogs.Update(&log)
	require.NoError(t, err)

	owns, err := f.checker.UserOwnsReadingLog("alice", created.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	owns, err = f.checker.UserOwnsReadingLog("bob", created.ID)
	require.NoError(t, err)
	assert.True(t, owns)
}

func TestChecker_InfrastructureFailure(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, f.db.Close())

	_, err := f.checker.UserOwnsUserBook("alice", 1)
	assert.ErrorIs(t, err, database.ErrInfrastructure)

	_, err = f.checker.UserOwnsReadingLog("alice", 1)
	assert.ErrorIs(t, err, database.ErrInfrastructure)
}
