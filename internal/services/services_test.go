package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookgoblin/internal/access"
	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/books"
	"github.com/mrlokans/bookgoblin/internal/database/readinglogs"
	"github.com/mrlokans/bookgoblin/internal/database/tags"
	"github.com/mrlokans/bookgoblin/internal/database/userbooks"
	"github.com/mrlokans/bookgoblin/internal/entities"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

type testEnv struct {
	db      *gorm.DB
	books   *Books
	library *Library
	catalog *fakeCatalog
}

func setupTestEnv(t *testing.T) (*testEnv, func()) {
	dbPath := "./test_services_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, db.DB.Create(&entities.User{Username: name}).Error)
	}

	v := validation.New()
	fake := &fakeCatalog{}
	env := &testEnv{
		db:      db.DB,
		books:   NewBooks(books.NewRepository(db.DB), tags.NewRepository(db.DB), fake, v),
		library: NewLibrary(userbooks.NewRepository(db.DB), readinglogs.NewRepository(db.DB), access.NewChecker(db.DB), v),
		catalog: fake,
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return env, cleanup
}

func (e *testEnv) book(t *testing.T, title string) *entities.Book {
	t.Helper()
	book, err := e.books.CreateBook(&entities.Book{Title: title, Author: "Author of " + title})
	require.NoError(t, err)
	return book
}

func (e *testEnv) entry(t *testing.T, username string, bookID uint) *entities.UserBookView {
	t.Helper()
	view, err := e.library.AddUserBook(username, &entities.UserBook{
		BookID:        bookID,
		DateAdded:     entities.MustParseDate("2024-01-01"),
		CurrentStatus: entities.StatusUnread,
	})
	require.NoError(t, err)
	return view
}

func (e *testEnv) readingLog(t *testing.T, username string, userBookID uint) *entities.ReadingLogView {
	t.Helper()
	view, err := e.library.AddReadingLog(username, &entities.ReadingLog{
		UserBookID: userBookID,
		StartDate:  entities.MustParseDate("2024-01-05"),
	})
	require.NoError(t, err)
	return view
}
