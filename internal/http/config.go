package http

import (
	"context"

	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// CatalogService is the shared book and tag catalog.
type CatalogService interface {
	ListBooks() ([]entities.Book, error)
	GetBook(id uint) (*entities.Book, error)
	SearchBooks(title, author string) ([]entities.Book, error)
	CreateBook(book *entities.Book) (*entities.Book, error)
	UpdateBook(id uint, book *entities.Book) (*entities.Book, error)
	DeleteBook(id uint) error

	ListTags(query string) ([]entities.Tag, error)
	GetTag(id uint) (*entities.Tag, error)
	ListBookTags(bookID uint) ([]entities.Tag, error)
	CreateTag(tag *entities.Tag) (*entities.Tag, error)
	UpdateTag(id uint, tag *entities.Tag) (*entities.Tag, error)
	DeleteTag(id uint) error
	AssignTag(tagID, bookID uint) error
	UnassignTag(tagID, bookID uint) error

	SearchExternal(ctx context.Context, query string) ([]catalog.BookDraft, error)
	ImportDraft(draft catalog.BookDraft) (*entities.Book, error)
}

// LibraryService manages a user's own entries and reading logs. Every
// method is scoped to the calling username.
type LibraryService interface {
	ListUserBooks(username string) ([]entities.UserBookView, error)
	GetUserBook(username string, id uint) (*entities.UserBookView, error)
	AddUserBook(username string, ub *entities.UserBook) (*entities.UserBookView, error)
	UpdateUserBook(username string, id uint, ub *entities.UserBook) (*entities.UserBookView, error)
	DeleteUserBook(username string, id uint) error

	ListReadingLogs(username string, userBookID uint) ([]entities.ReadingLogView, error)
	GetReadingLog(username string, id uint) (*entities.ReadingLogView, error)
	AddReadingLog(username string, log *entities.ReadingLog) (*entities.ReadingLogView, error)
	UpdateReadingLog(username string, id uint, log *entities.ReadingLog) (*entities.ReadingLogView, error)
	DeleteReadingLog(username string, id uint) error
}

// AccountService registers users and exchanges credentials for tokens.
type AccountService interface {
	Register(username, password string) (*entities.User, error)
	Login(username, password string) (string, *entities.User, error)
}

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Catalog  CatalogService
	Library  LibraryService
	Accounts AccountService

	AuthMiddleware *auth.Middleware

	// Database is pinged by the health check. Nil reports "not configured".
	Database Pinger

	Version string
}
