package services

import (
	"context"

	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/database/tags"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// BookStore is the book catalog. Misses are (nil, nil) or false.
type BookStore interface {
	List() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	SearchByTitle(title string) ([]entities.Book, error)
	SearchByAuthor(author string) ([]entities.Book, error)
	SearchByTitleAndAuthor(title, author string) ([]entities.Book, error)
	Create(book *entities.Book) (*entities.Book, error)
	Update(book *entities.Book) (*entities.Book, error)
	Delete(id uint) (bool, error)
}

// TagStore manages tags and their assignment to books.
type TagStore interface {
	List() ([]entities.Tag, error)
	GetByID(id uint) (*entities.Tag, error)
	Search(name string) ([]entities.Tag, error)
	ListByBookID(bookID uint) ([]entities.Tag, error)
	Create(tag *entities.Tag) (*entities.Tag, error)
	Update(tag *entities.Tag) (*entities.Tag, error)
	Delete(id uint) (bool, error)
	AddToBook(tagID, bookID uint) (tags.Assignment, error)
	RemoveFromBook(tagID, bookID uint) (bool, error)
}

// UserBookStore manages library entries. Reads return joined views.
type UserBookStore interface {
	ListAll() ([]entities.UserBookView, error)
	GetByID(id uint) (*entities.UserBookView, error)
	ListByUserID(userID uint) ([]entities.UserBookView, error)
	ListByUsername(username string) ([]entities.UserBookView, error)
	Create(ub *entities.UserBook, username string) (*entities.UserBookView, error)
	Update(ub *entities.UserBook) (*entities.UserBookView, error)
	Delete(id uint) (bool, error)
}

// ReadingLogStore manages reading sessions.
type ReadingLogStore interface {
	ListAll() ([]entities.ReadingLogView, error)
	GetByID(id uint) (*entities.ReadingLogView, error)
	ListByUserBookID(userBookID uint) ([]entities.ReadingLogView, error)
	Create(log *entities.ReadingLog) (*entities.ReadingLogView, error)
	Update(log *entities.ReadingLog) (*entities.ReadingLogView, error)
	Delete(id uint) (bool, error)
}

// AccessChecker answers ownership questions. A false result covers both
// "not yours" and "not there"; the error is reserved for lookup failures.
type AccessChecker interface {
	UserOwnsUserBook(username string, userBookID uint) (bool, error)
	UserOwnsReadingLog(username string, logID uint) (bool, error)
}

// CatalogSearcher finds unsaved book drafts in an external catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]catalog.BookDraft, error)
}

// Validator checks an entity against its field rules.
type Validator interface {
	Validate(s any) error
}
