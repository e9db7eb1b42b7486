package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/database/tags"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// Books manages the shared catalog: books, tags, tag assignments and imports
// from the external catalog. None of it is per-user.
type Books struct {
	books     BookStore
	tags      TagStore
	external  CatalogSearcher
	validator Validator
}

func NewBooks(books BookStore, tags TagStore, external CatalogSearcher, validator Validator) *Books {
	return &Books{
		books:     books,
		tags:      tags,
		external:  external,
		validator: validator,
	}
}

func (s *Books) ListBooks() ([]entities.Book, error) {
	return s.books.List()
}

func (s *Books) GetBook(id uint) (*entities.Book, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
	}
	return book, nil
}

// SearchBooks picks the narrowest search for the filters given. With neither
// filter it lists every book.
func (s *Books) SearchBooks(title, author string) ([]entities.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	switch {
	case title != "" && author != "":
		return s.books.SearchByTitleAndAuthor(title, author)
	case title != "":
		return s.books.SearchByTitle(title)
	case author != "":
		return s.books.SearchByAuthor(author)
	default:
		return s.books.List()
	}
}

func (s *Books) CreateBook(book *entities.Book) (*entities.Book, error) {
	if err := s.validator.Validate(*book); err != nil {
		return nil, err
	}
	return s.books.Create(book)
}

func (s *Books) UpdateBook(id uint, book *entities.Book) (*entities.Book, error) {
	book.ID = id
	if err := s.validator.Validate(*book); err != nil {
		return nil, err
	}

	updated, err := s.books.Update(book)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
	}
	return updated, nil
}

// DeleteBook fails with database.ErrIntegrityViolation while any user still
// has the book in their library.
func (s *Books) DeleteBook(id uint) error {
	removed, err := s.books.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: book %d", ErrNotFound, id)
	}
	return nil
}

// ListTags returns every tag, or only those whose name contains query.
func (s *Books) ListTags(query string) ([]entities.Tag, error) {
	if query = strings.TrimSpace(query); query != "" {
		return s.tags.Search(query)
	}
	return s.tags.List()
}

func (s *Books) GetTag(id uint) (*entities.Tag, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, fmt.Errorf("%w: tag %d", ErrNotFound, id)
	}
	return tag, nil
}

func (s *Books) ListBookTags(bookID uint) ([]entities.Tag, error) {
	if _, err := s.GetBook(bookID); err != nil {
		return nil, err
	}
	return s.tags.ListByBookID(bookID)
}

func (s *Books) CreateTag(tag *entities.Tag) (*entities.Tag, error) {
	if err := s.validator.Validate(*tag); err != nil {
		return nil, err
	}
	return s.tags.Create(tag)
}

func (s *Books) UpdateTag(id uint, tag *entities.Tag) (*entities.Tag, error) {
	tag.ID = id
	if err := s.validator.Validate(*tag); err != nil {
		return nil, err
	}

	updated, err := s.tags.Update(tag)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: tag %d", ErrNotFound, id)
	}
	return updated, nil
}

func (s *Books) DeleteTag(id uint) error {
	removed, err := s.tags.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: tag %d", ErrNotFound, id)
	}
	return nil
}

// AssignTag attaches a tag to a book. Assigning it twice fails with
// ErrAlreadyAssigned and leaves the single existing assignment in place.
func (s *Books) AssignTag(tagID, bookID uint) error {
	if _, err := s.GetTag(tagID); err != nil {
		return err
	}
	if _, err := s.GetBook(bookID); err != nil {
		return err
	}

	result, err := s.tags.AddToBook(tagID, bookID)
	if err != nil {
		return err
	}
	if result == tags.AlreadyAssigned {
		return fmt.Errorf("%w: tag %d, book %d", ErrAlreadyAssigned, tagID, bookID)
	}
	return nil
}

func (s *Books) UnassignTag(tagID, bookID uint) error {
	removed, err := s.tags.RemoveFromBook(tagID, bookID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: tag %d, book %d", ErrNotAssigned, tagID, bookID)
	}
	return nil
}

// SearchExternal queries the external catalog. Results are not saved.
func (s *Books) SearchExternal(ctx context.Context, query string) ([]catalog.BookDraft, error) {
	drafts, err := s.external.Search(ctx, query)
	if err != nil {
		log.Printf("External catalog search for %q failed: %v", query, err)
		return nil, err
	}
	return drafts, nil
}

// ImportDraft saves an external catalog draft as a new book.
func (s *Books) ImportDraft(draft catalog.BookDraft) (*entities.Book, error) {
	book := draft.ToBook()
	return s.CreateBook(&book)
}
