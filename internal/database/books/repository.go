// Package books provides database operations for the book catalog.
//
// This package implements the BookStore interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/query"
	"github.com/mrlokans/bookgoblin/internal/entities"
	"gorm.io/gorm"
)

const orderByTitle = "title ASC, id ASC"

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every book ordered by title.
func (r *Repository) List() ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.Order(orderByTitle).Find(&books).Error; err != nil {
		return nil, database.Classify(err)
	}
	return books, nil
}

// GetByID returns the book or nil if there is none with that id.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var books []entities.Book
	if err := r.db.Where("id = ?", id).Limit(1).Find(&books).Error; err != nil {
		return nil, database.Classify(err)
	}
	if len(books) == 0 {
		return nil, nil
	}
	return &books[0], nil
}

// SearchByTitle matches title substrings case-insensitively. An empty
// substring matches every book.
func (r *Repository) SearchByTitle(title string) ([]entities.Book, error) {
	return r.search(r.db.Where(query.ContainsFold("title"), query.Pattern(title)), orderByTitle)
}

// SearchByAuthor orders by author, then title.
func (r *Repository) SearchByAuthor(author string) ([]entities.Book, error) {
	return r.search(r.db.Where(query.ContainsFold("author"), query.Pattern(author)), "author ASC, title ASC, id ASC")
}

func (r *Repository) SearchByTitleAndAuthor(title, author string) ([]entities.Book, error) {
	tx := r.db.
		Where(query.ContainsFold("title"), query.Pattern(title)).
		Where(query.ContainsFold("author"), query.Pattern(author))
	return r.search(tx, orderByTitle)
}

func (r *Repository) search(tx *gorm.DB, order string) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := tx.Order(order).Find(&books).Error; err != nil {
		return nil, database.Classify(err)
	}
	return books, nil
}

// Create inserts a new book and returns the stored row. Any id on the input
// is ignored.
func (r *Repository) Create(book *entities.Book) (*entities.Book, error) {
	row := *book
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(row.ID)
}

// Update overwrites every column of the book with the given id. It returns
// nil when no such book exists.
func (r *Repository) Update(book *entities.Book) (*entities.Book, error) {
	result := r.db.Model(&entities.Book{}).Where("id = ?", book.ID).Updates(map[string]any{
		"title":            book.Title,
		"author":           book.Author,
		"isbn":             book.ISBN,
		"cover_image_url":  book.CoverImageURL,
		"publication_year": book.PublicationYear,
	})
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(book.ID)
}

// Delete removes the book and its tag assignments. It fails with
// database.ErrIntegrityViolation while a user book still references it.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
