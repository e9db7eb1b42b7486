// Package userbooks provides database operations for user library entries.
//
// Reads always go through a join with users and books, so every method
// returns entities.UserBookView with the owner's username and the book's
// title and author filled in.
//
// This package implements the UserBookStore interface defined in
// internal/services/interfaces.go.
package userbooks

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

const (
	viewColumns = "user_books.id, user_books.user_id, user_books.book_id, user_books.date_added, " +
		"user_books.is_owned, user_books.current_status, users.username AS username, " +
		"books.title AS book_title, books.author AS book_author"

	newestFirst = "user_books.date_added DESC, user_books.id DESC"
)

// Repository handles all user book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) views() *gorm.DB {
	return r.db.Table("user_books").
		Select(viewColumns).
		Joins("JOIN users ON users.id = user_books.user_id").
		Joins("JOIN books ON books.id = user_books.book_id")
}

func (r *Repository) list(tx *gorm.DB) ([]entities.UserBookView, error) {
	views := []entities.UserBookView{}
	if err := tx.Order(newestFirst).Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	return views, nil
}

// ListAll returns every user's entries, newest first.
func (r *Repository) ListAll() ([]entities.UserBookView, error) {
	return r.list(r.views())
}

func (r *Repository) ListByUserID(userID uint) ([]entities.UserBookView, error) {
	return r.list(r.views().Where("user_books.user_id = ?", userID))
}

// ListByUsername returns an empty list for an unknown username.
func (r *Repository) ListByUsername(username string) ([]entities.UserBookView, error) {
	return r.list(r.views().Where("users.username = ?", username))
}

// GetByID returns nil when the entry does not exist.
func (r *Repository) GetByID(id uint) (*entities.UserBookView, error) {
	var view entities.UserBookView
	result := r.views().Where("user_books.id = ?", id).Limit(1).Scan(&view)
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &view, nil
}

// Create adds a book to the library of the user with the given username.
// The ID and UserID of ub are ignored. An unknown username fails with
// database.ErrUserNotFound, a missing book with database.ErrIntegrityViolation.
func (r *Repository) Create(ub *entities.UserBook, username string) (*entities.UserBookView, error) {
	if err := ub.CurrentStatus.Validate(); err != nil {
		return nil, err
	}

	userID, err := r.resolveUserID(username)
	if err != nil {
		return nil, err
	}

	row := entities.UserBook{
		UserID:        userID,
		BookID:        ub.BookID,
		DateAdded:     ub.DateAdded,
		IsOwned:       ub.IsOwned,
		CurrentStatus: ub.CurrentStatus,
	}
	if err := r.db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(row.ID)
}

func (r *Repository) resolveUserID(username string) (uint, error) {
	var ids []uint
	err := r.db.Model(&entities.User{}).Where("username = ?", username).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, database.Classify(err)
	}
	if len(ids) == 0 {
		return 0, database.ErrUserNotFound
	}
	return ids[0], nil
}

// Update rewrites the book reference, date added, owned flag and status.
// Ownership never changes. It returns nil when the entry does not exist.
func (r *Repository) Update(ub *entities.UserBook) (*entities.UserBookView, error) {
	if err := ub.CurrentStatus.Validate(); err != nil {
		return nil, err
	}

	result := r.db.Model(&entities.UserBook{}).Where("id = ?", ub.ID).Updates(map[string]any{
		"book_id":        ub.BookID,
		"date_added":     ub.DateAdded,
		"is_owned":       ub.IsOwned,
		"current_status": ub.CurrentStatus,
	})
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ub.ID)
}

// Delete removes the entry and all of its reading logs.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.UserBook{}, id)
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
