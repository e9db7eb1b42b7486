// Package readinglogs provides database operations for reading sessions.
//
// A reading log has no user column of its own. Its owner, like the book
// title and author in entities.ReadingLogView, is read through its user book.
package readinglogs

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

const (
	viewColumns = "reading_logs.id, reading_logs.user_book_id, reading_logs.start_date, " +
		"reading_logs.end_date, reading_logs.rating, reading_logs.notes, " +
		"user_books.user_id AS user_id, users.username AS username, " +
		"books.title AS book_title, books.author AS book_author"

	newestFirst = "reading_logs.start_date DESC, reading_logs.id DESC"
)

// Repository handles all reading log database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reading logs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) views() *gorm.DB {
	return r.db.Table("reading_logs").
		Select(viewColumns).
		Joins("JOIN user_books ON user_books.id = reading_logs.user_book_id").
		Joins("JOIN users ON users.id = user_books.user_id").
		Joins("JOIN books ON books.id = user_books.book_id")
}

func (r *Repository) list(tx *gorm.DB) ([]entities.ReadingLogView, error) {
	views := []entities.ReadingLogView{}
	if err := tx.Order(newestFirst).Scan(&views).Error; err != nil {
		return nil, database.Classify(err)
	}
	return views, nil
}

func (r *Repository) ListAll() ([]entities.ReadingLogView, error) {
	return r.list(r.views())
}

// ListByUserBookID returns the sessions of one user book, latest start first.
func (r *Repository) ListByUserBookID(userBookID uint) ([]entities.ReadingLogView, error) {
	return r.list(r.views().Where("reading_logs.user_book_id = ?", userBookID))
}

// GetByID returns nil when the log does not exist.
func (r *Repository) GetByID(id uint) (*entities.ReadingLogView, error) {
	var view entities.ReadingLogView
	result := r.views().Where("reading_logs.id = ?", id).Limit(1).Scan(&view)
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &view, nil
}

// Create stores a new session. A missing user book fails with
// database.ErrIntegrityViolation.
func (r *Repository) Create(log *entities.ReadingLog) (*entities.ReadingLogView, error) {
	row := entities.ReadingLog{
		UserBookID: log.UserBookID,
		StartDate:  log.StartDate,
		EndDate:    log.EndDate,
		Rating:     log.Rating,
		Notes:      log.Notes,
	}
	if err := r.db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(row.ID)
}

// Update overwrites every column of the log, including its user book. It
// returns nil when the log does not exist.
func (r *Repository) Update(log *entities.ReadingLog) (*entities.ReadingLogView, error) {
	result := r.db.Model(&entities.ReadingLog{}).Where("id = ?", log.ID).Updates(map[string]any{
		"user_book_id": log.UserBookID,
		"start_date":   log.StartDate,
		"end_date":     log.EndDate,
		"rating":       log.Rating,
		"notes":        log.Notes,
	})
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(log.ID)
}

func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.ReadingLog{}, id)
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
