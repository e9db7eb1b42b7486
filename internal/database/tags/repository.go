// Package tags provides database operations for tags and their assignment to
// books.
//
// This package implements the TagStore interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.TagStore = (*Repository)(nil)
//
// # Usage
//
//	repo := tags.NewRepository(db)
//	result, err := repo.AddToBook(tagID, bookID)
//	if result == tags.AlreadyAssigned { ... }
package tags

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/query"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

const orderByName = "name ASC, id ASC"

// Assignment is the outcome of AddToBook.
type Assignment int

const (
	Assigned Assignment = iota + 1
	AlreadyAssigned
)

// Added reports whether a new association row was written.
func (a Assignment) Added() bool {
	return a == Assigned
}

func (a Assignment) String() string {
	switch a {
	case Assigned:
		return "assigned"
	case AlreadyAssigned:
		return "already assigned"
	default:
		return "unknown"
	}
}

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all tags ordered by name.
func (r *Repository) List() ([]entities.Tag, error) {
	tags := []entities.Tag{}
	if err := r.db.Order(orderByName).Find(&tags).Error; err != nil {
		return nil, database.Classify(err)
	}
	return tags, nil
}

// GetByID returns nil when the tag does not exist.
func (r *Repository) GetByID(id uint) (*entities.Tag, error) {
	var tags []entities.Tag
	if err := r.db.Where("id = ?", id).Limit(1).Find(&tags).Error; err != nil {
		return nil, database.Classify(err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return &tags[0], nil
}

// Search matches tag names by substring, ignoring case.
func (r *Repository) Search(name string) ([]entities.Tag, error) {
	tags := []entities.Tag{}
	err := r.db.Where(query.ContainsFold("name"), query.Pattern(name)).Order(orderByName).Find(&tags).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return tags, nil
}

// ListByBookID returns the tags assigned to a book, ordered by name.
func (r *Repository) ListByBookID(bookID uint) ([]entities.Tag, error) {
	tags := []entities.Tag{}
	err := r.db.
		Joins("JOIN book_tags ON book_tags.tag_id = tags.id").
		Where("book_tags.book_id = ?", bookID).
		Order("tags.name ASC, tags.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return tags, nil
}

func (r *Repository) Create(tag *entities.Tag) (*entities.Tag, error) {
	row := *tag
	row.ID = 0
	if err := r.db.Create(&row).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(row.ID)
}

// Update renames a tag. It returns nil when the tag does not exist.
func (r *Repository) Update(tag *entities.Tag) (*entities.Tag, error) {
	result := r.db.Model(&entities.Tag{}).Where("id = ?", tag.ID).Update("name", tag.Name)
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(tag.ID)
}

// Delete removes a tag together with its book assignments.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.Tag{}, id)
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AddToBook assigns a tag to a book. An existing assignment is reported as
// AlreadyAssigned rather than an error; concurrent callers racing on the
// same pair are settled by the book_tags primary key. A missing tag or book
// fails with database.ErrIntegrityViolation.
func (r *Repository) AddToBook(tagID, bookID uint) (Assignment, error) {
	result := r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.BookTag{BookID: bookID, TagID: tagID})
	if result.Error != nil {
		return 0, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return AlreadyAssigned, nil
	}
	return Assigned, nil
}

// RemoveFromBook returns false when the tag was not assigned to the book.
func (r *Repository) RemoveFromBook(tagID, bookID uint) (bool, error) {
	result := r.db.Where("tag_id = ? AND book_id = ?", tagID, bookID).Delete(&entities.BookTag{})
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
