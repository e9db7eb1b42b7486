// Package access answers ownership questions about library entries and
// reading logs.
//
// Ownership is never stored on a reading log. It is derived on every call
// through the chain reading_logs -> user_books -> users, so a log always
// belongs to whoever owns its user book.
package access

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookgoblin/internal/database"
)

// Checker runs ownership lookups. It has no side effects.
type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// UserOwnsUserBook reports whether the user book exists and belongs to
// username. The error is non-nil only when the lookup itself failed.
func (c *Checker) UserOwnsUserBook(username string, userBookID uint) (bool, error) {
	var count int64
	err := c.db.Table("user_books").
		Joins("JOIN users ON users.id = user_books.user_id").
		Where("user_books.id = ? AND users.username = ?", userBookID, username).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}

// UserOwnsReadingLog reports whether the log exists and its user book
// belongs to username.
func (c *Checker) UserOwnsReadingLog(username string, logID uint) (bool, error) {
	var count int64
	err := c.db.Table("reading_logs").
		Joins("JOIN user_books ON user_books.id = reading_logs.user_book_id").
		Joins("JOIN users ON users.id = user_books.user_id").
		Where("reading_logs.id = ? AND users.username = ?", logID, username).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}
