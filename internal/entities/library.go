package entities

import (
	"errors"
	"fmt"
)

type ReadingStatus string

const (
	StatusUnread   ReadingStatus = "unread"
	StatusReading  ReadingStatus = "reading"
	StatusFinished ReadingStatus = "finished"
	StatusDNF      ReadingStatus = "dnf" // did not finish
)

var ErrInvalidStatus = errors.New("status must be one of: unread, reading, finished, dnf")

// ReadingStatuses lists every accepted status, in lifecycle order.
var ReadingStatuses = []ReadingStatus{StatusUnread, StatusReading, StatusFinished, StatusDNF}

func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusUnread, StatusReading, StatusFinished, StatusDNF:
		return true
	}
	return false
}

// Validate returns ErrInvalidStatus (wrapped with the offending value) for
// anything outside the closed set.
func (s ReadingStatus) Validate() error {
	if !s.IsValid() {
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, string(s))
	}
	return nil
}

// UserBook is a user's library entry for one catalog book.
type UserBook struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	BookID        uint          `gorm:"index;not null" json:"book_id" validate:"required"`
	DateAdded     Date          `gorm:"not null" json:"date_added" validate:"required"`
	IsOwned       bool          `gorm:"not null" json:"is_owned"`
	CurrentStatus ReadingStatus `gorm:"size:20;not null;check:current_status IN ('unread','reading','finished','dnf')" json:"current_status" validate:"required,oneof=unread reading finished dnf"`
	User          User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Book          Book          `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

// ReadingLog is one reading session. It carries no user column: ownership is
// always derived through its UserBook.
type ReadingLog struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	UserBookID uint     `gorm:"index;not null" json:"user_book_id" validate:"required"`
	StartDate  Date     `gorm:"not null" json:"start_date" validate:"required"`
	EndDate    *Date    `json:"end_date,omitempty"`
	Rating     *int     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes      *string  `gorm:"type:text" json:"notes,omitempty"`
	UserBook   UserBook `gorm:"foreignKey:UserBookID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (UserBook) TableName() string {
	return "user_books"
}

func (ReadingLog) TableName() string {
	return "reading_logs"
}

// UserBookView is a UserBook as read back through its joins. The owner and
// book fields are projections and are never written.
type UserBookView struct {
	ID            uint          `json:"id"`
	UserID        uint          `json:"user_id"`
	BookID        uint          `json:"book_id"`
	DateAdded     Date          `json:"date_added"`
	IsOwned       bool          `json:"is_owned"`
	CurrentStatus ReadingStatus `json:"current_status"`

	Username   string `json:"username"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
}

// Entity strips the projections.
func (v UserBookView) Entity() UserBook {
	return UserBook{
		ID:            v.ID,
		UserID:        v.UserID,
		BookID:        v.BookID,
		DateAdded:     v.DateAdded,
		IsOwned:       v.IsOwned,
		CurrentStatus: v.CurrentStatus,
	}
}

// ReadingLogView is a ReadingLog joined through user_books to its owner and book.
type ReadingLogView struct {
	ID         uint    `json:"id"`
	UserBookID uint    `json:"user_book_id"`
	StartDate  Date    `json:"start_date"`
	EndDate    *Date   `json:"end_date,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
}

func (v ReadingLogView) Entity() ReadingLog {
	return ReadingLog{
		ID:         v.ID,
		UserBookID: v.UserBookID,
		StartDate:  v.StartDate,
		EndDate:    v.EndDate,
		Rating:     v.Rating,
		Notes:      v.Notes,
	}
}
