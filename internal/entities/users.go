package entities

import "time"

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash   string     `gorm:"size:255" json:"-"`
	TokenHash      string     `gorm:"index;size:64" json:"-"` // SHA-256 of the API token
	TokenCreatedAt *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
