// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByTokenHash(auth.HashToken(token))
package users

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new user. A taken username fails with
// database.ErrIntegrityViolation.
func (r *Repository) Create(username, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, database.Classify(err)
	}
	return user, nil
}

func (r *Repository) GetByID(id uint) (*entities.User, error) {
	return r.first("id = ?", id)
}

func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	return r.first("username = ?", username)
}

// GetByTokenHash looks a user up by the SHA-256 hash of their API token.
func (r *Repository) GetByTokenHash(hash string) (*entities.User, error) {
	if hash == "" {
		return nil, nil
	}
	return r.first("token_hash = ?", hash)
}

// SetToken replaces the user's API token hash. It returns false if the user
// does not exist.
func (r *Repository) SetToken(userID uint, hash string, issuedAt time.Time) (bool, error) {
	result := r.db.Model(&entities.User{}).Where("id = ?", userID).Updates(map[string]any{
		"token_hash":       hash,
		"token_created_at": issuedAt,
	})
	if result.Error != nil {
		return false, database.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) first(where string, arg any) (*entities.User, error) {
	var users []entities.User
	if err := r.db.Where(where, arg).Limit(1).Find(&users).Error; err != nil {
		return nil, database.Classify(err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
