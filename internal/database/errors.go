package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrInfrastructure means the store could not be reached or failed for a
	// reason unrelated to the data being written.
	ErrInfrastructure = errors.New("database unavailable")

	// ErrIntegrityViolation means a write broke a relational constraint
	// (foreign key, uniqueness, check, not null).
	ErrIntegrityViolation = errors.New("data integrity violation")

	// ErrUserNotFound means a principal's username has no users row.
	ErrUserNotFound = errors.New("user not found")
)

// Classify wraps a store error into the application taxonomy. Errors that are
// already classified pass through unchanged.
func Classify(err error) error {
	return classify(err)
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInfrastructure) || errors.Is(err, ErrIntegrityViolation) || errors.Is(err, ErrUserNotFound) {
		return err
	}
	if IsConstraintViolation(err) {
		return fmt.Errorf("%w: %w", ErrIntegrityViolation, err)
	}
	return fmt.Errorf("%w: %w", ErrInfrastructure, err)
}

// IsConstraintViolation reports whether err came from a rejected write rather
// than from the connection.
func IsConstraintViolation(err error) bool {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	// SQLSTATE class 23 is "integrity constraint violation"
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}

	return false
}
