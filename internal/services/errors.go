package services

import "errors"

var (
	// ErrNotFound means the target resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the resource exists but belongs to another user.
	ErrForbidden = errors.New("access denied")

	ErrAlreadyAssigned = errors.New("tag already assigned to book")
	ErrNotAssigned     = errors.New("tag is not assigned to book")
)
