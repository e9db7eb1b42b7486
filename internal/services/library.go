package services

import (
	"fmt"

	"github.com/mrlokans/bookgoblin/internal/entities"
)

// Library serves a user's own entries and reading logs. Every read by id and
// every write first confirms the target exists (ErrNotFound) and then that
// the caller owns it (ErrForbidden).
type Library struct {
	userBooks   UserBookStore
	readingLogs ReadingLogStore
	access      AccessChecker
	validator   Validator
}

func NewLibrary(userBooks UserBookStore, readingLogs ReadingLogStore, access AccessChecker, validator Validator) *Library {
	return &Library{
		userBooks:   userBooks,
		readingLogs: readingLogs,
		access:      access,
		validator:   validator,
	}
}

// authorizeUserBook returns the entry if it exists and username owns it.
func (l *Library) authorizeUserBook(username string, id uint) (*entities.UserBookView, error) {
	view, err := l.userBooks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: user book %d", ErrNotFound, id)
	}

	owns, err := l.access.UserOwnsUserBook(username, id)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, fmt.Errorf("%w: user book %d", ErrForbidden, id)
	}
	return view, nil
}

func (l *Library) authorizeReadingLog(username string, id uint) (*entities.ReadingLogView, error) {
	view, err := l.readingLogs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: reading log %d", ErrNotFound, id)
	}

	owns, err := l.access.UserOwnsReadingLog(username, id)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, fmt.Errorf("%w: reading log %d", ErrForbidden, id)
	}
	return view, nil
}

// ListUserBooks returns the caller's entries, newest first.
func (l *Library) ListUserBooks(username string) ([]entities.UserBookView, error) {
	return l.userBooks.ListByUsername(username)
}

func (l *Library) GetUserBook(username string, id uint) (*entities.UserBookView, error) {
	return l.authorizeUserBook(username, id)
}

// AddUserBook creates an entry owned by username. No ownership check is
// needed: the entry is always assigned to the caller.
func (l *Library) AddUserBook(username string, ub *entities.UserBook) (*entities.UserBookView, error) {
	if err := l.validator.Validate(*ub); err != nil {
		return nil, err
	}
	return l.userBooks.Create(ub, username)
}

func (l *Library) UpdateUserBook(username string, id uint, ub *entities.UserBook) (*entities.UserBookView, error) {
	if _, err := l.authorizeUserBook(username, id); err != nil {
		return nil, err
	}

	ub.ID = id
	if err := l.validator.Validate(*ub); err != nil {
		return nil, err
	}

	updated, err := l.userBooks.Update(ub)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// deleted between the check and the write
		return nil, fmt.Errorf("%w: user book %d", ErrNotFound, id)
	}
	return updated, nil
}

// DeleteUserBook removes the entry and its reading logs.
func (l *Library) DeleteUserBook(username string, id uint) error {
	if _, err := l.authorizeUserBook(username, id); err != nil {
		return err
	}

	removed, err := l.userBooks.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: user book %d", ErrNotFound, id)
	}
	return nil
}

// ListReadingLogs returns the sessions of one of the caller's entries.
func (l *Library) ListReadingLogs(username string, userBookID uint) ([]entities.ReadingLogView, error) {
	if _, err := l.authorizeUserBook(username, userBookID); err != nil {
		return nil, err
	}
	return l.readingLogs.ListByUserBookID(userBookID)
}

func (l *Library) GetReadingLog(username string, id uint) (*entities.ReadingLogView, error) {
	return l.authorizeReadingLog(username, id)
}

// AddReadingLog writes a session against one of the caller's entries. The
// target entry is authorized before anything is written.
func (l *Library) AddReadingLog(username string, log *entities.ReadingLog) (*entities.ReadingLogView, error) {
	if err := l.validator.Validate(*log); err != nil {
		return nil, err
	}
	if _, err := l.authorizeUserBook(username, log.UserBookID); err != nil {
		return nil, err
	}
	return l.readingLogs.Create(log)
}

// UpdateReadingLog rewrites a session. Moving it to another entry requires
// the caller to own that entry too. A zero UserBookID keeps the current one.
func (l *Library) UpdateReadingLog(username string, id uint, log *entities.ReadingLog) (*entities.ReadingLogView, error) {
	existing, err := l.authorizeReadingLog(username, id)
	if err != nil {
		return nil, err
	}

	log.ID = id
	if log.UserBookID == 0 {
		log.UserBookID = existing.UserBookID
	}
	if err := l.validator.Validate(*log); err != nil {
		return nil, err
	}

	if log.UserBookID != existing.UserBookID {
		if _, err := l.authorizeUserBook(username, log.UserBookID); err != nil {
			return nil, err
		}
	}

	updated, err := l.readingLogs.Update(log)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: reading log %d", ErrNotFound, id)
	}
	return updated, nil
}

func (l *Library) DeleteReadingLog(username string, id uint) error {
	if _, err := l.authorizeReadingLog(username, id); err != nil {
		return err
	}

	removed, err := l.readingLogs.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: reading log %d", ErrNotFound, id)
	}
	return nil
}
