// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── errors.go        # Infrastructure / integrity error taxonomy
//	├── books/           # Book catalog CRUD and substring search
//	├── tags/            # Tags and the Book<->Tag association
//	├── userbooks/       # Per-user library entries
//	├── readinglogs/     # Reading sessions scoped to a library entry
//	└── users/           # User accounts and API tokens
//
// Ownership checks live in internal/access; they query the same tables.
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetByID(7)
//
// # Conventions
//
// Every repository follows the same contract:
//
//   - A lookup or update that matches no row returns (nil, nil). Absence is a
//     result, not an error; callers decide whether it means "not found".
//   - Delete returns true iff a row was removed.
//   - Create and Update re-read the row after writing and return it.
//   - Errors are classified: constraint failures wrap ErrIntegrityViolation,
//     everything else wraps ErrInfrastructure. Use errors.Is to branch.
//
// # Referential behavior
//
//   - Deleting a user book deletes its reading logs.
//   - Deleting a book or a tag deletes its book_tags rows.
//   - Deleting a book that a user book still references is rejected with
//     ErrIntegrityViolation.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add the model to Models in database.go
//  5. Add a compile-time interface check in internal/interfaces/checks.go
package database
