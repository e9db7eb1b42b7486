// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore, TagStore: shared catalog (internal/services/interfaces.go)
//   - UserBookStore, ReadingLogStore: per-user library (internal/services/interfaces.go)
//   - UserStore: accounts and token hashes (internal/auth/service.go)
//
// Stores return (nil, nil) for a missing row and false from Delete when
// nothing was removed. Errors are classified by internal/database into
// ErrIntegrityViolation and ErrInfrastructure.
//
// ## Authorization Interfaces
//
//   - AccessChecker: ownership predicates (internal/services/interfaces.go)
//   - TokenValidator: bearer token resolution (internal/auth/middleware.go)
//
// ## External Service Interfaces
//
//   - CatalogSearcher: Open Library search (internal/services/interfaces.go)
//
// ## HTTP Interfaces
//
//   - CatalogService, LibraryService, AccountService (internal/http/config.go)
//   - Pinger: health check (internal/http/health.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., reading goals):
//
//  1. Create sub-package: internal/database/goals/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Register the entity in database.Models so it is migrated
//
//  4. Add compile-time check:
//
//     var _ services.GoalStore = (*goals.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
