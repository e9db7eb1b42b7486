package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookgoblin/internal/access"
	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/books"
	"github.com/mrlokans/bookgoblin/internal/database/readinglogs"
	"github.com/mrlokans/bookgoblin/internal/database/tags"
	"github.com/mrlokans/bookgoblin/internal/database/userbooks"
	"github.com/mrlokans/bookgoblin/internal/database/users"
	"github.com/mrlokans/bookgoblin/internal/http"
	"github.com/mrlokans/bookgoblin/internal/services"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookStore = (*books.Repository)(nil)
var _ services.TagStore = (*tags.Repository)(nil)
var _ services.UserBookStore = (*userbooks.Repository)(nil)
var _ services.ReadingLogStore = (*readinglogs.Repository)(nil)
var _ auth.UserStore = (*users.Repository)(nil)

// =============================================================================
// Authorization & Validation
// =============================================================================

var _ services.AccessChecker = (*access.Checker)(nil)
var _ services.Validator = (*validation.Validator)(nil)
var _ auth.TokenValidator = (*auth.Service)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ services.CatalogSearcher = (*catalog.Client)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

var _ http.CatalogService = (*services.Books)(nil)
var _ http.LibraryService = (*services.Library)(nil)
var _ http.AccountService = (*auth.Service)(nil)
var _ http.Pinger = (*database.Database)(nil)
