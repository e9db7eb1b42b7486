// Package auth turns API tokens into principals.
//
// Users register with a username and password (bcrypt, at least 12
// characters). Logging in issues a random API token; only its SHA-256 hash
// is stored. Protected routes require
//
//	Authorization: Bearer <token>
//
// and the middleware places the resolved username in the gin context. The
// rest of the application only ever sees that username string; what a user
// may touch is decided in internal/access.
//
// # Configuration
//
//	AUTH_TOKEN_EXPIRY=720h   # API token lifetime, 0 disables expiry
//	AUTH_BCRYPT_COST=12      # bcrypt cost factor
//
// # Usage
//
//	authService := auth.NewService(users.NewRepository(db), cfg.Auth)
//	authMiddleware := auth.NewMiddleware(authService)
//	protected := router.Group("/", authMiddleware.RequireAuth())
//
// Extract the principal in handlers:
//
//	username := auth.GetUsername(c)
package auth
