package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Catalog reads are public; anything that writes needs a bearer token.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	requireAuth := cfg.AuthMiddleware.RequireAuth()

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	users := NewUsersController(cfg.Accounts)
	router.POST("/register", users.Register)
	router.POST("/login", users.Login)

	books := NewBooksController(cfg.Catalog)
	bookRoutes := router.Group("/books")
	{
		bookRoutes.GET("", books.List)
		bookRoutes.GET("/search", books.Search)
		bookRoutes.GET("/:id", books.Get)
		bookRoutes.POST("", requireAuth, books.Create)
		bookRoutes.PUT("/:id", requireAuth, books.Update)
		bookRoutes.DELETE("/:id", requireAuth, books.Delete)
	}

	tags := NewTagsController(cfg.Catalog)
	tagRoutes := router.Group("/tags")
	{
		tagRoutes.GET("", tags.List)
		tagRoutes.GET("/book/:bookId", tags.ListForBook)
		tagRoutes.GET("/:id", tags.Get)
		tagRoutes.POST("", requireAuth, tags.Create)
		tagRoutes.PUT("/:id", requireAuth, tags.Update)
		tagRoutes.DELETE("/:id", requireAuth, tags.Delete)
		tagRoutes.POST("/:id/book/:bookId", requireAuth, tags.Assign)
		tagRoutes.DELETE("/:id/book/:bookId", requireAuth, tags.Unassign)
	}

	openLibrary := NewOpenLibraryController(cfg.Catalog)
	openLibraryRoutes := router.Group("/openlibrary")
	{
		openLibraryRoutes.GET("/search", openLibrary.Search)
		openLibraryRoutes.POST("/import", requireAuth, openLibrary.Import)
	}

	userBooks := NewUserBooksController(cfg.Library)
	userBookRoutes := router.Group("/user-books", requireAuth)
	{
		userBookRoutes.GET("", userBooks.List)
		userBookRoutes.GET("/:id", userBooks.Get)
		userBookRoutes.POST("", userBooks.Create)
		userBookRoutes.PUT("/:id", userBooks.Update)
		userBookRoutes.DELETE("/:id", userBooks.Delete)
	}

	readingLogs := NewReadingLogsController(cfg.Library)
	readingLogRoutes := router.Group("/reading-logs", requireAuth)
	{
		readingLogRoutes.GET("/user-book/:userBookId", readingLogs.ListForUserBook)
		readingLogRoutes.GET("/:id", readingLogs.Get)
		readingLogRoutes.POST("", readingLogs.Create)
		readingLogRoutes.PUT("/:id", readingLogs.Update)
		readingLogRoutes.DELETE("/:id", readingLogs.Delete)
	}

	return router
}
