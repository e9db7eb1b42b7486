package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/access"
	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/database/books"
	"github.com/mrlokans/bookgoblin/internal/database/readinglogs"
	"github.com/mrlokans/bookgoblin/internal/database/tags"
	"github.com/mrlokans/bookgoblin/internal/database/userbooks"
	"github.com/mrlokans/bookgoblin/internal/database/users"
	http_controllers "github.com/mrlokans/bookgoblin/internal/http"
	"github.com/mrlokans/bookgoblin/internal/services"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

// openDatabase is swapped in tests to observe the connection Run opens.
var openDatabase = database.NewDatabase

func Serve(router *gin.Engine, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// NewRouter wires stores, services and auth on top of an open database.
func NewRouter(db *database.Database, cfg *config.Config, version string) *gin.Engine {
	validator := validation.New()

	catalogService := services.NewBooks(
		books.NewRepository(db.DB),
		tags.NewRepository(db.DB),
		catalog.NewClient(cfg.Catalog),
		validator,
	)
	library := services.NewLibrary(
		userbooks.NewRepository(db.DB),
		readinglogs.NewRepository(db.DB),
		access.NewChecker(db.DB),
		validator,
	)

	authService := auth.NewService(users.NewRepository(db.DB), cfg.Auth)
	if cfg.Auth.TokenExpiry > 0 {
		log.Printf("API tokens expire after %v", cfg.Auth.TokenExpiry)
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:        catalogService,
		Library:        library,
		Accounts:       authService,
		AuthMiddleware: auth.NewMiddleware(authService),
		Database:       db,
		Version:        version,
	})
}

func Run(cfg *config.Config, version string) error {
	log.Printf("Starting bookgoblin v%s", version)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	return Serve(NewRouter(db, cfg, version), cfg)
}
