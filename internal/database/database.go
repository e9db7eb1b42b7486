package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// Models lists every table owned by the application, in dependency order.
var Models = []any{
	&entities.User{},
	&entities.Book{},
	&entities.Tag{},
	&entities.BookTag{},
	&entities.UserBook{},
	&entities.ReadingLog{},
}

func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to database: %w", ErrInfrastructure, err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully (%s)", describe(cfg))

	return &Database{DB: db}, nil
}

func newDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return sqlite.New(sqlite.Config{
			DriverName: sqliteDriver(),
			DSN:        sqliteDSN(cfg.Path),
		}), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for the postgres driver")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

const sqliteDriverName = "sqlite3_unicode"

var registerSQLiteDriver sync.Once

// sqliteDriver registers a go-sqlite3 driver whose LOWER() folds all of
// Unicode. The built-in one only folds ASCII.
func sqliteDriver() string {
	registerSQLiteDriver.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", strings.ToLower, true)
			},
		})
	})
	return sqliteDriverName
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by
// default and which the cascade rules depend on.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func describe(cfg config.Database) string {
	if cfg.Driver == config.DriverPostgres {
		return "postgres"
	}
	return "sqlite at " + cfg.Path
}

// Ping checks that the underlying connection pool can reach the database.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return classify(err)
	}
	if err := sqlDB.Ping(); err != nil {
		return classify(err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
