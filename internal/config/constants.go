package config

// Default paths and endpoints
const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./bookgoblin.db"

	// DefaultCatalogBaseURL is the OpenLibrary API root used for catalog search
	DefaultCatalogBaseURL = "https://openlibrary.org"

	// DefaultCoversBaseURL is the OpenLibrary covers host used to build cover URLs
	DefaultCoversBaseURL = "https://covers.openlibrary.org"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
