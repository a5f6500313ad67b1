package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultPageSize is the number of books revealed per "show more" step
	DefaultPageSize = 36

	// ThemeSystem defers the initial theme to the client's color scheme preference
	ThemeSystem = "system"
)
