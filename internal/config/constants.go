package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./words.db"

	// DefaultSeedsDir is the default directory holding JSON seed files
	DefaultSeedsDir = "./db/seeds"
)
