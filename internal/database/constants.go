package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToRollback        = "failed to roll back migration"
	ErrMsgFailedToCheckDatabase   = "failed to check if database exists"
	ErrMsgFailedToCreateDatabase  = "failed to create database"
	ErrMsgFailedToDropDatabase    = "failed to drop database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgDatabaseCreated                 = "Database created"
	LogMsgDatabaseExists                  = "Database already exists"
	LogMsgDatabaseDropped                 = "Database dropped"
	LogMsgTerminateConnectionsFailed      = "Failed to terminate database connections"
	LogMsgMigrationRolledBack             = "Database migration rolled back"
)
