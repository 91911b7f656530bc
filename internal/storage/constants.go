package storage

import "time"

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Cache Defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Postgres Pool Defaults
const (
	DefaultMaxConns    = 5
	DefaultMaxConnIdle = 5 * time.Minute
	DefaultMaxConnLife = time.Hour
)

// Error Messages
const (
	ErrMsgGetFailed     = "failed to get key"
	ErrMsgSetFailed     = "failed to set key"
	ErrMsgPathRequired  = "storage path is required"
	ErrMsgDSNRequired   = "database connection string is required"
	ErrMsgCorruptKVFile = "Key-value file is unreadable, starting empty"
)

// Log Messages
const (
	LogMsgStorageOpened = "Storage opened"
	LogMsgStorageCached = "Storage wrapped with read cache"
)
