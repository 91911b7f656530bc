package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
	ConfigPathEnvFile = ".env"
)

// Defaults
const (
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "gachatrip"
	DefaultVersion        = "dev"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultStorageBackend = "file"
	DefaultStoragePath    = "data/gachatrip.json"
	DefaultProfileID      = "default"

	DefaultDBMaxConns        = 5
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultItemBoxTTL = 10 * time.Minute
	DefaultCacheSize  = 0
	DefaultCacheTTL   = 5 * time.Minute

	DefaultXPPerNewItem = 50
	DefaultXPPerCheckIn = 10

	DefaultHistoryMaxEntries    = 200
	DefaultHistoryRetentionDays = 30
)

// Error Messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
)
