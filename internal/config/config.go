package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	LogToFile   bool

	StorageBackend string `validate:"oneof=memory file sqlite postgres"`
	StoragePath    string
	CacheSize      int    `validate:"gte=0"`
	CacheTTL       time.Duration

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"gt=0"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	ProfileID    string `validate:"required,notblank,max=64"`
	CatalogPath  string
	ItemBoxTTL   time.Duration `validate:"gt=0"`
	XPPerNewItem int64         `validate:"gte=0"`
	XPPerCheckIn int64         `validate:"gte=0"`

	HistoryMaxEntries    int `validate:"gt=0"`
	HistoryRetentionDays int `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(ConfigPathEnvFile)

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		LogToFile:   getEnvAsBool("LOG_TO_FILE", false),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		StoragePath:    getEnv("STORAGE_PATH", DefaultStoragePath),
		CacheSize:      getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "gachatrip"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ProfileID:    getEnv("PROFILE_ID", DefaultProfileID),
		CatalogPath:  getEnv("CATALOG_PATH", ConfigPathCatalog),
		ItemBoxTTL:   getEnvAsDuration("ITEMBOX_TTL", DefaultItemBoxTTL),
		XPPerNewItem: int64(getEnvAsInt("XP_PER_NEW_ITEM", DefaultXPPerNewItem)),
		XPPerCheckIn: int64(getEnvAsInt("XP_PER_CHECK_IN", DefaultXPPerCheckIn)),

		HistoryMaxEntries:    getEnvAsInt("HISTORY_MAX_ENTRIES", DefaultHistoryMaxEntries),
		HistoryRetentionDays: getEnvAsInt("HISTORY_RETENTION_DAYS", DefaultHistoryRetentionDays),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and returns a single wrapped error listing every bad field
func (c *Config) Validate() error {
	if err := validation.GetValidator().ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgInvalidConfig, validation.Summary(err))
	}
	if (c.StorageBackend == "file" || c.StorageBackend == "sqlite") && strings.TrimSpace(c.StoragePath) == "" {
		return fmt.Errorf("%w: %s: STORAGE_PATH is required for the %s backend",
			domain.ErrInvalidInput, ErrMsgInvalidConfig, c.StorageBackend)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("10m", "1h30m"), falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// LogFilePath returns where the rotating log file is written
func (c *Config) LogFilePath() string {
	return filepath.Join(c.LogDir, c.ServiceName+".log")
}
