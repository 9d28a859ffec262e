package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	APIKey      string // API key for mutating routes; empty disables the check

	TrustedProxies []string // remote addresses whose X-Forwarded-For is honoured

	// Simulation
	SimSeed         int64         // 0 draws an entropy seed
	CatalogPath     string        // empty uses the embedded catalog
	SnapshotHistory int           `validate:"min=1,max=10000"`
	TurnInterval    time.Duration `validate:"gte=0"` // advance idle turns on this period; 0 disables

	// Profile persistence
	ProfileID        string        `validate:"required,max=64"`
	ProfileStore     string        `validate:"oneof=memory postgres"`
	ProfileCacheSize int           `validate:"min=1"`
	ProfileCacheTTL  time.Duration `validate:"gt=0"`

	// Database
	DatabaseURL       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		CatalogPath:     getEnv("CATALOG_PATH", ""),
		SnapshotHistory: getEnvAsInt("SNAPSHOT_HISTORY", DefaultSnapshotHistory),
		TurnInterval:    getEnvAsDuration("TURN_INTERVAL", 0),

		ProfileID:        getEnv("PROFILE_ID", DefaultProfileID),
		ProfileStore:     getEnv("PROFILE_STORE", ProfileStoreMemory),
		ProfileCacheSize: getEnvAsInt("PROFILE_CACHE_SIZE", DefaultProfileCacheSize),
		ProfileCacheTTL:  getEnvAsDuration("PROFILE_CACHE_TTL", DefaultProfileCacheTTL),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "farmstead"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPortFmt, err)
	}
	cfg.Port = port

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	seed, err := strconv.ParseInt(getEnv("SIM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidSimSeedFmt, err)
	}
	cfg.SimSeed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(ErrMsgValidationFailed, err)
	}
	return nil
}

// UsePostgres reports whether profiles are stored in PostgreSQL
func (c *Config) UsePostgres() bool {
	return c.ProfileStore == ProfileStorePostgres
}

// GetDBConnString returns the PostgreSQL connection string.
// DATABASE_URL wins over the individual DB_* parts.
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
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
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// splitList parses a comma-separated variable, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
