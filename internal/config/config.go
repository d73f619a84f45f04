package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Backend selection
	DataBackend string

	// Store
	ExportCooldown time.Duration

	// API rate limiting (per client IP)
	RequestsPerMinute int

	// Link metadata autofill
	MetadataTimeout  time.Duration
	MetadataCacheTTL time.Duration
	MetadataCacheMax int
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8082"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/wishlog.db"),
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),

		ExportCooldown: getEnvDuration("EXPORT_COOLDOWN", 2*time.Second),

		RequestsPerMinute: getEnvInt("RATE_LIMIT_RPM", 120),

		MetadataTimeout:  getEnvDuration("METADATA_TIMEOUT", 5*time.Second),
		MetadataCacheTTL: getEnvDuration("METADATA_CACHE_TTL", 15*time.Minute),
		MetadataCacheMax: getEnvInt("METADATA_CACHE_MAX", 100),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "sqlite", "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [sqlite memory]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.ExportCooldown <= 0 {
		errs = append(errs, "export cooldown must be positive")
	}
	if c.RequestsPerMinute <= 0 {
		errs = append(errs, "rate limit must be positive")
	}
	if c.MetadataCacheMax <= 0 {
		errs = append(errs, "metadata cache size must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
