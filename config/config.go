package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSeedURL is the public feed the /api/initialize endpoint loads from.
const DefaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

type Config struct {
	// HTTP server
	Port string

	// Database
	DBDriver string // "mysql" or "sqlite"
	DBDSN    string

	// Seed feed
	SeedURL string
}

func Load() *Config {
	cfg := &Config{
		Port:     getEnv("PORT", "8081"),
		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBDSN:    os.Getenv("DB_DSN"),
		SeedURL:  getEnv("SEED_URL", DefaultSeedURL),
	}

	if cfg.DBDSN == "" {
		switch cfg.DBDriver {
		case "sqlite":
			cfg.DBDSN = "./data/transactions.db"
		default:
			cfg.DBDSN = "root:password@tcp(localhost:3306)/transactions?charset=utf8mb4&parseTime=True&loc=Local"
		}
	}

	return cfg
}

// Validate checks the loaded configuration and returns an error listing
// every problem found.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid db driver '%s': must be one of [mysql sqlite]", c.DBDriver))
	}

	if c.DBDSN == "" {
		errors = append(errors, "database DSN cannot be empty")
	}

	if c.DBDriver == "sqlite" && c.DBDSN != "" && !strings.HasPrefix(c.DBDSN, "file:") {
		dir := filepath.Dir(c.DBDSN)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create sqlite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if parsed, err := url.Parse(c.SeedURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid seed URL '%s': %v", c.SeedURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid seed URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
