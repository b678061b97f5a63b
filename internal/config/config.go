// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// StoreKind selects the persistence backend.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreMemory StoreKind = "memory"
)

// Config holds everything the binary needs to start.
type Config struct {
	ServerPort int
	DBPath     string
	Store      StoreKind
}

// Load reads .env (if present) and the environment. Unset values fall back
// to defaults suitable for a local till.
func Load() (*Config, error) {
	// .env is optional; a missing file is the normal case in production.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: 8080,
		DBPath:     "./data/kiosk.db",
		Store:      StoreSQLite,
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.ServerPort = p
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	switch kind := os.Getenv("STORE"); kind {
	case "", string(StoreSQLite):
	case string(StoreMemory):
		cfg.Store = StoreMemory
	default:
		return nil, fmt.Errorf("invalid STORE %q (want sqlite or memory)", kind)
	}

	return cfg, nil
}
