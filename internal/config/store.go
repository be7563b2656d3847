package config

import "fmt"

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// StoreConfig selects where the storefront replica keeps users, carts and orders
type StoreConfig struct {
	Backend string
}

// LoadStoreConfig loads the storage backend selection from environment variables
func LoadStoreConfig(getenv func(string) string) (StoreConfig, error) {
	backend := getenv("STORE_BACKEND")
	if backend == "" {
		backend = StoreBackendMemory
	}

	switch backend {
	case StoreBackendMemory, StoreBackendPostgres:
	default:
		return StoreConfig{}, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q",
			StoreBackendMemory, StoreBackendPostgres, backend)
	}

	return StoreConfig{Backend: backend}, nil
}
