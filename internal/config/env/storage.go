package env

import (
	"bowling_backend/internal/config"
	"fmt"
	"os"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"

	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type storageConfig struct {
	driver string
}

func NewStorageConfig() (config.StorageConfig, error) {
	driver := os.Getenv(storageDriverEnvName)
	if len(driver) == 0 {
		driver = StoragePostgres
	}

	if driver != StoragePostgres && driver != StorageMemory {
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{
		driver: driver,
	}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}
