package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	MaxPlayers() int
	MaxNameLength() int
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
}

type StorageConfig interface {
	Driver() string
}
