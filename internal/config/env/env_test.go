package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGameConfigFromYAML(t *testing.T) {
	path := writeFile(t, "game:\n  max_players: 4\n  max_name_length: 12\n")

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxPlayers() != 4 {
		t.Errorf("expected 4 players, got %d", cfg.MaxPlayers())
	}
	if cfg.MaxNameLength() != 12 {
		t.Errorf("expected name length 12, got %d", cfg.MaxNameLength())
	}
}

func TestGameConfigDefaults(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxPlayers() != defaultMaxPlayers || cfg.MaxNameLength() != defaultMaxNameLength {
		t.Fatalf("expected defaults, got %d/%d", cfg.MaxPlayers(), cfg.MaxNameLength())
	}

	cfg, err = NewGameConfigFromYAML(writeFile(t, "game:\n  max_players: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxPlayers() != 2 || cfg.MaxNameLength() != defaultMaxNameLength {
		t.Fatalf("expected 2/%d, got %d/%d", defaultMaxNameLength, cfg.MaxPlayers(), cfg.MaxNameLength())
	}
}

func TestGameConfigInvalid(t *testing.T) {
	if _, err := NewGameConfigFromYAML(writeFile(t, "game: [")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := NewGameConfigFromYAML(writeFile(t, "game:\n  max_players: -1\n")); err == nil {
		t.Fatal("expected error for negative value")
	}
}

func TestStorageConfig(t *testing.T) {
	t.Setenv(storageDriverEnvName, "")
	cfg, err := NewStorageConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Driver() != StoragePostgres {
		t.Fatalf("expected %s, got %s", StoragePostgres, cfg.Driver())
	}

	t.Setenv(storageDriverEnvName, "mongo")
	if _, err := NewStorageConfig(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")
	t.Setenv(allowedOriginsEnvName, "http://localhost:5173, http://example.com")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("unexpected address %s", cfg.Address())
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[1] != "http://example.com" {
		t.Errorf("unexpected origins %v", origins)
	}

	t.Setenv(httpPortEnvName, "")
	if _, err := NewHTTPConfig(); err == nil {
		t.Fatal("expected error without port")
	}
}
