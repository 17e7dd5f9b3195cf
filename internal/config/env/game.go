package env

import (
	"bowling_backend/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigPathEnvName = "GAME_CONFIG_PATH"
	defaultGameConfigPath = "config.yaml"

	defaultMaxPlayers    = 6
	defaultMaxNameLength = 32
)

// gameFile Структура config.yaml
type gameFile struct {
	Game struct {
		MaxPlayers    int `yaml:"max_players"`
		MaxNameLength int `yaml:"max_name_length"`
	} `yaml:"game"`
}

type gameConfig struct {
	maxPlayers    int
	maxNameLength int
}

// NewGameConfig Читает правила партии из YAML. Путь берётся из GAME_CONFIG_PATH,
// если файла нет - используются значения по умолчанию
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigPathEnvName)
	if len(path) == 0 {
		path = defaultGameConfigPath
	}
	return NewGameConfigFromYAML(path)
}

func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := &gameConfig{
		maxPlayers:    defaultMaxPlayers,
		maxNameLength: defaultMaxNameLength,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if file.Game.MaxPlayers < 0 || file.Game.MaxNameLength < 0 {
		return nil, errors.New("game config values must not be negative")
	}
	if file.Game.MaxPlayers > 0 {
		cfg.maxPlayers = file.Game.MaxPlayers
	}
	if file.Game.MaxNameLength > 0 {
		cfg.maxNameLength = file.Game.MaxNameLength
	}

	return cfg, nil
}

func (cfg *gameConfig) MaxPlayers() int {
	return cfg.maxPlayers
}

func (cfg *gameConfig) MaxNameLength() int {
	return cfg.maxNameLength
}
