package game

import (
	"bowling_backend/internal/model"
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"
)

// CreateGame Создаёт партию с игроками в переданном порядке.
// У каждого игрока сразу 10 пустых фреймов
func (s *serv) CreateGame(ctx context.Context, names []string) (*model.Game, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", model.ErrInvalidPlayers)
	}
	if len(names) > s.gameCfg.MaxPlayers() {
		return nil, fmt.Errorf("%w: at most %d players allowed", model.ErrInvalidPlayers, s.gameCfg.MaxPlayers())
	}

	game := &model.Game{Players: make([]*model.Player, 0, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: player name is empty", model.ErrInvalidPlayers)
		}
		if utf8.RuneCountInString(name) > s.gameCfg.MaxNameLength() {
			return nil, fmt.Errorf("%w: player name %q is longer than %d", model.ErrInvalidPlayers, name, s.gameCfg.MaxNameLength())
		}
		game.Players = append(game.Players, model.NewPlayer(name))
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.CreateGame(txCtx, game)
	})
	if err != nil {
		log.Printf("failed to create game: %v", err)
		return nil, fmt.Errorf("create game: %w", err)
	}

	return game, nil
}
