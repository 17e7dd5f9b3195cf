package game

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.GameRepository
	gameCfg   config.GameConfig
	txManager trm.Manager
	locks     *gameLocks
}

// NewGameService Сервис партий в боулинг
func NewGameService(
	repo repository.GameRepository,
	gameCfg config.GameConfig,
	txManager trm.Manager,
) service.GameService {
	return &serv{
		repo:      repo,
		gameCfg:   gameCfg,
		txManager: txManager,
		locks:     newGameLocks(),
	}
}
