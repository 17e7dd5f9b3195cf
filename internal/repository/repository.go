package repository

import (
	"bowling_backend/internal/model"
	"context"
)

type GameRepository interface {
	// CreateGame сохраняет новую партию и проставляет ID партии, игроков и фреймов
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id int) (*model.Game, error)
	// GetGameForUpdate как GetGame, но блокирует партию до конца транзакции
	GetGameForUpdate(ctx context.Context, id int) (*model.Game, error)
	// SaveGame сохраняет броски, счёт фреймов и флаг окончания
	SaveGame(ctx context.Context, game *model.Game) error
}
