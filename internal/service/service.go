package service

import (
	"bowling_backend/internal/model"
	"context"
)

type GameService interface {
	CreateGame(ctx context.Context, names []string) (*model.Game, error)
	GetGame(ctx context.Context, id int) (*model.Game, error)
	Roll(ctx context.Context, roll model.Roll) (*model.Game, error)
}
