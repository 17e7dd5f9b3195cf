package game

import (
	"bowling_backend/internal/model"
	"context"
)

func (s *serv) GetGame(ctx context.Context, id int) (*model.Game, error) {
	return s.repo.GetGame(ctx, id)
}
