package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/scoring"
	"context"
	"errors"
	"fmt"
	"log"
)

// Roll Записывает бросок игрока и пересчитывает его счёт.
// Всё выполняется одной транзакцией под блокировкой партии:
// при ошибке ничего не сохраняется
func (s *serv) Roll(ctx context.Context, roll model.Roll) (*model.Game, error) {
	// Валидация до похода в хранилище
	if roll.Pins < 0 || roll.Pins > model.MaxPins {
		return nil, model.ErrInvalidPinCount
	}

	unlock := s.locks.lock(roll.GameID)
	defer unlock()

	var game *model.Game

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		game, err = s.repo.GetGameForUpdate(txCtx, roll.GameID)
		if err != nil {
			return err
		}

		player := game.Player(roll.PlayerID)
		if player == nil {
			return fmt.Errorf("player %d in game %d: %w", roll.PlayerID, roll.GameID, model.ErrNotFound)
		}

		// Текущий фрейм. nil - игрок уже закончил
		frame := scoring.CurrentFrame(player)
		if frame == nil {
			return model.ErrPlayerComplete
		}

		if err = scoring.ApplyRoll(frame, roll.Pins); err != nil {
			return err
		}

		// Полный пересчёт с нуля по всем броскам игрока
		scoring.RecomputeScores(player)

		// Флаг окончания только включается
		if !game.IsFinished && scoring.GameFinished(game) {
			game.IsFinished = true
		}

		return s.repo.SaveGame(txCtx, game)
	})
	if err != nil {
		if !isClientError(err) {
			log.Printf("failed to apply roll %+v: %v", roll, err)
		}
		return nil, err
	}

	return game, nil
}

// isClientError - ошибки входных данных, которые не надо логировать как сбой
func isClientError(err error) bool {
	return errors.Is(err, model.ErrInvalidPinCount) ||
		errors.Is(err, model.ErrFrameOverflow) ||
		errors.Is(err, model.ErrFrameComplete) ||
		errors.Is(err, model.ErrPlayerComplete) ||
		errors.Is(err, model.ErrNotFound)
}
