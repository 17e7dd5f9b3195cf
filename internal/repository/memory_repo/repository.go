package memory_repo

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"fmt"
	"sync"
)

// Хранилище партий в памяти процесса. Используется при STORAGE_DRIVER=memory и в тестах
type repo struct {
	mtx   sync.RWMutex
	games map[int]*model.Game

	// Счётчики идентификаторов, как у SERIAL в postgres
	lastGameID   int
	lastPlayerID int
	lastFrameID  int
}

func NewGameRepository() repository.GameRepository {
	return &repo{
		games: make(map[int]*model.Game),
	}
}

// CreateGame Сохраняет копию партии, выдавая ID партии, игрокам и фреймам
func (r *repo) CreateGame(_ context.Context, game *model.Game) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.lastGameID++
	game.ID = r.lastGameID
	for _, p := range game.Players {
		r.lastPlayerID++
		p.ID = r.lastPlayerID
		p.GameID = game.ID
		for _, f := range p.Frames {
			r.lastFrameID++
			f.ID = r.lastFrameID
		}
	}

	r.games[game.ID] = game.Clone()
	return nil
}

// GetGame Возвращает копию партии, изменения которой не видны до SaveGame
func (r *repo) GetGame(_ context.Context, id int) (*model.Game, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	game, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", id, model.ErrNotFound)
	}
	return game.Clone(), nil
}

// GetGameForUpdate В памяти блокировку строк не делаем: запись в одну партию
// сериализует сервис
func (r *repo) GetGameForUpdate(ctx context.Context, id int) (*model.Game, error) {
	return r.GetGame(ctx, id)
}

func (r *repo) SaveGame(_ context.Context, game *model.Game) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.games[game.ID]; !ok {
		return fmt.Errorf("game %d: %w", game.ID, model.ErrNotFound)
	}
	r.games[game.ID] = game.Clone()
	return nil
}
