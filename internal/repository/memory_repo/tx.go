package memory_repo

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// txManager Менеджер транзакций для хранилища в памяти: просто вызывает функцию.
// Атомарность обеспечивает то, что партия сохраняется целиком одним SaveGame
type txManager struct{}

func NewTxManager() trm.Manager {
	return txManager{}
}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
