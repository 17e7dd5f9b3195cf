package memory_repo

import (
	"bowling_backend/internal/model"
	"context"
	"errors"
	"testing"
)

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewGameRepository()

	game := &model.Game{Players: []*model.Player{model.NewPlayer("Ann"), model.NewPlayer("Bob")}}
	if err := r.CreateGame(ctx, game); err != nil {
		t.Fatal(err)
	}
	if game.ID == 0 || game.Players[0].ID == 0 || game.Players[1].Frames[9].ID == 0 {
		t.Fatal("expected ids to be assigned")
	}
	if game.Players[1].GameID != game.ID {
		t.Fatalf("expected player game id %d, got %d", game.ID, game.Players[1].GameID)
	}

	loaded, err := r.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Players) != 2 || loaded.Players[1].Name != "Bob" {
		t.Fatalf("unexpected players %+v", loaded.Players)
	}

	if _, err := r.GetGame(ctx, game.ID+1); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadedGameIsACopy(t *testing.T) {
	ctx := context.Background()
	r := NewGameRepository()

	game := &model.Game{Players: []*model.Player{model.NewPlayer("Ann")}}
	if err := r.CreateGame(ctx, game); err != nil {
		t.Fatal(err)
	}

	loaded, _ := r.GetGameForUpdate(ctx, game.ID)
	loaded.Players[0].Frames[0].Rolls = append(loaded.Players[0].Frames[0].Rolls, 7)

	again, _ := r.GetGame(ctx, game.ID)
	if len(again.Players[0].Frames[0].Rolls) != 0 {
		t.Fatal("unsaved changes must not leak into the store")
	}

	if err := r.SaveGame(ctx, loaded); err != nil {
		t.Fatal(err)
	}
	again, _ = r.GetGame(ctx, game.ID)
	if got := again.Players[0].Frames[0].Rolls; len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected saved roll, got %v", got)
	}
}

func TestSaveUnknownGame(t *testing.T) {
	err := NewGameRepository().SaveGame(context.Background(), &model.Game{ID: 42})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
