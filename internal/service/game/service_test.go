package game

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository/memory_repo"
	"bowling_backend/internal/scoring"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type testGameConfig struct{}

func (testGameConfig) MaxPlayers() int    { return 3 }
func (testGameConfig) MaxNameLength() int { return 10 }

func newTestService() *serv {
	return NewGameService(memory_repo.NewGameRepository(), testGameConfig{}, memory_repo.NewTxManager()).(*serv)
}

func mustCreate(t *testing.T, s *serv, names ...string) *model.Game {
	t.Helper()
	game, err := s.CreateGame(context.Background(), names)
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return game
}

func mustRoll(t *testing.T, s *serv, gameID, playerID int, pins ...int) *model.Game {
	t.Helper()
	var game *model.Game
	for _, p := range pins {
		var err error
		game, err = s.Roll(context.Background(), model.Roll{GameID: gameID, PlayerID: playerID, Pins: p})
		if err != nil {
			t.Fatalf("roll %d: %v", p, err)
		}
	}
	return game
}

func TestCreateGame(t *testing.T) {
	s := newTestService()
	game := mustCreate(t, s, " Ann ", "Bob")

	if game.ID == 0 {
		t.Fatal("expected game id")
	}
	if len(game.Players) != 2 || game.Players[0].Name != "Ann" {
		t.Fatalf("unexpected players %+v", game.Players)
	}
	for _, p := range game.Players {
		if len(p.Frames) != model.FramesPerGame {
			t.Fatalf("expected %d frames, got %d", model.FramesPerGame, len(p.Frames))
		}
	}

	loaded, err := s.GetGame(context.Background(), game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.IsFinished {
		t.Fatal("new game must not be finished")
	}
}

func TestCreateGameValidation(t *testing.T) {
	s := newTestService()
	tests := [][]string{
		nil,
		{"Ann", "  "},
		{"Ann", "Bob", "Cid", "Dan"},
		{strings.Repeat("a", 11)},
	}
	for _, names := range tests {
		if _, err := s.CreateGame(context.Background(), names); !errors.Is(err, model.ErrInvalidPlayers) {
			t.Errorf("%q: expected ErrInvalidPlayers, got %v", names, err)
		}
	}
}

func TestGetUnknownGame(t *testing.T) {
	if _, err := newTestService().GetGame(context.Background(), 99); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRollScoresAndPersists(t *testing.T) {
	s := newTestService()
	game := mustCreate(t, s, "Ann")
	playerID := game.Players[0].ID

	game = mustRoll(t, s, game.ID, playerID, 5, 5, 3)
	frames := game.Players[0].Frames
	if frames[0].Score == nil || *frames[0].Score != 13 {
		t.Fatalf("expected 13 in frame 1, got %v", frames[0].Score)
	}
	if frames[1].Score != nil {
		t.Fatal("half-played frame must have no score")
	}

	loaded, err := s.GetGame(context.Background(), game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Players[0].Frames[1].Rolls; len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected persisted roll 3, got %v", got)
	}
}

func TestRollErrorsLeaveStateUnchanged(t *testing.T) {
	s := newTestService()
	game := mustCreate(t, s, "Ann")
	playerID := game.Players[0].ID
	mustRoll(t, s, game.ID, playerID, 6)

	tests := []struct {
		roll model.Roll
		err  error
	}{
		{model.Roll{GameID: game.ID, PlayerID: playerID, Pins: 6}, model.ErrFrameOverflow},
		{model.Roll{GameID: game.ID, PlayerID: playerID, Pins: 11}, model.ErrInvalidPinCount},
		{model.Roll{GameID: game.ID, PlayerID: playerID, Pins: -1}, model.ErrInvalidPinCount},
		{model.Roll{GameID: game.ID, PlayerID: playerID + 100, Pins: 1}, model.ErrNotFound},
		{model.Roll{GameID: game.ID + 100, PlayerID: playerID, Pins: 1}, model.ErrNotFound},
	}
	for _, tt := range tests {
		if _, err := s.Roll(context.Background(), tt.roll); !errors.Is(err, tt.err) {
			t.Errorf("%+v: expected %v, got %v", tt.roll, tt.err, err)
		}
	}

	loaded, _ := s.GetGame(context.Background(), game.ID)
	if got := loaded.Players[0].Frames[0].Rolls; len(got) != 1 || got[0] != 6 {
		t.Fatalf("rejected rolls must not be saved, got %v", got)
	}
}

func TestGameFinishesWhenAllPlayersDone(t *testing.T) {
	s := newTestService()
	game := mustCreate(t, s, "Ann", "Bob")
	ann, bob := game.Players[0].ID, game.Players[1].ID

	perfect := []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}
	game = mustRoll(t, s, game.ID, ann, perfect...)
	if game.IsFinished {
		t.Fatal("game must wait for the second player")
	}
	if !scoring.PlayerFinished(game.Player(ann)) {
		t.Fatal("first player should be finished")
	}

	if _, err := s.Roll(context.Background(), model.Roll{GameID: game.ID, PlayerID: ann, Pins: 1}); !errors.Is(err, model.ErrPlayerComplete) {
		t.Fatalf("expected ErrPlayerComplete, got %v", err)
	}

	gutters := make([]int, 20)
	game = mustRoll(t, s, game.ID, bob, gutters...)
	if !game.IsFinished {
		t.Fatal("game should be finished")
	}
	if got := scoring.Total(game.Player(ann)); got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}

	loaded, _ := s.GetGame(context.Background(), game.ID)
	if !loaded.IsFinished {
		t.Fatal("finished flag must be persisted")
	}
}

func TestConcurrentRollsAreSerialized(t *testing.T) {
	s := newTestService()
	game := mustCreate(t, s, "Ann")
	playerID := game.Players[0].ID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Roll(context.Background(), model.Roll{GameID: game.ID, PlayerID: playerID, Pins: 1}); err != nil {
				t.Errorf("roll: %v", err)
			}
		}()
	}
	wg.Wait()

	loaded, err := s.GetGame(context.Background(), game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(scoring.Flatten(loaded.Players[0])); got != 20 {
		t.Fatalf("expected 20 rolls, got %d", got)
	}
	if !loaded.IsFinished {
		t.Fatal("game should be finished")
	}
	if got := scoring.Total(loaded.Players[0]); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if len(s.locks.locks) != 0 {
		t.Fatalf("expected locks to be released, got %d", len(s.locks.locks))
	}
}
