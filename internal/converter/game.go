package converter

import (
	"bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/model"
	"bowling_backend/internal/scoring"
)

func ToRoll(gameID int, req game.RollRequest) model.Roll {
	return model.Roll{
		GameID:   gameID,
		PlayerID: req.PlayerID,
		Pins:     req.Pins,
	}
}

func ToGameResponse(g *model.Game) game.GameResponse {
	players := make([]game.PlayerResponse, len(g.Players))
	for i, p := range g.Players {
		players[i] = toPlayerResponse(p)
	}
	return game.GameResponse{
		ID:         g.ID,
		IsFinished: g.IsFinished,
		Players:    players,
	}
}

func toPlayerResponse(p *model.Player) game.PlayerResponse {
	frames := make([]game.FrameResponse, len(p.Frames))
	for i, f := range p.Frames {
		frames[i] = game.FrameResponse{
			Number:  f.Number,
			Roll1:   rollAt(f.Rolls, 0),
			Roll2:   rollAt(f.Rolls, 1),
			Roll3:   rollAt(f.Rolls, 2),
			Symbols: scoring.Symbols(f),
			Score:   f.Score,
		}
	}

	var current *int
	if f := scoring.CurrentFrame(p); f != nil {
		n := f.Number
		current = &n
	}

	return game.PlayerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Total:        scoring.Total(p),
		IsFinished:   scoring.PlayerFinished(p),
		CurrentFrame: current,
		Frames:       frames,
	}
}

func rollAt(rolls []int, i int) *int {
	if i >= len(rolls) {
		return nil
	}
	v := rolls[i]
	return &v
}
