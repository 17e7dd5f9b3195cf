package scoring

import "bowling_backend/internal/model"

// PlayerFinished - игрок закончил, когда закрыт десятый фрейм
func PlayerFinished(p *model.Player) bool {
	if len(p.Frames) == 0 {
		return false
	}
	return IsComplete(p.Frames[len(p.Frames)-1])
}

// GameFinished - партия закончена, когда закончили все игроки
func GameFinished(g *model.Game) bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if !PlayerFinished(p) {
			return false
		}
	}
	return true
}
