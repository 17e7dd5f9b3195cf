package scoring

import "bowling_backend/internal/model"

// Flatten Все броски игрока в порядке их совершения
func Flatten(p *model.Player) []int {
	rolls := make([]int, 0, 2*model.FramesPerGame+1)
	for _, f := range p.Frames {
		rolls = append(rolls, f.Rolls...)
	}
	return rolls
}

// RecomputeScores Пересчитывает накопленный счёт всех фреймов игрока с нуля.
// Фрейм, для бонуса которого ещё не хватает бросков, остаётся без счёта (nil),
// как и все фреймы после него. Повторный вызов даёт тот же результат
func RecomputeScores(p *model.Player) {
	for _, f := range p.Frames {
		f.Score = nil
	}

	rolls := Flatten(p)
	total := 0
	pos := 0

	for _, f := range p.Frames {
		if pos >= len(rolls) {
			return
		}

		var points, step int
		switch {
		// Страйк: 10 + два следующих броска
		case rolls[pos] == model.MaxPins:
			if pos+2 >= len(rolls) {
				return
			}
			points = model.MaxPins + rolls[pos+1] + rolls[pos+2]
			step = 1
		case pos+1 >= len(rolls):
			return
		// Спэр: 10 + следующий бросок
		case rolls[pos]+rolls[pos+1] == model.MaxPins:
			if pos+2 >= len(rolls) {
				return
			}
			points = model.MaxPins + rolls[pos+2]
			step = 2
		// Открытый фрейм
		default:
			points = rolls[pos] + rolls[pos+1]
			step = 2
		}

		total += points
		score := total
		f.Score = &score
		pos += step
	}
}

// Total Последний известный накопленный счёт игрока, 0 если ещё ничего не посчитано
func Total(p *model.Player) int {
	total := 0
	for _, f := range p.Frames {
		if f.Score == nil {
			break
		}
		total = *f.Score
	}
	return total
}
