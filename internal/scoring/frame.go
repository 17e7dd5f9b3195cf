// Package scoring - движок подсчёта очков в боулинге (десять кеглей).
// Не хранит состояния и не делает I/O: только функции над фреймами игрока.
package scoring

import "bowling_backend/internal/model"

// rack Расстановка кеглей, по которой идёт следующий бросок
type rack struct {
	standing int  // Сколько кеглей стоит
	fresh    bool // Первый бросок по полной расстановке
}

func newRack() rack {
	return rack{standing: model.MaxPins, fresh: true}
}

// knock Учитывает бросок. После страйка или второго броска кегли ставятся заново
func (r *rack) knock(pins int) {
	if r.fresh && pins < model.MaxPins {
		r.standing -= pins
		r.fresh = false
		return
	}
	r.standing = model.MaxPins
	r.fresh = true
}

// rackAfter Расстановка после всех уже записанных бросков фрейма
func rackAfter(rolls []int) rack {
	r := newRack()
	for _, pins := range rolls {
		r.knock(pins)
	}
	return r
}

// IsComplete - фрейм больше не принимает бросков.
// Фреймы 1-9: страйк или два броска.
// Десятый: два броска, либо три если первые два дали страйк или спэр.
func IsComplete(f *model.Frame) bool {
	n := len(f.Rolls)
	if !f.IsLast() {
		return n >= 2 || (n == 1 && f.Rolls[0] == model.MaxPins)
	}
	if n < 2 {
		return false
	}
	if f.Rolls[0] == model.MaxPins || f.Rolls[0]+f.Rolls[1] == model.MaxPins {
		return n == 3
	}
	return true
}

// CurrentFrame Возвращает фрейм, в который пойдёт следующий бросок игрока.
// nil означает, что игрок закончил игру
func CurrentFrame(p *model.Player) *model.Frame {
	for _, f := range p.Frames {
		if !IsComplete(f) {
			return f
		}
	}
	return nil
}

// ApplyRoll Добавляет бросок во фрейм.
// При ошибке фрейм не изменяется
func ApplyRoll(f *model.Frame, pins int) error {
	if pins < 0 || pins > model.MaxPins {
		return model.ErrInvalidPinCount
	}
	if IsComplete(f) {
		return model.ErrFrameComplete
	}

	// Нельзя сбить больше, чем стоит. В десятом фрейме после страйка
	// или спэра кегли расставляются заново
	if pins > rackAfter(f.Rolls).standing {
		return model.ErrFrameOverflow
	}

	f.Rolls = append(f.Rolls, pins)
	return nil
}
