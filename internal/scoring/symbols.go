package scoring

import (
	"bowling_backend/internal/model"
	"strconv"
)

const (
	StrikeSymbol = "X"
	SpareSymbol  = "/"
)

// Symbols Отображение бросков фрейма для табло: X - страйк, / - спэр, иначе число
func Symbols(f *model.Frame) []string {
	symbols := make([]string, 0, len(f.Rolls))
	r := newRack()
	for _, pins := range f.Rolls {
		switch {
		case r.fresh && pins == model.MaxPins:
			symbols = append(symbols, StrikeSymbol)
		case !r.fresh && pins == r.standing:
			symbols = append(symbols, SpareSymbol)
		default:
			symbols = append(symbols, strconv.Itoa(pins))
		}
		r.knock(pins)
	}
	return symbols
}
