package game

// CreateGameRequest Имена игроков в порядке бросков
type CreateGameRequest []string

type RollRequest struct {
	PlayerID int `json:"playerId"` // ID игрока в партии
	Pins     int `json:"pins"`     // Сбитые кегли, 0-10
}

type GameResponse struct {
	ID         int              `json:"id"`
	IsFinished bool             `json:"isFinished"`
	Players    []PlayerResponse `json:"players"`
}

type PlayerResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Total        int             `json:"total"`        // Последний посчитанный счёт
	IsFinished   bool            `json:"isFinished"`   // Десятый фрейм закрыт
	CurrentFrame *int            `json:"currentFrame"` // Номер фрейма для следующего броска, null если закончил
	Frames       []FrameResponse `json:"frames"`
}

type FrameResponse struct {
	Number  int      `json:"number"`
	Roll1   *int     `json:"roll1"`
	Roll2   *int     `json:"roll2"`
	Roll3   *int     `json:"roll3"`
	Symbols []string `json:"symbols"` // X, / или число для каждого броска
	Score   *int     `json:"score"`   // null пока бонусы не разрешены
}

type ErrorResponse struct {
	Error string `json:"error"`
}
