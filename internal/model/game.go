package model

const (
	// FramesPerGame Количество фреймов у каждого игрока
	FramesPerGame = 10
	// MaxPins Количество кеглей в полной расстановке
	MaxPins = 10
)

type Game struct {
	ID         int
	Players    []*Player
	IsFinished bool
}

type Player struct {
	ID     int
	GameID int
	Name   string
	Frames []*Frame // Всегда ровно FramesPerGame штук, по порядку
}

type Frame struct {
	ID     int
	Number int   // 1-10
	Rolls  []int // Сбитые кегли по броскам, 0-3 значения
	Score  *int  // Накопленный счёт. nil пока бонусы не разрешены
}

// NewPlayer создаёт игрока с заранее выделенными пустыми фреймами
func NewPlayer(name string) *Player {
	frames := make([]*Frame, FramesPerGame)
	for i := range frames {
		frames[i] = &Frame{Number: i + 1}
	}
	return &Player{
		Name:   name,
		Frames: frames,
	}
}

// Player возвращает игрока партии по ID или nil
func (g *Game) Player(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsLast - десятый фрейм, у которого своя структура бросков
func (f *Frame) IsLast() bool {
	return f.Number == FramesPerGame
}

// Clone глубокая копия партии, чтобы хранилище и вызывающий код не делили состояние
func (g *Game) Clone() *Game {
	c := &Game{
		ID:         g.ID,
		IsFinished: g.IsFinished,
		Players:    make([]*Player, len(g.Players)),
	}
	for i, p := range g.Players {
		cp := &Player{
			ID:     p.ID,
			GameID: p.GameID,
			Name:   p.Name,
			Frames: make([]*Frame, len(p.Frames)),
		}
		for j, f := range p.Frames {
			cf := &Frame{
				ID:     f.ID,
				Number: f.Number,
				Rolls:  append([]int(nil), f.Rolls...),
			}
			if f.Score != nil {
				s := *f.Score
				cf.Score = &s
			}
			cp.Frames[j] = cf
		}
		c.Players[i] = cp
	}
	return c
}

// Roll Бросок игрока в партии
type Roll struct {
	GameID   int
	PlayerID int
	Pins     int
}
