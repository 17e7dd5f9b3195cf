package game_repo

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	gamesTable    = "games"
	colGameID     = "id"
	colIsFinished = "is_finished"

	playersTable   = "players"
	colPlayerID    = "id"
	colPlayerGame  = "game_id"
	colPlayerName  = "name"
	colPlayerOrder = "position"

	framesTable    = "frames"
	colFrameID     = "id"
	colFramePlayer = "player_id"
	colFrameNumber = "number"
	colRoll1       = "roll1"
	colRoll2       = "roll2"
	colRoll3       = "roll3"
	colScore       = "score"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - текущая транзакция из контекста, если она есть, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateGame - создаёт партию, игроков и по 10 пустых фреймов на игрока.
// Проставляет ID в переданной модели
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	conn := r.conn(ctx)

	sqlStr, args, err := psql.Insert(gamesTable).
		Columns(colIsFinished).
		Values(game.IsFinished).
		Suffix("RETURNING " + colGameID).
		ToSql()
	if err != nil {
		return err
	}
	if err = conn.QueryRow(ctx, sqlStr, args...).Scan(&game.ID); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for pos, p := range game.Players {
		sqlStr, args, err = psql.Insert(playersTable).
			Columns(colPlayerGame, colPlayerName, colPlayerOrder).
			Values(game.ID, p.Name, pos).
			Suffix("RETURNING " + colPlayerID).
			ToSql()
		if err != nil {
			return err
		}
		if err = conn.QueryRow(ctx, sqlStr, args...).Scan(&p.ID); err != nil {
			return fmt.Errorf("insert player: %w", err)
		}
		p.GameID = game.ID

		if err = r.createFrames(ctx, conn, p); err != nil {
			return err
		}
	}

	return nil
}

// createFrames Вставляет фреймы игрока одним запросом
func (r *repo) createFrames(ctx context.Context, conn trmpgx.Tr, p *model.Player) error {
	query := psql.Insert(framesTable).
		Columns(colFramePlayer, colFrameNumber, colRoll1, colRoll2, colRoll3, colScore)
	for _, f := range p.Frames {
		query = query.Values(p.ID, f.Number, rollAt(f, 0), rollAt(f, 1), rollAt(f, 2), f.Score)
	}

	sqlStr, args, err := query.Suffix("RETURNING " + colFrameID + ", " + colFrameNumber).ToSql()
	if err != nil {
		return err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, number int
		if err = rows.Scan(&id, &number); err != nil {
			return err
		}
		if number >= 1 && number <= len(p.Frames) {
			p.Frames[number-1].ID = id
		}
	}
	return rows.Err()
}

func (r *repo) GetGame(ctx context.Context, id int) (*model.Game, error) {
	return r.getGame(ctx, id, false)
}

// GetGameForUpdate - блокирует строку партии (SELECT ... FOR UPDATE) до конца транзакции,
// чтобы два броска в одну партию не пересекались
func (r *repo) GetGameForUpdate(ctx context.Context, id int) (*model.Game, error) {
	return r.getGame(ctx, id, true)
}

func (r *repo) getGame(ctx context.Context, id int, forUpdate bool) (*model.Game, error) {
	conn := r.conn(ctx)

	query := psql.Select(colGameID, colIsFinished).
		From(gamesTable).
		Where(sq.Eq{colGameID: id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	game := &model.Game{}
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&game.ID, &game.IsFinished)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("game %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}

	if err = r.loadPlayers(ctx, conn, game); err != nil {
		return nil, err
	}
	if err = r.loadFrames(ctx, conn, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (r *repo) loadPlayers(ctx context.Context, conn trmpgx.Tr, game *model.Game) error {
	sqlStr, args, err := psql.Select(colPlayerID, colPlayerName).
		From(playersTable).
		Where(sq.Eq{colPlayerGame: game.ID}).
		OrderBy(colPlayerOrder).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := model.NewPlayer("")
		if err = rows.Scan(&p.ID, &p.Name); err != nil {
			return err
		}
		p.GameID = game.ID
		game.Players = append(game.Players, p)
	}
	return rows.Err()
}

func (r *repo) loadFrames(ctx context.Context, conn trmpgx.Tr, game *model.Game) error {
	sqlStr, args, err := psql.Select(
		"f."+colFrameID, "f."+colFramePlayer, "f."+colFrameNumber,
		"f."+colRoll1, "f."+colRoll2, "f."+colRoll3, "f."+colScore).
		From(framesTable + " f").
		Join(playersTable + " p ON p." + colPlayerID + " = f." + colFramePlayer).
		Where(sq.Eq{"p." + colPlayerGame: game.ID}).
		OrderBy("p."+colPlayerOrder, "f."+colFrameNumber).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			frameID, playerID, number int
			rolls                     [3]*int
			score                     *int
		)
		if err = rows.Scan(&frameID, &playerID, &number, &rolls[0], &rolls[1], &rolls[2], &score); err != nil {
			return err
		}

		p := game.Player(playerID)
		if p == nil || number < 1 || number > len(p.Frames) {
			return fmt.Errorf("frame %d references unknown player %d or number %d", frameID, playerID, number)
		}

		f := p.Frames[number-1]
		f.ID = frameID
		f.Score = score
		// Броски хранятся слева направо без пропусков
		for _, roll := range rolls {
			if roll == nil {
				break
			}
			f.Rolls = append(f.Rolls, *roll)
		}
	}
	return rows.Err()
}

// SaveGame - записывает броски и счёт всех фреймов, а также флаг окончания партии
func (r *repo) SaveGame(ctx context.Context, game *model.Game) error {
	sqlStr, args, err := psql.Update(gamesTable).
		Set(colIsFinished, game.IsFinished).
		Where(sq.Eq{colGameID: game.ID}).
		ToSql()
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(sqlStr, args...)

	for _, p := range game.Players {
		for _, f := range p.Frames {
			sqlStr, args, err = psql.Update(framesTable).
				Set(colRoll1, rollAt(f, 0)).
				Set(colRoll2, rollAt(f, 1)).
				Set(colRoll3, rollAt(f, 2)).
				Set(colScore, f.Score).
				Where(sq.Eq{colFrameID: f.ID}).
				ToSql()
			if err != nil {
				return err
			}
			batch.Queue(sqlStr, args...)
		}
	}

	if err = r.conn(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("save game %d: %w", game.ID, err)
	}
	return nil
}

// rollAt Бросок фрейма по индексу, nil если его ещё не было
func rollAt(f *model.Frame, i int) *int {
	if i >= len(f.Rolls) {
		return nil
	}
	v := f.Rolls[i]
	return &v
}
