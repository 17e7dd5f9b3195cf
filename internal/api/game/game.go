package game

import (
	dto "bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/converter"
	"bowling_backend/internal/model"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/req"
	"bowling_backend/pkg/resp"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создаёт партию. Тело - массив имён игроков
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	names, err := req.Decode[dto.CreateGameRequest](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	game, err := h.serv.CreateGame(r.Context(), names)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(game))
}

// Get возвращает партию с бросками и счётом
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.serv.GetGame(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(game))
}

// Roll записывает бросок игрока и возвращает обновлённую партию
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	id, err := gameID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := req.Decode[dto.RollRequest](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	game, err := h.serv.Roll(r.Context(), converter.ToRoll(id, payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(game))
}

func gameID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid game id")
	}
	return id, nil
}

// writeServiceError Переводит ошибки сервиса в HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrPlayerComplete):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidPinCount),
		errors.Is(err, model.ErrFrameOverflow),
		errors.Is(err, model.ErrFrameComplete),
		errors.Is(err, model.ErrInvalidPlayers):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	resp.WriteJSONResponse(w, status, dto.ErrorResponse{Error: msg})
}
