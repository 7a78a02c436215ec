package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrInvalidBody = errors.New("invalid request body")

type boardRequest struct {
	Board tictactoe.Board `json:"board"`
}

type moveResponse struct {
	Move tictactoe.Move `json:"move"`
}

type startGameRequest struct {
	Mark tictactoe.Cell `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleMinimax(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		that.writeError(w, "handleMinimax", err)
		return
	}

	move, err := that.uGame.SuggestMove(req.Board)
	if err != nil {
		that.writeError(w, "handleMinimax", err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Move: move})
}

func (that *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		that.writeError(w, "handleEvaluate", err)
		return
	}

	evaluation, err := that.uGame.Evaluate(req.Board)
	if err != nil {
		that.writeError(w, "handleEvaluate", err)
		return
	}

	that.writeJSON(w, http.StatusOK, evaluation)
}

func (that *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decodeJSON(r, &req); err != nil {
		that.writeError(w, "handleStartGame", err)
		return
	}

	game, err := that.uGame.StartGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, "handleStartGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "handleGetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	var move tictactoe.Move
	if err := decodeJSON(r, &move); err != nil {
		that.writeError(w, "handleMakeTurn", err)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), r.PathValue("id"), move)
	if err != nil {
		that.writeError(w, "handleMakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, tictactoe.ErrUnknownMark) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return nil
}

// statusCode - maps domain errors onto HTTP statuses.
func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidBody),
		errors.Is(err, tictactoe.ErrInvalidBoard),
		errors.Is(err, tictactoe.ErrInvalidCell),
		errors.Is(err, tictactoe.ErrUnknownMark):
		return http.StatusBadRequest
	case errors.Is(err, tictactoe.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(code)
	} else {
		that.logger.Debug("request rejected", "method", method, "error", err)
	}

	that.writeJSON(w, code, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
