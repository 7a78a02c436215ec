package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a game between a human and the minimax bot.
type Game struct {
	ID      string          `json:"id"`
	Board   tictactoe.Board `json:"board"`
	Winner  string          `json:"winner"`
	Status  string          `json:"status"`
	Turn    tictactoe.Cell  `json:"player_turn"`
	BotMark tictactoe.Cell  `json:"bot_mark"`
}

func NewGame(id string, botMark tictactoe.Cell) *Game {
	return &Game{
		ID:      id,
		Board:   tictactoe.InitialState(),
		Turn:    tictactoe.X,
		Status:  StatusOngoing,
		BotMark: botMark,
	}
}

// DetermineGameResult - returns the winning mark, PlayerTie, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	if winner, ok := tictactoe.Winner(that.Board); ok {
		return winner.String()
	}

	if tictactoe.Terminal(that.Board) {
		return PlayerTie
	}

	return ""
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins or tie
	case tictactoe.X.String(), tictactoe.O.String(), PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = tictactoe.Player(that.Board)
	}
}

func (that *Game) MakeTurn(playerMark tictactoe.Cell, move tictactoe.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) HumanMark() tictactoe.Cell {
	return that.BotMark.Opponent()
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
