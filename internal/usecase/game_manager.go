package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Evaluation describes a position as the engine sees it.
type Evaluation struct {
	Board    tictactoe.Board `json:"board"`
	Player   tictactoe.Cell  `json:"player"`
	Terminal bool            `json:"terminal"`
	Winner   tictactoe.Cell  `json:"winner"`
	Value    int             `json:"value"`
	Move     *tictactoe.Move `json:"move,omitempty"`
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger,
		gameRepo: gameRepo,
	}
}

// SuggestMove - returns the optimal move for the player to move on board.
func (that *GameManager) SuggestMove(board tictactoe.Board) (tictactoe.Move, error) {
	if err := board.Validate(); err != nil {
		return tictactoe.Move{}, err
	}

	move, ok := tictactoe.Minimax(board)
	if !ok {
		return tictactoe.Move{}, apperror.ErrGameFinished
	}

	that.logger.Debug("move suggested", "method", "SuggestMove", "player", tictactoe.Player(board).String(), "move", move.String())

	return move, nil
}

// Evaluate - reports turn, outcome and optimal continuation of board.
func (that *GameManager) Evaluate(board tictactoe.Board) (*Evaluation, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}

	winner, _ := tictactoe.Winner(board)
	evaluation := &Evaluation{
		Board:    board,
		Player:   tictactoe.Player(board),
		Terminal: tictactoe.Terminal(board),
		Winner:   winner,
		Value:    tictactoe.Value(board),
	}

	if evaluation.Terminal {
		evaluation.Player = tictactoe.Empty
		return evaluation, nil
	}

	if move, ok := tictactoe.Minimax(board); ok {
		evaluation.Move = &move
	}

	return evaluation, nil
}

// StartGame - creates a game where the bot plays against humanMark.
// When the human picks O the bot opens immediately.
func (that *GameManager) StartGame(ctx context.Context, humanMark tictactoe.Cell) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	if humanMark != tictactoe.X && humanMark != tictactoe.O {
		return nil, fmt.Errorf("%w: player must be X or O", tictactoe.ErrUnknownMark)
	}

	game := entity.NewGame(pkg.GenerateGameID(), humanMark.Opponent())

	if err := that.playBot(game); err != nil {
		return nil, fmt.Errorf("failed make bot turn: %w", err)
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "botMark", game.BotMark.String())

	return game, nil
}

// MakeTurn - plays the human move and the bot's reply.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.HumanMark(), move); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.playBot(game); err != nil {
		return nil, fmt.Errorf("failed make bot turn: %w", err)
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)

		return game, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// playBot - makes the bot move if it is the bot's turn.
func (that *GameManager) playBot(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	move, ok := tictactoe.Minimax(game.Board)
	if !ok {
		return apperror.ErrGameFinished
	}

	if err := game.MakeTurn(game.BotMark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "method", "playBot", "gameID", game.ID, "move", move.String())

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted", "gameID", game.ID, "winner", game.Winner)
}
