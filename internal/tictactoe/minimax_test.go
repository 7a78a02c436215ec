package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	t.Run("Empty board is a draw", func(t *testing.T) {
		// Given: the starting board
		board := InitialState()

		// When: searching for X's best opening
		move, ok := Minimax(board)
		require.True(t, ok)

		// Then: the opening should keep the game drawn
		next, err := Result(board, move)
		require.NoError(t, err)
		assert.Equal(t, 0, Value(next))
		assert.Equal(t, 0, Value(board))
	})

	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: X to move with two in the top row
		board := Board{
			{X, X, _e},
			{O, O, _e},
			{_e, _e, _e},
		}

		// When: searching
		move, ok := Minimax(board)

		// Then: X should complete the row
		require.True(t, ok)
		require.Equal(t, Move{Row: 0, Col: 2}, move)
		assert.Equal(t, 1, Value(board))
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: O threatens the top row and X is to move
		board := Board{
			{O, O, _e},
			{X, _e, _e},
			{_e, _e, _e},
		}

		// When: searching
		move, ok := Minimax(board)

		// Then: X should block at the top right
		require.True(t, ok)
		require.Equal(t, Move{Row: 0, Col: 2}, move)
	})

	t.Run("Blocks the opponent on a reachable board", func(t *testing.T) {
		board := Board{
			{O, O, _e},
			{X, _e, _e},
			{_e, _e, X},
		}

		move, ok := Minimax(board)

		require.True(t, ok)
		require.Equal(t, Move{Row: 0, Col: 2}, move)
	})

	t.Run("O takes the win", func(t *testing.T) {
		// Given: O to move with two in the middle column
		board := Board{
			{X, O, X},
			{X, O, _e},
			{_e, _e, _e},
		}
		require.Equal(t, O, Player(board))

		// When: searching
		move, ok := Minimax(board)

		// Then: O should complete the column
		require.True(t, ok)
		require.Equal(t, Move{Row: 2, Col: 1}, move)
		assert.Equal(t, -1, Value(board))
	})

	t.Run("No move on a finished game", func(t *testing.T) {
		board := Board{
			{X, X, X},
			{O, O, _e},
			{_e, _e, _e},
		}

		_, ok := Minimax(board)
		require.False(t, ok)
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		board := Board{
			{X, _e, _e},
			{_e, O, _e},
			{_e, _e, _e},
		}
		before := board

		_, ok := Minimax(board)
		require.True(t, ok)
		require.Equal(t, before, board)
	})
}

func TestMinimax_SelfPlay(t *testing.T) {
	// Given: both sides play the engine's move from an empty board
	board := InitialState()

	// When: playing until the game ends
	for !Terminal(board) {
		move, ok := Minimax(board)
		require.True(t, ok)

		next, err := Result(board, move)
		require.NoError(t, err)
		board = next
	}

	// Then: perfect play should end in a tie
	_, won := Winner(board)
	assert.False(t, won, "unexpected winner:\n%s", board)
	assert.Equal(t, 0, Utility(board))
}
