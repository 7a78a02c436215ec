package tictactoe

import "math"

// Minimax - returns the optimal move for the player to move, assuming both
// sides play perfectly. Returns false when the game is already over.
//
// Among equally good moves the first one in Actions order wins.
func Minimax(b Board) (Move, bool) {
	if Terminal(b) {
		return Move{}, false
	}

	var move Move
	if Player(b) == X {
		_, move = maxValue(b)
	} else {
		_, move = minValue(b)
	}

	return move, true
}

// Value - returns the outcome of the position under optimal play:
// 1 if X wins, -1 if O wins, 0 for a draw.
func Value(b Board) int {
	if Player(b) == X {
		v, _ := maxValue(b)
		return v
	}

	v, _ := minValue(b)

	return v
}

func maxValue(b Board) (int, Move) {
	if Terminal(b) {
		return Utility(b), Move{}
	}

	best := math.MinInt
	var bestMove Move

	for _, m := range Actions(b) {
		next, err := Result(b, m)
		if err != nil {
			continue
		}

		if v, _ := minValue(next); v > best {
			best = v
			bestMove = m
		}
	}

	return best, bestMove
}

func minValue(b Board) (int, Move) {
	if Terminal(b) {
		return Utility(b), Move{}
	}

	best := math.MaxInt
	var bestMove Move

	for _, m := range Actions(b) {
		next, err := Result(b, m)
		if err != nil {
			continue
		}

		if v, _ := maxValue(next); v < best {
			best = v
			bestMove = m
		}
	}

	return best, bestMove
}
