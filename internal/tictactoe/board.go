package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const boardSize = 3

var (
	ErrIllegalMove  = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidBoard = errors.New("board is not reachable")
	ErrUnknownMark  = errors.New("unknown mark")

	winLines = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	mark, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*c = mark

	return nil
}

// ParseCell - converts "X", "O" or "" into a Cell.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Empty, nil
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Move addresses one cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) valid() bool {
	return m.Row >= 0 && m.Row < boardSize && m.Col >= 0 && m.Col < boardSize
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is a 3x3 grid. It is a value: every transition returns a new Board.
type Board [boardSize][boardSize]Cell

// InitialState - returns the empty starting board.
func InitialState() Board {
	return Board{}
}

func (b Board) At(m Move) Cell {
	return b[m.Row][m.Col]
}

func (b Board) count() (int, int) {
	var countX, countO int

	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case X:
				countX++
			case O:
				countO++
			}
		}
	}

	return countX, countO
}

// Player - returns the mark that moves next. X always opens.
func Player(b Board) Cell {
	countX, countO := b.count()
	if countX > countO {
		return O
	}

	return X
}

// Actions - returns every empty cell in row-major order.
func Actions(b Board) []Move {
	moves := make([]Move, 0, boardSize*boardSize)

	for i, row := range b {
		for j, cell := range row {
			if cell == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result - returns the board after the player to move marks m.
func Result(b Board, m Move) (Board, error) {
	if !m.valid() {
		return b, fmt.Errorf("%w: %s", ErrInvalidCell, m)
	}

	if Terminal(b) {
		return b, apperror.ErrGameFinished
	}

	if b.At(m) != Empty {
		return b, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	next := b
	next[m.Row][m.Col] = Player(b)

	return next, nil
}

// HasWon - reports whether mark owns a full row, column or diagonal.
func HasWon(b Board, mark Cell) bool {
	if mark == Empty {
		return false
	}

	for _, line := range winLines {
		if b.At(line[0]) == mark && b.At(line[1]) == mark && b.At(line[2]) == mark {
			return true
		}
	}

	return false
}

// Terminal - reports whether the game is over.
func Terminal(b Board) bool {
	return HasWon(b, X) || HasWon(b, O) || len(Actions(b)) == 0
}

// Winner - returns the winning mark. The second result is false for both
// draws and unfinished games.
func Winner(b Board) (Cell, bool) {
	switch {
	case HasWon(b, X):
		return X, true
	case HasWon(b, O):
		return O, true
	default:
		return Empty, false
	}
}

// Utility - scores a terminal board: 1 if X won, -1 if O won, 0 otherwise.
// Unfinished boards also score 0, so check Terminal first.
func Utility(b Board) int {
	switch winner, _ := Winner(b); winner {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// Validate - checks that the board can be reached by alternating play.
func (b Board) Validate() error {
	countX, countO := b.count()
	if countX != countO && countX != countO+1 {
		return fmt.Errorf("%w: %d X and %d O", ErrInvalidBoard, countX, countO)
	}

	wonX, wonO := HasWon(b, X), HasWon(b, O)
	switch {
	case wonX && wonO:
		return fmt.Errorf("%w: both players have a line", ErrInvalidBoard)
	case wonX && countX == countO:
		return fmt.Errorf("%w: O moved after X won", ErrInvalidBoard)
	case wonO && countX > countO:
		return fmt.Errorf("%w: X moved after O won", ErrInvalidBoard)
	}

	return nil
}

func (b Board) String() string {
	var sb strings.Builder

	for i, row := range b {
		if i > 0 {
			sb.WriteString("-+-+-\n")
		}

		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}

			if cell == Empty {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(cell.String())
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
