package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	Computer
	Human
)

const (
	markComputer = "X"
	markHuman    = "O"
)

// Opponent returns the other side's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Computer:
		return Human
	case Human:
		return Computer
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Computer:
		return markComputer
	case Human:
		return markHuman
	default:
		return ""
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case markComputer:
		*that = Computer
	case markHuman:
		*that = Human
	default:
		return fmt.Errorf("unknown cell mark %q", text)
	}

	return nil
}

// Move addresses a single cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid. The zero value is an empty board.
type Board [Size][Size]Cell

// line is three cells that win when they hold the same mark.
type line [3]Move

// winningLines are scanned in this order; the first complete line decides the outcome.
var winningLines = [...]line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// At returns the cell at move. The move must be in bounds.
func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// IsFull reports whether no cell is Empty.
func (that *Board) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Evaluate derives the outcome from the board contents.
func (that *Board) Evaluate() Outcome {
	for _, l := range winningLines {
		a, b, c := that.At(l[0]), that.At(l[1]), that.At(l[2])
		if a != Empty && a == b && b == c {
			return winnerOutcome(a)
		}
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

// ApplyMove places mark on the cell addressed by move.
func (that *Board) ApplyMove(move Move, mark Cell) error {
	if mark != Computer && mark != Human {
		return fmt.Errorf("%w: mark must be X or O", apperror.ErrInvalidMove)
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if that.At(move) != Empty {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	that[move.Row][move.Col] = mark

	return nil
}

// String renders the board compactly for logs, e.g. "X.O/.X./..O".
func (that *Board) String() string {
	var sb strings.Builder
	for row := range that {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range that[row] {
			if that[row][col] == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(that[row][col].String())
		}
	}

	return sb.String()
}
