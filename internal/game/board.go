package game

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// cells maps each position to its occupant; the zero Player marks an empty cell.
type cells [9]Player

func (that cells) get(pos Position) (Player, bool) {
	if !pos.Valid() {
		return 0, false
	}

	player := that[pos.index()]

	return player, player != 0
}

func (that cells) count(player Player) int {
	n := 0
	for _, cell := range that {
		if cell == player {
			n++
		}
	}

	return n
}

func (that cells) String() string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString("  ")

		for col := range 3 {
			if col > 0 {
				sb.WriteString(" | ")
			}

			pos := positions[row*3+col]
			if player, ok := that.get(pos); ok {
				sb.WriteString(" " + player.String() + " ")
			} else {
				sb.WriteString("<" + pos.String() + ">")
			}
		}
	}

	return sb.String()
}

// ActiveBoard is a board that still accepts placements.
// It is a value: Place returns a new board and never modifies the receiver.
type ActiveBoard struct {
	cells cells
}

// NewBoard returns an empty board.
func NewBoard() ActiveBoard {
	return ActiveBoard{}
}

// Place returns a copy of the board with player's piece at pos.
func (that ActiveBoard) Place(pos Position, player Player) (ActiveBoard, error) {
	if !pos.Valid() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}

	if !player.Valid() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	if _, taken := that.cells.get(pos); taken {
		return that, &SquareOccupiedError{Position: pos}
	}

	next := that
	next.cells[pos.index()] = player

	return next, nil
}

// Get returns the occupant of pos, if any.
func (that ActiveBoard) Get(pos Position) (Player, bool) {
	return that.cells.get(pos)
}

// PieceCount returns the number of cells occupied by player.
func (that ActiveBoard) PieceCount(player Player) int {
	return that.cells.count(player)
}

func (that ActiveBoard) String() string {
	return that.cells.String()
}

func (that ActiveBoard) close() FinalBoard {
	return FinalBoard{cells: that.cells}
}

// FinalBoard is a read-only snapshot of a finished game's board.
type FinalBoard struct {
	cells cells
}

func (that FinalBoard) Get(pos Position) (Player, bool) {
	return that.cells.get(pos)
}

func (that FinalBoard) PieceCount(player Player) int {
	return that.cells.count(player)
}

func (that FinalBoard) String() string {
	return that.cells.String()
}
