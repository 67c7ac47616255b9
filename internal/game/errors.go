package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// ParseError reports text that does not name a position.
type ParseError struct {
	Input string
}

func (that *ParseError) Error() string {
	return fmt.Sprintf("Squares are numbered 1-9. %s is invalid.", that.Input)
}

func (that *ParseError) Unwrap() error {
	return apperror.ErrInvalidPosition
}

// SquareOccupiedError reports a placement on a position that already holds a piece.
type SquareOccupiedError struct {
	Position Position
}

func (that *SquareOccupiedError) Error() string {
	return fmt.Sprintf("Location %s is already taken.", that.Position)
}

func (that *SquareOccupiedError) Unwrap() error {
	return apperror.ErrSquareOccupied
}
