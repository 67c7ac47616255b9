package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrSquareOccupied  = errors.New("square is already occupied")
	ErrInputFailure    = errors.New("failed to read input")
	ErrInputClosed     = errors.New("input closed before the game finished")
)
