package game

import "strconv"

// Position identifies one of the nine board cells, numbered 1-9 in row-major order.
type Position uint8

const (
	P1 Position = iota + 1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
)

var positions = [...]Position{P1, P2, P3, P4, P5, P6, P7, P8, P9}

// Positions returns every position in row-major order.
func Positions() []Position {
	all := positions
	return all[:]
}

// ParsePosition maps the literals "1" through "9" to positions.
func ParsePosition(text string) (Position, error) {
	for _, pos := range positions {
		if pos.String() == text {
			return pos, nil
		}
	}

	return 0, &ParseError{Input: text}
}

func (that Position) Valid() bool {
	return that >= P1 && that <= P9
}

func (that Position) String() string {
	if !that.Valid() {
		return "Position(" + strconv.Itoa(int(that)) + ")"
	}

	return strconv.Itoa(int(that))
}

func (that Position) index() int {
	return int(that) - 1
}

// Player is one of the two participants.
type Player uint8

const (
	X Player = iota + 1
	O
)

func (that Player) Valid() bool {
	return that == X || that == O
}

func (that Player) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "Player(" + strconv.Itoa(int(that)) + ")"
	}
}
