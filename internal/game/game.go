package game

import "fmt"

var winningLines = [8][3]Position{
	// rows
	{P1, P2, P3},
	{P4, P5, P6},
	{P7, P8, P9},
	// columns
	{P1, P4, P7},
	{P2, P5, P8},
	{P3, P6, P9},
	// diagonals
	{P1, P5, P9},
	{P7, P5, P3},
}

// Game is either an ActiveGame or a FinalGame.
// Only ActiveGame can take a turn; callers type-switch to reach it.
type Game interface {
	fmt.Stringer
	isGame()
}

// Outcome is how a finished game ended: a win by one player, or a tie.
type Outcome struct {
	winner Player
}

func Win(player Player) Outcome {
	return Outcome{winner: player}
}

func Tie() Outcome {
	return Outcome{}
}

// Winner returns the winning player, or false for a tie.
func (that Outcome) Winner() (Player, bool) {
	return that.winner, that.winner != 0
}

func (that Outcome) IsTie() bool {
	return that.winner == 0
}

func (that Outcome) String() string {
	if winner, ok := that.Winner(); ok {
		return fmt.Sprintf("Player %s Wins!", winner)
	}

	return "Tie Game!"
}

// ActiveGame is a game that still accepts moves. The zero value is a new game.
type ActiveGame struct {
	board ActiveBoard
}

// NewGame returns an active game on an empty board.
func NewGame() ActiveGame {
	return ActiveGame{board: NewBoard()}
}

func (ActiveGame) isGame() {}

func (that ActiveGame) Board() ActiveBoard {
	return that.board
}

// Player returns whose turn it is: the player with fewer pieces, X on a tie.
func (that ActiveGame) Player() Player {
	if that.board.PieceCount(X) > that.board.PieceCount(O) {
		return O
	}

	return X
}

// Open returns the empty positions in row-major order.
func (that ActiveGame) Open() []Position {
	open := make([]Position, 0, len(positions))
	for _, pos := range positions {
		if _, taken := that.board.Get(pos); !taken {
			open = append(open, pos)
		}
	}

	return open
}

// TakeTurn places the current player's piece at pos and returns the next game,
// which is Final when the move completes a line or fills the board.
// On error the receiver is still a valid game to retry with.
func (that ActiveGame) TakeTurn(pos Position) (Game, error) {
	player := that.Player()

	board, err := that.board.Place(pos, player)
	if err != nil {
		return nil, err
	}

	// lines not through pos were already checked by earlier moves
	if completesLine(board, pos, player) {
		return FinalGame{outcome: Win(player), board: board.close()}, nil
	}

	if board.PieceCount(X)+board.PieceCount(O) == len(positions) {
		return FinalGame{outcome: Tie(), board: board.close()}, nil
	}

	return ActiveGame{board: board}, nil
}

func (that ActiveGame) String() string {
	return fmt.Sprintf("::    %s's Turn    ::\n%s", that.Player(), that.board)
}

func completesLine(board ActiveBoard, pos Position, player Player) bool {
	for _, line := range winningLines {
		if line[0] != pos && line[1] != pos && line[2] != pos {
			continue
		}

		owned := true
		for _, cell := range line {
			if occupant, ok := board.Get(cell); !ok || occupant != player {
				owned = false
				break
			}
		}

		if owned {
			return true
		}
	}

	return false
}

// FinalGame is a finished game. It has no moves left to take.
type FinalGame struct {
	outcome Outcome
	board   FinalBoard
}

func (FinalGame) isGame() {}

func (that FinalGame) Outcome() Outcome {
	return that.outcome
}

func (that FinalGame) Board() FinalBoard {
	return that.board
}

func (that FinalGame) String() string {
	header := ":: " + that.outcome.String() + " ::"
	if that.outcome.IsTie() {
		header = "::    Tie Game!   ::"
	}

	return header + "\n" + that.board.String()
}
