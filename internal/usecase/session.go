package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

type resultRepo interface {
	Record(ctx context.Context, outcome game.Outcome) error
}

// Session holds one game from its first move to its outcome.
type Session struct {
	logger  *slog.Logger
	results resultRepo

	current game.Game
}

func NewSession(logger *slog.Logger, results resultRepo) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		results: results,
		current: game.NewGame(),
	}
}

// Game returns the game as of the last accepted move.
func (that *Session) Game() game.Game {
	return that.current
}

// Play parses input as a position and takes the current player's turn there.
// Rejected input leaves the session's game as it was and returns the core error unwrapped,
// so its message can be shown to the player as is.
func (that *Session) Play(ctx context.Context, input string) (game.Game, error) {
	log := that.logger.With("method", "Play")

	active, ok := that.current.(game.ActiveGame)
	if !ok {
		return that.current, apperror.ErrGameFinished
	}

	pos, err := game.ParsePosition(input)
	if err != nil {
		log.Debug("input rejected", "input", input, "error", err)
		return that.current, err
	}

	player := active.Player()

	next, err := active.TakeTurn(pos)
	if err != nil {
		log.Debug("move rejected", "player", player.String(), "position", pos.String(), "error", err)
		return that.current, err
	}

	log.Debug("move taken", "player", player.String(), "position", pos.String())

	that.current = next

	if final, ok := next.(game.FinalGame); ok {
		that.finish(ctx, final)
	}

	return next, nil
}

func (that *Session) finish(ctx context.Context, final game.FinalGame) {
	log := that.logger.With("method", "finish")

	log.Info("game finished", "outcome", final.Outcome().String())

	if err := that.results.Record(ctx, final.Outcome()); err != nil {
		log.Error("failed to record result", "error", err)
	}
}
