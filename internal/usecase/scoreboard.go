package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

type tallyRepo interface {
	Tally(ctx context.Context) (repository.Tally, error)
	Reset(ctx context.Context) error
}

// Scoreboard reads and clears the tally of finished games.
type Scoreboard struct {
	logger  *slog.Logger
	results tallyRepo
}

func NewScoreboard(logger *slog.Logger, results tallyRepo) *Scoreboard {
	return &Scoreboard{
		logger:  logger.With("component", "scoreboard"),
		results: results,
	}
}

func (that *Scoreboard) Tally(ctx context.Context) (repository.Tally, error) {
	tally, err := that.results.Tally(ctx)
	if err != nil {
		return repository.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func (that *Scoreboard) Reset(ctx context.Context) error {
	if err := that.results.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset tally: %w", err)
	}

	that.logger.Info("tally reset")

	return nil
}
