package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Record(ctx context.Context, outcome game.Outcome) error {
	args := that.Called(ctx, outcome)
	return args.Error(0)
}

func (that *mockResultRepo) Tally(ctx context.Context) (repository.Tally, error) {
	args := that.Called(ctx)
	return args.Get(0).(repository.Tally), args.Error(1)
}

func (that *mockResultRepo) Reset(ctx context.Context) error {
	args := that.Called(ctx)
	return args.Error(0)
}
