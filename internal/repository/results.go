package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/game"
)

const tieField = "tie"

var (
	ErrUnknownStore      = errors.New("unknown result store")
	ErrNoPersistentStore = errors.New("results are not kept between runs, set result-store: redis")
)

// Tally counts finished games by outcome.
type Tally struct {
	X   int
	O   int
	Tie int
}

func (that Tally) Games() int {
	return that.X + that.O + that.Tie
}

func (that Tally) add(field string, n int) Tally {
	switch field {
	case fieldFor(game.Win(game.X)):
		that.X += n
	case fieldFor(game.Win(game.O)):
		that.O += n
	case tieField:
		that.Tie += n
	}

	return that
}

// ResultRepository keeps the count of finished games. It never stores the games themselves.
type ResultRepository interface {
	Record(ctx context.Context, outcome game.Outcome) error
	Tally(ctx context.Context) (Tally, error)
	Reset(ctx context.Context) error
}

func fieldFor(outcome game.Outcome) string {
	if winner, ok := outcome.Winner(); ok {
		return strings.ToLower(winner.String())
	}

	return tieField
}

type dbResults struct {
	client *redis.Client
	key    string
}

// NewResultRepository returns a repository keeping the tally in the Redis hash at key.
func NewResultRepository(client *redis.Client, key string) ResultRepository {
	return &dbResults{
		client: client,
		key:    key,
	}
}

func (that *dbResults) Record(ctx context.Context, outcome game.Outcome) error {
	if err := that.client.HIncrBy(ctx, that.key, fieldFor(outcome), 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbResults) Tally(ctx context.Context) (Tally, error) {
	fields, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return Tally{}, fmt.Errorf("failed to get results: %w", err)
	}

	var tally Tally
	for field, value := range fields {
		n, err := strconv.Atoi(value)
		if err != nil {
			return Tally{}, fmt.Errorf("failed to parse result %q: %w", field, err)
		}

		tally = tally.add(field, n)
	}

	return tally, nil
}

func (that *dbResults) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to reset results: %w", err)
	}

	return nil
}

type memoryResults struct {
	mu    sync.Mutex
	tally Tally
}

// NewMemoryResultRepository returns a repository that lives as long as the process.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResults{}
}

func (that *memoryResults) Record(_ context.Context, outcome game.Outcome) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = that.tally.add(fieldFor(outcome), 1)

	return nil
}

func (that *memoryResults) Tally(_ context.Context) (Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tally, nil
}

func (that *memoryResults) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = Tally{}

	return nil
}
