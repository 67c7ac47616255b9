package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func redisConfig(mr *miniredis.Miniredis) *config.Config {
	return &config.Config{
		ResultStore: config.RedisStore,
		Redis: config.Redis{
			Host: mr.Host(),
			Port: mr.Port(),
			Key:  "tictactoe:results",
		},
	}
}

func TestOpenResults(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory store by default", func(t *testing.T) {
		results, closeResults, err := OpenResults(ctx, newTestLogger(), &config.Config{})
		require.NoError(t, err)
		defer closeResults()

		assert.NotNil(t, results)
	})

	t.Run("Redis store", func(t *testing.T) {
		mr := miniredis.RunT(t)

		results, closeResults, err := OpenResults(ctx, newTestLogger(), redisConfig(mr))
		require.NoError(t, err)
		defer closeResults()

		tally, err := results.Tally(ctx)
		require.NoError(t, err)
		assert.Zero(t, tally.Games())
	})

	t.Run("Error on missing redis address", func(t *testing.T) {
		conf := &config.Config{ResultStore: config.RedisStore}

		_, _, err := OpenResults(ctx, newTestLogger(), conf)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Error when redis is down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		conf := redisConfig(mr)
		mr.Close()

		_, _, err := OpenResults(ctx, newTestLogger(), conf)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis storage")
	})

	t.Run("Error on unknown store", func(t *testing.T) {
		_, _, err := OpenResults(ctx, newTestLogger(), &config.Config{ResultStore: "sqlite"})

		require.ErrorIs(t, err, repository.ErrUnknownStore)
	})
}

func TestPlay(t *testing.T) {
	t.Run("Finished game lands in the tally", func(t *testing.T) {
		// Given: a redis-backed result store
		ctx := context.Background()
		mr := miniredis.RunT(t)

		results, closeResults, err := OpenResults(ctx, newTestLogger(), redisConfig(mr))
		require.NoError(t, err)
		defer closeResults()

		// When: playing a tied game
		var out bytes.Buffer
		err = Play(ctx, newTestLogger(), results, strings.NewReader("1\n2\n3\n5\n4\n6\n8\n7\n9\n"),
			termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii)))

		// Then: the tie is shown and counted
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Tie Game!")
		assert.Equal(t, "1", mr.HGet("tictactoe:results", "tie"))
	})

	t.Run("Error when input ends early", func(t *testing.T) {
		var out bytes.Buffer
		err := Play(context.Background(), newTestLogger(), repository.NewMemoryResultRepository(),
			strings.NewReader("5\n"), termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "console session failed")
	})
}

func TestRunStats(t *testing.T) {
	t.Run("Prints the tally", func(t *testing.T) {
		// Given: two X wins and a tie in redis
		mr := miniredis.RunT(t)
		mr.HSet("tictactoe:results", "x", "2")
		mr.HSet("tictactoe:results", "tie", "1")

		// When: printing stats
		var out bytes.Buffer
		err := RunStats(newTestLogger(), redisConfig(mr), &out, false)

		// Then: the counts are shown
		require.NoError(t, err)
		assert.Equal(t, "Games: 3\nX wins: 2\nO wins: 0\nTies: 1\n", out.String())
	})

	t.Run("Reset clears the tally", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.HSet("tictactoe:results", "o", "4")

		var out bytes.Buffer
		err := RunStats(newTestLogger(), redisConfig(mr), &out, true)

		require.NoError(t, err)
		assert.Equal(t, "Games: 0\nX wins: 0\nO wins: 0\nTies: 0\n", out.String())
		assert.False(t, mr.Exists("tictactoe:results"))
	})

	t.Run("Error on the memory store", func(t *testing.T) {
		ctx := context.Background()
		conf := &config.Config{ResultStore: config.MemoryStore}

		// Given: a game won by X in a memory-backed session
		results, closeResults, err := OpenResults(ctx, newTestLogger(), conf)
		require.NoError(t, err)
		defer closeResults()

		var game bytes.Buffer
		require.NoError(t, Play(ctx, newTestLogger(), results, strings.NewReader("1\n2\n4\n5\n7\n"),
			termenv.NewOutput(&game, termenv.WithProfile(termenv.Ascii))))

		// When: asking for stats with the same config
		var out bytes.Buffer
		err = RunStats(newTestLogger(), conf, &out, false)

		// Then: the user is told to switch to redis instead of seeing zeros
		require.ErrorIs(t, err, repository.ErrNoPersistentStore)
		assert.Contains(t, err.Error(), "result-store: redis")
		assert.Empty(t, out.String())
	})

	t.Run("Error on the default store", func(t *testing.T) {
		err := RunStats(newTestLogger(), &config.Config{}, io.Discard, true)

		require.ErrorIs(t, err, repository.ErrNoPersistentStore)
	})
}
