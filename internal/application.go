package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signalContext(logger)
	defer cancel()

	results, closeResults, err := OpenResults(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeResults()

	err = Play(ctx, logger, results, os.Stdin, termenv.NewOutput(os.Stdout))
	if errors.Is(err, context.Canceled) {
		logger.Info("Game interrupted")
		return nil
	}

	return err
}

// RunStats - prints the tally of finished games, clearing it first when reset is set.
// The memory store forgets every game when its process exits, so it has nothing to report.
func RunStats(logger *slog.Logger, conf *config.Config, out io.Writer, reset bool) error {
	if conf.ResultStore == config.MemoryStore || conf.ResultStore == "" {
		return fmt.Errorf("%w: store is %q", repository.ErrNoPersistentStore, config.MemoryStore)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	results, closeResults, err := OpenResults(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeResults()

	scoreboard := usecase.NewScoreboard(logger, results)

	if reset {
		if err = scoreboard.Reset(ctx); err != nil {
			return err
		}
	}

	tally, err := scoreboard.Tally(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Games: %d\nX wins: %d\nO wins: %d\nTies: %d\n", tally.Games(), tally.X, tally.O, tally.Tie)

	return err
}

// Play runs a console session for one game.
func Play(ctx context.Context, logger *slog.Logger, results repository.ResultRepository, in io.Reader, out *termenv.Output) error {
	session := usecase.NewSession(logger, results)

	if err := console.New(logger, session, in, out).Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

// OpenResults - builds the result repository selected by the config. The returned func releases it.
func OpenResults(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	log := logger.With("component", "app")

	switch conf.ResultStore {
	case config.MemoryStore, "":
		return repository.NewMemoryResultRepository(), func() {}, nil
	case config.RedisStore:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewResultRepository(redisStorage.Connection, conf.Redis.Key), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", repository.ErrUnknownStore, conf.ResultStore)
	}
}

func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
