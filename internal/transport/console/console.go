package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

const (
	banner = ":: Tic Tac Toe ::"
	prompt = "> "

	maxInputFailures = 3
)

// InputError reports a failed read from the player's input.
type InputError struct {
	Err error
}

func (that *InputError) Error() string {
	return "System error reading input"
}

func (that *InputError) Unwrap() []error {
	return []error{apperror.ErrInputFailure, that.Err}
}

type session interface {
	Game() game.Game
	Play(ctx context.Context, input string) (game.Game, error)
}

type inputResult struct {
	text string
	err  error
}

// Console plays one session over a line-oriented text stream.
type Console struct {
	logger  *slog.Logger
	session session

	reader *bufio.Reader
	output *termenv.Output
}

func New(logger *slog.Logger, session session, in io.Reader, output *termenv.Output) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		session: session,
		reader:  bufio.NewReader(in),
		output:  output,
	}
}

// Run shows the game and reads moves until the game is final, the input ends, or ctx is done.
// A failed read is reported and the prompt retried, but after maxInputFailures failures in a row
// Run gives up and returns the last one.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.println(that.output.String(banner).Bold().String())

	failures := 0

	for {
		active, ok := that.session.Game().(game.ActiveGame)
		if !ok {
			that.printGame(that.session.Game())
			return nil
		}

		that.printGame(active)
		that.println("Open squares: " + joinPositions(active.Open()))
		that.print(prompt)

		line, err := that.readLine(ctx)
		switch {
		case err == nil:
			failures = 0
		case errors.Is(err, apperror.ErrInputFailure):
			failures++
			log.Warn("failed to read input", "error", err, "attempt", failures)
			that.printError(err)

			if failures >= maxInputFailures {
				return fmt.Errorf("giving up after %d failed reads: %w", failures, err)
			}

			continue
		default:
			return err
		}

		if _, err = that.session.Play(ctx, line); err != nil {
			that.printError(err)
		}
	}
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	lines := make(chan inputResult, 1)
	go func() {
		text, err := that.reader.ReadString('\n')
		lines <- inputResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-lines:
		text := strings.TrimSpace(res.text)

		switch {
		case res.err == nil:
			return text, nil
		case errors.Is(res.err, io.EOF) && res.text != "":
			return text, nil
		case errors.Is(res.err, io.EOF):
			return "", apperror.ErrInputClosed
		default:
			return "", &InputError{Err: res.err}
		}
	}
}

func (that *Console) printGame(current game.Game) {
	header, board, _ := strings.Cut(current.String(), "\n")

	style := that.output.String(header).Bold()
	if final, ok := current.(game.FinalGame); ok {
		if _, won := final.Outcome().Winner(); won {
			style = style.Foreground(that.output.Color("2"))
		}
	}

	that.println("")
	that.println(style.String())
	that.println(board)
}

func (that *Console) printError(err error) {
	that.println(that.output.String(err.Error()).Foreground(that.output.Color("1")).String())
}

func (that *Console) print(s string) {
	_, _ = fmt.Fprint(that.output, s)
}

func (that *Console) println(s string) {
	_, _ = fmt.Fprintln(that.output, s)
}

func joinPositions(positions []game.Position) string {
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = pos.String()
	}

	return strings.Join(parts, " ")
}
