package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// main - is the entry point of the application. It builds the command tree and runs it.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	play := func(*cobra.Command, []string) error {
		conf := initConfig(configPath)
		logger, closeLogger := initLogger(conf)
		defer closeLogger()

		return app.RunApp(logger, conf)
	}

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe in the terminal",
		Long:         "Two players take turns entering a square number (1-9) until one completes a line or the board fills.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         play,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default ./config.yml)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Args:  cobra.NoArgs,
		RunE:  play,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how finished games ended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)
			logger, closeLogger := initLogger(conf)
			defer closeLogger()

			return app.RunStats(logger, conf, cmd.OutOrStdout(), false)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the results of finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)
			logger, closeLogger := initLogger(conf)
			defer closeLogger()

			return app.RunStats(logger, conf, cmd.OutOrStdout(), true)
		},
	}

	statsCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(playCmd, statsCmd)

	return rootCmd
}

// initialize config.
func initConfig(path string) *config.Config {
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger. Logs never go to stdout, which belongs to the game.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	level := logLevel(conf.LogLevel)

	var out io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}

// logLevel maps a config level name to slog. Unknown names get the warn default.
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
