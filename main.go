package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/tictactoe-client/internal"
	"github.com/rocketscienceinc/tictactoe-client/internal/config"
)

// main - is the entry point of the client. It loads the environment and configuration, builds the logger and runs the app.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "path to the config file")
	gameID := flag.String("game", "", "id of a game to resume; a new game is created when empty")
	flag.Parse()

	initEnv()
	conf := initConfig(*configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, *gameID); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize .env, a missing file is fine.
func initEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	if filepath.IsAbs(path) {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, path))
}

// initialize logger. Logs go to stderr so they do not mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
