package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-client/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
	restServer "github.com/rocketscienceinc/tictactoe-client/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the terminal client. An empty gameID starts a new game.
func RunApp(logger *slog.Logger, conf *config.Config, gameID string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	store, closeStore, err := newStore(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	clientMetrics := metrics.New(reg)

	// run metrics server
	metricsErrCh := make(chan error, 1)
	if conf.Metrics.Addr != "" {
		go func() {
			if metricsErr := restServer.New(logger, conf.Metrics.Addr, reg).Start(ctx); metricsErr != nil {
				log.Error("metrics server error", "error", metricsErr)
				metricsErrCh <- metricsErr
			}
		}()
	}

	client := rest.New(logger, conf.API.BaseURL, conf.API.Timeout)
	lobby := usecase.NewLobby(logger, client, store, clientMetrics)

	req := entity.CreateGameRequest{
		Difficulty:  entity.Difficulty(conf.Game.Difficulty),
		FirstPlayer: entity.FirstPlayer(conf.Game.FirstPlayer),
		HumanSymbol: entity.Mark(conf.Game.HumanSymbol),
	}
	console := NewConsole(logger, lobby, os.Stdin, os.Stdout, req)

	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- console.Run(ctx, gameID)
	}()

	select {
	case err = <-metricsErrCh:
		return fmt.Errorf("metrics server error: %w", err)
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed, shutting down")
		return nil
	}
}

// newStore - the Redis hint store when enabled, otherwise an in-process one.
func newStore(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStore := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.TTL), closeStore, nil
}
