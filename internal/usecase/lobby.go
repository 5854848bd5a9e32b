package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// Lobby creates games and opens sessions for them.
type Lobby struct {
	logger  *slog.Logger
	api     gameAPI
	store   snapshotStore
	metrics recorder
}

func NewLobby(logger *slog.Logger, api gameAPI, store snapshotStore, metrics recorder) *Lobby {
	if store == nil {
		store = nopStore{}
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}

	return &Lobby{
		logger:  logger.With("component", "lobby"),
		api:     api,
		store:   store,
		metrics: metrics,
	}
}

// Create - asks the server for a new game. When the computer opens, the reply
// already contains its first move.
func (that *Lobby) Create(ctx context.Context, req entity.CreateGameRequest) (*entity.Game, error) {
	log := that.logger.With("method", "Create")

	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	game, err := that.api.CreateGame(ctx, req)
	that.metrics.Request(operationCreate, err)
	if err != nil {
		log.Warn("failed to create game", "error", err)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created",
		"gameID", game.ID,
		"difficulty", game.Difficulty,
		"firstPlayer", req.FirstPlayer,
		"humanSymbol", game.HumanSymbol,
	)

	if err = that.store.CreateOrUpdate(ctx, game); err != nil {
		log.Warn("failed to save snapshot hint", "error", err)
	}

	return game, nil
}

// Start - creates a game and returns a session already seeded with it.
func (that *Lobby) Start(ctx context.Context, req entity.CreateGameRequest, opts ...Option) (*Session, error) {
	game, err := that.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return that.Open(game.ID, append(opts, WithInitialGame(game))...), nil
}

// Resume - opens a session for gameID, seeded with the stored hint if there is one.
// The caller is expected to Load the session afterwards.
func (that *Lobby) Resume(ctx context.Context, gameID string, opts ...Option) *Session {
	log := that.logger.With("method", "Resume", "gameID", gameID)

	hint, err := that.store.GetByID(ctx, gameID)
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		log.Debug("no snapshot hint")
	case err != nil:
		log.Warn("failed to read snapshot hint", "error", err)
	default:
		opts = append(opts, WithInitialGame(hint))
	}

	return that.Open(gameID, opts...)
}

// Open - creates a session for gameID sharing the lobby's dependencies.
func (that *Lobby) Open(gameID string, opts ...Option) *Session {
	base := []Option{WithStore(that.store), WithRecorder(that.metrics)}

	return NewSession(that.logger, that.api, gameID, append(base, opts...)...)
}
