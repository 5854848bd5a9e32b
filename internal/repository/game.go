package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// GameRepository keeps the last accepted snapshot of each game so a session
// can be resumed without waiting for the first fetch.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - a zero ttl keeps snapshots forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func gameKey(id string) string {
	return "client:game:" + id
}
