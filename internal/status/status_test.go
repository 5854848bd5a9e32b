package status

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Run("Error overrides a finished game", func(t *testing.T) {
		// Given: a won game and an error message
		game := &entity.Game{Status: entity.StatusXWon}

		// When: deriving the status
		result := Derive(game, Options{Error: "game_not_found"})

		// Then: the error should take priority
		assert.Equal(t, VariantError, result.Variant)
		assert.Equal(t, "game_not_found", result.Message)
		assert.Equal(t, "status error", result.ClassName)
		assert.Empty(t, result.Winner)
	})

	t.Run("Win announces the winner", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusOWon, NextPlayer: entity.PlayerX}

		result := Derive(game, Options{})

		assert.Equal(t, VariantWin, result.Variant)
		assert.Equal(t, entity.PlayerO, result.Winner)
		assert.Equal(t, "Winner: O", result.Message)
		assert.Equal(t, "status win", result.ClassName)
		assert.Empty(t, result.NextPlayer)
	})

	t.Run("Draw", func(t *testing.T) {
		result := Derive(&entity.Game{Status: entity.StatusDraw}, Options{})

		assert.Equal(t, VariantDraw, result.Variant)
		assert.Equal(t, "Draw!", result.Message)
		assert.Equal(t, "status draw", result.ClassName)
	})

	t.Run("In progress names the next player", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusInProgress, NextPlayer: entity.PlayerX}

		result := Derive(game, Options{})

		assert.Equal(t, VariantInProgress, result.Variant)
		assert.Equal(t, entity.PlayerX, result.NextPlayer)
		assert.Equal(t, "Next player: X", result.Message)
		assert.Equal(t, "status in-progress", result.ClassName)
	})

	t.Run("In progress while loading waits for the next player", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusInProgress, NextPlayer: entity.PlayerO}

		result := Derive(game, Options{Loading: true})

		assert.Equal(t, "Waiting for O to play…", result.Message)
		assert.True(t, result.Loading)
	})

	t.Run("Missing game without error", func(t *testing.T) {
		result := Derive(nil, Options{})

		assert.Equal(t, "Create a game to start playing.", result.Message)
		assert.Equal(t, "status", result.ClassName)
	})

	t.Run("Same input gives the same output", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusInProgress, NextPlayer: entity.PlayerO}
		opts := Options{Loading: true}

		assert.Equal(t, Derive(game, opts), Derive(game, opts))
	})
}
