// Package status turns a game snapshot into what the status line shows.
package status

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type Variant string

const (
	VariantError      Variant = "error"
	VariantWin        Variant = "win"
	VariantDraw       Variant = "draw"
	VariantInProgress Variant = "in_progress"
)

const baseClass = "status"

type Options struct {
	Loading bool
	Error   string
}

type Result struct {
	Variant    Variant
	Message    string
	Winner     entity.Mark
	NextPlayer entity.Mark
	ClassName  string
	Loading    bool
}

// Derive - computes the status line. An error wins over any game state.
// A nil game with no error reads as "waiting for a game".
func Derive(game *entity.Game, opts Options) Result {
	result := Result{Loading: opts.Loading}

	switch {
	case opts.Error != "":
		result.Variant = VariantError
		result.ClassName = baseClass + " error"
		result.Message = opts.Error
	case game == nil:
		result.Variant = VariantInProgress
		result.ClassName = baseClass
		result.Message = "Create a game to start playing."
	case game.Status == entity.StatusDraw:
		result.Variant = VariantDraw
		result.ClassName = baseClass + " draw"
		result.Message = "Draw!"
	default:
		if winner, ok := game.Winner(); ok {
			result.Variant = VariantWin
			result.ClassName = baseClass + " win"
			result.Winner = winner
			result.Message = "Winner: " + upper(winner)
			return result
		}

		result.Variant = VariantInProgress
		result.ClassName = baseClass + " in-progress"
		result.NextPlayer = game.NextPlayer
		if opts.Loading {
			result.Message = fmt.Sprintf("Waiting for %s to play…", upper(game.NextPlayer))
		} else {
			result.Message = "Next player: " + upper(game.NextPlayer)
		}
	}

	return result
}

func upper(mark entity.Mark) string {
	return strings.ToUpper(string(mark))
}
