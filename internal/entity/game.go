package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "x"
	PlayerO Mark = "o"
)

// Other - returns the opposite mark.
func (that Mark) Other() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusXWon       Status = "x_won"
	StatusOWon       Status = "o_won"
	StatusDraw       Status = "draw"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func (that Difficulty) IsValid() bool {
	switch that {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}

type FirstPlayer string

const (
	FirstPlayerHuman    FirstPlayer = "human"
	FirstPlayerComputer FirstPlayer = "computer"
)

func (that FirstPlayer) IsValid() bool {
	return that == FirstPlayerHuman || that == FirstPlayerComputer
}

// Game is an authoritative snapshot of one game as the server reports it.
// A published *Game is never modified; changes produce a new value.
type Game struct {
	ID             string     `json:"id"`
	Board          string     `json:"board"`
	NextPlayer     Mark       `json:"next_player"`
	Difficulty     Difficulty `json:"difficulty"`
	Status         Status     `json:"status"`
	HumanSymbol    Mark       `json:"human_symbol"`
	ComputerSymbol Mark       `json:"computer_symbol"`
	Moves          []int      `json:"moves"`
	CreatedAt      string     `json:"created_at,omitempty"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

// MoveResponse is the reply to a submitted move, optionally carrying the computer's answer.
type MoveResponse struct {
	Game
	AIMove *int `json:"ai_move,omitempty"`
}

type CreateGameRequest struct {
	Difficulty  Difficulty  `json:"difficulty"`
	FirstPlayer FirstPlayer `json:"first_player"`
	HumanSymbol Mark        `json:"human_symbol"`
}

// WithDefaults - fills empty fields with the values the server assumes.
func (that CreateGameRequest) WithDefaults() CreateGameRequest {
	if that.Difficulty == "" {
		that.Difficulty = EasyDifficulty
	}
	if that.FirstPlayer == "" {
		that.FirstPlayer = FirstPlayerHuman
	}
	if that.HumanSymbol == "" {
		that.HumanSymbol = PlayerX
	}
	return that
}

func (that CreateGameRequest) Validate() error {
	switch {
	case !that.Difficulty.IsValid():
		return fmt.Errorf("%w: difficulty %q", apperror.ErrInvalidRequest, that.Difficulty)
	case !that.FirstPlayer.IsValid():
		return fmt.Errorf("%w: first player %q", apperror.ErrInvalidRequest, that.FirstPlayer)
	case !that.HumanSymbol.IsValid():
		return fmt.Errorf("%w: human symbol %q", apperror.ErrInvalidRequest, that.HumanSymbol)
	default:
		return nil
	}
}

type MoveRequest struct {
	Position int `json:"position"`
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// Winner - returns the winning mark, or false if nobody has won.
func (that *Game) Winner() (Mark, bool) {
	switch that.Status {
	case StatusXWon:
		return PlayerX, true
	case StatusOWon:
		return PlayerO, true
	default:
		return "", false
	}
}

// IsHumanTurn - true while the game is running and the human moves next.
func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && that.NextPlayer == that.HumanSymbol
}

// Clone - returns a copy that shares nothing mutable with the receiver.
func (that *Game) Clone() *Game {
	game := *that
	game.Moves = append(make([]int, 0, len(that.Moves)+1), that.Moves...)
	return &game
}

// IsOlderThan - reports whether the snapshot represents less progress than current.
// Fewer moves always loses; timestamps only count when both parse.
func (that *Game) IsOlderThan(current *Game) bool {
	if current == nil {
		return false
	}

	if len(that.Moves) < len(current.Moves) {
		return true
	}

	incomingAt, ok := ParseTimestamp(that.UpdatedAt)
	if !ok {
		return false
	}

	currentAt, ok := ParseTimestamp(current.UpdatedAt)
	if !ok {
		return false
	}

	return incomingAt.Before(currentAt)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp - parses server timestamps; values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
