package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/board"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-client/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
)

// fakeServer - a game server where the computer always answers in the lowest free position.
type fakeServer struct {
	mu    sync.Mutex
	games map[string]*entity.Game
	clock int
}

func newFakeServer() *fakeServer {
	return &fakeServer{games: make(map[string]*entity.Game)}
}

func (that *fakeServer) router(t *testing.T) http.Handler {
	router := chi.NewRouter()

	router.Post("/games", func(w http.ResponseWriter, r *http.Request) {
		var req entity.CreateGameRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		that.mu.Lock()
		defer that.mu.Unlock()

		game := &entity.Game{
			ID:             fmt.Sprintf("g%d", len(that.games)+1),
			Board:          board.Empty(),
			NextPlayer:     req.HumanSymbol,
			Difficulty:     req.Difficulty,
			Status:         entity.StatusInProgress,
			HumanSymbol:    req.HumanSymbol,
			ComputerSymbol: req.HumanSymbol.Other(),
			UpdatedAt:      that.tick(),
		}
		that.games[game.ID] = game
		writeJSON(w, http.StatusOK, game)
	})

	router.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		that.mu.Lock()
		defer that.mu.Unlock()

		game, ok := that.games[chi.URLParam(r, "id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Game not found"})
			return
		}
		writeJSON(w, http.StatusOK, game)
	})

	router.Post("/games/{id}/moves", func(w http.ResponseWriter, r *http.Request) {
		var req entity.MoveRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		that.mu.Lock()
		defer that.mu.Unlock()

		game, ok := that.games[chi.URLParam(r, "id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Game not found"})
			return
		}

		game.Board = board.ApplyMove(game.Board, req.Position, game.HumanSymbol)
		game.Moves = append(game.Moves, req.Position)

		var aiMove *int
		for position := 1; position <= board.Size; position++ {
			if board.IsFree(game.Board, position) {
				game.Board = board.ApplyMove(game.Board, position, game.ComputerSymbol)
				game.Moves = append(game.Moves, position)
				aiMove = &position
				break
			}
		}
		game.UpdatedAt = that.tick()

		writeJSON(w, http.StatusOK, entity.MoveResponse{Game: *game, AIMove: aiMove})
	})

	return router
}

func (that *fakeServer) tick() string {
	that.clock++
	return fmt.Sprintf("2024-05-01T12:00:%02dZ", that.clock)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer, repository.GameRepository) {
	t.Helper()

	server := httptest.NewServer(newFakeServer().router(t))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewMemoryGameRepository()
	lobby := usecase.NewLobby(logger, rest.New(logger, server.URL, 0), store, nil)

	var out bytes.Buffer
	req := entity.CreateGameRequest{}.WithDefaults()

	return NewConsole(logger, lobby, strings.NewReader(input), &out, req), &out, store
}

func TestConsole_Run(t *testing.T) {
	t.Run("Plays a move and shows the computer's answer", func(t *testing.T) {
		// Given: a console that will play the centre and quit
		console, out, store := newTestConsole(t, "5\nq\n")

		// When: running without a game id
		err := console.Run(context.Background(), "")

		// Then: a game was created and both moves are drawn
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Game g1")
		assert.Contains(t, out.String(), " 4 | X | 6 ")
		assert.Contains(t, out.String(), " 7 | 8 | 9 \n---+---+---\n 4 | X | 6 \n---+---+---\n O | 2 | 3 ")
		assert.Contains(t, out.String(), "Computer played 1")
		assert.Contains(t, out.String(), "Next player: X")

		// And: the hint was stored
		hint, err := store.GetByID(context.Background(), "g1")
		require.NoError(t, err)
		assert.Equal(t, []int{5, 1}, hint.Moves)
	})

	t.Run("Refused moves are explained", func(t *testing.T) {
		console, out, _ := newTestConsole(t, "5\n5\n")

		require.NoError(t, console.Run(context.Background(), ""))

		assert.Contains(t, out.String(), "Cannot play: "+apperror.ErrCellOccupied.Error())
	})

	t.Run("Unknown input prints help", func(t *testing.T) {
		console, out, _ := newTestConsole(t, "hello\n")

		require.NoError(t, console.Run(context.Background(), ""))

		assert.Equal(t, 2, strings.Count(out.String(), helpText))
	})

	t.Run("New game replaces the session", func(t *testing.T) {
		console, out, _ := newTestConsole(t, "5\nn\n9\n")

		require.NoError(t, console.Run(context.Background(), ""))

		assert.Contains(t, out.String(), "Game g2")
		assert.Contains(t, out.String(), " 7 | 8 | X ")
	})

	t.Run("Resuming an unknown game fails", func(t *testing.T) {
		console, _, _ := newTestConsole(t, "")

		err := console.Run(context.Background(), "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotLoaded)
		assert.Contains(t, err.Error(), "Game not found")
	})

	t.Run("Resumes an existing game", func(t *testing.T) {
		// Given: a game created in an earlier run
		console, out, _ := newTestConsole(t, "q\n")
		_, err := console.lobby.Create(context.Background(), console.req)
		require.NoError(t, err)

		// When: resuming it
		err = console.Run(context.Background(), "g1")

		// Then: the board is drawn
		require.NoError(t, err)
		assert.Contains(t, out.String(), " 7 | 8 | 9 ")
		assert.Contains(t, out.String(), "Next player: X")
	})
}
