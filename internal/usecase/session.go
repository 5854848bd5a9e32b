package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/board"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/status"
)

const (
	operationCreate = "create"
	operationLoad   = "load"
	operationPlay   = "play"
)

const (
	defaultLoadError = "Failed to load game"
	defaultPlayError = "Failed to play"
)

type gameAPI interface {
	CreateGame(ctx context.Context, req entity.CreateGameRequest) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID string, position int) (*entity.MoveResponse, error)
}

type snapshotStore interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type recorder interface {
	Request(operation string, err error)
	StaleResponse(operation string)
	Rollback()
	PlayDropped(reason string)
}

type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseReady         Phase = "ready"
	PhaseSubmitting    Phase = "submitting"
	PhaseRolledBack    Phase = "rolled_back"
)

// View is an immutable picture of a session. Seq grows with every change, so
// listeners receiving views from several goroutines can drop older ones.
type View struct {
	Seq     uint64
	Game    *entity.Game
	Loading bool
	Error   string
	CanPlay bool
	Phase   Phase
	// Position of the computer's reply to the last accepted move, 0 if none.
	ComputerMove int
}

func (that View) Status() status.Result {
	return status.Derive(that.Game, status.Options{Loading: that.Loading, Error: that.Error})
}

type Listener func(View)

// Session keeps one game's local snapshot in line with the server.
//
// Moves are applied optimistically and replaced by the server reply, or rolled
// back when the submission fails. Replies that carry less progress than the
// local snapshot are discarded. At most one move is outstanding at a time.
// The mutex is never held across a network call.
type Session struct {
	logger  *slog.Logger
	api     gameAPI
	store   snapshotStore
	metrics recorder

	gameID string

	mu           sync.Mutex
	game         *entity.Game
	playing      bool
	loads        int
	err          string
	rolledBack   bool
	computerMove int
	seq          uint64
	listeners    []Listener
}

type Option func(*Session)

// WithInitialGame - seeds the session with a snapshot obtained elsewhere. It is
// still reconciled against the next load. Snapshots of other games are ignored.
func WithInitialGame(game *entity.Game) Option {
	return func(that *Session) {
		if game != nil && game.ID == that.gameID {
			that.game = game
		}
	}
}

// WithStore - accepted snapshots are saved to store as resume hints.
func WithStore(store snapshotStore) Option {
	return func(that *Session) {
		that.store = store
	}
}

func WithRecorder(metrics recorder) Option {
	return func(that *Session) {
		that.metrics = metrics
	}
}

func WithListener(listener Listener) Option {
	return func(that *Session) {
		that.listeners = append(that.listeners, listener)
	}
}

func NewSession(logger *slog.Logger, api gameAPI, gameID string, opts ...Option) *Session {
	session := &Session{
		logger:  logger.With("component", "session", "gameID", gameID),
		api:     api,
		store:   nopStore{},
		metrics: nopRecorder{},
		gameID:  gameID,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

func (that *Session) GameID() string {
	return that.gameID
}

// Subscribe - registers a listener for every later change.
func (that *Session) Subscribe(listener Listener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *Session) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.viewLocked()
}

// CanPlay - true when a snapshot exists, the game is running and the human moves next.
func (that *Session) CanPlay() bool {
	return that.View().CanPlay
}

// Load - fetches the game and reconciles it into the session. A failure sets
// the error and keeps whatever snapshot was already known.
func (that *Session) Load(ctx context.Context) {
	log := that.logger.With("method", "Load")

	that.mu.Lock()
	that.loads++
	that.err = ""
	that.rolledBack = false
	that.publishLocked()
	that.mu.Unlock()

	game, err := that.api.GetGame(ctx, that.gameID)
	that.metrics.Request(operationLoad, err)

	that.mu.Lock()
	that.loads--

	var accepted *entity.Game
	if err != nil {
		log.Warn("failed to load game", "error", err)
		that.err = errorMessage(err, defaultLoadError)
	} else {
		accepted = that.reconcileLocked(game, operationLoad)
	}

	that.publishLocked()
	that.mu.Unlock()

	that.saveHint(ctx, accepted)
}

// Play - submits a move at keypad position. The returned error only reports why
// a move was refused before reaching the network; server failures roll the
// snapshot back and show up in View().Error.
func (that *Session) Play(ctx context.Context, position int) error {
	log := that.logger.With("method", "Play", "position", position)

	that.mu.Lock()
	rollbackTarget, err := that.checkPlayLocked(position)
	if err != nil {
		that.mu.Unlock()
		log.Debug("play refused", "error", err)
		return err
	}

	optimistic := rollbackTarget.Clone()
	optimistic.Board = board.ApplyMove(rollbackTarget.Board, position, rollbackTarget.HumanSymbol)
	optimistic.Moves = append(optimistic.Moves, position)
	optimistic.NextPlayer = rollbackTarget.ComputerSymbol

	that.game = optimistic
	that.playing = true
	that.err = ""
	that.rolledBack = false
	that.publishLocked()
	that.mu.Unlock()

	response, err := that.api.MakeMove(ctx, that.gameID, position)
	that.metrics.Request(operationPlay, err)

	that.mu.Lock()
	that.playing = false

	var accepted *entity.Game
	if err != nil {
		log.Warn("move failed, rolling back", "error", err)
		that.metrics.Rollback()
		that.err = errorMessage(err, defaultPlayError)
		that.rolledBack = true
		// a load may have replaced the optimistic snapshot with an authoritative one
		if that.game == optimistic {
			that.game = rollbackTarget
		}
	} else {
		accepted = that.reconcileLocked(&response.Game, operationPlay)
		if accepted != nil {
			that.computerMove = 0
			if response.AIMove != nil {
				that.computerMove = *response.AIMove
			}
		}
	}

	that.publishLocked()
	that.mu.Unlock()

	that.saveHint(ctx, accepted)

	return nil
}

func (that *Session) checkPlayLocked(position int) (*entity.Game, error) {
	game := that.game

	switch {
	case game == nil:
		that.metrics.PlayDropped("not_loaded")
		return nil, apperror.ErrGameNotLoaded
	case that.playing || that.loads > 0:
		that.metrics.PlayDropped("in_flight")
		return nil, apperror.ErrOperationInFlight
	case game.IsFinished():
		that.metrics.PlayDropped("finished")
		return nil, apperror.ErrGameFinished
	case !game.IsHumanTurn():
		that.metrics.PlayDropped("not_your_turn")
		return nil, apperror.ErrNotYourTurn
	}

	if _, err := board.PositionToIndex(position); err != nil {
		that.metrics.PlayDropped("invalid_position")
		return nil, err
	}

	if !board.IsFree(game.Board, position) {
		that.metrics.PlayDropped("occupied")
		return nil, fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	return game, nil
}

// reconcileLocked - installs incoming unless it is older than the current
// snapshot. Returns the accepted snapshot, or nil if incoming was discarded.
func (that *Session) reconcileLocked(incoming *entity.Game, operation string) *entity.Game {
	next, accepted := Reconcile(that.game, incoming)
	if !accepted {
		that.logger.Debug("discarding stale response",
			"operation", operation,
			"currentMoves", len(that.game.Moves),
			"incomingMoves", len(incoming.Moves),
			"currentUpdatedAt", that.game.UpdatedAt,
			"incomingUpdatedAt", incoming.UpdatedAt,
		)
		that.metrics.StaleResponse(operation)
		return nil
	}

	that.game = next
	return next
}

// Reconcile - picks between the local snapshot and a freshly received one.
// Incoming wins unless it has fewer moves, or both timestamps parse and
// incoming's is earlier.
func Reconcile(current, incoming *entity.Game) (*entity.Game, bool) {
	if incoming.IsOlderThan(current) {
		return current, false
	}
	return incoming, true
}

func (that *Session) viewLocked() View {
	view := View{
		Seq:          that.seq,
		Game:         that.game,
		Loading:      that.playing || that.loads > 0,
		Error:        that.err,
		CanPlay:      that.game != nil && that.game.IsHumanTurn(),
		ComputerMove: that.computerMove,
	}

	switch {
	case that.playing:
		view.Phase = PhaseSubmitting
	case that.game == nil && that.loads > 0:
		view.Phase = PhaseLoading
	case that.game == nil:
		view.Phase = PhaseUninitialized
	case that.rolledBack:
		view.Phase = PhaseRolledBack
	default:
		view.Phase = PhaseReady
	}

	return view
}

// publishLocked - bumps the sequence and hands the view to listeners.
// Listeners run under the session lock and must not call back into it.
func (that *Session) publishLocked() {
	that.seq++
	view := that.viewLocked()

	for _, listener := range that.listeners {
		listener(view)
	}
}

func (that *Session) saveHint(ctx context.Context, game *entity.Game) {
	if game == nil {
		return
	}

	if err := that.store.CreateOrUpdate(ctx, game); err != nil {
		that.logger.Warn("failed to save snapshot hint", "error", err)
	}
}

func errorMessage(err error, fallback string) string {
	if message := err.Error(); message != "" {
		return message
	}
	return fallback
}

type nopStore struct{}

func (nopStore) CreateOrUpdate(context.Context, *entity.Game) error { return nil }

func (nopStore) GetByID(context.Context, string) (*entity.Game, error) {
	return nil, apperror.ErrGameNotFound
}

type nopRecorder struct{}

func (nopRecorder) Request(string, error) {}
func (nopRecorder) StaleResponse(string)  {}
func (nopRecorder) Rollback()             {}
func (nopRecorder) PlayDropped(string)    {}
