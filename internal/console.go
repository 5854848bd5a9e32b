package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/render"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
)

const helpText = "Commands: 1-9 play a position, r reload, n new game, q quit"

// Console - the terminal front-end: reads commands line by line and redraws the
// board on every session change.
type Console struct {
	logger *slog.Logger
	lobby  *usecase.Lobby
	in     io.Reader
	out    io.Writer
	req    entity.CreateGameRequest

	mu      sync.Mutex
	lastSeq uint64
}

func NewConsole(logger *slog.Logger, lobby *usecase.Lobby, in io.Reader, out io.Writer, req entity.CreateGameRequest) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		lobby:  lobby,
		in:     in,
		out:    out,
		req:    req,
	}
}

// Run - opens gameID, or starts a new game when it is empty, and processes
// commands until quit, end of input or ctx is done.
func (that *Console) Run(ctx context.Context, gameID string) error {
	session, err := that.open(ctx, gameID)
	if err != nil {
		return err
	}

	that.println(helpText)

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			next, quit := that.handle(ctx, session, line)
			if quit {
				return nil
			}
			session = next
		}
	}
}

func (that *Console) handle(ctx context.Context, session *usecase.Session, line string) (*usecase.Session, bool) {
	switch line {
	case "":
		return session, false
	case "q", "quit":
		return session, true
	case "r", "reload":
		session.Load(ctx)
		return session, false
	case "n", "new":
		next, err := that.start(ctx)
		if err != nil {
			that.println(err.Error())
			return session, false
		}
		return next, false
	}

	position, err := strconv.Atoi(line)
	if err != nil {
		that.println(helpText)
		return session, false
	}

	if err = session.Play(ctx, position); err != nil {
		that.logger.Debug("play refused", "position", position, "error", err)
		that.println("Cannot play: " + err.Error())
	}

	return session, false
}

func (that *Console) open(ctx context.Context, gameID string) (*usecase.Session, error) {
	if gameID == "" {
		return that.start(ctx)
	}

	session := that.lobby.Resume(ctx, gameID, usecase.WithListener(that.draw))
	session.Load(ctx)

	if view := session.View(); view.Game == nil {
		return nil, fmt.Errorf("%w: %s: %s", apperror.ErrGameNotLoaded, gameID, view.Error)
	}

	return session, nil
}

func (that *Console) start(ctx context.Context) (*usecase.Session, error) {
	session, err := that.lobby.Start(ctx, that.req, usecase.WithListener(that.draw))
	if err != nil {
		return nil, err
	}

	that.println("Game " + session.GameID())
	that.draw(session.View())

	return session, nil
}

// draw - runs under the session lock, so it only reads the view it is given.
func (that *Console) draw(view usecase.View) {
	if view.Loading && view.Phase != usecase.PhaseSubmitting {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if view.Seq != 0 && view.Seq < that.lastSeq {
		return
	}
	that.lastSeq = view.Seq

	if err := render.Frame(that.out, view.Game, view.Status(), view.ComputerMove); err != nil {
		that.logger.Error("failed to draw", "error", err)
	}
}

func (that *Console) println(line string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write", "error", err)
	}
}
