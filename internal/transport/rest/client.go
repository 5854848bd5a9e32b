package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-client/internal/board"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

var ErrEmptyResponse = errors.New("empty response body")

// APIError - a failed request. Error returns the message as the server phrased it.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (that *APIError) Error() string {
	return that.Message
}

func (that *APIError) Unwrap() error {
	return that.Err
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

// New - creates a client for the game server at baseURL. A zero timeout disables it.
func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger.With("component", "rest-client"),
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (that *Client) CreateGame(ctx context.Context, req entity.CreateGameRequest) (*entity.Game, error) {
	var game entity.Game
	if err := that.do(ctx, http.MethodPost, "/games", req, &game); err != nil {
		return nil, err
	}

	if err := validate(&game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (that *Client) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	var game entity.Game
	if err := that.do(ctx, http.MethodGet, "/games/"+url.PathEscape(gameID), nil, &game); err != nil {
		return nil, err
	}

	if err := validate(&game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (that *Client) MakeMove(ctx context.Context, gameID string, position int) (*entity.MoveResponse, error) {
	var response entity.MoveResponse
	path := "/games/" + url.PathEscape(gameID) + "/moves"
	if err := that.do(ctx, http.MethodPost, path, entity.MoveRequest{Position: position}, &response); err != nil {
		return nil, err
	}

	if err := validate(&response.Game); err != nil {
		return nil, err
	}

	return &response, nil
}

// do - sends a JSON request and decodes the reply into out. Every failure is an *APIError.
func (that *Client) do(ctx context.Context, method, path string, in, out any) error {
	log := that.logger.With("method", method, "path", path)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, body)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := that.http.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return &APIError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read response", "error", err)
		return &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := errorMessage(raw, resp.StatusCode)
		log.Warn("request rejected", "status", resp.StatusCode, "message", message)
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if len(raw) == 0 {
		return &APIError{StatusCode: resp.StatusCode, Message: ErrEmptyResponse.Error(), Err: ErrEmptyResponse}
	}

	if err = json.Unmarshal(raw, out); err != nil {
		log.Warn("failed to decode response", "error", err)
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
	}

	log.Debug("request ok", "status", resp.StatusCode)

	return nil
}

type errorBody struct {
	Detail any `json:"detail"`
	Error  any `json:"error"`
}

// errorMessage - prefers a string detail or error field, then the status text.
func errorMessage(raw []byte, statusCode int) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if detail, ok := body.Detail.(string); ok && detail != "" {
			return detail
		}
		if message, ok := body.Error.(string); ok && message != "" {
			return message
		}
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}

	return fmt.Sprintf("request failed with status %d", statusCode)
}

func validate(game *entity.Game) error {
	if game.ID == "" {
		return &APIError{Message: "invalid game: missing id"}
	}

	if err := board.Validate(game.Board); err != nil {
		return &APIError{Message: err.Error(), Err: err}
	}

	return nil
}
