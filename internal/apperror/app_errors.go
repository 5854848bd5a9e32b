package apperror

import "errors"

var (
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotLoaded     = errors.New("game is not loaded")
	ErrOperationInFlight = errors.New("an operation is already in flight")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidRequest    = errors.New("invalid create game request")
)
