// Package board translates between linear cell indexes and the keypad
// positions used on the wire, and edits the flat board string.
package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	Size = 9

	EmptyCell byte = ' '
)

// indexToPosition maps index 0..8 to keypad positions; the board string is
// laid out as "789456123".
var indexToPosition = [Size]int{7, 8, 9, 4, 5, 6, 1, 2, 3}

var positionToIndex = func() map[int]int {
	m := make(map[int]int, Size)
	for index, position := range indexToPosition {
		m[position] = index
	}
	return m
}()

// Empty - returns a board with no marks.
func Empty() string {
	return strings.Repeat(string(EmptyCell), Size)
}

func PositionToIndex(position int) (int, error) {
	index, ok := positionToIndex[position]
	if !ok {
		return 0, fmt.Errorf("%w: position %d", apperror.ErrInvalidPosition, position)
	}
	return index, nil
}

func IndexToPosition(index int) (int, error) {
	if index < 0 || index >= Size {
		return 0, fmt.Errorf("%w: index %d", apperror.ErrInvalidPosition, index)
	}
	return indexToPosition[index], nil
}

// CellAt - returns the symbol at index, or EmptyCell outside the board.
func CellAt(board string, index int) byte {
	if index < 0 || index >= len(board) {
		return EmptyCell
	}
	return board[index]
}

// IsFree - true when position is mapped and its cell is empty.
func IsFree(board string, position int) bool {
	index, err := PositionToIndex(position)
	if err != nil {
		return false
	}
	return CellAt(board, index) == EmptyCell
}

// ApplyMove - returns board with mark placed at position. Occupied or unmapped
// positions, and unknown marks, return the board unchanged.
func ApplyMove(board string, position int, mark entity.Mark) string {
	index, err := PositionToIndex(position)
	if err != nil || index >= len(board) || !mark.IsValid() {
		return board
	}

	if board[index] != EmptyCell {
		return board
	}

	cells := []byte(board)
	cells[index] = mark[0]

	return string(cells)
}

// Validate - checks that board holds exactly nine cells of ' ', 'x' or 'o'.
func Validate(board string) error {
	if len(board) != Size {
		return fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Size, len(board))
	}

	for i := 0; i < Size; i++ {
		switch board[i] {
		case EmptyCell, entity.PlayerX[0], entity.PlayerO[0]:
		default:
			return fmt.Errorf("%w: unexpected symbol %q at index %d", apperror.ErrInvalidBoard, board[i], i)
		}
	}

	return nil
}

// Rows - returns the board as three rows of cells in display order.
func Rows(board string) [3][3]byte {
	var rows [3][3]byte
	for index := 0; index < Size; index++ {
		rows[index/3][index%3] = CellAt(board, index)
	}
	return rows
}
