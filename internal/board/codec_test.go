package board

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionMapping(t *testing.T) {
	t.Run("Index to position round trips", func(t *testing.T) {
		for index := 0; index < Size; index++ {
			position, err := IndexToPosition(index)
			require.NoError(t, err)

			back, err := PositionToIndex(position)
			require.NoError(t, err)
			assert.Equal(t, index, back)
		}
	})

	t.Run("Position to index round trips", func(t *testing.T) {
		for position := 1; position <= Size; position++ {
			index, err := PositionToIndex(position)
			require.NoError(t, err)

			back, err := IndexToPosition(index)
			require.NoError(t, err)
			assert.Equal(t, position, back)
		}
	})

	t.Run("Keypad layout", func(t *testing.T) {
		// Given: the keypad centre and corners
		center, err := PositionToIndex(5)
		require.NoError(t, err)
		topLeft, err := PositionToIndex(7)
		require.NoError(t, err)
		bottomRight, err := PositionToIndex(3)
		require.NoError(t, err)

		// Then: they should land on the matching linear indexes
		assert.Equal(t, 4, center)
		assert.Equal(t, 0, topLeft)
		assert.Equal(t, 8, bottomRight)
	})

	t.Run("Out of domain values fail", func(t *testing.T) {
		for _, position := range []int{0, 10, -1} {
			_, err := PositionToIndex(position)
			assert.ErrorIs(t, err, apperror.ErrInvalidPosition)
		}

		for _, index := range []int{-1, 9} {
			_, err := IndexToPosition(index)
			assert.ErrorIs(t, err, apperror.ErrInvalidPosition)
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Empty()

		// When: x plays the centre
		next := ApplyMove(board, 5, entity.PlayerX)

		// Then: only the centre should change
		assert.Equal(t, "    x    ", next)
		assert.Equal(t, Empty(), board)
	})

	t.Run("Occupied cell leaves the board unchanged", func(t *testing.T) {
		// Given: a board with o in the top-left corner
		board := "o        "

		// When: x tries to play position 7
		next := ApplyMove(board, 7, entity.PlayerX)

		// Then: the board should be identical
		assert.Equal(t, board, next)
	})

	t.Run("Unmapped position leaves the board unchanged", func(t *testing.T) {
		board := Empty()
		assert.Equal(t, board, ApplyMove(board, 0, entity.PlayerX))
		assert.Equal(t, board, ApplyMove(board, 42, entity.PlayerO))
	})

	t.Run("Unknown mark leaves the board unchanged", func(t *testing.T) {
		board := Empty()
		assert.Equal(t, board, ApplyMove(board, 5, ""))
	})
}

func TestCellAt(t *testing.T) {
	board := "x o      "

	assert.Equal(t, byte('x'), CellAt(board, 0))
	assert.Equal(t, EmptyCell, CellAt(board, 1))
	assert.Equal(t, byte('o'), CellAt(board, 2))
	assert.Equal(t, EmptyCell, CellAt(board, 12))
}

func TestIsFree(t *testing.T) {
	board := "x        "

	assert.False(t, IsFree(board, 7))
	assert.True(t, IsFree(board, 8))
	assert.False(t, IsFree(board, 0))
}

func TestValidate(t *testing.T) {
	t.Run("Accepts a well formed board", func(t *testing.T) {
		assert.NoError(t, Validate("xo x o  x"))
	})

	t.Run("Rejects wrong length", func(t *testing.T) {
		assert.ErrorIs(t, Validate("xo"), apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		assert.ErrorIs(t, Validate("X        "), apperror.ErrInvalidBoard)
	})
}

func TestRows(t *testing.T) {
	rows := Rows("xo       ")

	assert.Equal(t, [3]byte{'x', 'o', ' '}, rows[0])
	assert.Equal(t, [3]byte{' ', ' ', ' '}, rows[2])
}
