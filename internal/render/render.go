// Package render draws a session view as plain text for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/board"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/status"
)

const rowSeparator = "---+---+---"

// Board - draws the grid in keypad layout. Empty cells show the position that
// plays them, marks are upper-cased.
func Board(game *entity.Game) string {
	if game == nil {
		return ""
	}

	rows := board.Rows(game.Board)
	lines := make([]string, 0, 5)

	for r, row := range rows {
		cells := make([]string, 0, 3)
		for c, cell := range row {
			cells = append(cells, " "+cellLabel(cell, r*3+c)+" ")
		}

		if r > 0 {
			lines = append(lines, rowSeparator)
		}
		lines = append(lines, strings.Join(cells, "|"))
	}

	return strings.Join(lines, "\n")
}

func cellLabel(cell byte, index int) string {
	if cell == board.EmptyCell {
		position, err := board.IndexToPosition(index)
		if err != nil {
			return " "
		}
		return fmt.Sprint(position)
	}

	return strings.ToUpper(string(cell))
}

// Status - one line for the status bar, with a marker while a request is outstanding.
func Status(result status.Result) string {
	line := result.Message
	if result.Loading && result.Variant != status.VariantError {
		line += " (syncing)"
	}

	return line
}

// Frame - writes the board, the status line and the computer's last reply.
func Frame(w io.Writer, game *entity.Game, result status.Result, computerMove int) error {
	var sb strings.Builder

	if grid := Board(game); grid != "" {
		sb.WriteString(grid)
		sb.WriteString("\n\n")
	}

	if computerMove != 0 {
		fmt.Fprintf(&sb, "Computer played %d\n", computerMove)
	}

	sb.WriteString(Status(result))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}
