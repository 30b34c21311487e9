package tcp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

const (
	headerLines  = 4
	boardCells   = entity.BoardSize * entity.BoardSize
	messageLines = headerLines + boardCells
)

// DecodeSnapshot - parses the lines of one message: turn, round, two clocks and then
// 64 cells in row-major order with row 0 at the server's bottom.
func DecodeSnapshot(lines []string) (entity.Snapshot, error) {
	if len(lines) == 0 {
		return entity.Snapshot{}, fmt.Errorf("%w: empty message", apperror.ErrMalformedMessage)
	}

	turn, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: turn %q", apperror.ErrMalformedMessage, lines[0])
	}

	if entity.Color(turn) == entity.GameOver {
		return entity.Snapshot{Turn: entity.GameOver}, nil
	}

	if len(lines) < messageLines {
		return entity.Snapshot{}, fmt.Errorf("%w: got %d lines, want %d", apperror.ErrMalformedMessage, len(lines), messageLines)
	}

	snapshot := entity.Snapshot{Turn: entity.Color(turn)}

	if snapshot.Round, err = strconv.Atoi(strings.TrimSpace(lines[1])); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: round %q", apperror.ErrMalformedMessage, lines[1])
	}

	for i := range snapshot.Clocks {
		if snapshot.Clocks[i], err = strconv.ParseFloat(strings.TrimSpace(lines[2+i]), 64); err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: clock %q", apperror.ErrMalformedMessage, lines[2+i])
		}
	}

	var board entity.Board
	for i, line := range lines[headerLines:messageLines] {
		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || cell < int(entity.Empty) || cell > int(entity.Player2) {
			return entity.Snapshot{}, fmt.Errorf("%w: cell %d is %q", apperror.ErrMalformedMessage, i, line)
		}
		board[i/entity.BoardSize][i%entity.BoardSize] = entity.Color(cell)
	}
	snapshot.Board = board.FlipRows()

	return snapshot, nil
}

// EncodeMove - writes the row in the server's orientation followed by the column.
func EncodeMove(move entity.Move) []byte {
	return fmt.Appendf(nil, "%d\n%d\n", entity.MirrorRow(move.Row), move.Col)
}
