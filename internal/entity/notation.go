package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid board notation")

var cellSymbols = map[Color]byte{
	Empty:   '.',
	Player1: 'X',
	Player2: 'O',
}

// String - renders the board as 8 lines of '.', 'X' (player 1) and 'O' (player 2), row 0 first.
func (that Board) String() string {
	var sb strings.Builder
	for row := range that {
		for _, cell := range that[row] {
			sb.WriteByte(cellSymbols[cell])
		}
		if row < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// ParseBoard - reads the notation produced by Board.String. Blank lines and spaces are ignored.
func ParseBoard(notation string) (Board, error) {
	var board Board

	row := 0
	for _, line := range strings.Split(notation, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}

		if row >= BoardSize || len(line) != BoardSize {
			return Board{}, fmt.Errorf("%w: row %d is %q", ErrInvalidNotation, row, line)
		}

		for col := 0; col < BoardSize; col++ {
			switch line[col] {
			case '.':
				board[row][col] = Empty
			case 'X':
				board[row][col] = Player1
			case 'O':
				board[row][col] = Player2
			default:
				return Board{}, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidNotation, line[col], row, col)
			}
		}
		row++
	}

	if row != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrInvalidNotation, row)
	}

	return board, nil
}

// MustParseBoard - like ParseBoard but panics on bad input. Meant for fixtures.
func MustParseBoard(notation string) Board {
	board, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}

	return board
}
