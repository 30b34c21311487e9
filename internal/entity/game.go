package entity

// GameState is an immutable snapshot: every transition returns a new value.
type GameState struct {
	Board Board `json:"board"`
	Turn  Color `json:"turn"`
}

func NewGameState(board Board, turn Color) GameState {
	return GameState{Board: board, Turn: turn}
}

func (that GameState) IsOver() bool {
	return that.Turn == GameOver
}

// IsEmpty - reports whether the cell holds no stone. The cell must be on the board.
func (that GameState) IsEmpty(row, col int) bool {
	return that.Board[row][col] == Empty
}

// anchor - returns the color that closes a capture line for the given perspective.
func (that GameState) anchor(perspective Perspective) Color {
	if perspective == Opponent {
		return that.Turn.Opponent()
	}

	return that.Turn
}

// CaptureWillOccur - walks from the cell next to (row, col) in dir and reports whether the walk
// reaches an anchor stone after passing at least one stone of the other color.
func (that GameState) CaptureWillOccur(row, col int, dir Direction, perspective Perspective) bool {
	check := that.anchor(perspective)

	captured := 0
	for r, c := row+dir.DRow, col+dir.DCol; IsOnBoard(r, c); r, c = r+dir.DRow, c+dir.DCol {
		switch that.Board[r][c] {
		case check:
			return captured != 0
		case Empty:
			return false
		}
		captured++
	}

	return false
}

func (that GameState) IsValidMove(row, col int, perspective Perspective) bool {
	if !IsOnBoard(row, col) || !that.IsEmpty(row, col) {
		return false
	}

	for _, dir := range Directions {
		if that.CaptureWillOccur(row, col, dir, perspective) {
			return true
		}
	}

	return false
}

// ValidMoves - lists legal moves in row-major order. While any center cell is empty
// the empty center cells are the only legal moves.
func (that GameState) ValidMoves(perspective Perspective) []Move {
	var center []Move
	for row := 3; row <= 4; row++ {
		for col := 3; col <= 4; col++ {
			if that.IsEmpty(row, col) {
				center = append(center, Move{Row: row, Col: col})
			}
		}
	}

	if len(center) > 0 {
		return center
	}

	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.IsValidMove(row, col, perspective) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove - places a mover stone, flips every bracketed line and hands the turn to the opponent.
// The receiver is left untouched.
func (that GameState) ApplyMove(move Move, mover Color) GameState {
	opponent := mover.Opponent()

	board := that.Board
	board[move.Row][move.Col] = mover

	for _, dir := range Directions {
		r, c := move.Row+dir.DRow, move.Col+dir.DCol
		run := 0
		for IsOnBoard(r, c) && board[r][c] == opponent {
			r, c = r+dir.DRow, c+dir.DCol
			run++
		}

		if run == 0 || !IsOnBoard(r, c) || board[r][c] != mover {
			continue
		}

		for ; run > 0; run-- {
			r, c = r-dir.DRow, c-dir.DCol
			board[r][c] = mover
		}
	}

	return GameState{Board: board, Turn: opponent}
}

func (that GameState) StoneCount(color Color) int {
	count := 0
	for row := range that.Board {
		for _, cell := range that.Board[row] {
			if cell == color {
				count++
			}
		}
	}

	return count
}

// CornerCount - counts only the (7,7) corner. The other three corners are not scored.
func (that GameState) CornerCount(color Color) int {
	if that.Board[BoardSize-1][BoardSize-1] == color {
		return 1
	}

	return 0
}
