package entity

const (
	BoardSize = 8

	// GameOver is the turn value the server sends once the game has ended.
	GameOver Color = -999
)

type Color int

const (
	Empty Color = iota
	Player1
	Player2
)

// Opponent - returns the other player's color.
func (that Color) Opponent() Color {
	return 3 - that
}

func (that Color) IsPlayer() bool {
	return that == Player1 || that == Player2
}

// Perspective selects whose captures are checked: the side to move or its opponent.
type Perspective int

const (
	Self Perspective = iota
	Opponent
)

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Direction struct {
	DRow int
	DCol int
}

var (
	Directions = [8]Direction{
		{-1, 0},
		{-1, 1},
		{0, 1},
		{1, 1},
		{1, 0},
		{1, -1},
		{0, -1},
		{-1, -1},
	}

	corners = [4]Move{{0, 0}, {0, BoardSize - 1}, {BoardSize - 1, 0}, {BoardSize - 1, BoardSize - 1}}
)

// Board is a plain array so that assignment copies every cell.
type Board [BoardSize][BoardSize]Color

// NewOpeningBoard - returns the standard position with the four center cells split 2-2.
func NewOpeningBoard() Board {
	var board Board
	board[3][3], board[4][4] = Player1, Player1
	board[3][4], board[4][3] = Player2, Player2

	return board
}

// FlipRows - mirrors the board vertically, row 0 becomes row 7.
func (that Board) FlipRows() Board {
	var flipped Board
	for row := range that {
		flipped[BoardSize-1-row] = that[row]
	}

	return flipped
}

func IsOnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// MirrorRow - converts a row index between the server's convention and ours.
func MirrorRow(row int) int {
	return BoardSize - 1 - row
}

func isCorner(row, col int) bool {
	for _, corner := range corners {
		if corner.Row == row && corner.Col == col {
			return true
		}
	}

	return false
}
