package entity

// IsStable - corners are stable; any other stone is stable when every ray from it
// to the edge is fully occupied, whatever the colors.
func (that GameState) IsStable(row, col int) bool {
	if isCorner(row, col) {
		return true
	}

	for _, dir := range Directions {
		for r, c := row, col; IsOnBoard(r, c); r, c = r+dir.DRow, c+dir.DCol {
			if that.Board[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

// IsUnstable - reports whether an adjacent opponent stone starts a ray that hits an
// empty cell before one of own's stones.
func (that GameState) IsUnstable(row, col int, own, opponent Color) bool {
	for _, dir := range Directions {
		r, c := row+dir.DRow, col+dir.DCol
		if !IsOnBoard(r, c) || that.Board[r][c] != opponent {
			continue
		}

		for ; IsOnBoard(r, c); r, c = r+dir.DRow, c+dir.DCol {
			if that.Board[r][c] == Empty {
				return true
			}
			if that.Board[r][c] == own {
				break
			}
		}
	}

	return false
}

// StabilityScore - +1 per stable stone, -1 per unstable one.
func (that GameState) StabilityScore(color Color) int {
	score := 0
	for row := range that.Board {
		for col, cell := range that.Board[row] {
			if cell != color {
				continue
			}

			switch {
			case that.IsStable(row, col):
				score++
			case that.IsUnstable(row, col, color, color.Opponent()):
				score--
			}
		}
	}

	return score
}
