package entity

import "time"

// Snapshot is one state message from the server, with the board in our orientation.
type Snapshot struct {
	Turn   Color      `json:"turn"`
	Round  int        `json:"round"`
	Clocks [2]float64 `json:"clocks"`
	Board  Board      `json:"board"`
}

func (that Snapshot) IsGameOver() bool {
	return that.Turn == GameOver
}

func (that Snapshot) State() GameState {
	return NewGameState(that.Board, that.Turn)
}

// MoveRecord is one decision of the agent as kept in the move journal.
type MoveRecord struct {
	GameID     string        `json:"game_id"`
	Round      int           `json:"round"`
	Player     Color         `json:"player"`
	Board      Board         `json:"board"`
	Move       Move          `json:"move"`
	Strategy   string        `json:"strategy"`
	Depth      int           `json:"depth"`
	Score      float64       `json:"score"`
	Nodes      int           `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	RecordedAt time.Time     `json:"recorded_at"`
}
