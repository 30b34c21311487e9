package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

// Settings is everything a move decision depends on besides the position.
type Settings struct {
	Strategy Strategy
	Depth    int
}

type Decision struct {
	Result
	Settings Settings      `json:"-"`
	Elapsed  time.Duration `json:"elapsed"`
}

type BotService interface {
	ChooseMove(ctx context.Context, state entity.GameState, settings Settings) (*Decision, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// ChooseMove - runs one search for the side to move. A depth below 1 falls back to DefaultDepth.
func (that *botService) ChooseMove(ctx context.Context, state entity.GameState, settings Settings) (*Decision, error) {
	if settings.Depth < 1 {
		settings.Depth = DefaultDepth
	}

	search := Search{Strategy: settings.Strategy, MaxDepth: settings.Depth}

	started := time.Now()
	result, err := search.BestMove(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("bot failed to choose move: %w", err)
	}

	decision := &Decision{
		Result:   result,
		Settings: settings,
		Elapsed:  time.Since(started),
	}

	that.logger.Debug("move chosen",
		"turn", state.Turn,
		"row", result.Move.Row,
		"col", result.Move.Col,
		"score", result.Score,
		"strategy", settings.Strategy.String(),
		"depth", settings.Depth,
		"nodes", result.Stats.Nodes,
		"cutoffs", result.Stats.Cutoffs,
		"elapsed", decision.Elapsed,
	)

	return decision, nil
}
