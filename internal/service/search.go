package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

const DefaultDepth = 4

var ErrNoPlayerToMove = errors.New("state has no player to move")

type NodeType int

const (
	Maximizing NodeType = iota
	Minimizing
)

func (that NodeType) next() NodeType {
	if that == Maximizing {
		return Minimizing
	}

	return Maximizing
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes   int `json:"nodes"`
	Leaves  int `json:"leaves"`
	Cutoffs int `json:"cutoffs"`
}

type Result struct {
	Move  entity.Move `json:"move"`
	Score float64     `json:"score"`
	Stats Stats       `json:"stats"`
}

// Search is a fixed-depth minimax with alpha-beta pruning. It holds no state between calls.
type Search struct {
	Strategy Strategy
	MaxDepth int
}

type walker struct {
	ctx      context.Context
	strategy Strategy
	maxDepth int
	mover    entity.Color
	stats    Stats
}

// BestMove - searches every legal root move of the side to move. A move replaces the current
// best only when it scores strictly higher, so the earliest of equal moves wins.
func (that Search) BestMove(ctx context.Context, state entity.GameState) (Result, error) {
	if !state.Turn.IsPlayer() {
		return Result{}, fmt.Errorf("%w: turn %d", ErrNoPlayerToMove, state.Turn)
	}

	moves := state.ValidMoves(entity.Self)
	if len(moves) == 0 {
		return Result{}, apperror.ErrNoAvailableMoves
	}

	w := that.newWalker(ctx, state.Turn)

	alpha, beta := math.Inf(-1), math.Inf(1)
	best := moves[0]
	for _, move := range moves {
		score, err := w.minimax(state.ApplyMove(move, state.Turn), 1, Minimizing, alpha, beta)
		if err != nil {
			return Result{}, fmt.Errorf("search aborted: %w", err)
		}

		if score > alpha {
			alpha = score
			best = move
		}
	}

	return Result{Move: best, Score: alpha, Stats: w.stats}, nil
}

// Minimax - scores state at the given ply from mover's point of view with a full window.
func (that Search) Minimax(ctx context.Context, state entity.GameState, depth int, node NodeType, mover entity.Color) (float64, error) {
	w := that.newWalker(ctx, mover)

	return w.minimax(state, depth, node, math.Inf(-1), math.Inf(1))
}

func (that Search) newWalker(ctx context.Context, mover entity.Color) *walker {
	return &walker{
		ctx:      ctx,
		strategy: that.Strategy,
		maxDepth: that.MaxDepth,
		mover:    mover,
	}
}

func (that *walker) minimax(state entity.GameState, depth int, node NodeType, alpha, beta float64) (float64, error) {
	if err := that.ctx.Err(); err != nil {
		return 0, err
	}
	that.stats.Nodes++

	var moves []entity.Move
	if depth < that.maxDepth {
		moves = state.ValidMoves(entity.Self)
	}

	if len(moves) == 0 {
		that.stats.Leaves++
		return that.strategy.Evaluate(state, that.mover), nil
	}

	if node == Maximizing {
		best := math.Inf(-1)
		for _, move := range moves {
			score, err := that.minimax(state.ApplyMove(move, state.Turn), depth+1, node.next(), alpha, beta)
			if err != nil {
				return 0, err
			}

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				that.stats.Cutoffs++
				break
			}
		}

		return best, nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		score, err := that.minimax(state.ApplyMove(move, state.Turn), depth+1, node.next(), alpha, beta)
		if err != nil {
			return 0, err
		}

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			that.stats.Cutoffs++
			break
		}
	}

	return best, nil
}
