package service

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

// Strategy selects the heuristic used to score search leaves.
type Strategy int

const (
	StoneDifferential Strategy = iota
	MobilityDifferential
	CornerDifferential
	StabilityDifferential
	WeightedBlend
)

var strategyNames = map[Strategy]string{
	StoneDifferential:     "stones",
	MobilityDifferential:  "mobility",
	CornerDifferential:    "corners",
	StabilityDifferential: "stability",
	WeightedBlend:         "weighted",
}

func ParseStrategy(mode int) (Strategy, error) {
	strategy := Strategy(mode)
	if _, ok := strategyNames[strategy]; !ok {
		return 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidMode, mode)
	}

	return strategy, nil
}

func (that Strategy) String() string {
	if name, ok := strategyNames[that]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(that))
}

// Features holds the raw mover/opponent inputs of the heuristics.
type Features struct {
	MoverStones       int
	OpponentStones    int
	MoverMobility     int
	OpponentMobility  int
	MoverCorners      int
	OpponentCorners   int
	MoverStability    int
	OpponentStability int
}

// Score - turns features into a utility for the mover.
func (that Strategy) Score(features Features) float64 {
	switch that {
	case StoneDifferential:
		return stoneEval(features.MoverStones, features.OpponentStones)
	case MobilityDifferential:
		return guardedEval(features.MoverMobility, features.OpponentMobility)
	case CornerDifferential:
		return guardedEval(features.MoverCorners, features.OpponentCorners)
	case StabilityDifferential:
		return guardedEval(features.MoverStability, features.OpponentStability)
	case WeightedBlend:
		return 0.3*stoneEval(features.MoverStones, features.OpponentStones) +
			0.1*guardedEval(features.MoverMobility, features.OpponentMobility) +
			0.2*guardedEval(features.MoverCorners, features.OpponentCorners) +
			0.4*guardedEval(features.MoverStability, features.OpponentStability)
	default:
		return 0
	}
}

// stoneEval is unguarded: a reachable position always has stones on the board.
func stoneEval(own, other int) float64 {
	return 100 * float64(own-other) / float64(own+other)
}

func guardedEval(own, other int) float64 {
	if own+other == 0 {
		return 0
	}

	return 100 * float64(own-other) / float64(own+other)
}

// Collect - gathers the features the strategy needs; the rest stay zero.
func (that Strategy) Collect(state entity.GameState, mover entity.Color) Features {
	var features Features
	opponent := mover.Opponent()

	if that == StoneDifferential || that == WeightedBlend {
		features.MoverStones = state.StoneCount(mover)
		features.OpponentStones = state.StoneCount(opponent)
	}

	if that == MobilityDifferential || that == WeightedBlend {
		own, other := entity.Self, entity.Opponent
		if state.Turn != mover {
			own, other = other, own
		}
		features.MoverMobility = len(state.ValidMoves(own))
		features.OpponentMobility = len(state.ValidMoves(other))
	}

	if that == CornerDifferential || that == WeightedBlend {
		features.MoverCorners = state.CornerCount(mover)
		features.OpponentCorners = state.CornerCount(opponent)
	}

	if that == StabilityDifferential || that == WeightedBlend {
		features.MoverStability = state.StabilityScore(mover)
		features.OpponentStability = state.StabilityScore(opponent)
	}

	return features
}

// Evaluate - scores state for mover.
func (that Strategy) Evaluate(state entity.GameState, mover entity.Color) float64 {
	return that.Score(that.Collect(state, mover))
}
