package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
	"github.com/rocketscienceinc/reversi-agent/internal/service"
)

var ErrUnexpectedTurn = errors.New("server sent an unknown turn value")

type serverConn interface {
	Handshake(ctx context.Context) error
	ReadState(ctx context.Context) (entity.Snapshot, error)
	SendMove(ctx context.Context, move entity.Move) error
}

type botService interface {
	ChooseMove(ctx context.Context, state entity.GameState, settings service.Settings) (*service.Decision, error)
}

type moveJournal interface {
	Append(ctx context.Context, record *entity.MoveRecord) error
}

// GameManager runs the client side of one game: read a state, answer when it is our turn.
type GameManager struct {
	logger *slog.Logger

	conn    serverConn
	bot     botService
	journal moveJournal

	gameID   string
	player   entity.Color
	settings service.Settings
}

func NewGameManager(
	logger *slog.Logger,
	conn serverConn,
	bot botService,
	journal moveJournal,
	player entity.Color,
	settings service.Settings,
) *GameManager {
	gameID := uuid.NewString()

	return &GameManager{
		logger: logger.With("component", "game", "game_id", gameID, "player", int(player)),

		conn:    conn,
		bot:     bot,
		journal: journal,

		gameID:   gameID,
		player:   player,
		settings: settings,
	}
}

func (that *GameManager) GameID() string {
	return that.gameID
}

// Play - runs until the server announces the end of the game. The server is assumed never
// to ask for a move when we have none; if it does, the game stops with ErrNoAvailableMoves.
func (that *GameManager) Play(ctx context.Context) error {
	if err := that.conn.Handshake(ctx); err != nil {
		return fmt.Errorf("failed handshake: %w", err)
	}

	that.logger.Info("Game started", "strategy", that.settings.Strategy.String(), "depth", that.settings.Depth)

	moves := 0
	for {
		snapshot, err := that.conn.ReadState(ctx)
		if err != nil {
			return fmt.Errorf("failed read state: %w", err)
		}

		if snapshot.IsGameOver() {
			that.logger.Info("Game over", "moves", moves)
			return nil
		}

		if !snapshot.Turn.IsPlayer() {
			return fmt.Errorf("%w: %d", ErrUnexpectedTurn, snapshot.Turn)
		}

		if snapshot.Turn != that.player {
			continue
		}

		if err = that.takeTurn(ctx, snapshot); err != nil {
			return err
		}
		moves++
	}
}

func (that *GameManager) takeTurn(ctx context.Context, snapshot entity.Snapshot) error {
	decision, err := that.bot.ChooseMove(ctx, snapshot.State(), that.settings)
	if err != nil {
		return fmt.Errorf("failed choose move in round %d: %w", snapshot.Round, err)
	}

	if err = that.conn.SendMove(ctx, decision.Move); err != nil {
		return fmt.Errorf("failed send move: %w", err)
	}

	that.logger.Info("Move sent",
		"round", snapshot.Round,
		"row", decision.Move.Row,
		"col", decision.Move.Col,
		"score", decision.Score,
		"elapsed", decision.Elapsed,
	)

	that.record(ctx, snapshot, decision)

	return nil
}

// record - journal failures never stop the game.
func (that *GameManager) record(ctx context.Context, snapshot entity.Snapshot, decision *service.Decision) {
	record := &entity.MoveRecord{
		GameID:     that.gameID,
		Round:      snapshot.Round,
		Player:     that.player,
		Board:      snapshot.Board,
		Move:       decision.Move,
		Strategy:   decision.Settings.Strategy.String(),
		Depth:      decision.Settings.Depth,
		Score:      decision.Score,
		Nodes:      decision.Stats.Nodes,
		Elapsed:    decision.Elapsed,
		RecordedAt: time.Now().UTC(),
	}

	if err := that.journal.Append(ctx, record); err != nil {
		that.logger.Warn("could not record move", "error", err)
	}
}
