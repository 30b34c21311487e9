package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
	"github.com/rocketscienceinc/reversi-agent/internal/service"
)

var (
	errConnReset = errors.New("connection reset")
	errRedisDown = errors.New("redis down")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func snapshotFor(turn entity.Color, round int) entity.Snapshot {
	return entity.Snapshot{Turn: turn, Round: round, Board: entity.NewOpeningBoard()}
}

func gameOver() entity.Snapshot {
	return entity.Snapshot{Turn: entity.GameOver}
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()
	settings := service.Settings{Strategy: service.WeightedBlend, Depth: 3}

	t.Run("Answers only on own turn and stops on game over", func(t *testing.T) {
		// Given: the server sends the opponent's turn, our turn, then game over
		conn := &mockConn{}
		bot := &mockBot{}
		journal := &mockJournal{}
		manager := NewGameManager(discardLogger(), conn, bot, journal, entity.Player2, settings)

		ours := snapshotFor(entity.Player2, 2)
		decision := &service.Decision{
			Result:   service.Result{Move: entity.Move{Row: 2, Col: 3}, Score: 10},
			Settings: settings,
		}

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(snapshotFor(entity.Player1, 1), nil).Once()
		conn.On("ReadState", mock.Anything).Return(ours, nil).Once()
		conn.On("ReadState", mock.Anything).Return(gameOver(), nil).Once()
		bot.On("ChooseMove", mock.Anything, ours.State(), settings).Return(decision, nil).Once()
		conn.On("SendMove", mock.Anything, entity.Move{Row: 2, Col: 3}).Return(nil).Once()
		journal.On("Append", mock.Anything, mock.MatchedBy(func(record *entity.MoveRecord) bool {
			return record.GameID == manager.GameID() &&
				record.Round == 2 &&
				record.Player == entity.Player2 &&
				record.Move == decision.Move &&
				record.Strategy == "weighted" &&
				record.Depth == 3
		})).Return(nil).Once()

		// When: playing the game
		err := manager.Play(ctx)

		// Then: exactly one move is sent and recorded
		require.NoError(t, err)
		conn.AssertExpectations(t)
		bot.AssertExpectations(t)
		journal.AssertExpectations(t)
	})

	t.Run("Journal failure does not stop the game", func(t *testing.T) {
		// Given: a journal that always fails
		conn := &mockConn{}
		bot := &mockBot{}
		journal := &mockJournal{}
		manager := NewGameManager(discardLogger(), conn, bot, journal, entity.Player1, settings)

		decision := &service.Decision{Result: service.Result{Move: entity.Move{Row: 2, Col: 4}}, Settings: settings}

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(snapshotFor(entity.Player1, 1), nil).Once()
		conn.On("ReadState", mock.Anything).Return(gameOver(), nil).Once()
		bot.On("ChooseMove", mock.Anything, mock.Anything, settings).Return(decision, nil).Once()
		conn.On("SendMove", mock.Anything, decision.Move).Return(nil).Once()
		journal.On("Append", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		// When: playing
		err := manager.Play(ctx)

		// Then: the game still ends normally
		require.NoError(t, err)
		conn.AssertExpectations(t)
	})

	t.Run("Handshake failure", func(t *testing.T) {
		conn := &mockConn{}
		manager := NewGameManager(discardLogger(), conn, &mockBot{}, &mockJournal{}, entity.Player1, settings)

		conn.On("Handshake", mock.Anything).Return(errConnReset).Once()

		err := manager.Play(ctx)

		require.ErrorIs(t, err, errConnReset)
	})

	t.Run("Read failure is fatal", func(t *testing.T) {
		// Given: a connection that breaks after the handshake
		conn := &mockConn{}
		manager := NewGameManager(discardLogger(), conn, &mockBot{}, &mockJournal{}, entity.Player1, settings)

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(entity.Snapshot{}, apperror.ErrMalformedMessage).Once()

		// When: playing
		err := manager.Play(ctx)

		// Then: the transport error is returned
		require.ErrorIs(t, err, apperror.ErrMalformedMessage)
	})

	t.Run("Asked to move without legal moves", func(t *testing.T) {
		// Given: the bot has nothing to play
		conn := &mockConn{}
		bot := &mockBot{}
		manager := NewGameManager(discardLogger(), conn, bot, &mockJournal{}, entity.Player1, settings)

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(snapshotFor(entity.Player1, 5), nil).Once()
		bot.On("ChooseMove", mock.Anything, mock.Anything, settings).Return(nil, apperror.ErrNoAvailableMoves).Once()

		// When: playing
		err := manager.Play(ctx)

		// Then: the game stops with the bot's error and nothing is sent
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		conn.AssertNotCalled(t, "SendMove", mock.Anything, mock.Anything)
	})

	t.Run("Unknown turn value", func(t *testing.T) {
		conn := &mockConn{}
		manager := NewGameManager(discardLogger(), conn, &mockBot{}, &mockJournal{}, entity.Player1, settings)

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(snapshotFor(entity.Color(7), 1), nil).Once()

		err := manager.Play(ctx)

		require.ErrorIs(t, err, ErrUnexpectedTurn)
	})

	t.Run("Real bot answers with a legal move", func(t *testing.T) {
		// Given: the real search behind the manager
		conn := &mockConn{}
		journal := &mockJournal{}
		bot := service.NewBotService(discardLogger())
		manager := NewGameManager(discardLogger(), conn, bot, journal, entity.Player1, settings)

		ours := snapshotFor(entity.Player1, 1)
		legal := ours.State().ValidMoves(entity.Self)

		conn.On("Handshake", mock.Anything).Return(nil).Once()
		conn.On("ReadState", mock.Anything).Return(ours, nil).Once()
		conn.On("ReadState", mock.Anything).Return(gameOver(), nil).Once()
		conn.On("SendMove", mock.Anything, mock.MatchedBy(func(move entity.Move) bool {
			return slices.Contains(legal, move)
		})).Return(nil).Once()
		journal.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

		// When: playing
		err := manager.Play(ctx)

		// Then: one legal move was sent
		require.NoError(t, err)
		conn.AssertExpectations(t)
	})
}

func TestNewGameManager(t *testing.T) {
	first := NewGameManager(discardLogger(), &mockConn{}, &mockBot{}, &mockJournal{}, entity.Player1, service.Settings{})
	second := NewGameManager(discardLogger(), &mockConn{}, &mockBot{}, &mockJournal{}, entity.Player1, service.Settings{})

	assert.NotEmpty(t, first.GameID())
	assert.NotEqual(t, first.GameID(), second.GameID())
}
