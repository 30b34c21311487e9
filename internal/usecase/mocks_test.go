package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
	"github.com/rocketscienceinc/reversi-agent/internal/service"
)

type mockConn struct {
	mock.Mock
}

func (m *mockConn) Handshake(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockConn) ReadState(ctx context.Context) (entity.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.Snapshot), args.Error(1)
}

func (m *mockConn) SendMove(ctx context.Context, move entity.Move) error {
	args := m.Called(ctx, move)
	return args.Error(0)
}

type mockBot struct {
	mock.Mock
}

func (m *mockBot) ChooseMove(ctx context.Context, state entity.GameState, settings service.Settings) (*service.Decision, error) {
	args := m.Called(ctx, state, settings)
	decision, _ := args.Get(0).(*service.Decision)
	return decision, args.Error(1)
}

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Append(ctx context.Context, record *entity.MoveRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
