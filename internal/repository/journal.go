package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type MoveJournal interface {
	Append(ctx context.Context, record *entity.MoveRecord) error
	ListByGameID(ctx context.Context, gameID string) ([]*entity.MoveRecord, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type dbJournal struct {
	client *redis.Client
}

func NewMoveJournal(client *redis.Client) MoveJournal {
	return &dbJournal{
		client: client,
	}
}

func movesKey(gameID string) string {
	return "game:" + gameID + ":moves"
}

// Append - pushes the record to the end of the game's move list.
func (that *dbJournal) Append(ctx context.Context, record *entity.MoveRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal move record: %w", err)
	}

	if err = that.client.RPush(ctx, movesKey(record.GameID), recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to append move record: %w", err)
	}

	return nil
}

// ListByGameID - returns the records of a game in the order they were appended.
func (that *dbJournal) ListByGameID(ctx context.Context, gameID string) ([]*entity.MoveRecord, error) {
	response, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list move records: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrGameNotFound
	}

	records := make([]*entity.MoveRecord, 0, len(response))
	for _, item := range response {
		var record entity.MoveRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move record: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func (that *dbJournal) DeleteByGameID(ctx context.Context, gameID string) error {
	if err := that.client.Del(ctx, movesKey(gameID)).Err(); err != nil {
		return fmt.Errorf("failed to delete move records: %w", err)
	}

	return nil
}

type nopJournal struct{}

// NewNopJournal - a journal that keeps nothing, used when journaling is disabled.
func NewNopJournal() MoveJournal {
	return nopJournal{}
}

func (nopJournal) Append(context.Context, *entity.MoveRecord) error {
	return nil
}

func (nopJournal) ListByGameID(context.Context, string) ([]*entity.MoveRecord, error) {
	return nil, ErrGameNotFound
}

func (nopJournal) DeleteByGameID(context.Context, string) error {
	return nil
}
