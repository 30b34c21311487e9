package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi-agent/internal/config"
	"github.com/rocketscienceinc/reversi-agent/internal/repository"
	"github.com/rocketscienceinc/reversi-agent/internal/repository/storage"
	"github.com/rocketscienceinc/reversi-agent/internal/service"
	"github.com/rocketscienceinc/reversi-agent/internal/transport/tcp"
	"github.com/rocketscienceinc/reversi-agent/internal/usecase"
)

// RunApp - connects to the game server and plays one game.
func RunApp(logger *slog.Logger, conf *config.Config, args *config.Args) error {
	log := logger.With("component", "app")

	strategy, err := service.ParseStrategy(args.Mode)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	journal := repository.NewNopJournal()
	if conf.Journal.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		journal = repository.NewMoveJournal(redisStorage)
	}

	addr := args.ServerAddress(conf.BasePort)
	log.Info("Connecting to game server", "addr", addr)

	client, err := tcp.Dial(ctx, logger, addr)
	if err != nil {
		return fmt.Errorf("could not connect to game server: %w", err)
	}

	defer func() {
		if err := client.Close(); err != nil {
			log.Error("could not close connection", "error", err)
		}
	}()

	bot := service.NewBotService(logger)
	settings := service.Settings{Strategy: strategy, Depth: conf.SearchDepth}
	gameManager := usecase.NewGameManager(logger, client, bot, journal, args.Player, settings)

	if err = gameManager.Play(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
