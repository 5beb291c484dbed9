package main

import (
	"context"
	"errors"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/config"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/handlers/console"
	"github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Round history is optional
	var roundRepo round.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		// Test Redis connection
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		repo, err := round.NewRedis(&round.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create round repository: %v", err)
		}
		roundRepo = repo
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.Seed,
	})

	controller, err := game.New(&game.Config{
		PlayerCount: cfg.Players,
		DiceCount:   cfg.Dice,
		MaxRolls:    cfg.MaxRolls,
		DiceRoller:  diceRoller,
	})
	if err != nil {
		log.Fatalf("Failed to create game controller: %v", err)
	}

	driver, err := console.New(&console.Config{
		Controller:    controller,
		Rounds:        cfg.Rounds,
		In:            os.Stdin,
		Out:           os.Stdout,
		RoundRepo:     roundRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create console driver: %v", err)
	}

	ctx, stop := interruptContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := driver.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("Game interrupted")
			return
		}
		log.Fatalf("Game failed: %v", err)
	}
}
