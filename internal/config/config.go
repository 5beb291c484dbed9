package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings for a console table
type Config struct {
	// Table setup
	Players  int `env:"SCC_PLAYERS"   envDefault:"2"`
	Dice     int `env:"SCC_DICE"      envDefault:"5"`
	MaxRolls int `env:"SCC_MAX_ROLLS" envDefault:"3"`
	Rounds   int `env:"SCC_ROUNDS"    envDefault:"3"`

	// Seed fixes the dice for a reproducible game. Zero means time based.
	Seed int64 `env:"SCC_SEED"`

	// Round history is only recorded when RedisAddr is set
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the table limits
func (c *Config) Validate() error {
	switch {
	case c.Players < game.MinPlayers:
		return fmt.Errorf("SCC_PLAYERS must be at least %d, got %d", game.MinPlayers, c.Players)
	case c.Dice < game.MinDice || c.Dice > game.MaxDice:
		return fmt.Errorf("SCC_DICE must be between %d and %d, got %d", game.MinDice, game.MaxDice, c.Dice)
	case c.MaxRolls < 1:
		return fmt.Errorf("SCC_MAX_ROLLS must be at least 1, got %d", c.MaxRolls)
	case c.Rounds < 1:
		return fmt.Errorf("SCC_ROUNDS must be at least 1, got %d", c.Rounds)
	}
	return nil
}
