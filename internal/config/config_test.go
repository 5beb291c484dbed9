package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SCC_PLAYERS", "SCC_DICE", "SCC_MAX_ROLLS", "SCC_ROUNDS", "SCC_SEED", "REDIS_ADDR", "REDIS_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, &Config{Players: 2, Dice: 5, MaxRolls: 3, Rounds: 3}, cfg)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCC_PLAYERS", "4")
	t.Setenv("SCC_SEED", "99")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCC_ROUNDS", "7")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCC_DICE=6\nSCC_ROUNDS=1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Dice)
	assert.Equal(t, 7, cfg.Rounds, "the environment wins over the file")
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "one player", key: "SCC_PLAYERS", value: "1"},
		{name: "two dice", key: "SCC_DICE", value: "2"},
		{name: "too many dice", key: "SCC_DICE", value: "27"},
		{name: "no rolls", key: "SCC_MAX_ROLLS", value: "0"},
		{name: "no rounds", key: "SCC_ROUNDS", value: "0"},
		{name: "not a number", key: "SCC_PLAYERS", value: "two"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestValidate_AgreesWithController(t *testing.T) {
	testCases := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{name: "fewest players and dice", cfg: Config{Players: game.MinPlayers, Dice: game.MinDice, MaxRolls: 1, Rounds: 1}, valid: true},
		{name: "most dice", cfg: Config{Players: game.MinPlayers, Dice: game.MaxDice, MaxRolls: 1, Rounds: 1}, valid: true},
		{name: "too few players", cfg: Config{Players: game.MinPlayers - 1, Dice: game.MinDice, MaxRolls: 1, Rounds: 1}},
		{name: "too few dice", cfg: Config{Players: game.MinPlayers, Dice: game.MinDice - 1, MaxRolls: 1, Rounds: 1}},
		{name: "too many dice", cfg: Config{Players: game.MinPlayers, Dice: game.MaxDice + 1, MaxRolls: 1, Rounds: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validateErr := tc.cfg.Validate()

			_, newErr := game.New(&game.Config{
				PlayerCount: tc.cfg.Players,
				DiceCount:   tc.cfg.Dice,
				MaxRolls:    tc.cfg.MaxRolls,
				DiceRoller:  dice.New(&dice.Config{Seed: 1}),
			})

			if tc.valid {
				assert.NoError(t, validateErr)
				assert.NoError(t, newErr)
				return
			}
			assert.Error(t, validateErr)
			assert.ErrorIs(t, newErr, game.ErrInvalidConfiguration)
		})
	}
}
