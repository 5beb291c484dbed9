package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix      = "round:"
	gameRoundsKeyPrefix = "game_rounds:"
	gameWinsKeyPrefix   = "game_wins:"
	gameLossesKeyPrefix = "game_losses:"
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRound persists a round and bumps the game's win and loss tallies
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	round := input.Round

	if round.ID == "" {
		return errors.New("round ID cannot be empty")
	}

	if round.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	key := roundKey(round.ID)

	// The round key is watched so a concurrent first save cannot tally twice
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, roundJSON, 0)

			// Rounds are ordered by their number within the game
			pipe.ZAdd(ctx, gameRoundsKey(round.GameID), redis.Z{
				Score:  float64(round.Number),
				Member: round.ID,
			})

			// A round counts toward the standings once however often it is saved
			if exists > 0 {
				return nil
			}

			for _, result := range round.Results {
				field := strconv.Itoa(result.PlayerNumber)
				switch {
				case result.Won:
					pipe.HIncrBy(ctx, gameWinsKey(round.GameID), field, 1)
				case result.Lost:
					pipe.HIncrBy(ctx, gameLossesKey(round.GameID), field, 1)
				}
			}
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRoundsForGame retrieves every round of a game in round order
func (r *redisRepository) GetRoundsForGame(ctx context.Context, input *GetRoundsForGameInput) (*GetRoundsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	roundIDs, err := r.client.ZRange(ctx, gameRoundsKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round IDs for game: %w", err)
	}

	if len(roundIDs) == 0 {
		return &GetRoundsForGameOutput{
			Rounds: []*models.Round{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(roundIDs))
	for _, roundID := range roundIDs {
		cmds = append(cmds, pipe.Get(ctx, roundKey(roundID)))
	}

	// redis.Nil for a missing round is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}

	rounds := make([]*models.Round, 0, len(roundIDs))
	for i, cmd := range cmds {
		roundJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get round %s: %w", roundIDs[i], err)
		}

		var round models.Round
		if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %s: %w", roundIDs[i], err)
		}

		rounds = append(rounds, &round)
	}

	return &GetRoundsForGameOutput{
		Rounds: rounds,
	}, nil
}

// GetStandings returns the cumulative wins and losses of a game
func (r *redisRepository) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	winsCmd := pipe.HGetAll(ctx, gameWinsKey(input.GameID))
	lossesCmd := pipe.HGetAll(ctx, gameLossesKey(input.GameID))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	records := make(map[int]*PlayerRecord)
	record := func(field string) (*PlayerRecord, error) {
		number, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid player number %q: %w", field, err)
		}
		if _, ok := records[number]; !ok {
			records[number] = &PlayerRecord{PlayerNumber: number}
		}
		return records[number], nil
	}

	for field, value := range winsCmd.Val() {
		rec, err := record(field)
		if err != nil {
			return nil, err
		}
		if rec.Wins, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid win count for player %d: %w", rec.PlayerNumber, err)
		}
	}

	for field, value := range lossesCmd.Val() {
		rec, err := record(field)
		if err != nil {
			return nil, err
		}
		if rec.Losses, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid loss count for player %d: %w", rec.PlayerNumber, err)
		}
	}

	output := &GetStandingsOutput{
		Records: make([]*PlayerRecord, 0, len(records)),
	}
	for _, rec := range records {
		output.Records = append(output.Records, rec)
	}
	sort.Slice(output.Records, func(i, j int) bool {
		return output.Records[i].PlayerNumber < output.Records[j].PlayerNumber
	})

	return output, nil
}

func roundKey(roundID string) string {
	return fmt.Sprintf("%s%s", roundKeyPrefix, roundID)
}

func gameRoundsKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameRoundsKeyPrefix, gameID)
}

func gameWinsKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameWinsKeyPrefix, gameID)
}

func gameLossesKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameLossesKeyPrefix, gameID)
}
