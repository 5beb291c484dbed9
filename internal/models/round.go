package models

import (
	"time"
)

// RoundResult is one player's outcome in a completed round
type RoundResult struct {
	// PlayerNumber is the seat of the player
	PlayerNumber int

	// Score is what the player earned this round
	Score int

	// Won is set for every player tied at the top score
	Won bool

	// Lost is set for everyone else
	Lost bool
}

// Round is the history record of a completed round
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// GameID groups the rounds of one table
	GameID string

	// Number is the 1-based round within the game
	Number int

	// Results holds one entry per player ordered by player number
	Results []*RoundResult

	// Tied is true when every player scored the same and nobody was awarded
	Tied bool

	// CompletedAt is when the round results were computed
	CompletedAt time.Time
}

// Winners returns the player numbers that won the round
func (r *Round) Winners() []int {
	var winners []int
	for _, result := range r.Results {
		if result.Won {
			winners = append(winners, result.PlayerNumber)
		}
	}
	return winners
}
