package round

import "github.com/KirkDiggler/shipcaptaincrew/internal/models"

// SaveRoundInput contains parameters for saving a round
type SaveRoundInput struct {
	Round *models.Round
}

// GetRoundsForGameInput contains parameters for retrieving the rounds of a game
type GetRoundsForGameInput struct {
	GameID string
}

// GetRoundsForGameOutput contains the rounds of a game ordered by round number
type GetRoundsForGameOutput struct {
	Rounds []*models.Round
}

// GetStandingsInput contains parameters for retrieving a game's standings
type GetStandingsInput struct {
	GameID string
}

// PlayerRecord is one player's tally across the recorded rounds
type PlayerRecord struct {
	PlayerNumber int
	Wins         int
	Losses       int
}

// GetStandingsOutput contains the standings ordered by player number
type GetStandingsOutput struct {
	Records []*PlayerRecord
}
