package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round Repository

import "context"

// Repository defines the interface for round history persistence
type Repository interface {
	// SaveRound records a completed round and tallies its wins and losses
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRoundsForGame retrieves every round of a game in round order
	GetRoundsForGame(ctx context.Context, input *GetRoundsForGameInput) (*GetRoundsForGameOutput, error)

	// GetStandings returns the cumulative wins and losses of a game
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)
}
