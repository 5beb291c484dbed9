package game

import (
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// Controller defines the operations a driver uses to run a game
type Controller interface {
	// StartNewGame reorders players by last round's score and resets them
	StartNewGame()

	// CurrentPlayerCanRoll reports whether the current player has rolls left and unheld dice
	CurrentPlayerCanRoll() bool

	// RollDice spends one roll and rolls every unheld die
	RollDice() error

	// AutoHold holds one die showing face unless one is already held
	AutoHold(face int) bool

	// PlayerHold holds the die with the given id
	PlayerHold(id rune) error

	// IsHoldingDie reports whether any held die shows face
	IsHoldingDie(face int) bool

	// ScoreCurrentPlayer scores the held Ship, Captain and Crew plus cargo
	ScoreCurrentPlayer() error

	// NextPlayer moves to the next player who has not played this round
	NextPlayer() bool

	// GetCurrentPlayerNumber returns the seat of the current player
	GetCurrentPlayerNumber() int

	// GetCurrentPlayerScore returns the current player's round score
	GetCurrentPlayerScore() int

	// GetDiceResults renders every die in order
	GetDiceResults() string

	// GetGameResults awards the round and renders every player
	GetGameResults() string

	// GetFinalWinner renders the player with the most wins
	GetFinalWinner() string

	// ResetDice releases every die
	ResetDice()

	// ResetPlayers clears every player's round score and rolls
	ResetPlayers()

	// Dice returns a snapshot of the dice in order
	Dice() []dice.State

	// Players returns a snapshot of the players in order
	Players() []models.Standing

	// LastRoundResults returns the outcome of the last awarded round
	LastRoundResults() []*models.RoundResult

	// MaxRolls returns the per-turn roll budget
	MaxRolls() int

	// CurrentPlayerRollsUsed returns the rolls the current player has taken this turn
	CurrentPlayerRollsUsed() int
}
