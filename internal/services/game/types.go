package game

import (
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
)

// Face values that must be held before any cargo scores
const (
	ShipFace    = 6
	CaptainFace = 5
	CrewFace    = 4
)

// Table limits
const (
	MinPlayers = 2
	MinDice    = 3

	// MaxDice keeps die ids within 'A'..'Z'
	MaxDice = 26

	// Standard table
	DefaultDiceCount = 5
	DefaultMaxRolls  = 3
)

// Config holds configuration for the game controller
type Config struct {
	// Number of players at the table
	PlayerCount int

	// Number of dice in play
	DiceCount int

	// Rolls each player gets per turn
	MaxRolls int

	// Randomness for every die
	DiceRoller dice.Roller
}
