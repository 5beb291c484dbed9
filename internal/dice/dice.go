package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/shipcaptaincrew/internal/dice Roller

import (
	"math/rand"
	"time"
)

// Roller produces uniform die faces
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// randomRoller is the default Roller backed by math/rand
type randomRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *randomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}
	return r.random.Intn(sides) + 1
}
