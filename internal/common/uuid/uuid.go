package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid Generator

// Generator hands out identifiers for games and rounds
type Generator interface {
	NewID() string
}

// DefaultGenerator produces random (version 4) UUIDs
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new UUID string
func (g *DefaultGenerator) NewID() string {
	return uuid.NewString()
}
