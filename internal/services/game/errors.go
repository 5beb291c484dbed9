package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidConfiguration GameError = "invalid game configuration"
	ErrUnknownDie           GameError = "unknown die"
	ErrIllegalTransition    GameError = "illegal turn transition"
)
