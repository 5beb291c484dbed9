package models

import "fmt"

// Player keeps score for one seat at the table
type Player struct {
	// number is the 1-based seat assigned at construction
	number int

	// score is the current round's score
	score int

	// wins and losses accumulate across rounds
	wins   int
	losses int

	// rollsUsed counts rolls in the current turn
	rollsUsed int
}

// Standing is a read-only snapshot of a player
type Standing struct {
	PlayerNumber int
	Score        int
	Wins         int
	Losses       int
	RollsUsed    int
}

// NewPlayer creates a player with a clean scorecard
func NewPlayer(number int) *Player {
	return &Player{number: number}
}

// Number returns the player's seat
func (p *Player) Number() int {
	return p.number
}

// Score returns the current round's score
func (p *Player) Score() int {
	return p.score
}

// Wins returns the rounds won so far
func (p *Player) Wins() int {
	return p.wins
}

// Losses returns the rounds lost so far
func (p *Player) Losses() int {
	return p.losses
}

// RecordRoll counts one roll against the turn
func (p *Player) RecordRoll() {
	p.rollsUsed++
}

// RollsUsed returns the rolls taken this turn
func (p *Player) RollsUsed() int {
	return p.rollsUsed
}

// RollsRemaining returns how many of max rolls are left, never negative
func (p *Player) RollsRemaining(max int) int {
	if remaining := max - p.rollsUsed; remaining > 0 {
		return remaining
	}
	return 0
}

// SetScore replaces the round score. Negative values clamp to zero.
func (p *Player) SetScore(n int) {
	if n < 0 {
		n = 0
	}
	p.score = n
}

// AddWin counts a round win
func (p *Player) AddWin() {
	p.wins++
}

// AddLoss counts a round loss
func (p *Player) AddLoss() {
	p.losses++
}

// Reset clears the round score and roll count. Wins and losses are kept.
func (p *Player) Reset() {
	p.score = 0
	p.rollsUsed = 0
}

// Standing returns a snapshot of the player
func (p *Player) Standing() Standing {
	return Standing{
		PlayerNumber: p.number,
		Score:        p.score,
		Wins:         p.wins,
		Losses:       p.losses,
		RollsUsed:    p.rollsUsed,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %d: score=%d, wins=%d, losses=%d", p.number, p.score, p.wins, p.losses)
}
