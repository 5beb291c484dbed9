package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_New(t *testing.T) {
	p := NewPlayer(2)

	assert.Equal(t, 2, p.Number())
	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 0, p.Wins())
	assert.Equal(t, 0, p.Losses())
	assert.Equal(t, 0, p.RollsUsed())
}

func TestPlayer_RecordRoll(t *testing.T) {
	p := NewPlayer(1)
	p.RecordRoll()
	p.RecordRoll()

	assert.Equal(t, 2, p.RollsUsed())
	assert.Equal(t, 1, p.RollsRemaining(3))
	p.RecordRoll()
	assert.Equal(t, 0, p.RollsRemaining(3))
	assert.Equal(t, 0, p.RollsRemaining(2), "remaining never goes negative")
}

func TestPlayer_SetScore(t *testing.T) {
	p := NewPlayer(1)
	p.SetScore(9)
	assert.Equal(t, 9, p.Score())

	p.SetScore(4)
	assert.Equal(t, 4, p.Score(), "score is replaced, not accumulated")

	p.SetScore(-3)
	assert.Equal(t, 0, p.Score())
}

func TestPlayer_ResetKeepsRecord(t *testing.T) {
	p := NewPlayer(1)
	p.SetScore(8)
	p.RecordRoll()
	p.AddWin()
	p.AddWin()
	p.AddLoss()

	p.Reset()

	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 0, p.RollsUsed())
	assert.Equal(t, 2, p.Wins())
	assert.Equal(t, 1, p.Losses())
}

func TestPlayer_String(t *testing.T) {
	p := NewPlayer(1)
	p.SetScore(23)
	p.AddWin()
	p.AddWin()
	p.AddLoss()

	assert.Equal(t, "Player 1: score=23, wins=2, losses=1", p.String())
}

func TestPlayer_Standing(t *testing.T) {
	p := NewPlayer(3)
	p.SetScore(5)
	p.RecordRoll()
	p.AddLoss()

	assert.Equal(t, Standing{PlayerNumber: 3, Score: 5, Losses: 1, RollsUsed: 1}, p.Standing())
}

func TestRound_Winners(t *testing.T) {
	r := &Round{
		Results: []*RoundResult{
			{PlayerNumber: 1, Score: 7, Won: true},
			{PlayerNumber: 2, Score: 3, Lost: true},
			{PlayerNumber: 3, Score: 7, Won: true},
		},
	}
	assert.Equal(t, []int{1, 3}, r.Winners())
	assert.Nil(t, (&Round{Tied: true}).Winners())
}
