package game

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

var _ Controller = (*controller)(nil)

// controller implements the Controller interface
type controller struct {
	players  []*models.Player
	dice     []*dice.Die
	maxRolls int

	// current is nil until the first StartNewGame
	current *models.Player

	// played holds the numbers of players who have rolled this round
	played map[int]bool

	// settled is set once the round's wins and losses are awarded
	settled   bool
	lastRound []*models.RoundResult
}

// New creates a new game controller
func New(cfg *Config) (*controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrInvalidConfiguration)
	}

	if cfg.PlayerCount < MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidConfiguration, MinPlayers, cfg.PlayerCount)
	}

	if cfg.DiceCount < MinDice || cfg.DiceCount > MaxDice {
		return nil, fmt.Errorf("%w: dice count must be between %d and %d, got %d", ErrInvalidConfiguration, MinDice, MaxDice, cfg.DiceCount)
	}

	if cfg.MaxRolls < 1 {
		return nil, fmt.Errorf("%w: max rolls must be positive, got %d", ErrInvalidConfiguration, cfg.MaxRolls)
	}

	if cfg.DiceRoller == nil {
		return nil, fmt.Errorf("%w: dice roller cannot be nil", ErrInvalidConfiguration)
	}

	players := make([]*models.Player, 0, cfg.PlayerCount)
	for i := 1; i <= cfg.PlayerCount; i++ {
		players = append(players, models.NewPlayer(i))
	}

	dieSet := make([]*dice.Die, 0, cfg.DiceCount)
	for i := 0; i < cfg.DiceCount; i++ {
		dieSet = append(dieSet, dice.NewDie(rune('A'+i), dice.DefaultSides, cfg.DiceRoller))
	}

	return &controller{
		players:  players,
		dice:     dieSet,
		maxRolls: cfg.MaxRolls,
		played:   make(map[int]bool, cfg.PlayerCount),
	}, nil
}

// StartNewGame puts last round's top scorer first and resets everyone
func (c *controller) StartNewGame() {
	// Stable so that ties keep their previous order
	slices.SortStableFunc(c.players, func(a, b *models.Player) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	c.current = c.players[0]

	c.ResetPlayers()
	c.ResetDice()

	c.played = make(map[int]bool, len(c.players))
	c.settled = false
	c.lastRound = nil
}

// ResetDice releases every die
func (c *controller) ResetDice() {
	for _, d := range c.dice {
		d.Reset()
	}
}

// ResetPlayers clears every player's round score and rolls
func (c *controller) ResetPlayers() {
	for _, p := range c.players {
		p.Reset()
	}
}

// CurrentPlayerCanRoll reports whether the current player has rolls left and unheld dice
func (c *controller) CurrentPlayerCanRoll() bool {
	if c.current == nil {
		return false
	}
	return c.current.RollsUsed() < c.maxRolls && !c.allDiceHeld()
}

// RollDice spends one roll and rolls every unheld die
func (c *controller) RollDice() error {
	if !c.CurrentPlayerCanRoll() {
		if c.current == nil {
			return fmt.Errorf("%w: no round in progress", ErrIllegalTransition)
		}
		return fmt.Errorf("%w: player %d cannot roll", ErrIllegalTransition, c.current.Number())
	}

	c.current.RecordRoll()
	c.played[c.current.Number()] = true

	for _, d := range c.dice {
		d.Roll()
	}

	return nil
}

// AutoHold holds one die showing face unless one is already held
func (c *controller) AutoHold(face int) bool {
	if c.IsHoldingDie(face) {
		return true
	}

	for _, d := range c.dice {
		if !d.IsHeld() && d.Face() == face {
			d.Hold()
			return true
		}
	}

	return false
}

// PlayerHold holds the die with the given id. Holding a held die is a no-op.
func (c *controller) PlayerHold(id rune) error {
	id = unicode.ToUpper(id)
	for _, d := range c.dice {
		if d.ID() == id {
			d.Hold()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDie, id)
}

// IsHoldingDie reports whether any held die shows face
func (c *controller) IsHoldingDie(face int) bool {
	return c.heldDie(face) != nil
}

// ScoreCurrentPlayer sets the current player's score from the held dice
func (c *controller) ScoreCurrentPlayer() error {
	if c.current == nil {
		return fmt.Errorf("%w: no round in progress", ErrIllegalTransition)
	}

	ship := c.heldDie(ShipFace)
	captain := c.heldDie(CaptainFace)
	crew := c.heldDie(CrewFace)

	if ship == nil || captain == nil || crew == nil {
		c.current.SetScore(0)
		return nil
	}

	// Everything that is not the Ship, Captain or Crew is cargo
	cargo := 0
	for _, d := range c.dice {
		if d == ship || d == captain || d == crew {
			continue
		}
		cargo += d.Face()
	}
	c.current.SetScore(cargo)

	return nil
}

// NextPlayer moves to the first player in order who has not played this round
func (c *controller) NextPlayer() bool {
	if c.current == nil {
		return false
	}

	for _, p := range c.players {
		if !c.played[p.Number()] {
			c.current = p
			return true
		}
	}
	return false
}

// GetCurrentPlayerNumber returns the seat of the current player, or 0 before the first round
func (c *controller) GetCurrentPlayerNumber() int {
	if c.current == nil {
		return 0
	}
	return c.current.Number()
}

// GetCurrentPlayerScore returns the current player's round score
func (c *controller) GetCurrentPlayerScore() int {
	if c.current == nil {
		return 0
	}
	return c.current.Score()
}

// CurrentPlayerRollsUsed returns the rolls the current player has taken this turn
func (c *controller) CurrentPlayerRollsUsed() int {
	if c.current == nil {
		return 0
	}
	return c.current.RollsUsed()
}

// GetDiceResults renders every die in order with no separator
func (c *controller) GetDiceResults() string {
	var b strings.Builder
	for _, d := range c.dice {
		b.WriteString(d.String())
	}
	return b.String()
}

// GetGameResults awards the round and renders every player, one per line
func (c *controller) GetGameResults() string {
	if !c.settled {
		c.lastRound = c.settleRound()
		c.settled = true
	}

	lines := make([]string, 0, len(c.players))
	for _, p := range c.players {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

// GetFinalWinner renders the player with the most wins. Ties go to the earlier seat in play order.
func (c *controller) GetFinalWinner() string {
	best := c.players[0]
	for _, p := range c.players[1:] {
		if p.Wins() > best.Wins() {
			best = p
		}
	}
	return best.String()
}

// Dice returns a snapshot of the dice in order
func (c *controller) Dice() []dice.State {
	states := make([]dice.State, 0, len(c.dice))
	for _, d := range c.dice {
		states = append(states, d.State())
	}
	return states
}

// Players returns a snapshot of the players in play order
func (c *controller) Players() []models.Standing {
	standings := make([]models.Standing, 0, len(c.players))
	for _, p := range c.players {
		standings = append(standings, p.Standing())
	}
	return standings
}

// LastRoundResults returns the outcome of the last awarded round
func (c *controller) LastRoundResults() []*models.RoundResult {
	return slices.Clone(c.lastRound)
}

// MaxRolls returns the per-turn roll budget
func (c *controller) MaxRolls() int {
	return c.maxRolls
}

// settleRound gives a win to everyone tied at the top and a loss to the rest.
// A round where everyone scored the same awards nothing.
func (c *controller) settleRound() []*models.RoundResult {
	top := c.players[0].Score()
	allTied := true
	for _, p := range c.players {
		if p.Score() > top {
			top = p.Score()
		}
		if p.Score() != c.players[0].Score() {
			allTied = false
		}
	}

	results := make([]*models.RoundResult, 0, len(c.players))
	for _, p := range c.players {
		result := &models.RoundResult{
			PlayerNumber: p.Number(),
			Score:        p.Score(),
		}

		if !allTied {
			if p.Score() == top {
				p.AddWin()
				result.Won = true
			} else {
				p.AddLoss()
				result.Lost = true
			}
		}

		results = append(results, result)
	}

	return results
}

func (c *controller) allDiceHeld() bool {
	for _, d := range c.dice {
		if !d.IsHeld() {
			return false
		}
	}
	return true
}

// heldDie returns the first held die showing face
func (c *controller) heldDie(face int) *dice.Die {
	for _, d := range c.dice {
		if d.IsHeld() && d.Face() == face {
			return d
		}
	}
	return nil
}
