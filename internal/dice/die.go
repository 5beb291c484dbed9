package dice

import "fmt"

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

// State is a read-only snapshot of a die
type State struct {
	ID   rune
	Face int
	Held bool
}

// Die is a single die that can be held between rolls
type Die struct {
	id     rune
	sides  int
	face   int
	held   bool
	roller Roller
}

// NewDie creates an unheld die showing 1
func NewDie(id rune, sides int, roller Roller) *Die {
	if sides < 2 {
		sides = DefaultSides
	}
	return &Die{
		id:     id,
		sides:  sides,
		face:   1,
		roller: roller,
	}
}

// Roll picks a new face unless the die is held
func (d *Die) Roll() {
	if d.held {
		return
	}
	d.face = d.roller.Roll(d.sides)
}

// Hold freezes the current face until Reset
func (d *Die) Hold() {
	d.held = true
}

// Reset releases the die. The face is kept.
func (d *Die) Reset() {
	d.held = false
}

// ID returns the die label
func (d *Die) ID() rune {
	return d.id
}

// Sides returns the number of faces
func (d *Die) Sides() int {
	return d.sides
}

// Face returns the value currently showing
func (d *Die) Face() int {
	return d.face
}

// IsHeld reports whether the die is excluded from rolls
func (d *Die) IsHeld() bool {
	return d.held
}

// State returns a snapshot of the die
func (d *Die) State() State {
	return State{ID: d.id, Face: d.face, Held: d.held}
}

// String renders the die as [A:6] or [A:6*] when held
func (d *Die) String() string {
	marker := ""
	if d.held {
		marker = "*"
	}
	return fmt.Sprintf("[%c:%d%s]", d.id, d.face, marker)
}
