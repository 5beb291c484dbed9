package dice_test

import (
	"testing"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice/mocks"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DieTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller
	die        *dice.Die
}

func (s *DieTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)
	s.die = dice.NewDie('A', dice.DefaultSides, s.mockRoller)
}

func (s *DieTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDieTestSuite(t *testing.T) {
	suite.Run(t, new(DieTestSuite))
}

func (s *DieTestSuite) TestNewDie() {
	s.Equal('A', s.die.ID())
	s.Equal(6, s.die.Sides())
	s.Equal(1, s.die.Face())
	s.False(s.die.IsHeld())
}

func (s *DieTestSuite) TestNewDie_InvalidSidesDefaultsToSix() {
	die := dice.NewDie('B', 1, s.mockRoller)
	s.Equal(dice.DefaultSides, die.Sides())
}

func (s *DieTestSuite) TestRoll_UsesRoller() {
	s.mockRoller.EXPECT().Roll(6).Return(4)

	s.die.Roll()

	s.Equal(4, s.die.Face())
}

func (s *DieTestSuite) TestRoll_HeldDieKeepsFace() {
	s.mockRoller.EXPECT().Roll(6).Return(5)
	s.die.Roll()
	s.die.Hold()

	// A held die must not consult the roller
	s.die.Roll()
	s.die.Roll()

	s.Equal(5, s.die.Face())
	s.True(s.die.IsHeld())
}

func (s *DieTestSuite) TestHold_Idempotent() {
	s.die.Hold()
	s.die.Hold()
	s.True(s.die.IsHeld())
}

func (s *DieTestSuite) TestReset_RestoresRollability() {
	s.mockRoller.EXPECT().Roll(6).Return(3)
	s.die.Hold()
	s.die.Reset()

	s.False(s.die.IsHeld())
	s.die.Roll()
	s.Equal(3, s.die.Face())
}

func (s *DieTestSuite) TestString() {
	s.mockRoller.EXPECT().Roll(6).Return(6)
	s.die.Roll()
	s.Equal("[A:6]", s.die.String())

	s.die.Hold()
	s.Equal("[A:6*]", s.die.String())
}

func (s *DieTestSuite) TestState() {
	s.die.Hold()
	s.Equal(dice.State{ID: 'A', Face: 1, Held: true}, s.die.State())
}

func TestRoller_SeededStaysInRange(t *testing.T) {
	roller := dice.New(&dice.Config{Seed: 42})
	for i := 0; i < 1000; i++ {
		v := roller.Roll(6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
	}
}

func TestRoller_SameSeedSameSequence(t *testing.T) {
	a := dice.New(&dice.Config{Seed: 7})
	b := dice.New(&dice.Config{Seed: 7})
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Roll(6), b.Roll(6))
	}
}

func TestRoller_NilConfigAndBadSides(t *testing.T) {
	roller := dice.New(nil)
	v := roller.Roll(0)
	require.GreaterOrEqual(t, v, 1)
	require.LessOrEqual(t, v, dice.DefaultSides)
}
