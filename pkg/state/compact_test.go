package state_test

import (
	"testing"

	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
	"github.com/corrodedhash/ballcube-go/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureBoard(t *testing.T) *board.Board {
	t.Helper()

	b := board.NewBuilder()
	b.GoldBalls = []uint8{0, 1, 2, 3}
	b.SilverBalls = []uint8{4, 5, 6, 7}
	b.SetHorizontal(0, true).SetHorizontal(1, false).SetHorizontal(2, true).SetHorizontal(3, false)

	gates := []board.Gate{
		{Owner: board.Silver, TopLeft: true, GateType: board.GateType3},
		{Owner: board.Gold, TopLeft: true, GateType: board.GateType3},
		{Owner: board.Gold, TopLeft: false, GateType: board.GateType3},
		{Owner: board.Gold, TopLeft: false, GateType: board.GateType0},
		{Owner: board.Gold, TopLeft: true, GateType: board.GateType0},
		{Owner: board.Silver, TopLeft: true, GateType: board.GateType1},
		{Owner: board.Silver, TopLeft: true, GateType: board.GateType0},
		{Owner: board.Silver, TopLeft: false, GateType: board.GateType1},
		{Owner: board.Gold, TopLeft: false, GateType: board.GateType0},
		{Owner: board.Gold, TopLeft: false, GateType: board.GateType3},
		{Owner: board.Silver, TopLeft: false, GateType: board.GateType2},
		{Owner: board.Silver, TopLeft: true, GateType: board.GateType2},
	}
	for i, g := range gates {
		b.SetGate(uint8(i/3), uint8(i%3), g)
	}

	brd, err := b.Finalize()
	require.NoError(t, err)
	return brd
}

// TestShifting exercises scenarios A and B from the solved end-to-end fixture.
func TestShifting(t *testing.T) {
	b := fixtureBoard(t)
	s := state.BuildFromBoard(b)

	assert.Equal(t, [9]uint8{0, 0, 0, 0, 0, 0, 0, 0, 4}, s.Depth())
	assert.Equal(t, uint64(0), s.GetGateBits()&0x1ff)
	assert.Equal(t, uint8(0), s.ShiftCount())

	s.ShiftGateRaw(b, 0, 0)
	assert.Equal(t, uint8(1), s.GetShift(0, 0))
	assert.Equal(t, uint8(1), s.ShiftCount())
	assert.Equal(t, uint64(0b0_0000_0100), s.GetGateBits()&0x1ff)

	s.DropBalls()
	assert.Equal(t, [9]uint8{0, 0, 1, 0, 0, 0, 0, 0, 4}, s.Depth())

	s.ShiftGate(b, 1, 2)
	assert.Equal(t, uint8(1), s.GetShift(1, 2))
	assert.Equal(t, uint8(2), s.ShiftCount())
	assert.Equal(t, [9]uint8{0, 0, 2, 0, 0, 0, 0, 0, 4}, s.Depth())

	s.ShiftGate(b, 2, 0)
	assert.Equal(t, uint8(1), s.GetShift(2, 0))
	assert.Equal(t, uint8(3), s.ShiftCount())
	assert.Equal(t, [9]uint8{0, 0, 3, 0, 0, 0, 0, 0, 4}, s.Depth())

	s.ShiftGate(b, 3, 2)
	assert.Equal(t, uint8(1), s.GetShift(3, 2))
	assert.Equal(t, uint8(4), s.ShiftCount())

	s.ShiftGate(b, 3, 2)
	assert.Equal(t, uint8(2), s.GetShift(3, 2))
	assert.Equal(t, uint8(5), s.ShiftCount())
	assert.Equal(t, [9]uint8{0, 0, 4, 0, 0, 0, 0, 0, 4}, s.Depth())
}

// TestStateCodecRoundTrip is property #2: for every state reached from a random board by
// a sequence of legal moves, decoding its key reproduces it exactly.
func TestStateCodecRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		startingPlayer := board.Gold
		if i%2 == 0 {
			startingPlayer = board.Silver
		}

		b := board.Random()
		initial := state.BuildFromBoard(b)

		check := func(s *state.Compact) {
			key := s.ToUint64()
			decoded := state.FromUint64(key, b)
			assert.True(t, s.Equals(*decoded))
		}
		check(initial)

		for p := 0; p < 100; p++ {
			for _, step := range rules.RandomGame(b, initial, startingPlayer) {
				check(step.State)
			}
		}
	}
}

func TestBallCountConservation(t *testing.T) {
	b := board.Random()
	s := state.BuildFromBoard(b)

	for _, step := range rules.RandomGame(b, s, board.Gold) {
		ones := 0
		bits := step.State.GetBallBits()
		for bits != 0 {
			ones += int(bits & 1)
			bits >>= 1
		}
		assert.Equal(t, 8, ones)
	}
}

func TestGravityFixedPoint(t *testing.T) {
	b := board.Random()
	s := state.BuildFromBoard(b)

	for _, step := range rules.RandomGame(b, s, board.Gold) {
		assert.Equal(t, uint64(0), step.State.GetBallBits()&step.State.GetGateBits())
	}
}
