package rules_test

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

func TestMoveCheckerEnumeration(t *testing.T) {
	b := fixtureBoard(t)
	mc := rules.NewMoveChecker(b)
	s := state.BuildFromBoard(b)

	assert.Len(t, mc.Moves(s, board.Gold), 6)
	assert.Len(t, mc.Moves(s, board.Silver), 6)

	s.ShiftGate(b, 0, 0)
	s.ShiftGate(b, 0, 0)
	s.ShiftGate(b, 0, 0)
	assert.Len(t, mc.Moves(s, board.Silver), 5)
}

func TestWinningCheckerNone(t *testing.T) {
	b := fixtureBoard(t)
	s := state.BuildFromBoard(b)
	wc := rules.NewWinningChecker(b)
	assert.Equal(t, rules.NoWinner, wc.Won(s))
}

func TestWinningCheckerRandomGameDecided(t *testing.T) {
	for i := 0; i < 25; i++ {
		b := board.Random()
		wc := rules.NewWinningChecker(b)

		s := state.BuildFromBoard(b)
		steps := rules.RandomGame(b, s, board.Gold)
		require.NotEmpty(t, steps)

		final := steps[len(steps)-1].State
		w := wc.Won(final)
		assert.NotEqual(t, rules.NoWinner, w)
	}
}
