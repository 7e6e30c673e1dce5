package solver_test

import (
	"testing"

	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
	"github.com/corrodedhash/ballcube-go/pkg/solver"
	"github.com/corrodedhash/ballcube-go/pkg/state"
	"github.com/stretchr/testify/assert"
)

// TestCacheTransparency checks that evaluating the exact same (state, player, prune)
// twice through the same finder -- the second time necessarily served from the
// transposition table -- yields an identical verdict and chain to the first.
func TestCacheTransparency(t *testing.T) {
	checked := 0
	for trial := 0; trial < 30 && checked < 30; trial++ {
		b := board.Random()
		s := state.BuildFromBoard(b)
		steps := rules.RandomGame(b, s, board.Gold)
		if len(steps) == 0 {
			continue
		}

		f := solver.NewDFSWinFinder(b, board.Gold)
		mid := steps[len(steps)/2].State
		mover := board.Gold
		if (len(steps)/2)%2 == 1 {
			mover = board.Silver
		}

		first := f.Evaluate(mid, mover, true)
		second := f.Evaluate(mid, mover, true)

		assert.Equal(t, first.Kind, second.Kind)
		assert.Equal(t, first.Chain.Len(), second.Chain.Len())
		assert.Equal(t, first.Chain.Moves(), second.Chain.Moves())
		checked++
	}
}
