package island_test

import (
	"testing"

	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/island"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
	"github.com/corrodedhash/ballcube-go/pkg/state"
	"github.com/stretchr/testify/assert"
)

type optionalIsland interface {
	V() (island.Island, bool)
}

func assertOptionalBounded(t *testing.T, opt optionalIsland) {
	t.Helper()
	v, ok := opt.V()
	if !ok {
		return
	}
	assert.LessOrEqual(t, v.Distance, uint8(3))
	assert.Less(t, v.Layer, uint8(board.NumLayers))
	assert.Less(t, v.Gate, uint8(board.NumGatesPerLayer))
}

// TestMeasureSaturates exercises Measure over random boards and playouts, asserting the
// saturation contract: every reported distance is in [0,3] (4 means "no island found" and
// is represented by an absent Optional, never surfaced as a value).
func TestMeasureSaturates(t *testing.T) {
	for i := 0; i < 20; i++ {
		b := board.Random()
		s := state.BuildFromBoard(b)

		check := func(s *state.Compact) {
			m := island.Measure(b, s)
			assertOptionalBounded(t, m.GoldDefinite)
			assertOptionalBounded(t, m.GoldHeuristic)
			assertOptionalBounded(t, m.SilverDefinite)
			assertOptionalBounded(t, m.SilverHeuristic)
		}
		check(s)
		for _, step := range rules.RandomGame(b, s, board.Gold) {
			check(step.State)
		}
	}
}
