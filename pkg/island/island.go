// Package island implements the island heuristic (§4.7): a per-gate estimate of how many
// more shifts are needed before an opposing ball is guaranteed to pass through it, used
// by the solver to shortcut search when one side has a provably faster forced path.
package island

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/state"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// unreachable is the saturation distance meaning "not achievable in the game".
const unreachable = 4

// Island names one gate's distance estimate for its owner's opponent, and the relevant
// ball the estimate is keyed on.
type Island struct {
	Distance uint8
	BallID   uint8
	Layer    uint8
	Gate     uint8
}

// Measure holds, per player, the gate with the smallest definite and heuristic distance
// against that player (i.e. the opponent's fastest guaranteed or optimistic path out).
type Measure struct {
	GoldDefinite    lang.Optional[Island]
	GoldHeuristic   lang.Optional[Island]
	SilverDefinite  lang.Optional[Island]
	SilverHeuristic lang.Optional[Island]
}

// relevantBalls returns the (up to) three cells aligned below the gate, oriented by the
// gate's topleft anchor, each reported only if its ball has not yet fallen past this
// layer.
func relevantBalls(b *board.Board, s *state.Compact, layer, gate uint8) [3]lang.Optional[uint8] {
	h := b.Layer(layer).Horizontal()

	base := [3]uint8{0, 1, 2}
	delta := uint8(3)
	if !h {
		base = [3]uint8{0, 3, 6}
		delta = 1
	}

	var cells [3]uint8
	for i, a := range base {
		cells[i] = a + delta*gate
	}
	if !b.Layer(layer).Gate(gate).TopLeft() {
		cells[0], cells[2] = cells[2], cells[0]
	}

	depth := s.Depth()
	var out [3]lang.Optional[uint8]
	for i, c := range cells {
		if depth[c] > layer {
			continue
		}
		out[i] = lang.Some(c)
	}
	return out
}

type ballInfo struct {
	owned  bool
	onGate bool
	ballID uint8
}

func infoOf(b *board.Board, s *state.Compact, cell lang.Optional[uint8], layer uint8, owner board.Player) lang.Optional[ballInfo] {
	c, ok := cell.V()
	if !ok {
		return lang.Optional[ballInfo]{}
	}
	ballOwner, _ := b.Ball(c)
	return lang.Some(ballInfo{
		owned:  ballOwner == owner,
		onGate: s.Depth()[c] == layer,
		ballID: c,
	})
}

// distancePair tracks the current best (distance, ballID), saturating at unreachable.
type distancePair struct {
	distance uint8
	ballID   uint8
}

func (d *distancePair) update(distance, ballID uint8) {
	if d.distance > distance {
		d.distance = distance
		d.ballID = ballID
	}
}

func (d distancePair) toOptional(layer, gate uint8) lang.Optional[Island] {
	if d.distance >= unreachable {
		return lang.Optional[Island]{}
	}
	return lang.Some(Island{Distance: d.distance, BallID: d.ballID, Layer: layer, Gate: gate})
}

// measureGate implements the decision table of §4.7/§9 over the third, middle and first
// relevant ball, keyed on (shift count, gatetype, ownership, on-gate timing).
func measureGate(b *board.Board, s *state.Compact, layer, gate uint8) (lang.Optional[Island], lang.Optional[Island]) {
	gp := b.Layer(layer).Gate(gate)
	owner := gp.Owner()

	balls := relevantBalls(b, s, layer, gate)
	info := [3]lang.Optional[ballInfo]{
		infoOf(b, s, balls[0], layer, owner),
		infoOf(b, s, balls[1], layer, owner),
		infoOf(b, s, balls[2], layer, owner),
	}

	definite := distancePair{distance: unreachable, ballID: 9}
	heuristic := distancePair{distance: unreachable, ballID: 9}

	if a, ok := info[2].V(); ok && !a.owned {
		firstFine := fineOrAbsent(info[0], func(i ballInfo) bool { return !i.owned || gp.GateType() == board.GateType0 })
		secondFine := fineOrAbsent(info[1], func(i ballInfo) bool { return !i.owned || gp.GateType() == board.GateType1 })
		noHoleLast := gp.GateType() != board.GateType2
		notShifted := s.GetShift(layer, gate) == 0

		if noHoleLast && notShifted && firstFine && secondFine {
			definite.update(3, a.ballID)
			heuristic.update(3, a.ballID)
		}
	}

	if a, ok := info[1].V(); ok && !a.owned {
		switch s.GetShift(layer, gate) {
		case 0:
			switch gp.GateType() {
			case board.GateType0:
				firstFine := fineOrAbsent(info[0], func(i ballInfo) bool { return !i.owned })
				if firstFine {
					definite.update(2, a.ballID)
					heuristic.update(2, a.ballID)
				} else {
					heuristic.update(2, a.ballID)
				}
			case board.GateType1:
				heuristic.update(2, a.ballID)
			case board.GateType2, board.GateType3:
				firstFine := fineOrAbsent(info[0], func(i ballInfo) bool { return !i.owned })
				if firstFine {
					definite.update(2, a.ballID)
					heuristic.update(2, a.ballID)
				}
			}
		case 1:
			noHole := gp.GateType() != board.GateType2
			firstFine := fineOrAbsent(info[0], func(i ballInfo) bool { return !i.owned || gp.GateType() == board.GateType1 })
			if noHole && firstFine {
				definite.update(2, a.ballID)
				heuristic.update(2, a.ballID)
			}
		}
	}

	if a, ok := info[0].V(); ok && !a.owned {
		switch s.GetShift(layer, gate) {
		case 0:
			switch gp.GateType() {
			case board.GateType0:
				heuristic.update(1, a.ballID)
			case board.GateType1:
				thirdFine := fineOrAbsent(info[2], func(i ballInfo) bool { return !i.owned })
				if a.onGate {
					if thirdFine {
						definite.update(3, a.ballID)
						heuristic.update(3, a.ballID)
					}
				} else {
					heuristic.update(1, a.ballID)
				}
			case board.GateType2:
				definite.update(2, a.ballID)
				heuristic.update(2, a.ballID)
			case board.GateType3:
				definite.update(1, a.ballID)
				heuristic.update(1, a.ballID)
			}
		case 1:
			switch gp.GateType() {
			case board.GateType0, board.GateType3:
				definite.update(1, a.ballID)
				heuristic.update(1, a.ballID)
			case board.GateType1:
				heuristic.update(1, a.ballID)
			case board.GateType2:
				definite.update(2, a.ballID)
				heuristic.update(2, a.ballID)
			}
		case 2:
			if gp.GateType() != board.GateType2 {
				definite.update(1, a.ballID)
				heuristic.update(1, a.ballID)
			}
		}
	}

	return definite.toOptional(layer, gate), heuristic.toOptional(layer, gate)
}

// fineOrAbsent reports pred(info) when info is present, or true ("fine") when absent --
// matching the source's map_or(true, ...) idiom for "no ball there means no obstruction".
func fineOrAbsent(info lang.Optional[ballInfo], pred func(ballInfo) bool) bool {
	i, ok := info.V()
	if !ok {
		return true
	}
	return pred(i)
}

func closer(a, b lang.Optional[Island]) lang.Optional[Island] {
	av, aok := a.V()
	bv, bok := b.V()
	switch {
	case aok && bok:
		if mathx.Min(av.Distance, bv.Distance) == av.Distance {
			return a
		}
		return b
	case aok:
		return a
	default:
		return b
	}
}

// Measure computes the island heuristic for every gate on the board, returning the
// closest definite and heuristic island against each player.
func Measure(b *board.Board, s *state.Compact) Measure {
	var m Measure
	for layer := uint8(0); layer < board.NumLayers; layer++ {
		for gate := uint8(0); gate < board.NumGatesPerLayer; gate++ {
			d, h := measureGate(b, s, layer, gate)
			if b.Layer(layer).Gate(gate).Owner() == board.Silver {
				m.SilverDefinite = closer(m.SilverDefinite, d)
				m.SilverHeuristic = closer(m.SilverHeuristic, h)
			} else {
				m.GoldDefinite = closer(m.GoldDefinite, d)
				m.GoldHeuristic = closer(m.GoldHeuristic, h)
			}
		}
	}
	return m
}
