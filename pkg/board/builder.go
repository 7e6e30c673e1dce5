package board

import "fmt"

// BuildErrorKind discriminates the ways a Builder can fail to Finalize.
type BuildErrorKind uint8

const (
	// GateDirectionUndefined means a layer's horizontal/vertical orientation was never set.
	GateDirectionUndefined BuildErrorKind = iota
	// GateUndefined means one of the 12 gate slots was never set.
	GateUndefined
	// BallCountIncorrect means the gold or silver ball sets did not each contain exactly
	// NumBallsPerPlayer distinct cells, or the two sets overlapped.
	BallCountIncorrect
	// GateAllegianceIncorrect means the 12 gates did not split 6 gold / 6 silver.
	GateAllegianceIncorrect
)

func (k BuildErrorKind) String() string {
	switch k {
	case GateDirectionUndefined:
		return "gate direction undefined"
	case GateUndefined:
		return "gate undefined"
	case BallCountIncorrect:
		return "ball count incorrect"
	case GateAllegianceIncorrect:
		return "gate allegiance incorrect"
	default:
		return "?"
	}
}

// BuildError is returned by Builder.Finalize when the board under construction is
// incomplete or violates one of the invariants in §3.
type BuildError struct {
	Kind BuildErrorKind
	// Index names the layer (GateDirectionUndefined) or the flat gate slot, layer*3+gate
	// (GateUndefined) that triggered the error. Unused for the other kinds.
	Index uint8
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case GateDirectionUndefined:
		return fmt.Sprintf("board: layer %d has no defined orientation", e.Index)
	case GateUndefined:
		return fmt.Sprintf("board: gate %d (layer %d, slot %d) is undefined", e.Index, e.Index/NumGatesPerLayer, e.Index%NumGatesPerLayer)
	default:
		return fmt.Sprintf("board: %v", e.Kind)
	}
}

// Builder assembles a Board from literal fields. Every layer's orientation and every one
// of the 12 gates must be set before Finalize succeeds.
type Builder struct {
	GoldBalls   []uint8
	SilverBalls []uint8

	horizontalSet [NumLayers]bool
	horizontal    [NumLayers]bool

	gateSet [NumLayers * NumGatesPerLayer]bool
	gates   [NumLayers * NumGatesPerLayer]Gate
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetHorizontal sets layer l's orientation.
func (b *Builder) SetHorizontal(l uint8, horizontal bool) *Builder {
	b.horizontal[l] = horizontal
	b.horizontalSet[l] = true
	return b
}

// SetGate sets the gate at (layer, gate).
func (b *Builder) SetGate(layer, gate uint8, g Gate) *Builder {
	slot := layer*NumGatesPerLayer + gate
	b.gates[slot] = g
	b.gateSet[slot] = true
	return b
}

// Finalize validates and returns the assembled Board, or a *BuildError.
func (b *Builder) Finalize() (*Board, error) {
	var brd Board

	for l := uint8(0); l < NumLayers; l++ {
		if !b.horizontalSet[l] {
			return nil, &BuildError{Kind: GateDirectionUndefined, Index: l}
		}
		brd.layers[l].horizontal = b.horizontal[l]
	}

	silverCount := 0
	for slot := uint8(0); slot < NumLayers*NumGatesPerLayer; slot++ {
		if !b.gateSet[slot] {
			return nil, &BuildError{Kind: GateUndefined, Index: slot}
		}
		g := b.gates[slot]
		brd.layers[slot/NumGatesPerLayer].gates[slot%NumGatesPerLayer] = g
		if g.Owner == Silver {
			silverCount++
		}
	}
	if silverCount != NumLayers*NumGatesPerLayer/2 {
		return nil, &BuildError{Kind: GateAllegianceIncorrect}
	}

	gold, ok := normalizeBalls(b.GoldBalls)
	if !ok {
		return nil, &BuildError{Kind: BallCountIncorrect}
	}
	silver, ok := normalizeBalls(b.SilverBalls)
	if !ok {
		return nil, &BuildError{Kind: BallCountIncorrect}
	}
	seen := map[uint8]bool{}
	for _, c := range append(append([]uint8{}, gold[:]...), silver[:]...) {
		if c >= NumCells || seen[c] {
			return nil, &BuildError{Kind: BallCountIncorrect}
		}
		seen[c] = true
	}

	brd.goldBalls = gold
	brd.silverBalls = silver
	return &brd, nil
}

func normalizeBalls(balls []uint8) ([NumBallsPerPlayer]uint8, bool) {
	var out [NumBallsPerPlayer]uint8
	if len(balls) != NumBallsPerPlayer {
		return out, false
	}
	cp := append([]uint8{}, balls...)
	for i := 0; i < len(cp); i++ {
		for j := i + 1; j < len(cp); j++ {
			if cp[j] < cp[i] {
				cp[i], cp[j] = cp[j], cp[i]
			}
		}
	}
	copy(out[:], cp)
	return out, true
}
