package board

import "math/rand"

// NumCells is the number of cells in the 3x3 grid, numbered row-major 0..8.
const NumCells = 9

// NumBallsPerPlayer is the number of balls each player owns.
const NumBallsPerPlayer = 4

// Board is the immutable Ballcube puzzle: which cells start with a gold or silver ball,
// and the per-layer gate metadata (orientation, owner, anchor direction, hole pattern).
// Built once via Builder.Finalize or Random, then never mutated.
type Board struct {
	goldBalls   [NumBallsPerPlayer]uint8
	silverBalls [NumBallsPerPlayer]uint8
	layers      [NumLayers]layer
}

// Ball returns the owner of the ball originally placed at the given cell, if any.
func (b *Board) Ball(cell uint8) (Player, bool) {
	for _, c := range b.goldBalls {
		if c == cell {
			return Gold, true
		}
	}
	for _, c := range b.silverBalls {
		if c == cell {
			return Silver, true
		}
	}
	return 0, false
}

// Layer returns a handle onto one of the board's four gate layers.
func (b *Board) Layer(id uint8) LayerView {
	return LayerView{id: id, b: b}
}

// Random builds a uniformly random legal board: a random 4/4 split of balls across the
// 9 cells, each player dealt the fixed gate-type multiset {0,0,1,2,3,3} in random order
// and a random 6/6 owner split across the 12 gates, with random topleft/horizontal bits.
func Random() *Board {
	return randomFrom(rand.New(rand.NewSource(rand.Int63())))
}

func randomFrom(r *rand.Rand) *Board {
	cells := r.Perm(NumCells)

	var gold, silver [NumBallsPerPlayer]uint8
	for i := 0; i < NumBallsPerPlayer; i++ {
		gold[i] = uint8(cells[i])
		silver[i] = uint8(cells[NumBallsPerPlayer+i])
	}

	gateTypes := []GateType{GateType0, GateType0, GateType1, GateType2, GateType3, GateType3}
	goldTypes := shuffledGateTypes(r, gateTypes)
	silverTypes := shuffledGateTypes(r, gateTypes)

	owners := make([]Player, NumLayers*NumGatesPerLayer)
	for i := range owners[:NumLayers*NumGatesPerLayer/2] {
		owners[i] = Silver
	}
	r.Shuffle(len(owners), func(i, j int) { owners[i], owners[j] = owners[j], owners[i] })

	builder := NewBuilder()
	goldIdx, silverIdx := 0, 0
	for slot := 0; slot < NumLayers*NumGatesPerLayer; slot++ {
		layer := uint8(slot / NumGatesPerLayer)
		gate := uint8(slot % NumGatesPerLayer)

		var gateType GateType
		owner := owners[slot]
		if owner == Silver {
			gateType = silverTypes[silverIdx]
			silverIdx++
		} else {
			gateType = goldTypes[goldIdx]
			goldIdx++
		}
		builder.SetGate(layer, gate, Gate{Owner: owner, TopLeft: r.Intn(2) == 0, GateType: gateType})
	}
	for l := uint8(0); l < NumLayers; l++ {
		builder.SetHorizontal(l, r.Intn(2) == 0)
	}
	builder.GoldBalls = gold[:]
	builder.SilverBalls = silver[:]

	brd, err := builder.Finalize()
	if err != nil {
		panic("board: Random produced an invalid board: " + err.Error())
	}
	return brd
}

func shuffledGateTypes(r *rand.Rand, types []GateType) []GateType {
	cp := make([]GateType, len(types))
	copy(cp, types)
	r.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	return cp
}
