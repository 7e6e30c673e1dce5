package board

import (
	"encoding/binary"
	"fmt"
)

// Bit offsets of the 64-bit Board encoding described in spec §4.1.
const (
	goldPresenceOffset = 0
	goldPresenceBits   = NumCells // 9

	emptyCellOffset = goldPresenceOffset + goldPresenceBits // 9
	emptyCellBits   = 3

	horizontalOffset = emptyCellOffset + emptyCellBits // 12
	horizontalBits   = NumLayers

	topLeftOffset = horizontalOffset + horizontalBits // 16
	topLeftBits   = NumLayers * NumGatesPerLayer

	silverOffset = topLeftOffset + topLeftBits // 28
	silverBits   = NumLayers * NumGatesPerLayer

	gateTypeOffset = silverOffset + silverBits // 40
	gateTypeBits   = NumLayers * NumGatesPerLayer * 2
)

// DecodeErrorKind discriminates the ways decoding a Board key can fail.
type DecodeErrorKind uint8

const (
	// IncorrectBitstring means the raw bytes could not be read into the fixed bit layout.
	IncorrectBitstring DecodeErrorKind = iota
	// IncorrectBoard means the decoded bits violate a Board invariant (e.g. wrong ball counts).
	IncorrectBoard
)

// DecodeError is returned by FromUint64/FromBytes when a 64-bit key does not decode to a
// valid Board.
type DecodeError struct {
	Kind DecodeErrorKind
	Err  error // cause, set for IncorrectBoard
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("board: deserialized board incorrect: %v", e.Err)
	}
	return "board: could not read bitstring"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ToUint64 encodes the board into its canonical 64-bit key (§4.1).
func (b *Board) ToUint64() uint64 {
	var v uint64

	goldSet := make(map[uint8]bool, NumBallsPerPlayer)
	for _, c := range b.goldBalls {
		goldSet[c] = true
		v |= 1 << (goldPresenceOffset + c)
	}

	emptyCell := b.emptyCell()
	delta := uint64(0)
	for _, c := range b.goldBalls {
		if c < emptyCell {
			delta++
		}
	}
	v |= (uint64(emptyCell) - delta) << emptyCellOffset

	for l := uint8(0); l < NumLayers; l++ {
		if b.layers[l].horizontal {
			v |= 1 << (horizontalOffset + uint64(l))
		}
		for g := uint8(0); g < NumGatesPerLayer; g++ {
			slot := uint64(l)*NumGatesPerLayer + uint64(g)
			gate := b.layers[l].gates[g]
			if gate.TopLeft {
				v |= 1 << (topLeftOffset + slot)
			}
			if gate.Owner == Silver {
				v |= 1 << (silverOffset + slot)
			}
			v |= uint64(gate.GateType) << (gateTypeOffset + slot*2)
		}
	}

	return v
}

// ToBytes encodes the board as 8 little-endian bytes, matching the persistent Board key
// format.
func (b *Board) ToBytes() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, b.ToUint64())
	return buf
}

func (b *Board) emptyCell() uint8 {
	occupied := make(map[uint8]bool, NumCells-1)
	for _, c := range b.goldBalls {
		occupied[c] = true
	}
	for _, c := range b.silverBalls {
		occupied[c] = true
	}
	for c := uint8(0); c < NumCells; c++ {
		if !occupied[c] {
			return c
		}
	}
	panic("board: no empty cell")
}

// FromUint64 decodes a Board from its canonical 64-bit key.
func FromUint64(v uint64) (*Board, error) {
	var goldCells []uint8
	for c := uint8(0); c < NumCells; c++ {
		if v&(1<<(goldPresenceOffset+c)) != 0 {
			goldCells = append(goldCells, c)
		}
	}

	compressedEmpty := uint8((v >> emptyCellOffset) & (1<<emptyCellBits - 1))
	emptyCell := compressedEmpty
	for _, g := range goldCells {
		if g <= emptyCell {
			emptyCell++
		}
	}

	goldSet := make(map[uint8]bool, len(goldCells))
	for _, c := range goldCells {
		goldSet[c] = true
	}
	var silverCells []uint8
	for c := uint8(0); c < NumCells; c++ {
		if c != emptyCell && !goldSet[c] {
			silverCells = append(silverCells, c)
		}
	}

	builder := NewBuilder()
	builder.GoldBalls = goldCells
	builder.SilverBalls = silverCells

	for l := uint8(0); l < NumLayers; l++ {
		builder.SetHorizontal(l, v&(1<<(horizontalOffset+uint64(l))) != 0)
		for g := uint8(0); g < NumGatesPerLayer; g++ {
			slot := uint64(l)*NumGatesPerLayer + uint64(g)
			owner := Gold
			if v&(1<<(silverOffset+slot)) != 0 {
				owner = Silver
			}
			gt := GateType((v >> (gateTypeOffset + slot*2)) & 0b11)
			builder.SetGate(l, g, Gate{
				Owner:    owner,
				TopLeft:  v&(1<<(topLeftOffset+slot)) != 0,
				GateType: gt,
			})
		}
	}

	brd, err := builder.Finalize()
	if err != nil {
		return nil, &DecodeError{Kind: IncorrectBoard, Err: err}
	}
	return brd, nil
}

// FromBytes decodes a Board from its 8-byte little-endian persistent key.
func FromBytes(data []byte) (*Board, error) {
	if len(data) != 8 {
		return nil, &DecodeError{Kind: IncorrectBitstring}
	}
	return FromUint64(binary.LittleEndian.Uint64(data))
}
