package solver

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
)

// cacheEntry is a memoized search result. Unlike a chess transposition table, the chain
// itself is small enough to keep in the entry outright: the search is bounded by 36 total
// shifts, so a cached chain never needs the move-reconstruction machinery a chess engine
// relies on.
type cacheEntry struct {
	key    uint64
	kind   Kind
	chain  []rules.Move
	mover  board.Player
	prune  bool
	shifts uint8
}

// transpositionTable caches Evaluate results keyed by (state key, player to move, prune).
// The solver is single-threaded (see the concurrency model), so unlike the table this is
// adapted from, no atomic pointers or CAS loop are needed -- a plain slice with a
// shift-count-based replacement policy suffices.
type transpositionTable struct {
	entries []*cacheEntry
	mask    uint64
	used    uint64
}

func newTranspositionTable(sizeLog2 uint) *transpositionTable {
	n := uint64(1) << sizeLog2
	return &transpositionTable{
		entries: make([]*cacheEntry, n),
		mask:    n - 1,
	}
}

// mixKey folds (state, player, prune) into a bucket address. A Ballcube state key is not
// itself pseudo-random (its high bits are shift counters clustered near zero early in a
// game), so, unlike a chess Zobrist hash, it needs an avalanche step before truncation to
// the table's bit mask or most early-game positions would collide in the same few slots.
func mixKey(stateKey uint64, player board.Player, prune bool) uint64 {
	k := stateKey<<2 | uint64(player)<<1
	if prune {
		k |= 1
	}
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

func (t *transpositionTable) Size() uint64 {
	return uint64(len(t.entries))
}

func (t *transpositionTable) Used() float64 {
	return float64(t.used) / float64(len(t.entries))
}

func (t *transpositionTable) Read(stateKey uint64, player board.Player, prune bool) (Kind, []rules.Move, bool) {
	addr := mixKey(stateKey, player, prune) & t.mask
	e := t.entries[addr]
	if e != nil && e.key == stateKey && e.mover == player && e.prune == prune {
		return e.kind, e.chain, true
	}
	return 0, nil, false
}

// Write stores the entry, keeping whichever of the old and new entries was found at a
// shallower shift count -- shallower positions recur across more branches of the search
// tree and are worth more to keep cached.
func (t *transpositionTable) Write(stateKey uint64, player board.Player, prune bool, kind Kind, chain []rules.Move, shifts uint8) {
	addr := mixKey(stateKey, player, prune) & t.mask
	fresh := &cacheEntry{key: stateKey, kind: kind, chain: chain, mover: player, prune: prune, shifts: shifts}

	old := t.entries[addr]
	if old == nil {
		t.used++
	} else if old.shifts < fresh.shifts {
		return
	}
	t.entries[addr] = fresh
}

// defaultTableSizeLog2 keeps the cache modest: 2^16 entries covers the vast majority of
// positions reachable from a single DFS root without requiring a size parameter at every
// call site.
const defaultTableSizeLog2 = 16
