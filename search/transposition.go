package search

import "wren/rules"

// TTEntry is one transposition table slot. A zero Hash means the slot is
// empty; callers distinguish a genuine hit from a miss by comparing the
// probed hash against the position's own hash.
//
// Scores stored here are treated as exact at their recorded depth, matching
// the source engine's behavior: it never tags entries with a bound kind
// (EXACT/LOWER/UPPER), so a cutoff from a fail-soft search can pollute the
// table with a bound used as if it were exact. Kept verbatim for parity.
type TTEntry struct {
	Hash  uint64
	Depth int8
	Score int32
	Move  rules.Move
}

// TranspositionTable is a fixed-size, direct-mapped hash table with
// depth-preferred replacement. Size is always a power of two so indexing
// can use hash&(len-1) instead of a modulo.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable allocates a table with at least sizeHint entries,
// rounded up to the next power of two.
func NewTranspositionTable(sizeHint int) *TranspositionTable {
	n := nextPowerOfTwo(sizeHint)
	return &TranspositionTable{
		entries: make([]TTEntry, n),
		mask:    uint64(n - 1),
	}
}

func nextPowerOfTwo(n int) int {
	if n < 2 {
		return 2
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Probe returns the slot a hash maps to, and whether it is a genuine hit
// (entry.Hash == hash) as opposed to an empty or colliding slot.
func (t *TranspositionTable) Probe(hash uint64) (entry *TTEntry, hit bool) {
	e := &t.entries[hash&t.mask]
	return e, e.Hash == hash
}

// Store writes to the slot for hash iff it is empty, holds a different
// position (collision), or the incoming depth is at least as deep as what's
// already there — depth-preferred replacement.
func (t *TranspositionTable) Store(hash uint64, depth int8, score int32, move rules.Move) {
	e := &t.entries[hash&t.mask]
	if e.Hash == 0 || e.Hash != hash || depth >= e.Depth {
		e.Hash = hash
		e.Depth = depth
		e.Score = score
		e.Move = move
	}
}

// Clear resets every slot to empty, used by ucinewgame.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}

// Len reports the number of slots in the table.
func (t *TranspositionTable) Len() int { return len(t.entries) }
