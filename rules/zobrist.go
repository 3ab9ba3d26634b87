package rules

import "math/rand"

// zobristTable holds the random keys the incremental hash in makemove.go,
// unmakemove.go, and nullmove.go XORs in and out as a position changes: one
// key per (piece, square), one per castling-rights nibble, one per en
// passant file, and one for side to move.
type zobristTable struct {
	piece     [15][64]uint64
	castle    [16]uint64
	enPassant [8]uint64
	side      uint64
}

// zobristSeed is fixed rather than time-seeded so a hash computed by two
// runs of this binary (or replayed from a saved game) always agrees.
const zobristSeed = 0xC0DE

var zkeys = newZobristTable(zobristSeed)

func newZobristTable(seed int64) zobristTable {
	rnd := rand.New(rand.NewSource(seed))
	var t zobristTable
	for p := range t.piece {
		for sq := range t.piece[p] {
			t.piece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range t.castle {
		t.castle[cr] = rnd.Uint64()
	}
	for f := range t.enPassant {
		t.enPassant[f] = rnd.Uint64()
	}
	t.side = rnd.Uint64()
	return t
}

// ComputeZobrist recomputes b's hash from scratch by scanning every square,
// rather than relying on the incremental XORs makemove.go/unmakemove.go
// maintain. Used to seed a freshly parsed position and, in tests, to check
// the incremental hash hasn't drifted.
func (b *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zkeys.piece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zkeys.side
	}
	key ^= zkeys.castle[int(b.castlingRights)]
	if b.enPassantSquare != NoSquare {
		key ^= zkeys.enPassant[int(b.enPassantSquare%8)]
	}
	return key
}
