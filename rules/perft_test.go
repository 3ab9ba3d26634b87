package rules

import (
	"fmt"
	"testing"
)

// perftCase names a FEN and the perft node counts it must produce at a
// sequence of depths, starting at depth 1. The classic Chess Programming
// Wiki "kiwipete" and Position3-6 suites exist specifically to exercise
// castling, en passant, promotion, and pin edge cases that the plain
// starting position never reaches.
type perftCase struct {
	name  string
	fen   string
	depth []uint64 // depth[i] is the expected node count at depth i+1
}

var perftCases = []perftCase{
	{"startpos", FENStartPos, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"en passant pin", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
	{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	{"cpw position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"cpw position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"cpw position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", []uint64{44, 1486, 62379}},
	{"cpw position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079, 89890}},
}

func TestPerftSuite(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for i, want := range tc.depth {
				depth := i + 1
				if got := Perft(pos, depth); got != want {
					t.Fatalf("Perft(depth=%d) = %d, want %d\n%s", depth, got, want, dumpMoves(pos))
				}
			}
		})
	}
}

// dumpMoves renders a position's legal move list for a perft failure
// message; a bare node-count mismatch gives no clue which move category
// (captures, castles, promotions, en passant) the generator got wrong.
func dumpMoves(pos *Position) string {
	moves := pos.GenerateMoves()
	var cap, ep, castle, promo int
	for _, m := range moves {
		if m.CapturedPiece() != NoPiece {
			cap++
		}
		switch m.Flags() {
		case FlagEnPassant:
			ep++
		case FlagCastle:
			castle++
		}
		if m.PromotionPiece() != NoPiece {
			promo++
		}
	}
	list := ""
	for _, m := range moves {
		list += m.String() + " "
	}
	return fmt.Sprintf("legal=%d captures=%d ep=%d castles=%d promotions=%d\n%s",
		len(moves), cap, ep, castle, promo, list)
}

func TestPerftInitialDeep(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := Perft(pos, 4); got != 197281 {
		t.Fatalf("depth 4: got %d want %d", got, 197281)
	}
	if testing.Short() {
		t.Skip("skipping depth 5 perft in short mode")
	}
	if got := Perft(pos, 5); got != 4865609 {
		t.Fatalf("depth 5: got %d want %d", got, 4865609)
	}
}
