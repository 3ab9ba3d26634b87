package search

import (
	"testing"

	"wren/rules"
)

func TestNegamaxCheckmateReturnsMinusEvalLimit(t *testing.T) {
	// Fool's mate position: White to move, checkmated.
	pos := rules.ParseFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !pos.InCheckmate() {
		t.Fatalf("expected test position to be checkmate")
	}
	s := NewSearcher(1024)
	for depth := int8(1); depth <= 3; depth++ {
		score, _ := s.negamax(-EvalLimit, EvalLimit, depth, &pos, nil, rules.NoMove)
		if score != -EvalLimit {
			t.Fatalf("depth %d: negamax(checkmate) = %d, want %d", depth, score, -EvalLimit)
		}
	}
}

func TestNegamaxStalemateReturnsZero(t *testing.T) {
	// Classic stalemate: Black king a8 has no legal moves, not in check.
	pos := rules.ParseFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if !pos.InStalemate() {
		t.Fatalf("expected test position to be stalemate")
	}
	s := NewSearcher(1024)
	for depth := int8(1); depth <= 3; depth++ {
		score, _ := s.negamax(-EvalLimit, EvalLimit, depth, &pos, nil, rules.NoMove)
		if score != 0 {
			t.Fatalf("depth %d: negamax(stalemate) = %d, want 0", depth, score)
		}
	}
}

func TestNegamaxPositionReversibility(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	before := pos.Hash()
	beforeFEN := pos.ToFEN()

	s := NewSearcher(4096)
	s.negamax(-EvalLimit, EvalLimit, 4, &pos, nil, rules.NoMove)

	if pos.Hash() != before {
		t.Fatalf("position hash changed across negamax call: %d != %d", pos.Hash(), before)
	}
	if pos.ToFEN() != beforeFEN {
		t.Fatalf("position FEN changed across negamax call: %q != %q", pos.ToFEN(), beforeFEN)
	}
}

func TestNegamaxWinningPawnEndgame(t *testing.T) {
	pos := rules.ParseFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	s := NewSearcher(1 << 16)
	var score int32
	for depth := int8(1); depth <= 6; depth++ {
		score, _ = s.negamax(-EvalLimit, EvalLimit, depth, &pos, nil, rules.NoMove)
	}
	if score < PieceValueMG[rules.PieceTypePawn] {
		t.Fatalf("depth 6 score = %d, want >= pawn value (%d)", score, PieceValueMG[rules.PieceTypePawn])
	}
}

func TestNegamaxDeterministic(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"
	run := func() (int32, PV) {
		pos := rules.ParseFen(fen)
		s := NewSearcher(4096)
		return s.negamax(-EvalLimit, EvalLimit, 4, &pos, nil, rules.NoMove)
	}
	score1, pv1 := run()
	score2, pv2 := run()
	if score1 != score2 {
		t.Fatalf("nondeterministic score: %d != %d", score1, score2)
	}
	if len(pv1) != len(pv2) {
		t.Fatalf("nondeterministic PV length: %d != %d", len(pv1), len(pv2))
	}
	for i := range pv1 {
		if pv1[i] != pv2[i] {
			t.Fatalf("nondeterministic PV at %d: %s != %s", i, pv1[i].String(), pv2[i].String())
		}
	}
}
