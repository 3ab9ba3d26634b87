package search

import (
	"testing"

	"wren/rules"
)

func TestOrderMovesPutsPVAndHashFirst(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	moves := pos.GenerateLegal(rules.All)
	if len(moves) < 3 {
		t.Fatalf("expected several legal opening moves, got %d", len(moves))
	}
	pvMove := moves[len(moves)-1]
	hashMove := moves[len(moves)-2]
	if pvMove == hashMove {
		t.Fatalf("test setup needs two distinct moves")
	}

	ordered := append([]rules.Move(nil), moves...)
	OrderMoves(ordered, &pos, pvMove, hashMove, Phase(&pos))

	if ordered[0] != pvMove {
		t.Fatalf("ordered[0] = %s, want PV move %s", ordered[0].String(), pvMove.String())
	}
	if ordered[1] != hashMove {
		t.Fatalf("ordered[1] = %s, want hash move %s", ordered[1].String(), hashMove.String())
	}
}

func TestOrderMovesCapturesBeforeQuiets(t *testing.T) {
	pos := rules.ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	moves := pos.GenerateLegal(rules.All)
	OrderMoves(moves, &pos, rules.NoMove, rules.NoMove, Phase(&pos))

	sawQuiet := false
	for _, m := range moves {
		isCap := rules.IsCapture(m, &pos)
		if isCap && sawQuiet {
			t.Fatalf("capture %s ordered after a quiet move", m.String())
		}
		if !isCap {
			sawQuiet = true
		}
	}
}

func TestMvvLvaPrefersHigherValueVictim(t *testing.T) {
	pawnTakesQueen := rules.NewMove(0, 1, rules.WhitePawn, rules.BlackQueen, rules.NoPiece, rules.FlagNone)
	queenTakesPawn := rules.NewMove(0, 1, rules.WhiteQueen, rules.BlackPawn, rules.NoPiece, rules.FlagNone)
	if mvvLva(pawnTakesQueen) <= mvvLva(queenTakesPawn) {
		t.Fatalf("pawn-takes-queen (%d) should outrank queen-takes-pawn (%d)",
			mvvLva(pawnTakesQueen), mvvLva(queenTakesPawn))
	}
}
