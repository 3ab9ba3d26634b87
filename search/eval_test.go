package search

import (
	"testing"

	"wren/rules"
)

func TestEvaluateStartposIsZero(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	if got := Evaluate(&pos); got != 0 {
		t.Fatalf("Evaluate(startpos) = %d, want 0", got)
	}
}

func TestPhaseStartposIsPhaseLimit(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	if got := Phase(&pos); got != PhaseLimit {
		t.Fatalf("Phase(startpos) = %d, want %d", got, PhaseLimit)
	}
}

func TestPhaseBareKingsIsZero(t *testing.T) {
	pos := rules.ParseFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := Phase(&pos); got != 0 {
		t.Fatalf("Phase(bare kings) = %d, want 0", got)
	}
}

func TestEvaluateTaperedBounds(t *testing.T) {
	fens := []string{
		rules.Startpos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos := rules.ParseFen(fen)
		score, mg, eg, _ := evaluateTapered(&pos)
		lo, hi := mg, eg
		if lo > hi {
			lo, hi = hi, lo
		}
		if score < lo || score > hi {
			t.Fatalf("fen %q: tapered score %d outside [mg,eg]=[%d,%d]", fen, score, mg, eg)
		}
	}
}

func TestEvaluateWhiteBlackAntisymmetric(t *testing.T) {
	// A position and its color-flipped mirror should score as negatives of
	// each other, since Evaluate is always from White's perspective.
	white := rules.ParseFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := rules.ParseFen("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	ws := Evaluate(&white)
	bs := Evaluate(&black)
	if ws != -bs {
		t.Fatalf("Evaluate(white pawn up) = %d, Evaluate(mirrored black pawn up) = %d, want negatives", ws, bs)
	}
}
