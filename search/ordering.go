package search

import (
	"wren/rules"

	"golang.org/x/exp/slices"
)

// OrderMoves reorders moves in place so the search tries them in the
// priority spec.md §4.C describes: PV move, then hash move, then captures
// by descending MVV-LVA, then quiet moves by descending tapered PST delta.
// phase must already be computed for the current position (both search
// callers pass Phase(pos)).
func OrderMoves(moves []rules.Move, pos *rules.Position, pvMove, hashMove rules.Move, phase int32) {
	pvIdx, hashIdx := -1, -1
	for i, m := range moves {
		if pvMove != rules.NoMove && m == pvMove && pvIdx < 0 {
			pvIdx = i
		} else if hashMove != rules.NoMove && m == hashMove && hashIdx < 0 {
			hashIdx = i
		}
	}

	front := 0
	if pvIdx >= 0 {
		moves[front], moves[pvIdx] = moves[pvIdx], moves[front]
		if hashIdx == front {
			hashIdx = pvIdx
		}
		front++
	}
	if hashIdx >= front {
		moves[front], moves[hashIdx] = moves[hashIdx], moves[front]
		front++
	}

	rest := moves[front:]
	splitIdx := 0
	for i, m := range rest {
		if rules.IsCapture(m, pos) {
			rest[splitIdx], rest[i] = rest[i], rest[splitIdx]
			splitIdx++
		}
	}
	captures := rest[:splitIdx]
	quiets := rest[splitIdx:]

	slices.SortFunc(captures, func(a, b rules.Move) bool {
		return mvvLva(a) > mvvLva(b)
	})

	slices.SortFunc(quiets, func(a, b rules.Move) bool {
		return quietDelta(a, phase) > quietDelta(b, phase)
	})
}

// mvvLva scores a capture by victim value minus attacker value: highest
// value victim taken by the lowest value attacker sorts first.
func mvvLva(m rules.Move) int32 {
	victim := PieceValueMG[m.CapturedPiece().Type()]
	attacker := PieceValueMG[m.MovedPiece().Type()]
	return victim - attacker
}

// quietDelta computes the tapered PST gain of moving the piece from its
// origin to its destination, mirroring Evaluate's White-POV convention via
// the color flip f.
func quietDelta(m rules.Move, phase int32) int32 {
	piece := m.MovedPiece()
	pt := piece.Type()
	f := rules.Square(0)
	if piece&8 != 0 { // black
		f = 56
	}
	from := int(m.From() ^ f)
	to := int(m.To() ^ f)

	mgDelta := PSTMiddlegame[pt][to] - PSTMiddlegame[pt][from]
	egDelta := PSTEndgame[pt][to] - PSTEndgame[pt][from]
	return (mgDelta*phase + egDelta*(PhaseLimit-phase)) / PhaseLimit
}
