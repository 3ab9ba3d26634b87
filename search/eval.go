package search

import (
	"math/bits"

	"wren/rules"
)

// pieceTypesByIndex lists the six piece types in the order the tapered
// evaluator walks them; index 0 is unused (PieceTypeNone).
var pieceTypesByIndex = [7]rules.PieceType{
	rules.PieceTypeNone,
	rules.PieceTypePawn,
	rules.PieceTypeKnight,
	rules.PieceTypeBishop,
	rules.PieceTypeRook,
	rules.PieceTypeQueen,
	rules.PieceTypeKing,
}

// Evaluate returns a centipawn score for a quiescent position from White's
// perspective: positive means White is better. It is always defined and
// never fails.
func Evaluate(p *rules.Position) int32 {
	score, _, _, _ := evaluateTapered(p)
	return score
}

// Phase returns the current game-phase scalar in [0, PhaseLimit]: PhaseLimit
// at the start of the game, trending toward 0 as material comes off. Move
// ordering uses it to taper per-move PST deltas the same way evaluation
// tapers the position score.
func Phase(p *rules.Position) int32 {
	_, _, _, phase := evaluateTapered(p)
	return phase
}

// evaluateTapered walks both sides' bitboards once, accumulating material
// plus positional value for the middlegame and endgame tables, then blends
// them by phase. mg, eg and phase are returned alongside the tapered score;
// Evaluate and Phase each call it and keep the part they need.
func evaluateTapered(p *rules.Position) (score, mg, eg, phase int32) {
	white := p.WhiteBitboards()
	black := p.BlackBitboards()

	phase = -2

	for t := 1; t <= 6; t++ {
		pt := pieceTypesByIndex[t]
		wbb := bitboardForType(white, pt)
		bbb := bitboardForType(black, pt)

		phase += int32(bits.OnesCount64(wbb) + bits.OnesCount64(bbb))

		valueMG := PieceValueMG[pt]
		valueEG := PieceValueEG[pt]

		for wbb != 0 {
			sq := bits.TrailingZeros64(wbb)
			wbb &= wbb - 1
			mg += valueMG + PSTMiddlegame[pt][sq]
			eg += valueEG + PSTEndgame[pt][sq]
		}

		for bbb != 0 {
			sq := bits.TrailingZeros64(bbb)
			bbb &= bbb - 1
			flipped := sq ^ 56
			mg -= valueMG + PSTMiddlegame[pt][flipped]
			eg -= valueEG + PSTEndgame[pt][flipped]
		}
	}

	if phase > PhaseLimit {
		phase = PhaseLimit
	} else if phase < 0 {
		phase = 0
	}

	score = (mg*phase + eg*(PhaseLimit-phase)) / PhaseLimit
	return score, mg, eg, phase
}

func bitboardForType(b rules.Bitboards, pt rules.PieceType) uint64 {
	switch pt {
	case rules.PieceTypePawn:
		return b.Pawns
	case rules.PieceTypeKnight:
		return b.Knights
	case rules.PieceTypeBishop:
		return b.Bishops
	case rules.PieceTypeRook:
		return b.Rooks
	case rules.PieceTypeQueen:
		return b.Queens
	case rules.PieceTypeKing:
		return b.Kings
	default:
		return 0
	}
}
