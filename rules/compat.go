package rules

import (
	"errors"
	"strings"
)

// Startpos is the FEN of the standard initial position.
const Startpos = FENStartPos

// ParseFen parses a FEN string and panics on invalid input. Intended for call
// sites (tests, the startpos command) that know the FEN is well-formed;
// position/fen in the protocol layer uses ParseFEN directly and reports the
// error instead.
func ParseFen(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return *p
}

// InCheckNow reports whether the side to move is in check.
func (b *Position) InCheckNow() bool { return b.InCheck(b.sideToMove) }

// IsCapture reports whether the given move captures a piece (including en passant).
func IsCapture(m Move, b *Position) bool {
	toBB := uint64(1) << uint(m.To())
	if (toBB & (b.occupancy[White] | b.occupancy[Black])) != 0 {
		return true
	}
	if b.enPassantSquare == NoSquare {
		return false
	}
	fromBB := uint64(1) << uint(m.From())
	originIsPawn := (fromBB & (b.pawns[White] | b.pawns[Black])) != 0
	epBB := uint64(1) << uint(b.enPassantSquare)
	return originIsPawn && (toBB&epBB) != 0
}

// ParseMove converts a UCI move string (e2e4, e7e8q, 0000) into the from/to/
// promotion-type components needed to look the move up in a legal move list.
// It never fabricates a fully-encoded Move on its own (moved/captured piece
// and flags depend on the position), so callers must match the result against
// GenerateMoves by From/To/PromotionPieceType — see protocol.applyMove.
func ParseMove(movestr string) (from, to Square, promotion PieceType, err error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if movestr == "0000" {
		return NoSquare, NoSquare, PieceTypeNone, nil
	}
	if len(movestr) < 4 || len(movestr) > 5 {
		return 0, 0, PieceTypeNone, errors.New("invalid move length")
	}
	fromIdx, err := algebraicToIndex(movestr[0:2])
	if err != nil {
		return 0, 0, PieceTypeNone, err
	}
	toIdx, err := algebraicToIndex(movestr[2:4])
	if err != nil {
		return 0, 0, PieceTypeNone, err
	}
	promo := PieceTypeNone
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return 0, 0, PieceTypeNone, errors.New("invalid promotion piece")
		}
	}
	return Square(fromIdx), Square(toIdx), promo, nil
}

func algebraicToIndex(alg string) (int, error) {
	if len(alg) != 2 {
		return 0, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errors.New("invalid algebraic square")
	}
	return int(file-'a') + int(rank-'1')*8, nil
}
