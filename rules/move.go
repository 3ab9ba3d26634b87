package rules

import "strings"

// Move packs a chess move into 32 bits: from/to squares, the piece that
// moved, anything it captured, a promotion piece, and a small flags field
// for castling and en passant. Packing it into a value type instead of a
// struct keeps it cheap to copy through move lists, PV slices, and the TT.
type Move uint32

// NoMove is the distinguished zero value meaning "no move": a from/to/piece
// of a1-a1/NoPiece, which never occurs for a legal move.
const NoMove Move = 0

// Field widths, LSB to MSB: 6 bits from, 6 bits to, 4 bits moved piece,
// 4 bits captured piece, 4 bits promotion piece, 2 bits flags.
const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// MoveFlag distinguishes the two move kinds that need special handling
// beyond a plain from/to/capture: castling (rook also moves) and en passant
// (the captured pawn isn't on the destination square). A promotion needs no
// flag of its own since a non-NoPiece promotion field already marks it.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagCastle
	FlagEnPassant
)

// NewMove packs a move's components into a Move value.
func NewMove(from, to Square, piece, captured Piece, promotion Piece, flag MoveFlag) Move {
	return Move(uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift))
}

// From returns the move's source square.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece that moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece for a non-capture.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece, or NoPiece if m isn't a promotion.
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType strips color from PromotionPiece, for callers (like
// protocol move parsing) that only care about the promoted piece's type.
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flags returns m's special-case flag: FlagNone, FlagCastle, or FlagEnPassant.
func (m Move) Flags() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift) & 0x3) }

// String renders m in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	from, to, promo := m.From(), m.To(), m.PromotionPiece()

	fileFrom, rankFrom := from%8, from/8
	fileTo, rankTo := to%8, to/8

	s := string([]byte{'a' + byte(fileFrom), '1' + byte(rankFrom)}) +
		string([]byte{'a' + byte(fileTo), '1' + byte(rankTo)})
	if promo != NoPiece {
		s += strings.ToLower(string(charFromPiece(promo)))
	}
	return s
}
