package rules

// NullState is MakeNullMove's undo record: just the reversible fields a
// pass-the-turn move touches, since no piece moves and nothing is captured.
type NullState struct {
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	prevSide      Color
}

// MakeNullMove performs a null move: it switches the side to move without moving any piece.
// It clears any en passant square, updates zobrist side/en-passant keys, and advances clocks
// as a reversible quiet half-move. The returned state can be used to restore via UnmakeNullMove.
func (b *Position) MakeNullMove() (st NullState) {
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber
	st.prevZobrist = b.zobristKey
	st.prevSide = b.sideToMove

	// Remove current en passant from Zobrist if present
	if b.enPassantSquare != NoSquare {
		file := int(b.enPassantSquare % 8)
		b.zobristKey ^= zkeys.enPassant[file]
	}
	b.enPassantSquare = NoSquare

	// Advance halfmove clock by a reversible quiet half-move
	b.halfmoveClock++

	// Toggle side and Zobrist side
	b.sideToMove = 1 - b.sideToMove
	b.zobristKey ^= zkeys.side

	// Increment fullmove number after a Black move (i.e., if previous mover was Black)
	if st.prevSide == Black {
		b.fullmoveNumber++
	}
	return st
}

// UnmakeNullMove restores the board to the state prior to MakeNullMove.
func (b *Position) UnmakeNullMove(st NullState) {
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.sideToMove = st.prevSide
	// Ensure exact Zobrist restoration
	b.zobristKey = st.prevZobrist
}
