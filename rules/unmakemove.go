package rules

// UnmakeMove reverses a move previously applied by MakeMove, restoring the
// position to exactly the state st was captured from.
func (b *Position) UnmakeMove(m Move, st MoveState) {
	// Toggle side back
	b.sideToMove = 1 - b.sideToMove
	b.zobristKey ^= zkeys.side

	// Remove current en passant from Zobrist
	if b.enPassantSquare != NoSquare {
		file := int(b.enPassantSquare % 8)
		b.zobristKey ^= zkeys.enPassant[file]
	}

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	us := int(b.sideToMove)
	them := 1 - us

	// Undo castling rook movement, if any. Zobrist is restored wholesale from
	// st.prevZobrist at the end, so this only needs to fix up the bitboards.
	if flag == FlagCastle && st.rookFrom != NoSquare && st.rookTo != NoSquare {
		rook := PieceFromType(colorOf(moved), PieceTypeRook)
		rbFrom := bb(st.rookFrom)
		rbTo := bb(st.rookTo)
		b.pieces[int(st.rookTo)] = NoPiece
		b.pieces[int(st.rookFrom)] = rook
		b.occupancy[us] ^= rbFrom | rbTo
		b.rooks[us] ^= rbFrom | rbTo
	}

	// Move piece back (handle promotion) inline
	fromBB := uint64(1) << uint(from)
	toBB := uint64(1) << uint(to)
	// Clear current 'to'
	b.pieces[int(to)] = NoPiece
	if promo != NoPiece {
		// Place pawn back at from
		pawn := PieceFromType(colorOf(moved), PieceTypePawn)
		b.pieces[int(from)] = pawn
		b.occupancy[us] ^= (fromBB | toBB)
		// remove promo from to, add pawn at from
		switch typeOf(promo) {
		case PieceTypeKnight:
			b.knights[us] &^= toBB
		case PieceTypeBishop:
			b.bishops[us] &^= toBB
		case PieceTypeRook:
			b.rooks[us] &^= toBB
		case PieceTypeQueen:
			b.queens[us] &^= toBB
		case PieceTypeKing:
			b.kings[us] &^= toBB
		}
		b.pawns[us] |= fromBB
	} else {
		// Move piece back to from
		b.pieces[int(from)] = moved
		b.occupancy[us] ^= (fromBB | toBB)
		switch typeOf(moved) {
		case PieceTypePawn:
			b.pawns[us] ^= (fromBB | toBB)
		case PieceTypeKnight:
			b.knights[us] ^= (fromBB | toBB)
		case PieceTypeBishop:
			b.bishops[us] ^= (fromBB | toBB)
		case PieceTypeRook:
			b.rooks[us] ^= (fromBB | toBB)
		case PieceTypeQueen:
			b.queens[us] ^= (fromBB | toBB)
		case PieceTypeKing:
			b.kings[us] ^= (fromBB | toBB)
		}
	}

	// Restore captured piece
	if st.captured != NoPiece {
		if flag == FlagEnPassant {
			var capSq Square
			if colorOf(moved) == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			capIdx := int(capSq)
			capBB := uint64(1) << uint(capSq)
			b.pieces[capIdx] = st.captured
			b.occupancy[them] |= capBB
			// Only pawns can be captured by EP
			b.pawns[them] |= capBB
		} else {
			// Normal capture: restore at 'to'
			b.pieces[int(to)] = st.captured
			b.occupancy[them] |= toBB
			switch typeOf(st.captured) {
			case PieceTypePawn:
				b.pawns[them] |= toBB
			case PieceTypeKnight:
				b.knights[them] |= toBB
			case PieceTypeBishop:
				b.bishops[them] |= toBB
			case PieceTypeRook:
				b.rooks[them] |= toBB
			case PieceTypeQueen:
				b.queens[them] |= toBB
			case PieceTypeKing:
				b.kings[them] |= toBB
			}
		}
	}

	// Restore clocks, EP, castling rights
	if b.castlingRights != st.prevCastling {
		b.zobristKey ^= zkeys.castle[int(b.castlingRights)]
		b.zobristKey ^= zkeys.castle[int(st.prevCastling)]
	}
	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	if b.enPassantSquare != NoSquare {
		file := int(b.enPassantSquare % 8)
		b.zobristKey ^= zkeys.enPassant[file]
	}
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove

	// Ensure exact Zobrist restoration
	b.zobristKey = st.prevZobrist
}
