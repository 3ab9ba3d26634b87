package rules

import "math/bits"

// MoveState is the undo record MakeMove hands back to its caller: enough of
// the position's prior state (castling rights, en passant square, clocks,
// Zobrist key, and any rook displaced by castling) to restore it exactly.
type MoveState struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square // for castling undo
	rookTo        Square // for castling undo
}

// abs is a small local helper; math.Abs works on floats only and this repo
// wants an int in and an int out for pawn double-push detection.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies a move to the board. It returns ok=false if the move leaves the mover's king in check,
// restoring the original position.
func (b *Position) MakeMove(m Move) (ok bool, st MoveState) {
	st.move = m
	st.prevCastling = b.castlingRights
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber
	st.prevZobrist = b.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare
	st.captured = NoPiece

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	// Remove previous en passant from Zobrist if present
	if b.enPassantSquare != NoSquare {
		file := int(b.enPassantSquare % 8)
		b.zobristKey ^= zkeys.enPassant[file]
	}
	b.enPassantSquare = NoSquare

	// Fast-path updates (avoid generic add/remove where possible)
	us := int(b.sideToMove)
	them := 1 - us
	fromBB := uint64(1) << uint(from)
	toBB := uint64(1) << uint(to)

	// Handle capture (including en passant)
	if flag == FlagEnPassant {
		// Captured pawn is behind 'to'
		var capSq Square
		var capPiece Piece
		if b.sideToMove == White {
			capSq = to - 8
			capPiece = BlackPawn
		} else {
			capSq = to + 8
			capPiece = WhitePawn
		}
		st.captured = capPiece
		capBB := uint64(1) << uint(capSq)
		// Remove captured pawn
		b.pieces[int(capSq)] = NoPiece
		b.occupancy[them] &^= capBB
		b.pawns[them] &^= capBB
		b.zobristKey ^= zkeys.piece[capPiece][int(capSq)]
	} else if captured != NoPiece {
		// Remove captured piece at 'to'
		st.captured = captured
		b.pieces[int(to)] = NoPiece
		b.occupancy[them] &^= toBB
		switch typeOf(captured) {
		case PieceTypePawn:
			b.pawns[them] &^= toBB
		case PieceTypeKnight:
			b.knights[them] &^= toBB
		case PieceTypeBishop:
			b.bishops[them] &^= toBB
		case PieceTypeRook:
			b.rooks[them] &^= toBB
		case PieceTypeQueen:
			b.queens[them] &^= toBB
		case PieceTypeKing:
			b.kings[them] &^= toBB
		}
		b.zobristKey ^= zkeys.piece[captured][int(to)]
	}

	// Move the piece (or promote)
	if promo != NoPiece {
		// Remove pawn at from
		b.pieces[int(from)] = NoPiece
		b.occupancy[us] &^= fromBB
		b.pawns[us] &^= fromBB
		b.zobristKey ^= zkeys.piece[moved][int(from)]
		// Add promoted piece at to
		b.pieces[int(to)] = promo
		b.occupancy[us] |= toBB
		switch typeOf(promo) {
		case PieceTypeKnight:
			b.knights[us] |= toBB
		case PieceTypeBishop:
			b.bishops[us] |= toBB
		case PieceTypeRook:
			b.rooks[us] |= toBB
		case PieceTypeQueen:
			b.queens[us] |= toBB
		case PieceTypeKing:
			b.kings[us] |= toBB
		}
		b.zobristKey ^= zkeys.piece[promo][int(to)]
	} else {
		// Quiet move of the piece from -> to
		b.pieces[int(from)] = NoPiece
		b.pieces[int(to)] = moved
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
		// Zobrist piece move
		b.zobristKey ^= zkeys.piece[moved][int(from)]
		b.zobristKey ^= zkeys.piece[moved][int(to)]
	}

	// Castling rook movement
	if flag == FlagCastle {
		rk := castleRookMove[to]
		rook := PieceFromType(b.sideToMove, PieceTypeRook)
		rb := bb(rk.from)
		nb := bb(rk.to)
		b.pieces[int(rk.from)] = NoPiece
		b.pieces[int(rk.to)] = rook
		b.occupancy[us] ^= rb | nb
		b.rooks[us] ^= rb | nb
		b.zobristKey ^= zkeys.piece[rook][int(rk.from)]
		b.zobristKey ^= zkeys.piece[rook][int(rk.to)]
		st.rookFrom, st.rookTo = rk.from, rk.to
	}

	// Update castling rights
	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= (CastlingWhiteK | CastlingWhiteQ)
	case BlackKing:
		newCR &^= (CastlingBlackK | CastlingBlackQ)
	}
	if moved == WhiteRook {
		if from == 0 {
			newCR &^= CastlingWhiteQ
		} else if from == 7 {
			newCR &^= CastlingWhiteK
		}
	} else if moved == BlackRook {
		if from == 56 {
			newCR &^= CastlingBlackQ
		} else if from == 63 {
			newCR &^= CastlingBlackK
		}
	}
	// Rook captured on original squares removes rights
	if st.captured != NoPiece && typeOf(st.captured) == PieceTypeRook {
		capSq := to
		switch capSq {
		case 0:
			newCR &^= CastlingWhiteQ
		case 7:
			newCR &^= CastlingWhiteK
		case 56:
			newCR &^= CastlingBlackQ
		case 63:
			newCR &^= CastlingBlackK
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zkeys.castle[int(b.castlingRights)]
		b.zobristKey ^= zkeys.castle[int(newCR)]
		b.castlingRights = newCR
	}

	// Set en passant square if double pawn push
	if typeOf(moved) == PieceTypePawn { // pawn
		fromRank := int(from) / 8
		toRank := int(to) / 8
		if abs(toRank-fromRank) == 2 {
			var ep Square
			if b.sideToMove == White {
				ep = from + 8
			} else {
				ep = from - 8
			}
			b.enPassantSquare = ep
			file := int(ep % 8)
			b.zobristKey ^= zkeys.enPassant[file]
		}
	}

	// Toggle side to move (+ Zobrist) before legality check so Unmake can rely on the toggled state
	b.sideToMove = 1 - b.sideToMove
	b.zobristKey ^= zkeys.side

	// Reject illegal move that leaves mover in check (direct attack query, avoid wrapper overhead)
	moverColor := 1 - b.sideToMove
	// Compute current occupancy and king square for mover
	occ := b.occupancy[0] | b.occupancy[1]
	kingBB := b.kings[int(moverColor)]
	if kingBB != 0 {
		ks := bits.TrailingZeros64(kingBB)
		// Gate the king-safety check: required for king moves, en passant, or when the moved piece
		// originates from a square on any rook/bishop ray from our king (potential discovered check).
		needCheck := true
		if typeOf(moved) != PieceTypeKing && flag != FlagEnPassant { // not a king move and not EP
			rays := atk.kingRay[ks]
			if ((rays >> uint(from)) & 1) == 0 {
				needCheck = false
			}
		}
		if needCheck && b.isSquareAttackedWithOcc(ks, 1-moverColor, occ) {
			b.UnmakeMove(m, st)
			return false, st
		}
	} else {
		// Shouldn't happen in valid positions; treat as illegal
		b.UnmakeMove(m, st)
		return false, st
	}

	// Halfmove clock
	if typeOf(moved) == PieceTypePawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// Fullmove number increments after a legal Black move
	if moverColor == Black {
		b.fullmoveNumber++
	}

	return true, st
}
