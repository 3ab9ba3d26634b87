package rules

import "math/bits"

// attackTables holds the square-indexed lookup tables the move generator and
// check detector share: knight/king jump masks, pawn attack masks,
// per-direction sliding rays, and a software PEXT/PDEP magic-style table for
// rook/bishop attacks under arbitrary occupancy. Grouping them mirrors
// zobristTable in zobrist.go: one computed-once value built by a constructor
// instead of a handful of parallel package-level arrays filled by init().
type attackTables struct {
	// knight and king jump masks, indexed by origin square.
	knight [64]uint64
	king   [64]uint64

	// pawn[color][sq] is the set of squares a pawn of color attacks from sq.
	pawn [2][64]uint64

	// rookRay and bishopRay hold, for each square and direction, the bitboard
	// of squares in that ray excluding the origin. Rook directions: 0=N, 1=S,
	// 2=E, 3=W. Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW.
	rookRay   [64][4]uint64
	bishopRay [64][4]uint64

	// kingRay is the union of all rook and bishop rays from each square, used
	// to gate the discovered-check test in makemove.go.
	kingRay [64]uint64

	// rookOccMask/bishopOccMask exclude board edges; rookAtt/bishopAtt are
	// indexed [sq][pext(occupancy, mask)] and hold the resulting attack set.
	rookOccMask   [64]uint64
	bishopOccMask [64]uint64
	rookAtt       [64][]uint64
	bishopAtt     [64][]uint64
}

var atk = computeAttackTables()

func computeAttackTables() attackTables {
	var t attackTables
	t.fillJumpAndPawnMasks()
	t.fillRays()
	t.fillSliderTables()
	return t
}

// fillJumpAndPawnMasks precomputes move attack bitboards for knights, kings, and pawn captures.
func (t *attackTables) fillJumpAndPawnMasks() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var knight uint64
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knight |= uint64(1) << (rf*8 + ff)
			}
		}
		t.knight[sq] = knight

		var king uint64
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				king |= uint64(1) << (rf*8 + ff)
			}
		}
		t.king[sq] = king

		if rank < 7 {
			if file > 0 {
				t.pawn[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				t.pawn[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}
		if rank > 0 {
			if file > 0 {
				t.pawn[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				t.pawn[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

// fillRays precomputes directional rays for rook and bishop moves.
func (t *attackTables) fillRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		t.rookRay[sq][0] = ray // N

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
			if r == 0 {
				break
			}
		}
		t.rookRay[sq][1] = ray // S

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		t.rookRay[sq][2] = ray // E

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
			if f == 0 {
				break
			}
		}
		t.rookRay[sq][3] = ray // W

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		t.bishopRay[sq][0] = ray // NE

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
			if f == 0 {
				break
			}
		}
		t.bishopRay[sq][1] = ray // NW

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
			if r == 0 {
				break
			}
		}
		t.bishopRay[sq][2] = ray // SE

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
			if r == 0 || f == 0 {
				break
			}
		}
		t.bishopRay[sq][3] = ray // SW

		t.kingRay[sq] = t.rookRay[sq][0] | t.rookRay[sq][1] | t.rookRay[sq][2] | t.rookRay[sq][3] |
			t.bishopRay[sq][0] | t.bishopRay[sq][1] | t.bishopRay[sq][2] | t.bishopRay[sq][3]
	}
}

// fillSliderTables builds per-square occupancy masks and attack tables.
func (t *attackTables) fillSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var rm uint64
		for r := rank + 1; r < 7; r++ {
			rm |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= 1 << uint(rank*8+f)
		}
		t.rookOccMask[sq] = rm

		var bm uint64
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		t.bishopOccMask[sq] = bm

		rBits := bits.OnesCount64(rm)
		bBits := bits.OnesCount64(bm)
		t.rookAtt[sq] = make([]uint64, 1<<rBits)
		t.bishopAtt[sq] = make([]uint64, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := pdep(uint64(idx), rm)
			t.rookAtt[sq][idx] = rookAttacksFromRays(t.rookRay, sq, occ)
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := pdep(uint64(idx), bm)
			t.bishopAtt[sq][idx] = bishopAttacksFromRays(t.bishopRay, sq, occ)
		}
	}
}

// software pext: extract bits of x at positions where mask has 1s, packed into low bits
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

func rookAttacksMagic(sq int, occ uint64) uint64 {
	idx := pext(occ, atk.rookOccMask[sq])
	return atk.rookAtt[sq][idx]
}

func bishopAttacksMagic(sq int, occ uint64) uint64 {
	idx := pext(occ, atk.bishopOccMask[sq])
	return atk.bishopAtt[sq][idx]
}

// CalculateRookMoveBitboard returns the rook attack bitboard from square
// given the supplied occupancy, via the magic-style lookup table.
func CalculateRookMoveBitboard(square uint8, occupancy uint64) uint64 {
	return rookAttacksMagic(int(square), occupancy)
}

// CalculateBishopMoveBitboard returns the bishop attack bitboard from square
// given the supplied occupancy, via the magic-style lookup table.
func CalculateBishopMoveBitboard(square uint8, occupancy uint64) uint64 {
	return bishopAttacksMagic(int(square), occupancy)
}
