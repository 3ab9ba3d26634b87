package search

import "wren/rules"

// quiesce searches only captures from the current position, stabilizing the
// leaf evaluation before it is trusted by the main search. It returns a
// negamax score (fail-soft) from the side-to-move's perspective.
func (s *Searcher) quiesce(alpha, beta int32, pos *rules.Position) int32 {
	s.nodes++
	if s.stopped() {
		s.aborted = true
		return 0
	}

	sign := int32(1)
	if pos.SideToMove() == rules.Black {
		sign = -1
	}
	standPat := Evaluate(pos) * sign

	if standPat >= beta {
		return standPat
	}
	if standPat < alpha-PieceValueMG[rules.PieceTypeQueen] {
		return alpha
	}
	if standPat > alpha {
		alpha = standPat
	}
	best := standPat

	captures := pos.GenerateLegal(rules.Captures)
	phase := Phase(pos)
	OrderMoves(captures, pos, rules.NoMove, rules.NoMove, phase)

	for _, m := range captures {
		ok, st := pos.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.quiesce(-beta, -alpha, pos)
		pos.UnmakeMove(m, st)

		if s.aborted {
			return 0
		}
		if score >= beta {
			return score
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
	}

	return best
}
