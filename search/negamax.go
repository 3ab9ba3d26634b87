package search

import (
	"math"

	"wren/rules"
)

// negamax computes a fail-soft alpha-beta score from the side-to-move's
// perspective at depthLeft plies, returning the best line found as pv (on a
// beta cutoff, the line through the move that caused it). pvSeed, when non-empty, supplies the move ordering's
// PV slot for the root's first child (the PV returned at the previous
// iterative-deepening depth).
func (s *Searcher) negamax(alpha, beta int32, depthLeft int8, pos *rules.Position, history []uint64, pvSeed rules.Move) (score int32, pv PV) {
	s.nodes++
	if s.stopped() {
		s.aborted = true
		return 0, nil
	}

	if depthLeft == 0 {
		return s.quiesce(alpha, beta, pos), nil
	}

	if pos.IsDrawBy50() {
		if pos.FiftyMoveDrawReason() == rules.Checkmate {
			return -EvalLimit, nil
		}
		return 0, nil
	}
	if pos.IsRepetition(history, 1) || pos.IsInsufficientMaterial() {
		return 0, nil
	}

	hash := pos.Hash()
	entry, hashHit := s.tt.Probe(hash)
	if hashHit && entry.Depth >= depthLeft {
		return entry.Score, nil
	}

	inCheck := pos.InCheckNow()
	if !inCheck && depthLeft >= nullMoveR {
		nullSt := pos.MakeNullMove()
		nullScore, _ := s.negamax(-beta, -beta+1, depthLeft-nullMoveR, pos, history, rules.NoMove)
		nullScore = -nullScore
		pos.UnmakeNullMove(nullSt)
		if s.aborted {
			return 0, nil
		}
		if nullScore >= beta {
			return nullScore, nil
		}
	}

	moves := pos.GenerateLegal(rules.All)
	if len(moves) == 0 {
		if inCheck {
			return -EvalLimit, nil
		}
		return 0, nil
	}

	hashMove := rules.NoMove
	if hashHit {
		hashMove = entry.Move
	}
	phase := Phase(pos)
	OrderMoves(moves, pos, pvSeed, hashMove, phase)

	best := -EvalLimit
	moveCount := 0
	var bestPV PV

	for _, m := range moves {
		ok, st := pos.MakeMove(m)
		if !ok {
			continue
		}
		moveCount++

		history = append(history, pos.Hash())

		var childScore int32
		var childPV PV
		if depthLeft >= 2 {
			reduction := lmrReduction(depthLeft, moveCount)
			childScore, childPV = s.negamax(-beta, -alpha, depthLeft-1-reduction, pos, history, rules.NoMove)
			childScore = -childScore
			if childScore > alpha {
				childScore, childPV = s.negamax(-beta, -alpha, depthLeft-1, pos, history, rules.NoMove)
				childScore = -childScore
			}
		} else {
			childScore, childPV = s.negamax(-beta, -alpha, depthLeft-1, pos, history, rules.NoMove)
			childScore = -childScore
		}

		history = history[:len(history)-1]
		pos.UnmakeMove(m, st)

		if s.aborted {
			return 0, nil
		}

		if childScore >= beta {
			return childScore, childPV.Prepend(m)
		}
		if childScore > best {
			best = childScore
			bestPV = childPV.Prepend(m)
			if childScore > alpha {
				alpha = childScore
			}
		}
	}

	bestMove := rules.NoMove
	if len(bestPV) > 0 {
		bestMove = bestPV[0]
	}
	if !hashHit || depthLeft >= entry.Depth {
		s.tt.Store(hash, depthLeft, best, bestMove)
	}

	return best, bestPV
}

// lmrReduction computes the late-move-reduction depth cut for the
// moveCount'th move searched at depthLeft, clamped to [0, depthLeft-1] so
// the reduced search never goes negative.
func lmrReduction(depthLeft int8, moveCount int) int8 {
	raw := math.Round(math.Log(float64(depthLeft)) * math.Log(float64(moveCount)) / 2)
	r := int8(raw)
	if r < 0 {
		r = 0
	}
	if r > depthLeft-1 {
		r = depthLeft - 1
	}
	return r
}
