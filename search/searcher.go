package search

import "sync/atomic"

// EvalLimit bounds every score the search ever returns: checkmate is
// reported as -EvalLimit, and EvalLimit itself stays well under int32's
// range so negation is always safe.
const EvalLimit int32 = 31800

// nullMoveR is the fixed depth reduction applied by null-move pruning.
const nullMoveR = 4

// stopPollInterval is how many nodes elapse between checks of the stop
// flag. The source has no stop mechanism at all (infinite go); this is an
// explicit addition so a tournament-style stop command actually works.
const stopPollInterval = 2048

// Searcher owns everything a search needs beyond the position itself: the
// transposition table and node counter. One Searcher serves one game; a
// fresh one (or a cleared TT) should be used for ucinewgame.
type Searcher struct {
	tt      *TranspositionTable
	nodes   uint64
	stop    *atomic.Bool
	aborted bool
}

// NewSearcher allocates a Searcher with a transposition table sized for
// sizeHint entries (rounded up to a power of two).
func NewSearcher(sizeHint int) *Searcher {
	return &Searcher{
		tt:   NewTranspositionTable(sizeHint),
		stop: &atomic.Bool{},
	}
}

// ClearTT empties the transposition table, used by ucinewgame.
func (s *Searcher) ClearTT() { s.tt.Clear() }

// Nodes returns the number of nodes visited since the counter was last
// reset by Run.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// RequestStop cooperatively halts the in-flight iterative-deepening loop.
// It has no effect on a search that has already returned.
func (s *Searcher) RequestStop() { s.stop.Store(true) }

// stopped reports whether RequestStop has been called since the counter was
// last reset, polling only every stopPollInterval nodes to keep the check
// off the hot path.
func (s *Searcher) stopped() bool {
	if s.nodes%stopPollInterval != 0 {
		return false
	}
	return s.stop.Load()
}
