package search

import (
	"fmt"
	"io"
	"time"

	"wren/rules"
)

// Run performs iterative-deepening search from pos, writing one `info` line
// per completed depth to w, until RequestStop is called or depthCap is
// reached (depthCap <= 0 means unbounded, matching spec.md's "no internal
// stop condition" — the cooperative stop flag is this repo's one addition).
// history carries the Zobrist keys of positions since the last irreversible
// move, used for repetition detection; it is not mutated.
func (s *Searcher) Run(w io.Writer, pos *rules.Position, history []uint64, depthCap int) {
	s.nodes = 0
	s.aborted = false
	s.stop.Store(false)

	start := time.Now()
	var pv PV

	for depth := 1; depthCap <= 0 || depth <= depthCap; depth++ {
		seed := pv.First()
		score, newPV := s.negamax(-EvalLimit, EvalLimit, int8(depth), pos, history, seed)
		if s.aborted {
			break
		}
		pv = newPV

		elapsedMS := time.Since(start).Milliseconds()
		nps := int64(0)
		if elapsedMS > 0 {
			nps = int64(s.nodes) * 1000 / elapsedMS
		}

		fmt.Fprintf(w, "info depth %d score cp %d time %d nodes %d nps %d pv", depth, score, elapsedMS, s.nodes, nps)
		for _, m := range pv {
			fmt.Fprintf(w, " %s", m.String())
		}
		fmt.Fprintln(w)

		if closer, ok := w.(interface{ Flush() error }); ok {
			_ = closer.Flush()
		}
	}
}
