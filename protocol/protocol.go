// Package protocol implements the line-based UCI-like command loop that
// drives a search.Searcher: read a command from stdin, mutate the current
// position or kick off iterative deepening, write the response to stdout.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"wren/rules"
	"wren/search"
)

const (
	engineName   = "wren"
	engineAuthor = "wren"

	// ttSizeHint is the transposition table size target: roughly 1 GiB at
	// 20 bytes/entry, rounded up to the next power of two by NewSearcher.
	ttSizeHint = 50_000_000
)

// Loop owns the engine-side state for one UCI session: the current
// position, its move history (for repetition detection), and the search
// engine itself.
type Loop struct {
	out      io.Writer
	errOut   io.Writer
	pos      rules.Position
	history  []uint64
	searcher *search.Searcher

	// searching tracks an in-flight go command run on its own goroutine so
	// Run's line-reading loop stays free to read a stop command while the
	// search is going. Any handler that touches pos or history must call
	// stopAndAwaitSearch first to avoid racing with it.
	searching sync.WaitGroup
}

// NewLoop constructs a Loop that reads commands via Run and writes protocol
// output to out (diagnostics to errOut).
func NewLoop(out, errOut io.Writer) *Loop {
	l := &Loop{
		out:      &syncWriter{w: out},
		errOut:   errOut,
		searcher: search.NewSearcher(ttSizeHint),
	}
	l.resetPosition(rules.Startpos)
	return l
}

// syncWriter serializes writes to an underlying io.Writer. The go-command
// goroutine streams "info" lines to l.out while the line-reading loop may
// concurrently answer isready or uci on the same stream; without this,
// interleaved Write calls could tear a line in two.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Run reads one command per line from r until it sees "quit" or r is
// exhausted, dispatching each to the matching handler. Unknown commands are
// silently ignored, matching spec.md §7's "malformed input is ignored"
// error-handling contract.
func (l *Loop) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "uci":
			l.handleUCI()
		case "isready":
			fmt.Fprintln(l.out, "readyok")
		case "ucinewgame":
			l.stopAndAwaitSearch()
			l.resetPosition(rules.Startpos)
			l.searcher.ClearTT()
		case "position":
			l.stopAndAwaitSearch()
			l.handlePosition(fields[1:])
		case "go":
			l.stopAndAwaitSearch()
			l.handleGo(fields[1:])
		case "stop":
			l.searcher.RequestStop()
		case "perft":
			l.stopAndAwaitSearch()
			l.handlePerft(fields[1:])
		case "quit":
			l.stopAndAwaitSearch()
			return
		default:
			// Unknown commands are silently ignored per spec.
		}
	}
}

func (l *Loop) handleUCI() {
	fmt.Fprintf(l.out, "id name %s\n", engineName)
	fmt.Fprintf(l.out, "id author %s\n", engineAuthor)
	fmt.Fprintln(l.out, "uciok")
}

func (l *Loop) resetPosition(fen string) {
	l.pos = rules.ParseFen(fen)
	l.history = l.history[:0]
	l.history = append(l.history, l.pos.Hash())
}

// handlePosition implements `position startpos [moves ...]` and
// `position fen <fen> [moves ...]`.
func (l *Loop) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	rest := args
	switch strings.ToLower(args[0]) {
	case "startpos":
		l.resetPosition(rules.Startpos)
		rest = args[1:]
	case "fen":
		rest = args[1:]
		fenFields := make([]string, 0, 6)
		for len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			fenFields = append(fenFields, rest[0])
			rest = rest[1:]
		}
		fen := strings.Join(fenFields, " ")
		pos, err := rules.ParseFEN(fen)
		if err != nil {
			fmt.Fprintf(l.errOut, "info string invalid fen: %v\n", err)
			return
		}
		l.pos = *pos
		l.history = l.history[:0]
		l.history = append(l.history, l.pos.Hash())
	default:
		return
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, moveStr := range rest[1:] {
		if !l.applyMove(moveStr) {
			fmt.Fprintf(l.errOut, "info string move %s not found for position %s\n", moveStr, l.pos.ToFEN())
			return
		}
	}
}

// applyMove matches a long-algebraic move string against the position's
// legal moves and, if found, applies it and records the resulting hash.
// The exact move string (e.g. from another engine's "e7e8q") is tried
// first; failing that, the from/to/promotion components are matched
// against the legal move list, since ParseMove alone cannot reconstruct a
// fully-encoded Move (moved/captured piece, flags) without knowing the
// position.
func (l *Loop) applyMove(moveStr string) bool {
	moveStr = strings.ToLower(moveStr)
	legal := l.pos.GenerateLegal(rules.All)

	for _, m := range legal {
		if m.String() == moveStr {
			return l.commitMove(m)
		}
	}

	from, to, promo, err := rules.ParseMove(moveStr)
	if err != nil {
		return false
	}
	for _, m := range legal {
		if m.From() == from && m.To() == to && m.PromotionPieceType() == promo {
			return l.commitMove(m)
		}
	}
	return false
}

func (l *Loop) commitMove(m rules.Move) bool {
	ok, _ := l.pos.MakeMove(m)
	if !ok {
		return false
	}
	l.history = append(l.history, l.pos.Hash())
	return true
}

// handleGo launches iterative deepening on its own goroutine so Run's
// line-reading loop stays free to read a "stop" command while the search
// is in flight. Callers must have already called stopAndAwaitSearch so no
// previous search is still touching l.pos/l.history. "go depth N" bounds
// the search to N plies; a bare "go" is unbounded until "stop".
func (l *Loop) handleGo(args []string) {
	depthCap := 0
	for i := 0; i < len(args)-1; i++ {
		if strings.ToLower(args[i]) == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil && d > 0 {
				depthCap = d
			}
			break
		}
	}

	l.searching.Add(1)
	go func() {
		defer l.searching.Done()
		l.searcher.Run(l.out, &l.pos, l.history, depthCap)
	}()
}

// stopAndAwaitSearch requests that any in-flight go command halt and blocks
// until it has. Every handler that reads or mutates l.pos/l.history calls
// this first, since the search goroutine touches both while running.
func (l *Loop) stopAndAwaitSearch() {
	l.searcher.RequestStop()
	l.searching.Wait()
}

func (l *Loop) handlePerft(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(l.errOut, "info string perft requires a depth argument")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth <= 0 {
		fmt.Fprintln(l.errOut, "info string perft depth must be a positive integer")
		return
	}
	nodes := rules.Perft(&l.pos, depth)
	fmt.Fprintf(l.out, "perft %d nodes %d\n", depth, nodes)
}
