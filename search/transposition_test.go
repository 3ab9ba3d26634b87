package search

import (
	"testing"

	"wren/rules"
)

func TestTranspositionTableSizeIsPowerOfTwo(t *testing.T) {
	cases := []struct{ hint, want int }{
		{1, 2}, {2, 2}, {3, 4}, {1000, 1024}, {1 << 20, 1 << 20},
	}
	for _, c := range cases {
		tt := NewTranspositionTable(c.hint)
		if tt.Len() != c.want {
			t.Errorf("NewTranspositionTable(%d).Len() = %d, want %d", c.hint, tt.Len(), c.want)
		}
	}
}

func TestTranspositionTableProbeMissThenHit(t *testing.T) {
	tt := NewTranspositionTable(64)
	hash := uint64(0xDEADBEEF)
	if _, hit := tt.Probe(hash); hit {
		t.Fatalf("expected miss on empty table")
	}
	tt.Store(hash, 5, 123, rules.NoMove)
	entry, hit := tt.Probe(hash)
	if !hit {
		t.Fatalf("expected hit after store")
	}
	if entry.Depth != 5 || entry.Score != 123 {
		t.Fatalf("entry = %+v, want depth 5 score 123", entry)
	}
}

func TestTranspositionTableDepthPreferredReplacement(t *testing.T) {
	tt := NewTranspositionTable(64)
	hash := uint64(42)
	tt.Store(hash, 8, 100, rules.NoMove)
	tt.Store(hash, 3, 999, rules.NoMove) // shallower: should not replace
	entry, _ := tt.Probe(hash)
	if entry.Depth != 8 || entry.Score != 100 {
		t.Fatalf("shallow store replaced deeper entry: %+v", entry)
	}
	tt.Store(hash, 8, 200, rules.NoMove) // equal depth: replaces
	entry, _ = tt.Probe(hash)
	if entry.Score != 200 {
		t.Fatalf("equal-depth store did not replace: %+v", entry)
	}
}

func TestSearchMonotonicStoresDeepEntryForRoot(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	s := NewSearcher(1 << 16)
	const depth = int8(4)
	s.negamax(-EvalLimit, EvalLimit, depth, &pos, nil, rules.NoMove)

	entry, hit := s.tt.Probe(pos.Hash())
	if !hit {
		t.Fatalf("expected root position stored in TT after search")
	}
	if entry.Depth < depth {
		t.Fatalf("root entry depth %d < searched depth %d", entry.Depth, depth)
	}
}

func TestRootPVIsLegalSequence(t *testing.T) {
	pos := rules.ParseFen(rules.Startpos)
	s := NewSearcher(1 << 16)
	_, pv := s.negamax(-EvalLimit, EvalLimit, 4, &pos, nil, rules.NoMove)

	work := pos
	for i, m := range pv {
		ok, _ := work.MakeMove(m)
		if !ok {
			t.Fatalf("PV move %d (%s) is illegal from the position reached so far", i, m.String())
		}
	}
}
