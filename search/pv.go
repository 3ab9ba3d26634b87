package search

import "wren/rules"

// PV is a principal variation: the best line found from a position, stored
// as a plain move slice so the root can seed ordering for the next
// iterative-deepening depth by simply passing pv[0] along.
type PV []rules.Move

// Prepend returns a newly allocated PV with m in front of child; child
// itself is left unchanged.
func (child PV) Prepend(m rules.Move) PV {
	out := make(PV, 0, len(child)+1)
	out = append(out, m)
	out = append(out, child...)
	return out
}

// First returns the PV's first move, or rules.NoMove if the PV is empty.
func (pv PV) First() rules.Move {
	if len(pv) == 0 {
		return rules.NoMove
	}
	return pv[0]
}
