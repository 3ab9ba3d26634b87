package rules

// castleRook names the rook displacement that accompanies a castling king
// move, keyed by the king's destination square. MakeMove, GivesCheck, and
// GenerateChecksInto all need this same mapping and previously each
// re-derived it with its own per-side, per-direction branching; a single
// table keeps them from drifting apart. UnmakeMove puts the rook back from
// the squares MakeMove recorded in MoveState.
type castleRook struct {
	from, to Square
}

var castleRookMove = map[Square]castleRook{
	6:  {from: 7, to: 5},   // white kingside: Rh1-f1
	2:  {from: 0, to: 3},   // white queenside: Ra1-d1
	62: {from: 63, to: 61}, // black kingside: Rh8-f8
	58: {from: 56, to: 59}, // black queenside: Ra8-d8
}
