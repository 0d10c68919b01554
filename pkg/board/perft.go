package board

// Perft counts the number of leaf positions reachable from g's current position in
// exactly depth plies, making and unmaking every legal move recursively. It is the
// standard move-generator correctness check: its counts for the standard starting
// position and a handful of well-known test positions are published and fixed.
func Perft(g *Game, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var list MoveList
	g.GenerateLegalMoves(&list)

	if depth == 1 {
		return int64(list.Len())
	}

	var nodes int64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		g.Make(m)
		nodes += Perft(g, depth-1)
		g.Unmake()
	}
	return nodes
}

// PerftDivide returns, for each legal move in the current position, the perft count of
// the subtree rooted at that move, in generation order. Used by the UCI "go perft"
// command's divide output and by tests that need to localize a discrepancy to a single
// move.
func PerftDivide(g *Game, depth int) []PerftEntry {
	var list MoveList
	g.GenerateLegalMoves(&list)

	entries := make([]PerftEntry, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		g.Make(m)
		nodes := Perft(g, depth-1)
		g.Unmake()
		entries = append(entries, PerftEntry{Move: m, Nodes: nodes})
	}
	return entries
}

// PerftEntry pairs a root move with the node count of its subtree, as reported by
// PerftDivide.
type PerftEntry struct {
	Move  Move
	Nodes int64
}
