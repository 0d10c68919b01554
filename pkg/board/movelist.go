package board

// MaxMoves is the proven maximum number of legal moves in any legal chess position
// (https://www.talkchess.com/forum/viewtopic.php?t=61792). Move lists for one generated
// ply reuse a fixed-capacity buffer of this size; the hot move-generation path never
// allocates.
const MaxMoves = 218

// MoveList is a fixed-capacity, unordered buffer of moves for one ply, optionally paired
// with a per-move ordering score. It is zero-value ready.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	n      int
}

// Reset empties the list for reuse without reallocating.
func (l *MoveList) Reset() {
	l.n = 0
}

// Add appends a move with ordering score 0.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.scores[l.n] = 0
	l.n++
}

// AddScored appends a move with the given ordering score.
func (l *MoveList) AddScored(m Move, score int32) {
	l.moves[l.n] = m
	l.scores[l.n] = score
	l.n++
}

func (l *MoveList) Len() int {
	return l.n
}

func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

func (l *MoveList) ScoreAt(i int) int32 {
	return l.scores[i]
}

func (l *MoveList) SetScore(i int, score int32) {
	l.scores[i] = score
}

// Slice returns the populated moves as a plain slice, for callers (tests, perft) that
// don't need in-place scored ordering.
func (l *MoveList) Slice() []Move {
	return append([]Move(nil), l.moves[:l.n]...)
}

// Swap exchanges two entries (move and score together), used by selection ordering.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
	l.scores[i], l.scores[j] = l.scores[j], l.scores[i]
}

// SelectBest moves the highest-scored move among [from, Len()) into position from and
// returns it. Used by the search loop to iterate moves highest-score-first via a
// selection sort: cheaper than a full sort up front when a cutoff often ends the loop
// after only a few candidates.
func (l *MoveList) SelectBest(from int) Move {
	best := from
	for i := from + 1; i < l.n; i++ {
		if l.scores[i] > l.scores[best] {
			best = i
		}
	}
	l.Swap(from, best)
	return l.moves[from]
}
