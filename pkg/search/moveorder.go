package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Move-ordering point values, grounded on the teacher's Selection/MVVLVA idiom
// (pkg/search/exploration.go, selection.go) but with the concrete weights.
const (
	ttMoveScore       int32 = 10_000_000
	captureBaseScore  int32 = 1_000_000
	promotionScore    int32 = 900_000
	queenPromoBonus   int32 = 50_000
	killerScore       int32 = 500_000
	historyCap        int32 = 100_000
	historyHalvingDiv int32 = 2
)

// killers holds the two most recent quiet moves that caused a beta cutoff at a given
// ply, shifted on insert (newest first). Killers are never captures, since captures
// already order well by MVV-LVA.
type killers [2]board.Move

func (k *killers) add(m board.Move) {
	if m == k[0] {
		return
	}
	k[1] = k[0]
	k[0] = m
}

func (k killers) matches(m board.Move) bool {
	return m == k[0] || m == k[1]
}

// historyTable scores quiet moves by how often they have caused a cutoff in the past,
// indexed by (side to move, from, to) per spec §4.8.
type historyTable [board.NumColors][board.NumSquares][board.NumSquares]int32

func (h *historyTable) bonus(side board.Color, from, to board.Square, depth int) {
	v := &h[side][from][to]
	*v += int32(depth * depth)
	if *v > historyCap {
		*v = historyCap
	}
}

func (h *historyTable) score(side board.Color, from, to board.Square) int32 {
	return h[side][from][to]
}

// age halves every history score, used periodically between searches so that old
// cutoff evidence decays instead of permanently dominating move ordering.
func (h *historyTable) age() {
	for side := range h {
		for from := range h[side] {
			for to := range h[side][from] {
				h[side][from][to] /= historyHalvingDiv
			}
		}
	}
}

// orderingState is the move-ordering context threaded through one search: killers
// indexed by ply, plus the shared history table.
type orderingState struct {
	killers [MaxPly + 1]killers
	history historyTable
}

// scoreMoves fills in ordering scores for every move in list, using the board to
// recover each move's actual moving-piece type for accurate MVV-LVA.
func scoreMoves(b *board.Board, list *board.MoveList, o *orderingState, ttMove board.Move, ply, depth int) {
	side := b.Turn()
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		var s int32
		switch {
		case ttMove != board.NoMove && m == ttMove:
			s = ttMoveScore
		case m.IsCapture():
			mover, _ := b.PieceAt(m.From())
			victim := eval.PieceValue(m.Captured())
			attacker := eval.PieceValue(mover.Type)
			s = captureBaseScore + int32(10*victim-attacker)
		case m.IsPromotion():
			s = promotionScore
			if m.Promotion() == board.Queen {
				s += queenPromoBonus
			}
		case ply <= MaxPly && o.killers[ply].matches(m):
			s = killerScore
		default:
			s = o.history.score(side, m.From(), m.To())
		}
		list.SetScore(i, s)
	}
}

// recordCutoff updates killers and history after a quiet move causes a beta cutoff.
func (o *orderingState) recordCutoff(side board.Color, m board.Move, ply, depth int) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	if ply <= MaxPly {
		o.killers[ply].add(m)
	}
	o.history.bonus(side, m.From(), m.To(), depth)
}
