package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/logw"
)

// Bound qualifies whether a stored score is exact or only a bound, because the node that
// produced it was itself cut off by alpha-beta pruning.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound // score is a fail-high: the true value is >= the stored score
	UpperBound // score is a fail-low: the true value is <= the stored score
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// Entry is a transposition table lookup result.
type Entry struct {
	Bound Bound
	Depth int
	Score board.Score
	Move  board.Move
}

// TranspositionTable caches search results keyed by position hash. Must be safe for
// concurrent Read/Write.
type TranspositionTable interface {
	Read(hash board.ZobristHash) (Entry, bool)
	Write(hash board.ZobristHash, e Entry, age uint16)

	// Size returns the table size in bytes.
	Size() uint64
	// Used returns the fraction of slots occupied, in [0;1] -- reported as UCI "hashfull".
	Used() float64
}

// metadata packs everything about a stored node except its hash and score.
type metadata struct {
	bound     Bound
	from, to  board.Square
	promotion board.PieceType
	depth     uint16
	age       uint16
}

type node struct {
	hash  board.ZobristHash
	score board.Score
	md    metadata
}

// table is an open-addressed, power-of-two-sized transposition table with lock-free
// reads and writes via atomic pointer swaps on each slot, grounded on the teacher's
// replace-by-value scheme (deeper, newer results displace shallower, older ones),
// generalized with an explicit search generation ("age") so stale entries from a
// previous root position don't out-rank fresh ones from the current search merely for
// having been searched deeper long ago.
type table struct {
	slots []unsafe.Pointer // *node
	mask  uint64
	used  int64
}

// NewTranspositionTable allocates a table sized to the nearest power of two not
// exceeding sizeBytes, each slot costing 32 bytes.
func NewTranspositionTable(ctx context.Context, sizeBytes uint64) TranspositionTable {
	const slotBytes = 32
	n := uint64(1)
	if sizeBytes > slotBytes {
		n = uint64(1) << (63 - bits.LeadingZeros64(sizeBytes/slotBytes))
	}
	logw.Infof(ctx, "allocating %vMB transposition table with %v entries", sizeBytes>>20, n)
	return &table{
		slots: make([]unsafe.Pointer, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * 32
}

func (t *table) Used() float64 {
	return float64(atomic.LoadInt64(&t.used)) / float64(len(t.slots))
}

func (t *table) Read(hash board.ZobristHash) (Entry, bool) {
	addr := &t.slots[uint64(hash)&t.mask]
	ptr := (*node)(atomic.LoadPointer(addr))
	if ptr == nil || ptr.hash != hash {
		return Entry{}, false
	}
	move := board.NoMove
	if ptr.md.from != ptr.md.to {
		move = board.NewMove(ptr.md.from, ptr.md.to, moveKindFromMetadata(ptr.md), board.NoPieceType, ptr.md.promotion)
	}
	return Entry{Bound: ptr.md.bound, Depth: int(ptr.md.depth), Score: ptr.score, Move: move}, true
}

// moveKindFromMetadata reconstructs enough of the move to replay it as a move-ordering
// hint: the table doesn't store Kind or Captured, since the caller always re-derives the
// full Move by matching (From, To, Promotion) against the freshly generated legal list
// before ever making it.
func moveKindFromMetadata(md metadata) board.MoveKind {
	if md.promotion != board.NoPieceType {
		return board.Promotion
	}
	return board.Quiet
}

func (t *table) Write(hash board.ZobristHash, e Entry, age uint16) {
	addr := &t.slots[uint64(hash)&t.mask]

	fresh := &node{
		hash:  hash,
		score: e.Score,
		md: metadata{
			bound:     e.Bound,
			from:      e.Move.From(),
			to:        e.Move.To(),
			promotion: e.Move.Promotion(),
			depth:     uint16(e.Depth),
			age:       age,
		},
	}

	for {
		old := (*node)(atomic.LoadPointer(addr))
		if old != nil && replacementValue(old) > replacementValue(fresh) {
			return
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(old), unsafe.Pointer(fresh)) {
			if old == nil {
				atomic.AddInt64(&t.used, 1)
			}
			return
		}
	}
}

// replacementValue ranks table entries for the replace-if-not-better policy: a later
// search generation always wins (its information supersedes any prior root), and within
// the same generation a deeper search wins, since it examined more of the tree.
func replacementValue(n *node) uint32 {
	if n == nil {
		return 0
	}
	return uint32(n.md.age)<<16 | uint32(n.md.depth)
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%vMB @ %v%%]", t.Size()>>20, int(100*t.Used()))
}

// NoTranspositionTable is a no-op table, used to disable hashing (e.g. in tests that
// need deterministic node counts unaffected by TT cutoffs).
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(board.ZobristHash) (Entry, bool)   { return Entry{}, false }
func (NoTranspositionTable) Write(board.ZobristHash, Entry, uint16) {}
func (NoTranspositionTable) Size() uint64                           { return 0 }
func (NoTranspositionTable) Used() float64                          { return 0 }
