// Package engine orchestrates a board.Game, an evaluator and a search.Searcher into the
// Reset/Move/TakeBack/Analyze/Halt surface a protocol adapter (e.g. UCI) drives.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/semaphore"
)

var version = build.NewVersion(0, 1, 0)

// MinHashMB and MaxHashMB bound the transposition table size accepted by SetHash, per
// the UCI "setoption name Hash" clamp.
const (
	MinHashMB = 1
	MaxHashMB = 4096

	defaultHashMB = 16
)

// Options are engine-wide defaults, changeable at runtime via Set*.
type Options struct {
	// Depth is the fallback search depth limit used when a caller's search.Limits leaves
	// Depth unset. Zero means no default limit.
	Depth int
	// Hash is the transposition table size in MB.
	Hash uint
	// Noise adds centipawn randomness to leaf evaluations, 0 disables it.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%vMB, noise=%vcp}", o.Depth, o.Hash, o.Noise)
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the engine's initial runtime defaults. A zero Hash leaves the
// engine's built-in default table size in place, so a config file that doesn't mention
// hash size behaves identically to no config file at all.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts.Depth = opts.Depth
		e.opts.Noise = opts.Noise
		if opts.Hash > 0 {
			e.opts.Hash = opts.Hash
		}
	}
}

// WithZobrist fixes the Zobrist table's random seed, for reproducible hashes in tests.
func WithZobrist(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// Engine owns one game in progress plus the search harness analyzing it. All mutating
// methods take an exclusive lock, matching the single-search-thread model of spec §5: at
// most one Analyze can be active at a time, and Reset/Move/TakeBack implicitly halt it
// first.
type Engine struct {
	name, author string
	seed         int64
	zobrist      *board.ZobristTable

	// sem enforces the single-search-thread model of spec §5: Analyze must acquire it
	// before launching, and Halt releases it, so a second concurrent Analyze fails with
	// an error rather than racing the first for e.searcher's shared tables.
	sem *semaphore.Weighted

	mu       sync.Mutex
	opts     Options
	g        *board.Game
	searcher *search.Searcher
	active   search.Handle
}

// New constructs an Engine on the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		seed:   board.ZobristSeed,
		sem:    semaphore.NewWeighted(1),
		opts:   Options{Hash: defaultHashMB},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zobrist = board.NewZobristTable(e.seed)

	if err := e.Reset(ctx, fen.Initial); err != nil {
		logw.Exitf(ctx, "failed to initialize engine on startpos: %v", err)
	}

	logw.Infof(ctx, "initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version, as reported by UCI "id name".
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author, as reported by UCI "id author".
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetDepth changes the default search-depth limit.
func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Depth = depth
}

// SetHash resizes the transposition table, clamped to [MinHashMB, MaxHashMB]. The
// current search, if any, is halted first, since its Searcher owns the old table.
func (e *Engine) SetHash(ctx context.Context, mb uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActiveLocked(ctx)

	e.opts.Hash = clamp(mb, uint(MinHashMB), uint(MaxHashMB))
	e.searcher = e.newSearcherLocked(ctx)
}

// clamp restricts v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetNoise changes the evaluation-noise amplitude in centipawns; 0 disables it. Rebuilds
// the evaluator, so it only takes effect on the next search.
func (e *Engine) SetNoise(ctx context.Context, centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActiveLocked(ctx)
	e.opts.Noise = centipawns
	e.searcher = e.newSearcherLocked(ctx)
}

func (e *Engine) newSearcherLocked(ctx context.Context) *search.Searcher {
	var ev eval.Evaluator
	if e.opts.Noise > 0 {
		ev = eval.NewStandard(eval.WithNoise(int(e.opts.Noise), e.seed))
	} else {
		ev = eval.NewStandard()
	}
	return search.NewSearcher(ctx, ev, uint64(e.opts.Hash)<<20)
}

// Board returns a snapshot of the current position. Safe to retain and mutate.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g.Board().Clone()
}

// Game returns the live game in progress, for read-only traversal (e.g. perft) that
// restores every move it makes. Callers must not retain it across a Reset/Move/TakeBack.
func (e *Engine) Game() *board.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.g
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	b := e.g.Board()
	return fen.Encode(b, b.Turn())
}

// Reset replaces the current game with a fresh one starting from position (FEN), halting
// any active search and replacing the Searcher, which discards the transposition table's
// accumulated entries and the move-ordering tables.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActiveLocked(ctx)

	b, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}

	e.g = board.NewGame(b, e.zobrist)
	e.searcher = e.newSearcherLocked(ctx)

	logw.Infof(ctx, "reset to %v", position)
	return nil
}

// Move plays move (UCI long-algebraic, e.g. "e2e4", "e7e8q") on the current game. A
// promotion without a suffix ("e7e8") promotes to a queen.
// Unknown or illegal tokens return an error and leave the position unchanged, per spec
// §7: illegal moves received by a protocol adapter are silently skipped there, not here.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActiveLocked(ctx)

	from, to, promotion, err := board.ParseUCIMove(move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}

	var list board.MoveList
	e.g.GenerateLegalMoves(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		want := promotion
		if want == board.NoPieceType && m.IsPromotion() {
			want = board.Queen
		}
		if m.From() == from && m.To() == to && m.Promotion() == want {
			e.g.Make(m)
			logw.Debugf(ctx, "move %v: %v", m, e.g.Board())
			return nil
		}
	}
	return fmt.Errorf("illegal move: %v", move)
}

// TakeBack undoes the most recently played move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActiveLocked(ctx)

	if e.g.Ply() == 0 {
		return fmt.Errorf("no move to take back")
	}
	e.g.Unmake()
	return nil
}

// Analyze starts a search of the current position under limits, streaming a PV after
// every completed iteration. Only one search may be active at a time.
func (e *Engine) Analyze(ctx context.Context, limits search.Limits) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sem.TryAcquire(1) {
		return nil, fmt.Errorf("search already active")
	}
	if v, ok := limits.Depth.V(); (!ok || v <= 0) && e.opts.Depth > 0 {
		limits.Depth = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "analyze %v, limits=%v", e.g.Board(), limits)

	handle, out := e.searcher.Launch(ctx, e.g, limits)
	e.active = handle
	return out, nil
}

// Halt stops the active search, if any, and returns its best-completed principal
// variation.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pv, ok := e.haltSearchIfActiveLocked(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActiveLocked(ctx context.Context) (search.PV, bool) {
	if e.active == nil {
		return search.PV{}, false
	}
	pv := e.active.Halt()
	logw.Infof(ctx, "search halted: %v", pv)
	e.active = nil
	e.sem.Release(1)
	return pv, true
}
