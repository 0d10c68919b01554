// Package eval computes a static centipawn evaluation of a board.Board: material,
// tapered piece-square tables, pawn structure, king safety, mobility, and center
// control, each computed White-minus-Black and then oriented to the side to move.
package eval

import "github.com/corvidchess/corvid/pkg/board"

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns, from the mover's perspective.
	Evaluate(b *board.Board) board.Score
}

// MaterialOnly evaluates material balance alone, used as the comparator evaluator for
// the move-ordering and pruning property tests (spec testable property 6/7 need a
// deterministic, pruning-independent baseline).
type MaterialOnly struct{}

func (MaterialOnly) Evaluate(b *board.Board) board.Score {
	return Material(b) * b.Turn().Unit()
}

// Option configures a Standard evaluator.
type Option func(*Standard)

// WithNoise adds bounded random noise to every evaluation, in the range
// [-limitCentipawns/2, limitCentipawns/2]. Used to diversify play in self-test games;
// the default (no option) is deterministic.
func WithNoise(limitCentipawns int, seed int64) Option {
	return func(s *Standard) {
		s.noise = newNoise(limitCentipawns, seed)
	}
}

// Standard is the full evaluator described in the design: material, tapered
// piece-square tables, pawn structure, king safety, mobility, and center control.
type Standard struct {
	noise *noise
}

// NewStandard constructs the default evaluator.
func NewStandard(opts ...Option) *Standard {
	s := &Standard{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Standard) Evaluate(b *board.Board) board.Score {
	phase := TaperedPhase(b)

	score := Material(b) +
		PieceSquare(b, phase) +
		PawnStructure(b) +
		KingSafety(b, phase) +
		Mobility(b) +
		CenterControl(b)

	score += s.noise.sample()

	return score * b.Turn().Unit()
}
