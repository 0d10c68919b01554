package eval

import (
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// noise adds a small amount of randomness to the static evaluation, in the range
// [-limit/2, limit/2] centipawns. A limit of 0 makes it a no-op, which is the default
// when no Option enables it.
type noise struct {
	rand  *rand.Rand
	limit int
}

func newNoise(limitCentipawns int, seed int64) *noise {
	return &noise{rand: rand.New(rand.NewSource(seed)), limit: limitCentipawns}
}

func (n *noise) sample() board.Score {
	if n == nil || n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}
