package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialSymmetricPositionIsZero(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.Score(0), eval.Material(b))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	b, err := fen.Decode("k7/8/8/8/8/8/8/KQ6 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Material(b)), 0)
}

func TestStandardEvaluateIsZeroForMirroredPosition(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := eval.NewStandard()
	assert.Equal(t, board.Score(0), e.Evaluate(b))
}

func TestStandardEvaluateNegatedForBlackToMove(t *testing.T) {
	white, err := fen.Decode("k7/8/8/8/8/8/8/KQ6 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("k7/8/8/8/8/8/8/KQ6 b - - 0 1")
	require.NoError(t, err)

	e := eval.NewStandard()
	assert.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestWithNoiseStaysWithinBounds(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	e := eval.NewStandard(eval.WithNoise(20, 1))
	base := eval.NewStandard()

	diff := int(e.Evaluate(b)) - int(base.Evaluate(b))
	assert.LessOrEqual(t, diff, 10)
	assert.GreaterOrEqual(t, diff, -10)
}

func TestMaterialOnlyMatchesTurnOrientation(t *testing.T) {
	white, err := fen.Decode("k7/8/8/8/8/8/8/KQ6 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("k7/8/8/8/8/8/8/KQ6 b - - 0 1")
	require.NoError(t, err)

	m := eval.MaterialOnly{}
	assert.Equal(t, m.Evaluate(white), -m.Evaluate(black))
}
