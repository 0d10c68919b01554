package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceSquareSymmetricForMirroredPosition(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	phase := eval.TaperedPhase(b)
	assert.Equal(t, 0, int(eval.PieceSquare(b, phase)))
}

func TestPawnStructurePenalizesDoubledPawns(t *testing.T) {
	doubled, err := fen.Decode("k7/8/8/8/8/4P3/4P3/7K w - - 0 1")
	require.NoError(t, err)
	healthy, err := fen.Decode("k7/8/8/8/8/3P4/4P3/7K w - - 0 1")
	require.NoError(t, err)

	assert.Less(t, int(eval.PawnStructure(doubled)), int(eval.PawnStructure(healthy)))
}

func TestPawnStructureRewardsPassedPawn(t *testing.T) {
	passed, err := fen.Decode("7k/8/8/8/4P3/8/8/7K w - - 0 1")
	require.NoError(t, err)
	blocked, err := fen.Decode("7k/4p3/8/8/4P3/8/8/7K w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.PawnStructure(passed)), int(eval.PawnStructure(blocked)))
}

func TestMobilitySymmetricForMirroredPosition(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, 0, int(eval.Mobility(b)))
}

func TestMobilityRewardsMoreActivePieces(t *testing.T) {
	active, err := fen.Decode("4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	cornered, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Mobility(active)), int(eval.Mobility(cornered)))
}

func TestKingSafetyRewardsPawnShield(t *testing.T) {
	sheltered, err := fen.Decode("7k/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	require.NoError(t, err)
	exposed, err := fen.Decode("7k/8/8/8/8/8/8/6K1 w - - 0 1")
	require.NoError(t, err)

	phase := eval.TaperedPhase(sheltered)
	assert.Greater(t, int(eval.KingSafety(sheltered, phase)), int(eval.KingSafety(exposed, eval.TaperedPhase(exposed))))
}

func TestCenterControlRewardsCentralPawns(t *testing.T) {
	central, err := fen.Decode("4k3/8/8/3PP3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	edge, err := fen.Decode("4k3/8/8/8/8/8/PP6/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.CenterControl(central)), int(eval.CenterControl(edge)))
}
