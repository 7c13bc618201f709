package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartPositionIsMaterialBalanced(t *testing.T) {
	p := NewStartPosition()
	e := NewEvaluator()
	require.Equal(t, 0, e.Evaluate(p))
}

func TestExtraQueenFavorsTheSideHoldingIt(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator()
	require.Greater(t, e.Evaluate(p), 0)
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	white, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)
	black, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2Q b - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	require.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestConfigOverridesMaterialValue(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.MaterialOverrides = map[PieceKind]int{Queen: 0}
	cfg.PSTOverrides = map[PieceKind][64]int{}
	e := NewEvaluatorFromConfig(cfg)

	require.Equal(t, e.pst[Queen][NewSquare(7, 0)], e.Evaluate(p))
}
