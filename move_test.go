package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovePackingRoundTrip(t *testing.T) {
	m := NewMoveWithFlag(NewSquare(4, 1), NewSquare(4, 3), FlagPawnDoublePush)
	require.Equal(t, NewSquare(4, 1), m.From())
	require.Equal(t, NewSquare(4, 3), m.To())
	require.Equal(t, FlagPawnDoublePush, m.Flag())
	require.True(t, m.HasFlag(FlagPawnDoublePush))
	require.False(t, m.HasFlag(FlagNone))
}

func TestMoveIsPromotion(t *testing.T) {
	cases := []struct {
		flag MoveFlag
		want bool
		kind PieceKind
	}{
		{FlagNone, false, NoKind},
		{FlagCastle, false, NoKind},
		{FlagPromoteQueen, true, Queen},
		{FlagPromoteKnight, true, Knight},
		{FlagPromoteRook, true, Rook},
		{FlagPromoteBishop, true, Bishop},
	}
	for _, c := range cases {
		m := NewMoveWithFlag(8, 16, c.flag)
		require.Equal(t, c.want, m.IsPromotion())
		require.Equal(t, c.kind, m.PromotionKind())
	}
}

func TestMoveStringAndParse(t *testing.T) {
	cases := []string{"e2e4", "e7e8q", "a1h8", "h7h8n"}
	for _, s := range cases {
		from, to, promo, err := ParseMove(s)
		require.NoError(t, err)

		var flag MoveFlag
		switch promo {
		case Queen:
			flag = FlagPromoteQueen
		case Knight:
			flag = FlagPromoteKnight
		case Rook:
			flag = FlagPromoteRook
		case Bishop:
			flag = FlagPromoteBishop
		default:
			flag = FlagNone
		}
		m := NewMoveWithFlag(from, to, flag)
		require.Equal(t, s, m.String())
	}
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e4qq", "z9z9", "e2e4z"} {
		_, _, _, err := ParseMove(s)
		require.Error(t, err, "expected error for %q", s)
	}
}

func TestMoveLessOrdering(t *testing.T) {
	quiet := NewMove(8, 16).withMetadata(Pawn, NoKind)
	captureLow := NewMove(8, 16).withMetadata(Pawn, Pawn)
	captureHigh := NewMove(8, 16).withMetadata(Pawn, Queen)
	promo := NewMoveWithFlag(48, 56, FlagPromoteQueen).withMetadata(Pawn, NoKind)

	require.True(t, captureHigh.Less(captureLow), "higher-value captures should sort first")
	require.True(t, captureLow.Less(quiet), "any capture should sort before quiets")
	require.True(t, promo.Less(quiet), "promotions should sort before quiets")
}
