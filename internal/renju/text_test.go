package renju

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeXYRoundTrip(t *testing.T) {
	require.Equal(t, byte(65), EncodeXY(4, 5))
	require.Equal(t, uint8(4), DecodeX(65))
	require.Equal(t, uint8(5), DecodeY(65))
}

func TestEncodeDecodePointsRoundTrip(t *testing.T) {
	pts := Points{{X: 7, Y: 7}, {X: 8, Y: 8}, {X: 0, Y: 14}}
	bs := EncodePoints(pts)
	require.Equal(t, pts, DecodePoints(bs))
}

func TestDecodeSolveInputBuildsBoard(t *testing.T) {
	in := SolveInput{
		Blacks: EncodePoints(Points{{X: 7, Y: 7}}),
		Whites: EncodePoints(Points{{X: 8, Y: 8}}),
		Turn:   Black,
		Depth:  4,
	}
	board, turn, depth, err := DecodeSolveInput(in)
	require.NoError(t, err)
	require.Equal(t, Black, turn)
	require.Equal(t, uint8(4), depth)

	b := board.Stones(Point{X: 7, Y: 7})
	require.NotNil(t, b)
	require.Equal(t, Black, *b)

	w := board.Stones(Point{X: 8, Y: 8})
	require.NotNil(t, w)
	require.Equal(t, White, *w)
}

func TestDecodeSolveInputRejectsOutOfRange(t *testing.T) {
	in := SolveInput{Blacks: []byte{255}}
	_, _, _, err := DecodeSolveInput(in)
	require.Error(t, err)
}

func TestDecodeSolveInputRejectsOutOfRangeWhite(t *testing.T) {
	in := SolveInput{Whites: []byte{255}}
	_, _, _, err := DecodeSolveInput(in)
	require.Error(t, err)
}

func TestEncodeSolutionNilForAbsentPath(t *testing.T) {
	require.Nil(t, EncodeSolution(nil))
	require.Equal(t, []byte{65}, EncodeSolution(Points{{X: 4, Y: 5}}))
}
