package renju

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquarePutTouchesFourLines(t *testing.T) {
	sq := NewSquare()
	sq.Put(Black, Point{X: 7, Y: 7})

	stone := sq.Stones(Point{X: 7, Y: 7})
	require.NotNil(t, stone)
	require.Equal(t, Black, *stone)
	require.Nil(t, sq.Stones(Point{X: 7, Y: 8}))
}

func TestSquareParseBoardPoints(t *testing.T) {
	sq, err := ParseBoardText("H8,H9/I9")
	require.NoError(t, err)

	b := sq.Stones(Point{X: 7, Y: 7})
	require.NotNil(t, b)
	require.Equal(t, Black, *b)

	w := sq.Stones(Point{X: 8, Y: 8})
	require.NotNil(t, w)
	require.Equal(t, White, *w)
}

func TestSquareRowsOnRestrictsToOverlap(t *testing.T) {
	sq := NewSquare()
	for _, x := range []uint8{3, 4, 5} {
		sq.Put(Black, Point{X: x, Y: 7})
	}
	onRow := sq.RowsOn(Black, Sword, Point{X: 4, Y: 7})
	require.NotEmpty(t, onRow)

	offRow := sq.RowsOn(Black, Sword, Point{X: 4, Y: 8})
	require.Empty(t, offRow)
}

func TestSquareCloneIsIndependent(t *testing.T) {
	sq := NewSquare()
	sq.Put(Black, Point{X: 0, Y: 0})
	clone := sq.Clone()
	clone.Put(White, Point{X: 1, Y: 1})

	require.Nil(t, sq.Stones(Point{X: 1, Y: 1}))
	w := clone.Stones(Point{X: 1, Y: 1})
	require.NotNil(t, w)
	require.Equal(t, White, *w)
}
