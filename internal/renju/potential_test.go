package renju

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pp(offset, potential uint8) PointPotential {
	return PointPotential{Offset: offset, Potential: potential}
}

func TestPotentials(t *testing.T) {
	my := Bits(0b011100010010100)
	op := Bits(0b000000001000000)

	got := Potentials(15, my, op, 3, false)
	require.Equal(t, []PointPotential{
		pp(0, 3), pp(1, 6), pp(3, 6), pp(5, 3), pp(8, 6), pp(9, 4), pp(10, 8), pp(14, 4),
	}, got)

	got = Potentials(15, my, op, 3, true)
	require.Equal(t, []PointPotential{
		pp(0, 3), pp(1, 6), pp(3, 6), pp(5, 3), pp(9, 4), pp(10, 8), pp(14, 4),
	}, got)

	my = Bits(0b000001100000000)
	op = Bits(0)

	got = Potentials(15, my, op, 3, false)
	require.Equal(t, []PointPotential{
		pp(5, 3), pp(6, 6), pp(7, 9), pp(10, 9), pp(11, 6), pp(12, 3),
	}, got)

	got = Potentials(15, my, op, 3, true)
	require.Equal(t, []PointPotential{
		pp(5, 3), pp(6, 6), pp(7, 9), pp(10, 9), pp(11, 6), pp(12, 3),
	}, got)
}

func TestPotentialFieldUpdateAlong(t *testing.T) {
	sq := NewSquare()
	sq.Put(Black, Point{X: 7, Y: 7})
	sq.Put(Black, Point{X: 8, Y: 7})

	f := NewPotentialField(sq, Black, 3, true)
	before := f.At(Point{X: 6, Y: 7})
	require.Greater(t, before.Sum(), uint8(0))

	sq.Put(White, Point{X: 9, Y: 7})
	f.UpdateAlong(Point{X: 9, Y: 7})
	after := f.At(Point{X: 6, Y: 7})
	require.NotEqual(t, before, after)
}
