package renju

import "fmt"

// EncodeXY packs a point into a single byte: x*15 + y.
func EncodeXY(x, y uint8) byte {
	return byte(int(x)*BoardSize + int(y))
}

// DecodeX unpacks the column from an encoded byte.
func DecodeX(b byte) uint8 {
	return uint8(int(b) / BoardSize)
}

// DecodeY unpacks the row from an encoded byte.
func DecodeY(b byte) uint8 {
	return uint8(int(b) % BoardSize)
}

// EncodePoint packs p into its byte encoding.
func EncodePoint(p Point) byte {
	return EncodeXY(p.X, p.Y)
}

// DecodePoint unpacks a byte back into a point.
func DecodePoint(b byte) Point {
	return Point{X: DecodeX(b), Y: DecodeY(b)}
}

// EncodePoints packs a list of points into a byte array.
func EncodePoints(ps Points) []byte {
	out := make([]byte, len(ps))
	for i, p := range ps {
		out[i] = EncodePoint(p)
	}
	return out
}

// DecodePoints unpacks a byte array into a list of points.
func DecodePoints(bs []byte) Points {
	out := make(Points, len(bs))
	for i, b := range bs {
		out[i] = DecodePoint(b)
	}
	return out
}

// SolveInput is the byte-array boundary contract for a WebAssembly-style
// caller: two point lists plus the side to move and a depth limit.
type SolveInput struct {
	Blacks []byte
	Whites []byte
	Turn   Player
	Depth  uint8
}

// DecodeSolveInput validates and unpacks a SolveInput into board form.
func DecodeSolveInput(in SolveInput) (*Square, Player, uint8, error) {
	for _, b := range in.Blacks {
		if DecodeX(b) >= BoardSize || DecodeY(b) >= BoardSize {
			return nil, 0, 0, fmt.Errorf("renju: encoded point out of range: %d", b)
		}
	}
	for _, b := range in.Whites {
		if DecodeX(b) >= BoardSize || DecodeY(b) >= BoardSize {
			return nil, 0, 0, fmt.Errorf("renju: encoded point out of range: %d", b)
		}
	}
	board := SquareFromPoints(DecodePoints(in.Blacks), DecodePoints(in.Whites))
	return board, in.Turn, in.Depth, nil
}

// EncodeSolution packs a winning move sequence for the byte-array
// interface; an absent solution is represented as nil.
func EncodeSolution(path Points) []byte {
	if path == nil {
		return nil
	}
	return EncodePoints(path)
}
