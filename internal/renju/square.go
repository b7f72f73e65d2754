package renju

import (
	"fmt"
	"sort"
	"strings"
)

// dLineNum is the number of diagonal lines per diagonal direction: 21.
const dLineNum = (BoardSize-(5-1))*2 - 1

// Square is the 15x15 board, represented four times over: one line per
// row/column, plus one per ascending/descending diagonal.
type Square struct {
	vlines [BoardSize]*Line
	hlines [BoardSize]*Line
	alines [dLineNum]*Line
	dlines [dLineNum]*Line
}

// Row is a matched shape in board coordinates.
type Row struct {
	Direction  Direction
	Start, End Point
	Eye1, Eye2 *Point
}

// Overlap reports whether p lies within the row's span.
func (r Row) Overlap(p Point) bool {
	switch r.Direction {
	case Vertical:
		return p.X == r.Start.X && between(r.Start.Y, p.Y, r.End.Y)
	case Horizontal:
		return p.Y == r.Start.Y && between(r.Start.X, p.X, r.End.X)
	case Ascending:
		return between(r.Start.X, p.X, r.End.X) && between(r.Start.Y, p.Y, r.End.Y) &&
			int(p.X)-int(r.Start.X) == int(p.Y)-int(r.Start.Y)
	case Descending:
		return between(r.Start.X, p.X, r.End.X) && between(r.End.Y, p.Y, r.Start.Y) &&
			int(p.X)-int(r.Start.X) == int(r.Start.Y)-int(p.Y)
	default:
		return false
	}
}

// Adjacent reports whether two same-direction rows are offset by exactly
// one step, i.e. they are the same physical shape seen at two window
// offsets rather than two distinct shapes.
func (r Row) Adjacent(o Row) bool {
	if r.Direction != o.Direction {
		return false
	}
	xd := int(r.Start.X) - int(o.Start.X)
	yd := int(r.Start.Y) - int(o.Start.Y)
	switch r.Direction {
	case Vertical:
		return xd == 0 && abs(yd) == 1
	case Horizontal:
		return abs(xd) == 1 && yd == 0
	case Ascending:
		return abs(xd) == 1 && xd == yd
	case Descending:
		return abs(xd) == 1 && xd == -yd
	default:
		return false
	}
}

// Eyes returns the row's non-nil eye points.
func (r Row) Eyes() []Point {
	var out []Point
	if r.Eye1 != nil {
		out = append(out, *r.Eye1)
	}
	if r.Eye2 != nil {
		out = append(out, *r.Eye2)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func between(a, x, b uint8) bool {
	return a <= x && x <= b
}

// NewSquare returns an empty board.
func NewSquare() *Square {
	s := &Square{}
	for i := range s.vlines {
		s.vlines[i] = NewLine(BoardSize)
	}
	for i := range s.hlines {
		s.hlines[i] = NewLine(BoardSize)
	}
	lens := diagonalLineLengths()
	for i := range s.alines {
		s.alines[i] = NewLine(lens[i])
	}
	for i := range s.dlines {
		s.dlines[i] = NewLine(lens[i])
	}
	return s
}

func diagonalLineLengths() [dLineNum]uint8 {
	var lens [dLineNum]uint8
	for i := range lens {
		d := i
		if d > dLineNum/2 {
			d = dLineNum - 1 - i
		}
		lens[i] = BoardSize - uint8(dLineNum/2-d)
	}
	return lens
}

// SquareFromPoints builds a board from explicit black/white point sets.
func SquareFromPoints(blacks, whites Points) *Square {
	s := NewSquare()
	for _, p := range blacks {
		s.Put(Black, p)
	}
	for _, p := range whites {
		s.Put(White, p)
	}
	return s
}

// Clone returns a deep copy of the board.
func (s *Square) Clone() *Square {
	c := &Square{}
	cloneArr := func(src *[BoardSize]*Line, dst *[BoardSize]*Line) {
		for i, l := range src {
			cp := *l
			dst[i] = &cp
		}
	}
	cloneArr(&s.vlines, &c.vlines)
	cloneArr(&s.hlines, &c.hlines)
	cloneDiag := func(src *[dLineNum]*Line, dst *[dLineNum]*Line) {
		for i, l := range src {
			cp := *l
			dst[i] = &cp
		}
	}
	cloneDiag(&s.alines, &c.alines)
	cloneDiag(&s.dlines, &c.dlines)
	return c
}

// Put places player's stone at p, touching up to four lines.
func (s *Square) Put(player Player, p Point) {
	vidx := p.ToIndex(Vertical)
	s.vlines[vidx.I].Put(player, vidx.J)

	hidx := p.ToIndex(Horizontal)
	s.hlines[hidx.I].Put(player, hidx.J)

	aidx := p.ToIndex(Ascending)
	if between(4, aidx.I, dLineNum+3) {
		s.alines[aidx.I-4].Put(player, aidx.J)
	}

	didx := p.ToIndex(Descending)
	if between(4, didx.I, dLineNum+3) {
		s.dlines[didx.I-4].Put(player, didx.J)
	}
}

type lineRef struct {
	direction Direction
	index     uint8
	line      *Line
}

func (s *Square) iterLines() []lineRef {
	out := make([]lineRef, 0, BoardSize*2+dLineNum*2)
	for i, l := range s.vlines {
		out = append(out, lineRef{Vertical, uint8(i), l})
	}
	for i, l := range s.hlines {
		out = append(out, lineRef{Horizontal, uint8(i), l})
	}
	for i, l := range s.alines {
		out = append(out, lineRef{Ascending, uint8(i) + 4, l})
	}
	for i, l := range s.dlines {
		out = append(out, lineRef{Descending, uint8(i) + 4, l})
	}
	return out
}

func (s *Square) iterLinesAlong(p Point) []lineRef {
	out := make([]lineRef, 0, 4)
	vidx := p.ToIndex(Vertical)
	out = append(out, lineRef{Vertical, vidx.I, s.vlines[vidx.I]})
	hidx := p.ToIndex(Horizontal)
	out = append(out, lineRef{Horizontal, hidx.I, s.hlines[hidx.I]})
	aidx := p.ToIndex(Ascending)
	if between(4, aidx.I, dLineNum+3) {
		out = append(out, lineRef{Ascending, aidx.I, s.alines[aidx.I-4]})
	}
	didx := p.ToIndex(Descending)
	if between(4, didx.I, dLineNum+3) {
		out = append(out, lineRef{Descending, didx.I, s.dlines[didx.I-4]})
	}
	return out
}

func rowFromLineRow(r LineRow, d Direction, i uint8) Row {
	row := Row{
		Direction: d,
		Start:     Index{I: i, J: r.Start}.ToPoint(d),
		End:       Index{I: i, J: r.End}.ToPoint(d),
	}
	if r.Eye1 != nil {
		p := Index{I: i, J: *r.Eye1}.ToPoint(d)
		row.Eye1 = &p
	}
	if r.Eye2 != nil {
		p := Index{I: i, J: *r.Eye2}.ToPoint(d)
		row.Eye2 = &p
	}
	return row
}

// Rows returns every matched row of the given player/kind across the
// whole board.
func (s *Square) Rows(player Player, kind RowKind) []Row {
	var out []Row
	for _, lr := range s.iterLines() {
		for _, r := range lr.line.Rows(player, kind) {
			out = append(out, rowFromLineRow(r, lr.direction, lr.index))
		}
	}
	return out
}

// RowsOn restricts Rows to rows whose span overlaps p.
func (s *Square) RowsOn(player Player, kind RowKind, p Point) []Row {
	var out []Row
	for _, lr := range s.iterLinesAlong(p) {
		for _, r := range lr.line.Rows(player, kind) {
			row := rowFromLineRow(r, lr.direction, lr.index)
			if row.Overlap(p) {
				out = append(out, row)
			}
		}
	}
	return out
}

// RowEyes returns the deduplicated eye points of every matched row of the
// given player/kind.
func (s *Square) RowEyes(player Player, kind RowKind) []Point {
	return dedupPoints(collectEyes(s.Rows(player, kind)))
}

// RowEyesAlong restricts RowEyes to lines through p.
func (s *Square) RowEyesAlong(player Player, kind RowKind, p Point) []Point {
	var out []Row
	for _, lr := range s.iterLinesAlong(p) {
		for _, r := range lr.line.Rows(player, kind) {
			out = append(out, rowFromLineRow(r, lr.direction, lr.index))
		}
	}
	return dedupPoints(collectEyes(out))
}

func collectEyes(rows []Row) []Point {
	var out []Point
	for _, r := range rows {
		out = append(out, r.Eyes()...)
	}
	return out
}

func dedupPoints(pts []Point) []Point {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Stones returns the occupying player at p, or nil if empty.
func (s *Square) Stones(p Point) *Player {
	vidx := p.ToIndex(Vertical)
	l := s.vlines[vidx.I]
	stone := Bits(1) << vidx.J
	switch {
	case l.Blacks&stone != 0:
		b := Black
		return &b
	case l.Whites&stone != 0:
		w := White
		return &w
	default:
		return nil
	}
}

// Neighbors returns every empty point within dist steps of p (Chebyshev
// distance). When diag is false, only the four axis-aligned directions
// (same row, same column, or one of the two diagonals) are considered;
// otherwise every point in the surrounding square is eligible.
func (s *Square) Neighbors(p Point, dist uint8, diag bool) []Point {
	var out []Point
	lo := func(v uint8) int { return int(v) - int(dist) }
	hi := func(v uint8) int { return int(v) + int(dist) }
	for x := lo(p.X); x <= hi(p.X); x++ {
		if x < 0 || x >= int(BoardSize) {
			continue
		}
		for y := lo(p.Y); y <= hi(p.Y); y++ {
			if y < 0 || y >= int(BoardSize) {
				continue
			}
			q := Point{X: uint8(x), Y: uint8(y)}
			if q == p {
				continue
			}
			dx, dy := abs(x-int(p.X)), y-int(p.Y)
			if dy < 0 {
				dy = -dy
			}
			if !diag && dx != 0 && dy != 0 && dx != dy {
				continue
			}
			if s.Stones(q) != nil {
				continue
			}
			out = append(out, q)
		}
	}
	return out
}

// String renders the board as 15 lines top-to-bottom (y=14 first).
func (s *Square) String() string {
	var b strings.Builder
	for y := int(BoardSize) - 1; y >= 0; y-- {
		if y != int(BoardSize)-1 {
			b.WriteByte('\n')
		}
		b.WriteString(s.hlines[y].String())
	}
	return b.String()
}

func (l *Line) String() string {
	var b strings.Builder
	for _, s := range l.Stones() {
		switch {
		case s == nil:
			b.WriteByte('-')
		case *s == Black:
			b.WriteByte('o')
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}

// ParseBoardText parses either the compact "blacks/whites" point-list
// format or the 15-line whitespace grid-display format.
func ParseBoardText(s string) (*Square, error) {
	if strings.Contains(s, "/") {
		return parseBoardPoints(s)
	}
	return parseBoardGrid(s)
}

func parseBoardPoints(s string) (*Square, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("renju: unknown board format %q", s)
	}
	blacks, err := ParsePoints(parts[0])
	if err != nil {
		return nil, err
	}
	whites, err := ParsePoints(parts[1])
	if err != nil {
		return nil, err
	}
	return SquareFromPoints(blacks, whites), nil
}

func parseBoardGrid(s string) (*Square, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != BoardSize {
		return nil, fmt.Errorf("renju: expected %d lines, got %d", BoardSize, len(lines))
	}
	sq := NewSquare()
	for i, raw := range lines {
		y := BoardSize - 1 - i
		cells := strings.Fields(raw)
		if len(cells) != BoardSize {
			return nil, fmt.Errorf("renju: wrong cell count on line %d", i)
		}
		for x, c := range cells {
			switch c {
			case "o":
				sq.Put(Black, Point{X: uint8(x), Y: uint8(y)})
			case "x":
				sq.Put(White, Point{X: uint8(x), Y: uint8(y)})
			}
		}
	}
	return sq, nil
}
