package renju

// LineRow is a matched shape within a single line's local coordinate
// space: start/end are offsets along the line, eye1/eye2 (when present)
// are the blank offsets that extend the row to the next RowKind.
type LineRow struct {
	Start, End uint8
	Eye1, Eye2 *uint8
}

func scanRows(player Player, kind RowKind, stones, blanks Bits, limit, offset uint8) []LineRow {
	switch player {
	case Black:
		switch kind {
		case Two:
			return scan(bTwoWindow, bTwoPatterns, stones, blanks, limit, offset)
		case Sword:
			return scan(bSwordWindow, bSwordPatterns, stones, blanks, limit, offset)
		case Three:
			return scan(bThreeWindow, bThreePatterns, stones, blanks, limit, offset)
		case Four:
			return scan(bFourWindow, bFourPatterns, stones, blanks, limit, offset)
		case Five:
			return scan(bFiveWindow, bFivePatterns, stones, blanks, limit, offset)
		case Overline:
			return scan(bOverlineWindow, bOverlinePatterns, stones, blanks, limit, offset)
		}
	case White:
		switch kind {
		case Two:
			return scan(wTwoWindow, wTwoPatterns, stones, blanks, limit, offset)
		case Sword:
			return scan(wSwordWindow, wSwordPatterns, stones, blanks, limit, offset)
		case Three:
			return scan(wThreeWindow, wThreePatterns, stones, blanks, limit, offset)
		case Four:
			return scan(wFourWindow, wFourPatterns, stones, blanks, limit, offset)
		case Five:
			return scan(wFiveWindow, wFivePatterns, stones, blanks, limit, offset)
		}
	}
	return nil
}

func scan(w window, patterns []pattern, stones, blanks Bits, limit, offset uint8) []LineRow {
	var result []LineRow
	size := w.size
	if limit < size {
		return result
	}
	for i := uint8(0); i <= limit-size; i++ {
		s := stones >> i
		b := blanks >> i
		if !w.satisfies(s, b) {
			continue
		}
		for _, p := range patterns {
			if !p.matches(s, b) {
				continue
			}
			row := LineRow{
				Start: p.start() + i - offset,
				End:   p.end() + i - offset,
			}
			if e, ok := p.eye1(); ok {
				v := e + i - offset
				row.Eye1 = &v
			}
			if e, ok := p.eye2(); ok {
				v := e + i - offset
				row.Eye2 = &v
			}
			result = append(result, row)
		}
	}
	return result
}

// Line is one of the board's 15 vertical/horizontal or 21 diagonal lines,
// represented as two bitmasks. blacks & whites == 0 always holds.
type Line struct {
	Size          uint8
	Blacks        Bits
	Whites        Bits
	numBlack      uint8
	numWhite      uint8
}

// NewLine creates an empty line of the given size (clamped to BoardSize).
func NewLine(size uint8) *Line {
	if size > BoardSize {
		size = BoardSize
	}
	return &Line{Size: size}
}

// Put places player's stone at offset i, clearing any opposite stone there.
func (l *Line) Put(player Player, i uint8) {
	stone := Bits(1) << i
	var blacks, whites Bits
	if player == Black {
		blacks = l.Blacks | stone
		whites = l.Whites &^ stone
	} else {
		blacks = l.Blacks &^ stone
		whites = l.Whites | stone
	}
	l.updateCounts(blacks, whites)
	l.Blacks = blacks
	l.Whites = whites
}

func (l *Line) updateCounts(blacks, whites Bits) {
	if blacks > l.Blacks {
		l.numBlack++
	} else if blacks < l.Blacks {
		l.numBlack--
	}
	if whites > l.Whites {
		l.numWhite++
	} else if whites < l.Whites {
		l.numWhite--
	}
}

// Stones returns, for each offset, the occupying player or nil if empty.
func (l *Line) Stones() []*Player {
	out := make([]*Player, l.Size)
	for i := uint8(0); i < l.Size; i++ {
		pat := Bits(1) << i
		switch {
		case l.Blacks&pat != 0:
			b := Black
			out[i] = &b
		case l.Whites&pat != 0:
			w := White
			out[i] = &w
		}
	}
	return out
}

func (l *Line) blanks() Bits {
	return ^(l.Blacks | l.Whites) & ((Bits(1) << l.Size) - 1)
}

func (l *Line) numBlank() uint8 {
	return l.Size - (l.numBlack + l.numWhite)
}

var minStoneByKind = map[RowKind]uint8{Two: 2, Sword: 3, Three: 3, Four: 4, Five: 5, Overline: 6}
var minBlankByKind = map[RowKind]uint8{Two: 4, Sword: 2, Three: 3, Four: 1, Five: 0, Overline: 0}

func (l *Line) mayContain(player Player, kind RowKind) bool {
	if l.numBlank() < minBlankByKind[kind] {
		return false
	}
	if player == Black {
		return l.numBlack >= minStoneByKind[kind]
	}
	return l.numWhite >= minStoneByKind[kind]
}

// Rows scans the line for every matched row of the given player/kind. The
// stones/blanks bitmasks are shifted left by one and the scan limit is
// extended by two so that off-board cells on either side read as
// non-blank, non-stone blockers. This is applied uniformly to both
// players: it is a structural no-op for White since every White window
// (size 5-6) cannot reach the extra padded bit (see DESIGN.md).
func (l *Line) Rows(player Player, kind RowKind) []LineRow {
	if !l.mayContain(player, kind) {
		return nil
	}
	blacks := l.Blacks << 1
	whites := l.Whites << 1
	blanks := l.blanks() << 1
	limit := l.Size + 2
	if player == Black {
		return scanRows(Black, kind, blacks, blanks, limit, 1)
	}
	return scanRows(White, kind, whites, blanks, limit, 1)
}
