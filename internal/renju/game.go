package renju

import "errors"

// ErrAlreadyDecided is returned by ValidatePosition when a Five (or, for
// Black, an Overline) already exists on the board: the position is not a
// valid starting point for a mate search.
var ErrAlreadyDecided = errors.New("renju: position already has a five or forbidden overline")

// Win names how an attacker's forced sequence ends.
type Win struct {
	// Fours is set when the sequence ends in a double-four or open four;
	// the solvers record the first eye found in both slots, so the second
	// eye is not kept. Forbidden holds the point the defender could not
	// play because it is forbidden for Black. At most one of Fours[0] or
	// Forbidden is set; a Win with neither set names no particular finish.
	Fours     [2]*Point
	Forbidden *Point
}

// Mate is a proven forced win: the terminal Win plus the move sequence
// (attacker and defender moves interleaved) that reaches it.
type Mate struct {
	Win  Win
	Path Points
}

// Unshift prepends a move to the path, returning a new Mate.
func (m Mate) Unshift(p Point) Mate {
	path := make(Points, 0, len(m.Path)+1)
	path = append(path, p)
	path = append(path, m.Path...)
	return Mate{Win: m.Win, Path: path}
}

// Game is a board plus whose turn it is and the last two placements. Undo
// requires the caller to supply the last2Move from before the play, since
// it cannot be recovered from the board alone.
type Game struct {
	Board     *Square
	Turn      Player
	LastMove  *Point
	Last2Move *Point
	hash      uint64
}

// NewGame wraps a board, computing its Zobrist hash from scratch.
func NewGame(board *Square, turn Player, lastMove, last2Move *Point) *Game {
	g := &Game{Board: board, Turn: turn, LastMove: lastMove, Last2Move: last2Move}
	g.hash = computeHash(board, turn)
	return g
}

func computeHash(board *Square, turn Player) uint64 {
	var h uint64
	for x := uint8(0); x < BoardSize; x++ {
		for y := uint8(0); y < BoardSize; y++ {
			p := Point{X: x, Y: y}
			if pl := board.Stones(p); pl != nil {
				h ^= ZobristPoint(*pl, p)
			}
		}
	}
	if turn == Black {
		h ^= ZobristSideToMove()
	}
	return h
}

// ZobristHash returns the game's current hash; limit is folded in by the
// caller (the VCT table keys nodes by (hash, limit) pairs, not by hash
// alone, since a position's verdict can depend on remaining depth).
func (g *Game) ZobristHash() uint64 {
	return g.hash
}

// Clone deep-copies the game (but not the solver-owned tables around it).
func (g *Game) Clone() *Game {
	c := *g
	c.Board = g.Board.Clone()
	return &c
}

// Play places turn's stone at p and flips the turn.
func (g *Game) Play(p Point) {
	g.Board.Put(g.Turn, p)
	g.hash ^= ZobristPoint(g.Turn, p)
	g.hash ^= ZobristSideToMove()
	g.Last2Move = g.LastMove
	lm := p
	g.LastMove = &lm
	g.Turn = g.Turn.Opponent()
}

// Undo removes the last move and restores the turn, given the last2Move
// from immediately before that move was played.
func (g *Game) Undo(priorLast2Move *Point) {
	if g.LastMove == nil {
		return
	}
	g.Turn = g.Turn.Opponent()
	g.hash ^= ZobristSideToMove()
	g.hash ^= ZobristPoint(g.Turn, *g.LastMove)
	removeFrom(g.Board, *g.LastMove)
	g.LastMove = g.Last2Move
	g.Last2Move = priorLast2Move
}

// removeFrom clears a stone; used only by Undo (Square has no public
// Remove since normal search never removes mid-line, only undoes a Play).
func removeFrom(s *Square, p Point) {
	vidx := p.ToIndex(Vertical)
	clearBit(s.vlines[vidx.I], vidx.J)
	hidx := p.ToIndex(Horizontal)
	clearBit(s.hlines[hidx.I], hidx.J)
	aidx := p.ToIndex(Ascending)
	if between(4, aidx.I, dLineNum+3) {
		clearBit(s.alines[aidx.I-4], aidx.J)
	}
	didx := p.ToIndex(Descending)
	if between(4, didx.I, dLineNum+3) {
		clearBit(s.dlines[didx.I-4], didx.J)
	}
}

func clearBit(l *Line, j uint8) {
	stone := Bits(1) << j
	blacks := l.Blacks &^ stone
	whites := l.Whites &^ stone
	l.updateCounts(blacks, whites)
	l.Blacks = blacks
	l.Whites = whites
}

// Pass returns a clone of the game with only the turn flipped, without
// placing a stone. Used to probe "does the opponent have a threat from
// here" without committing to a move.
func (g *Game) Pass() *Game {
	c := g.Clone()
	c.Turn = g.Turn.Opponent()
	c.hash = g.hash ^ ZobristSideToMove()
	return c
}

// InspectLastFourEyes inspects the last move's Four rows (from the
// perspective of the player who just moved) and reports:
//   - firstEye: the eye of the first four found, if any.
//   - hasAnother: whether a second four with a different eye was also
//     found — i.e. the mover made a double-four or an open four and the
//     opponent has already lost.
func (g *Game) InspectLastFourEyes() (firstEye *Point, hasAnother bool) {
	if g.LastMove == nil {
		return nil, false
	}
	mover := g.Turn.Opponent()
	fours := g.Board.RowsOn(mover, Four, *g.LastMove)
	for _, r := range fours {
		if r.Eye1 == nil {
			continue
		}
		if firstEye == nil {
			firstEye = r.Eye1
			continue
		}
		if *r.Eye1 != *firstEye {
			return firstEye, true
		}
	}
	return firstEye, false
}

// ValidatePosition checks the pre-conditions spec.md §7 requires before a
// solver may run: an existing Five for either side, or an existing Black
// Overline, makes the position invalid (no mate can be searched from it).
// If turn already has a Four, the position is immediately won: the
// returned bool is true and the caller should report a 0-move mate.
func ValidatePosition(board *Square, turn Player) (alreadyWon bool, err error) {
	if len(board.Rows(Black, Five)) > 0 || len(board.Rows(White, Five)) > 0 {
		return false, ErrAlreadyDecided
	}
	if len(board.Rows(Black, Overline)) > 0 {
		return false, ErrAlreadyDecided
	}
	if len(board.Rows(turn, Four)) > 0 {
		return true, nil
	}
	return false, nil
}

// ChooseLastMoves picks a plausible lastMove for a board with no move
// history, so that InspectLastFourEyes and the VCF forced-move shortcut
// have something to key off of. It prefers the opponent's own stone
// closest to the center (Manhattan distance), falling back to the center
// itself when the opponent has no stone. last2Move is always nil.
func ChooseLastMoves(board *Square, turn Player) (lastMove, last2Move *Point) {
	opponent := turn.Opponent()
	best := (*Point)(nil)
	bestDist := -1
	center := Point{X: BoardSize / 2, Y: BoardSize / 2}
	for x := uint8(0); x < BoardSize; x++ {
		for y := uint8(0); y < BoardSize; y++ {
			p := Point{X: x, Y: y}
			pl := board.Stones(p)
			if pl == nil || *pl != opponent {
				continue
			}
			d := abs(int(p.X)-int(center.X)) + abs(int(p.Y)-int(center.Y))
			if best == nil || d < bestDist {
				q := p
				best = &q
				bestDist = d
			}
		}
	}
	if best == nil {
		best = &center
	}
	return best, nil
}
