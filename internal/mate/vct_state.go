package mate

import "github.com/hailam/renju-solve/internal/renju"

// State wraps a Game together with the attacker's potential field, so
// that VCT candidate-move ordering never has to rescan the whole board.
// Attacker is fixed for the lifetime of a single search (the side whose
// forced win is being proven); Game.Turn tells us whether the current
// node is an attack node (Turn == Attacker) or a defence node. Only the
// attacker's field is kept: candidate ordering at both node kinds ranks
// points by how much they help the attacker, mirroring the reference
// search's single shared PotentialField.
type State struct {
	game     *renju.Game
	attacker renju.Player
	field    *renju.PotentialField
}

// attackMin is the smallest window potential (stones in the window plus
// one) the attacker's field keeps: 4 for Black, 3 for White. Black's field
// is also built strict, dropping windows that would run into an overline.
func attackMin(p renju.Player) uint8 {
	if p == renju.Black {
		return 4
	}
	return 3
}

// NewState builds the attacker's potential field from scratch.
func NewState(g *renju.Game, attacker renju.Player) *State {
	return &State{
		game:     g,
		attacker: attacker,
		field:    renju.NewPotentialField(g.Board, attacker, attackMin(attacker), attacker == renju.Black),
	}
}

// Game returns the underlying game.
func (s *State) Game() *renju.Game { return s.game }

// Attacker returns the fixed attacking side.
func (s *State) Attacker() renju.Player { return s.attacker }

// Play places a move and refreshes the attacker's potential field along
// its lines.
func (s *State) Play(p renju.Point) {
	s.game.Play(p)
	s.field.UpdateAlong(p)
}

// Undo restores the prior move, then refreshes the attacker's potential
// field along the undone point's lines.
func (s *State) Undo(priorLast2 *renju.Point) {
	undone := *s.game.LastMove
	s.game.Undo(priorLast2)
	s.field.UpdateAlong(undone)
}

// SortedAttacks returns the attacker's candidate moves at an attack node,
// strongest potential first. threat, when non-nil, is the defender's own
// forced win if the attacker were to pass; every candidate not among its
// threatDefences is dropped, since playing anywhere else lets the
// defender's threat stand.
func (s *State) SortedAttacks(threat *renju.Mate) []renju.Point {
	pts := s.field.CollectNonzero()
	if threat != nil {
		allowed := make(map[renju.Point]bool)
		for _, p := range s.threatDefences(threat) {
			allowed[p] = true
		}
		filtered := pts[:0:0]
		for _, p := range pts {
			if allowed[p] {
				filtered = append(filtered, p)
			}
		}
		pts = filtered
	}
	sortByPotentialDesc(pts, s.field)
	return pts
}

// SortedDefences returns the defender's candidate replies at a defence
// node against threat — the attacker's proven continuation if given a
// free move — ranked by the attacker's own potential field, same as
// SortedAttacks.
func (s *State) SortedDefences(threat *renju.Mate) []renju.Point {
	pts := dedupPoints(s.threatDefences(threat))
	sortByPotentialDesc(pts, s.field)
	return pts
}

// threatDefences is every point that addresses threat: the cells along
// its own path, the extra cell of a double-four finish, the neighborhood
// of a forbidden-point finish, any sword eyes the non-executing side
// would pick up while the threat plays out, and the defender's own
// standing four-in-waiting points.
func (s *State) threatDefences(threat *renju.Mate) []renju.Point {
	var out []renju.Point
	out = append(out, s.directDefences(threat)...)
	out = append(out, s.counterDefences(threat)...)
	out = append(out, s.fourMoves()...)
	return out
}

func (s *State) directDefences(threat *renju.Mate) []renju.Point {
	out := append([]renju.Point(nil), threat.Path...)
	if threat.Win.Fours[0] != nil {
		out = append(out, *threat.Win.Fours[0])
		if threat.Win.Fours[1] != nil && *threat.Win.Fours[1] != *threat.Win.Fours[0] {
			out = append(out, *threat.Win.Fours[1])
		}
	}
	if threat.Win.Forbidden != nil {
		out = append(out, *threat.Win.Forbidden)
		out = append(out, s.game.Board.Neighbors(*threat.Win.Forbidden, 5, true)...)
	}
	return out
}

// counterDefences replays threat.Path on a scratch board starting from
// the side that would execute it (the opponent of whoever is to move
// right now, since threat always comes from a solve on a passed state).
// Any sword row the non-executing side picks up along the way hands us
// an extra real candidate: its eyes.
func (s *State) counterDefences(threat *renju.Mate) []renju.Point {
	if len(threat.Path) == 0 {
		return nil
	}
	executor := s.game.Turn.Opponent()
	nonExecutor := executor.Opponent()

	board := s.game.Board.Clone()
	mover := executor
	var out []renju.Point
	for _, p := range threat.Path {
		if board.Stones(p) != nil {
			break
		}
		board.Put(mover, p)
		if mover == nonExecutor {
			for _, r := range board.RowsOn(nonExecutor, renju.Sword, p) {
				out = append(out, r.Eyes()...)
			}
		}
		mover = mover.Opponent()
	}
	return out
}

// fourMoves is the defender's own standing sword-row eyes: points that
// would complete a four for the defender regardless of what the attacker
// is threatening, and so are worth keeping in the candidate set even
// when they don't directly block threat.
func (s *State) fourMoves() []renju.Point {
	defender := s.attacker.Opponent()
	return s.game.Board.RowEyes(defender, renju.Sword)
}

func dedupPoints(pts []renju.Point) []renju.Point {
	seen := make(map[renju.Point]bool, len(pts))
	out := pts[:0:0]
	for _, p := range pts {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func sortByPotentialDesc(pts []renju.Point, pf *renju.PotentialField) {
	less := func(i, j int) bool {
		return pf.At(pts[i]).Sum() > pf.At(pts[j]).Sum()
	}
	insertionSort(pts, less)
}

// insertionSort avoids pulling in sort.Slice's closure overhead for the
// small candidate lists typical of a single line's worth of potentials.
func insertionSort(pts []renju.Point, less func(i, j int) bool) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
