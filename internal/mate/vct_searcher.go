package mate

import "github.com/hailam/renju-solve/internal/renju"

// Searcher runs an iterative-deepening df-pn proof-number search for a
// Victory by Continuous Threats: unlike VCF, the defender's replies are
// not limited to a single forced eye, so the tree is explored with
// proof/disproof numbers rather than plain DFS.
type Searcher struct {
	table       *Table
	strategy    Strategy
	attackerVCF *VCFSolver
	defenderVCF *VCFSolver

	// OnProgress, if set, is called once per iterative-deepening round
	// before the round is searched, mirroring the teacher engine's
	// OnInfo callback field. nodes is the table's entry count so far.
	OnProgress func(limit uint8, nodes int)
}

// NewSearcher returns a fresh searcher with an empty table.
func NewSearcher() *Searcher {
	return &Searcher{
		table:       NewTable(),
		strategy:    dfpnStrategy{},
		attackerVCF: NewVCFSolver(),
		defenderVCF: NewVCFSolver(),
	}
}

// Solve searches for a VCT of at most maxDepth attacking moves for g.Turn
// to play,
// trying successively deeper limits until one proves the root or the
// budget is exhausted.
func (s *Searcher) Solve(g *renju.Game, maxDepth uint8) (*renju.Mate, bool) {
	st := NewState(g, g.Turn)
	for limit := uint8(1); limit <= maxDepth; limit++ {
		if s.OnProgress != nil {
			s.OnProgress(limit, len(s.table.entries))
		}
		root := s.searchAttacks(st, Node{PN: inf, DN: inf, Limit: limit}, limit)
		if root.PN == 0 {
			return Resolve(s.table, s.strategy, st, limit)
		}
	}
	return nil, false
}

func (s *Searcher) searchAttacks(st *State, threshold Node, limit uint8) Node {
	g := st.Game()
	if limit == 0 {
		return Disproven(limit)
	}
	if _, ok := s.attackerVCF.Solve(g, limit); ok {
		return Proven(limit)
	}

	threatState := g.Pass()
	var threat *renju.Mate
	if m, ok := s.defenderVCF.SolveIterative(threatState, ascending(limit)); ok {
		threat = m
	}

	attacks := filterForbidden(g, st.SortedAttacks(threat))
	if len(attacks) == 0 {
		return Disproven(limit)
	}

	children := make([]Node, len(attacks))
	for i, a := range attacks {
		children[i] = s.table.LookupChild(g, a, limit, initDefenceDefault(len(attacks), limit))
	}

	for {
		current := s.strategy.AttackNode(children, limit)
		if current.PN >= threshold.PN || current.DN >= threshold.DN {
			return current
		}
		best, next2 := s.strategy.SelectAttack(children)
		childThreshold := s.strategy.NextThresholdAttack(threshold, current, children[best], next2)
		children[best] = s.expandAttack(st, attacks[best], childThreshold, limit)
	}
}

func (s *Searcher) searchDefences(st *State, threshold Node, limit uint8) Node {
	g := st.Game()
	firstEye, hasAnother := g.InspectLastFourEyes()
	if hasAnother {
		return Proven(limit)
	}
	if firstEye != nil {
		return s.expandDefence(st, *firstEye, threshold, limit)
	}

	// If the attacker has no continuing threat even with a free move
	// here, the defender has already won.
	threat, hasThreat := s.attackerVCF.Solve(g.Pass(), limit-1)
	if !hasThreat {
		return Disproven(limit)
	}
	if _, ok := s.defenderVCF.Solve(g, limit); ok {
		return Disproven(limit)
	}

	defences := filterForbidden(g, st.SortedDefences(threat))
	if len(defences) == 0 {
		return Proven(limit)
	}

	children := make([]Node, len(defences))
	for i, d := range defences {
		children[i] = s.table.LookupChild(g, d, limit-1, initAttackDefault(len(defences), limit-1))
	}

	for {
		current := s.strategy.DefenceNode(children, limit)
		if current.PN >= threshold.PN || current.DN >= threshold.DN {
			return current
		}
		best, next2 := s.strategy.SelectDefence(children)
		childThreshold := s.strategy.NextThresholdDefence(threshold, current, children[best], next2)
		children[best] = s.expandDefence(st, defences[best], childThreshold, limit)
	}
}

func (s *Searcher) expandAttack(st *State, attack renju.Point, threshold Node, limit uint8) Node {
	g := st.Game()
	prevLast2 := g.Last2Move
	childHash := g.ZobristHash() ^ renju.ZobristPoint(g.Turn, attack) ^ renju.ZobristSideToMove()
	if current := s.table.Lookup(childHash, limit); current.PN >= threshold.PN || current.DN >= threshold.DN {
		return current
	}
	st.Play(attack)
	result := s.searchDefences(st, threshold, limit)
	s.table.Insert(childHash, limit, result)
	st.Undo(prevLast2)
	return result
}

func (s *Searcher) expandDefence(st *State, defence renju.Point, threshold Node, limit uint8) Node {
	g := st.Game()
	prevLast2 := g.Last2Move
	childHash := g.ZobristHash() ^ renju.ZobristPoint(g.Turn, defence) ^ renju.ZobristSideToMove()
	if current := s.table.Lookup(childHash, limit-1); current.PN >= threshold.PN || current.DN >= threshold.DN {
		return current
	}
	st.Play(defence)
	result := s.searchAttacks(st, threshold, limit-1)
	s.table.Insert(childHash, limit-1, result)
	st.Undo(prevLast2)
	return result
}

func filterForbidden(g *renju.Game, pts []renju.Point) []renju.Point {
	if g.Turn != renju.Black {
		return pts
	}
	out := pts[:0:0]
	for _, p := range pts {
		if !renju.IsForbidden(g.Board, p) {
			out = append(out, p)
		}
	}
	return out
}

func ascending(limit uint8) []uint8 {
	depths := make([]uint8, limit)
	for i := range depths {
		depths[i] = uint8(i) + 1
	}
	return depths
}
