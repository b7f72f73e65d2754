// Package mate implements the VCF and VCT forced-win searches on top of
// the internal/renju board representation.
package mate

import "github.com/hailam/renju-solve/internal/renju"

type movePair struct {
	attack, defence renju.Point
}

// VCFSolver is a deadend-memoized depth-first VCF search: every attacking
// move must create an immediate four, forcing the defender's reply.
type VCFSolver struct {
	deadends map[deadendKey]struct{}
}

type deadendKey struct {
	hash  uint64
	limit uint8
}

// NewVCFSolver returns an empty solver. A solver's deadend set is only
// valid for a single root position; callers searching a fresh position
// should construct a new solver (mirrors spec §5: no shared mutable state
// across independent solver runs).
func NewVCFSolver() *VCFSolver {
	return &VCFSolver{deadends: make(map[deadendKey]struct{})}
}

// Solve searches for a VCF of at most limit attacking moves for g.Turn to
// play.
func (s *VCFSolver) Solve(g *renju.Game, limit uint8) (*renju.Mate, bool) {
	if limit == 0 {
		return nil, false
	}
	key := deadendKey{hash: g.ZobristHash(), limit: limit}
	if _, bad := s.deadends[key]; bad {
		return nil, false
	}
	mate, ok := s.solveMovePairs(g, limit)
	if !ok {
		s.deadends[key] = struct{}{}
	}
	return mate, ok
}

// SolveIterative runs Solve with increasing depth limits, returning the
// first success (the shallowest mate found, since depths should be given
// in increasing order).
func (s *VCFSolver) SolveIterative(g *renju.Game, depths []uint8) (*renju.Mate, bool) {
	for _, d := range depths {
		if m, ok := s.Solve(g, d); ok {
			return m, true
		}
	}
	return nil, false
}

func (s *VCFSolver) solveMovePairs(g *renju.Game, limit uint8) (*renju.Mate, bool) {
	firstEye, hasAnother := g.InspectLastFourEyes()
	if hasAnother {
		return nil, false
	}
	if firstEye != nil {
		for _, pr := range allSwordPairs(g) {
			if pr.attack != *firstEye {
				continue
			}
			if m, ok := s.solveAttack(g, pr, limit); ok {
				return m, true
			}
		}
		return nil, false
	}

	neighbor := neighborSwordPairs(g)
	for _, pr := range neighbor {
		if m, ok := s.solveAttack(g, pr, limit); ok {
			return m, true
		}
	}
	for _, pr := range allSwordPairs(g) {
		if containsAttack(neighbor, pr.attack) {
			continue
		}
		if m, ok := s.solveAttack(g, pr, limit); ok {
			return m, true
		}
	}
	return nil, false
}

func (s *VCFSolver) solveAttack(g *renju.Game, pr movePair, limit uint8) (*renju.Mate, bool) {
	if g.Turn == renju.Black && renju.IsForbidden(g.Board, pr.attack) {
		return nil, false
	}
	prevLast2 := g.Last2Move
	g.Play(pr.attack)
	mate, ok := s.solveDefence(g, pr.defence, limit)
	g.Undo(prevLast2)
	if !ok {
		return nil, false
	}
	m := mate.Unshift(pr.attack)
	return &m, true
}

func (s *VCFSolver) solveDefence(g *renju.Game, defence renju.Point, limit uint8) (*renju.Mate, bool) {
	firstEye, hasAnother := g.InspectLastFourEyes()
	if hasAnother {
		return &renju.Mate{Win: renju.Win{Fours: [2]*renju.Point{firstEye, firstEye}}}, true
	}
	if g.Turn == renju.Black && renju.IsForbidden(g.Board, defence) {
		p := defence
		return &renju.Mate{Win: renju.Win{Forbidden: &p}}, true
	}
	prevLast2 := g.Last2Move
	g.Play(defence)
	mate, ok := s.Solve(g, limit-1)
	g.Undo(prevLast2)
	if !ok {
		return nil, false
	}
	m := mate.Unshift(defence)
	return &m, true
}

func allSwordPairs(g *renju.Game) []movePair {
	var out []movePair
	for _, r := range g.Board.Rows(g.Turn, renju.Sword) {
		if r.Eye1 == nil || r.Eye2 == nil {
			continue
		}
		out = append(out, movePair{attack: *r.Eye1, defence: *r.Eye2})
		out = append(out, movePair{attack: *r.Eye2, defence: *r.Eye1})
	}
	return out
}

func neighborSwordPairs(g *renju.Game) []movePair {
	if g.Last2Move == nil {
		return nil
	}
	var out []movePair
	for _, r := range g.Board.RowsOn(g.Turn, renju.Sword, *g.Last2Move) {
		if r.Eye1 == nil || r.Eye2 == nil {
			continue
		}
		out = append(out, movePair{attack: *r.Eye1, defence: *r.Eye2})
		out = append(out, movePair{attack: *r.Eye2, defence: *r.Eye1})
	}
	return out
}

func containsAttack(pairs []movePair, p renju.Point) bool {
	for _, pr := range pairs {
		if pr.attack == p {
			return true
		}
	}
	return false
}
