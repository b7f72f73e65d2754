package mate

import "github.com/hailam/renju-solve/internal/renju"

// Resolve walks a Proven table back from st's current position (assumed
// already proven at the given limit) and reconstructs the winning move
// sequence. The attacker plays the first candidate whose child is stored
// as proven in the table; when none is (a node proven by the attacker's
// VCF shortcut), the attacker's VCF supplies the rest of the line. Since
// every reply at a proven defence node is itself proven, the
// defender is credited with whichever reply forces the longest
// continuation, giving a representative (not necessarily unique)
// worst-case line.
func Resolve(table *Table, strategy Strategy, st *State, limit uint8) (*renju.Mate, bool) {
	return resolveAttack(table, st, NewVCFSolver(), limit)
}

func resolveAttack(table *Table, st *State, attackerVCF *VCFSolver, limit uint8) (*renju.Mate, bool) {
	g := st.Game()
	if limit == 0 {
		return nil, false
	}
	for _, a := range filterForbidden(g, st.SortedAttacks(nil)) {
		if table.LookupChild(g, a, limit, Disproven(limit)).PN != 0 {
			continue
		}
		prevLast2 := g.Last2Move
		st.Play(a)
		mate, ok := resolveDefence(table, st, attackerVCF, limit)
		st.Undo(prevLast2)
		if ok {
			m := mate.Unshift(a)
			return &m, true
		}
	}
	return attackerVCF.Solve(g, limit)
}

func resolveDefence(table *Table, st *State, attackerVCF *VCFSolver, limit uint8) (*renju.Mate, bool) {
	g := st.Game()
	firstEye, hasAnother := g.InspectLastFourEyes()
	if hasAnother {
		return &renju.Mate{Win: renju.Win{Fours: [2]*renju.Point{firstEye, firstEye}}}, true
	}
	if firstEye != nil {
		return resolveOneDefence(table, st, attackerVCF, *firstEye, limit)
	}

	threat, hasThreat := attackerVCF.Solve(g.Pass(), limit-1)
	if !hasThreat {
		return nil, false
	}

	all := st.SortedDefences(threat)
	legal := filterForbidden(g, all)
	if len(legal) == 0 {
		if len(all) > 0 {
			p := all[0]
			return &renju.Mate{Win: renju.Win{Forbidden: &p}}, true
		}
		return &renju.Mate{}, true
	}

	var best *renju.Mate
	for _, d := range legal {
		mate, ok := resolveOneDefence(table, st, attackerVCF, d, limit)
		if !ok {
			continue
		}
		if best == nil || len(mate.Path) > len(best.Path) {
			best = mate
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func resolveOneDefence(table *Table, st *State, attackerVCF *VCFSolver, d renju.Point, limit uint8) (*renju.Mate, bool) {
	g := st.Game()
	hash := g.ZobristHash() ^ renju.ZobristPoint(g.Turn, d) ^ renju.ZobristSideToMove()
	if table.Lookup(hash, limit-1).PN != 0 {
		return nil, false
	}
	prevLast2 := g.Last2Move
	st.Play(d)
	mate, ok := resolveAttack(table, st, attackerVCF, limit-1)
	st.Undo(prevLast2)
	if !ok {
		return nil, false
	}
	m := mate.Unshift(d)
	return &m, true
}
