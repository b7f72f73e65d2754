package mate

// Strategy picks which child to expand next and computes that child's
// new threshold, per the df-pn proof-number search algorithm. Only one
// implementation exists (dfpnStrategy); the interface exists because
// spec §9 leaves the search strategy as a named seam a future strategy
// (e.g. a PDS variant) could plug into without touching the Searcher.
type Strategy interface {
	// AttackNode aggregates an OR node's value from its children: the
	// node is proven as soon as one child is, so pn = min(children pn);
	// it is disproven only once every child is, so dn = sum(children dn).
	AttackNode(children []Node, limit uint8) Node
	// DefenceNode aggregates an AND node's value from its children: the
	// dual of AttackNode.
	DefenceNode(children []Node, limit uint8) Node
	// SelectAttack picks the most-promising child (smallest pn) to
	// expand next, plus the runner-up (next2, by pn) needed for the
	// threshold formula.
	SelectAttack(children []Node) (best int, next2 Node)
	// SelectDefence is SelectAttack's dual: smallest dn wins.
	SelectDefence(children []Node) (best int, next2 Node)
	NextThresholdAttack(threshold, current, next1, next2 Node) Node
	NextThresholdDefence(threshold, current, next1, next2 Node) Node
}

type dfpnStrategy struct{}

func (dfpnStrategy) AttackNode(children []Node, limit uint8) Node {
	if len(children) == 0 {
		return Disproven(limit)
	}
	pn := inf
	var dn uint32
	for _, c := range children {
		if c.PN < pn {
			pn = c.PN
		}
		dn = addSat(dn, c.DN)
	}
	return Node{PN: pn, DN: dn, Limit: limit}
}

func (dfpnStrategy) DefenceNode(children []Node, limit uint8) Node {
	if len(children) == 0 {
		return Proven(limit)
	}
	var pn uint32
	dn := inf
	for _, c := range children {
		pn = addSat(pn, c.PN)
		if c.DN < dn {
			dn = c.DN
		}
	}
	return Node{PN: pn, DN: dn, Limit: limit}
}

func (dfpnStrategy) SelectAttack(children []Node) (best int, next2 Node) {
	best = -1
	next2 = Node{PN: inf, DN: inf}
	for i, c := range children {
		if best == -1 || c.PN < children[best].PN {
			if best != -1 {
				next2 = children[best]
			}
			best = i
		} else if c.PN < next2.PN {
			next2 = c
		}
	}
	return best, next2
}

func (dfpnStrategy) SelectDefence(children []Node) (best int, next2 Node) {
	best = -1
	next2 = Node{PN: inf, DN: inf}
	for i, c := range children {
		if best == -1 || c.DN < children[best].DN {
			if best != -1 {
				next2 = children[best]
			}
			best = i
		} else if c.DN < next2.DN {
			next2 = c
		}
	}
	return best, next2
}

func (dfpnStrategy) NextThresholdAttack(threshold, current, next1, next2 Node) Node {
	return Node{
		PN:    min32(threshold.PN, addOneSat(next2.PN)),
		DN:    addSat(subSat(threshold.DN, current.DN), next1.DN),
		Limit: current.Limit,
	}
}

func (dfpnStrategy) NextThresholdDefence(threshold, current, next1, next2 Node) Node {
	return Node{
		PN:    addSat(subSat(threshold.PN, current.PN), next1.PN),
		DN:    min32(threshold.DN, addOneSat(next2.DN)),
		Limit: current.Limit,
	}
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
