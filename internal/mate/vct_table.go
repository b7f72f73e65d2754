package mate

import "github.com/hailam/renju-solve/internal/renju"

// inf is the saturating "infinity" proof/disproof number.
const inf uint32 = ^uint32(0)

// Node is a df-pn proof tree node: pn/dn are proof and disproof numbers,
// limit is the remaining search depth at which the verdict was obtained.
type Node struct {
	PN, DN uint32
	Limit  uint8
}

// Proven is the zero_pn / inf_dn special value: pn=0, dn=inf.
func Proven(limit uint8) Node { return Node{PN: 0, DN: inf, Limit: limit} }

// Disproven is the zero_dn / inf_pn special value: pn=inf, dn=0.
func Disproven(limit uint8) Node { return Node{PN: inf, DN: 0, Limit: limit} }

// initAttackDefault is the seed given to an unvisited attacker-node child:
// a small proof number and a disproof number equal to the branching
// factor, so first-visit exploration stays fair across siblings.
func initAttackDefault(numAttacks int, limit uint8) Node {
	return Node{PN: 1, DN: uint32(numAttacks), Limit: limit}
}

// initDefenceDefault is the dual seed for an unvisited defender-node
// child.
func initDefenceDefault(numDefences int, limit uint8) Node {
	return Node{PN: uint32(numDefences), DN: 1, Limit: limit}
}

func addSat(a, b uint32) uint32 {
	if a == inf || b == inf {
		return inf
	}
	sum := a + b
	if sum < a {
		return inf
	}
	return sum
}

func addOneSat(a uint32) uint32 {
	if a == inf {
		return inf
	}
	return a + 1
}

func subSat(a, b uint32) uint32 {
	if a == inf {
		return inf
	}
	if b >= a {
		return 0
	}
	return a - b
}

// Table maps (zobrist hash, depth limit) to the best Node verdict found
// for that position so far. Mirrors the teacher's slot-indexed
// TranspositionTable in spirit; here a plain map suffices since VCT tables
// are short-lived (one per solver run, freed at search end).
type Table struct {
	entries map[tableKey]Node
}

type tableKey struct {
	hash  uint64
	limit uint8
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[tableKey]Node)}
}

// Lookup returns the stored node for (hash, limit), or the zero Node
// (pn=0, dn=0) if unseen — a node that has not yet been compared against
// any threshold, so it always proceeds to be searched.
func (t *Table) Lookup(hash uint64, limit uint8) Node {
	return t.entries[tableKey{hash: hash, limit: limit}]
}

// Insert stores result under (hash, limit).
func (t *Table) Insert(hash uint64, limit uint8, result Node) {
	t.entries[tableKey{hash: hash, limit: limit}] = result
}

// LookupChild looks up the node the position would have after playing m,
// without mutating g: Zobrist hashing lets the post-move hash be computed
// directly. def supplies the default Node for an unseen child.
func (t *Table) LookupChild(g *renju.Game, m renju.Point, limit uint8, def Node) Node {
	childHash := g.ZobristHash() ^ renju.ZobristPoint(g.Turn, m) ^ renju.ZobristSideToMove()
	key := tableKey{hash: childHash, limit: limit}
	if n, ok := t.entries[key]; ok {
		return n
	}
	return def
}
