package fpgroup

import (
	"math/big"

	"github.com/veldtlabs/finmat/ffield"
)

// New enumerates the group generated by gens over f by breadth-first
// closure and returns the finished Group. The generating set is kept in
// the given order; duplicate and identity generators are legal and appear
// in the presentation like any other generator.
func New(f *ffield.Field, gens []*ffield.Matrix) (*Group, error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	dim := gens[0].Dim()
	for _, m := range gens {
		if !m.Field().Same(f) {
			return nil, ErrFieldMismatch
		}
		if m.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
		if m.Rank() != dim {
			return nil, ErrSingularGenerator
		}
	}

	g := &Group{
		field: f,
		dim:   dim,
		gens:  make([]*ffield.Matrix, len(gens)),
		index: make(map[string]int),
	}
	for i, m := range gens {
		g.gens[i] = m.Clone()
	}

	id := ffield.Identity(f, dim)
	g.elems = append(g.elems, id)
	g.index[id.Key()] = 0
	g.parent = append(g.parent, -1)
	g.via = append(g.via, -1)

	// Plain queue BFS; every (element, generator) product is either a known
	// element (non-tree edge) or a fresh one reached by a tree edge.
	for u := 0; u < len(g.elems); u++ {
		row := make([]int, len(g.gens))
		for j, gen := range g.gens {
			prod, err := g.elems[u].Mul(gen)
			if err != nil {
				return nil, err
			}
			key := prod.Key()
			idx, ok := g.index[key]
			if !ok {
				idx = len(g.elems)
				g.elems = append(g.elems, prod)
				g.index[key] = idx
				g.parent = append(g.parent, u)
				g.via = append(g.via, j)
			}
			row[j] = idx
		}
		g.next = append(g.next, row)
	}
	return g, nil
}

// Field returns the finite field the group lives over.
func (g *Group) Field() *ffield.Field { return g.field }

// Dim returns the matrix dimension.
func (g *Group) Dim() int { return g.dim }

// Generators returns the generating set in its original order.
func (g *Group) Generators() []*ffield.Matrix {
	out := make([]*ffield.Matrix, len(g.gens))
	for i, m := range g.gens {
		out[i] = m.Clone()
	}
	return out
}

// Order returns the exact group order.
func (g *Group) Order() *big.Int {
	return big.NewInt(int64(len(g.elems)))
}

// Contains reports whether m is an element of the group.
func (g *Group) Contains(m *ffield.Matrix) bool {
	if !m.Field().Same(g.field) || m.Dim() != g.dim {
		return false
	}
	_, ok := g.index[m.Key()]
	return ok
}

// treeWord returns the spanning-tree word of element v (empty for the root).
func (g *Group) treeWord(v int) Word {
	var w Word
	for v != 0 {
		w = append(w, Syllable{Gen: g.via[v], Exp: 1})
		v = g.parent[v]
	}
	// The climb collected syllables leaf-to-root; the word reads root-to-leaf.
	for l, r := 0, len(w)-1; l < r; l, r = l+1, r-1 {
		w[l], w[r] = w[r], w[l]
	}
	return w
}

// Relators returns the Schreier relators of the enumeration: one word per
// non-tree Cayley edge, each evaluating to the identity in the group. The
// result presents the group on exactly the generating set passed to New.
func (g *Group) Relators() []Word {
	var rels []Word
	for u := range g.elems {
		for j := range g.gens {
			v := g.next[u][j]
			if g.parent[v] == u && g.via[v] == j && v > u {
				// The tree edge that discovered v; contributes nothing.
				continue
			}
			w := g.treeWord(u)
			w = append(w, Syllable{Gen: j, Exp: 1})
			w = append(w, invert(g.treeWord(v))...)
			if w = normalize(w); len(w) > 0 {
				rels = append(rels, w)
			}
		}
	}
	return rels
}
