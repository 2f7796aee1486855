// Package fpgroup computes with finite matrix groups over finite fields:
// closure enumeration, exact group order, a finite presentation on the
// given generating set, and evaluation of presentation words.
//
// # Enumeration
//
// New multiplies out the closure of the generators by breadth-first search
// on the Cayley graph (right multiplication, identity as root), hashing
// elements on their stable ffield Key. The search records, per element,
// the spanning-tree edge it was first reached through, and per
// (element, generator) pair the target element. Enumeration is exact and
// terminates precisely because the generated group is finite; the caller
// is responsible for only feeding it reduced matrix sets that are expected
// to be finite (they always are over a finite field: the closure is a
// subgroup of GL(n, q)).
//
// # Presentation
//
// Relators returns the Schreier relators of the enumeration: for every
// non-tree Cayley edge u·g_j = v, the word w_u · g_j · w_v^{-1}, where w_x
// is the spanning-tree word of x. By Schreier's lemma these words generate
// the kernel of the free group on the generators onto the group, so
// together with the generating set they form a finite presentation on
// exactly the given generators, in the given order. Tree edges contribute
// trivial relators and are skipped.
//
// # Words
//
// A Word is a sequence of Syllables (generator index, exponent). Eval
// substitutes matrices for the free generators position by position,
// computing inverses on demand for negative exponents. The same words can
// be evaluated against any replacement matrices of matching length; that
// re-evaluation against the original infinite-field matrices is the
// faithfulness certificate in package recog.
//
// Complexity: enumeration costs O(|G| · k) matrix multiplications for k
// generators, and the relator list has |G|·k - (|G|-1) entries. Both can
// be superpolynomial in the input size; callers wanting bounded latency
// must bound it externally.
//
// # Errors
//
//	ErrNoGenerators      - empty generating set.
//	ErrSingularGenerator - a generator is not invertible over F_q.
//	ErrFieldMismatch     - generators over different fields.
//	ErrDimensionMismatch - generators of different dimensions.
//	ErrBadWord           - a word references a generator index out of range.
package fpgroup
