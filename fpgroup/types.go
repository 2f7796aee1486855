package fpgroup

import (
	"errors"

	"github.com/veldtlabs/finmat/ffield"
)

var (
	// ErrNoGenerators is returned when the generating set is empty.
	ErrNoGenerators = errors.New("fpgroup: generating set is empty")

	// ErrSingularGenerator is returned when a generator is not invertible,
	// so the closure would not be a group.
	ErrSingularGenerator = errors.New("fpgroup: generator is singular")

	// ErrFieldMismatch is returned when generators live over different fields.
	ErrFieldMismatch = errors.New("fpgroup: generators over different fields")

	// ErrDimensionMismatch is returned when generators differ in dimension.
	ErrDimensionMismatch = errors.New("fpgroup: generators of different dimensions")

	// ErrBadWord is returned when a word references a generator index that
	// does not exist in the replacement set.
	ErrBadWord = errors.New("fpgroup: word references an unknown generator")
)

// Syllable is one letter of a presentation word: generator index and a
// nonzero exponent.
type Syllable struct {
	Gen int
	Exp int
}

// Word is a sequence of syllables, evaluated left to right.
type Word []Syllable

// Group is an enumerated finite matrix group over a finite field. Immutable
// after New; safe for concurrent reads.
type Group struct {
	field *ffield.Field
	dim   int
	gens  []*ffield.Matrix

	elems  []*ffield.Matrix
	index  map[string]int
	next   [][]int // next[u][j]: index of elems[u] * gens[j]
	parent []int   // spanning-tree parent (-1 for the identity root)
	via    []int   // generator index of the tree edge from parent
}
