package recog

import (
	"errors"
	"math/big"

	"github.com/veldtlabs/finmat/ffield"
	"github.com/veldtlabs/finmat/fpgroup"
	"github.com/veldtlabs/finmat/modred"
)

var (
	// ErrInvalidInput is returned for an empty matrix list, mismatched
	// dimensions or a matrix that is not invertible over K. Detected before
	// any prime search begins; never retried.
	ErrInvalidInput = errors.New("recog: invalid input matrices")

	// ErrGroupInfinite is returned when the input group is proved infinite,
	// either by the reduced order exceeding the theoretical bound or by a
	// relator failing against the original matrices. Definitive, not
	// retried with a different prime.
	ErrGroupInfinite = errors.New("recog: group is not finite")

	// ErrSearchExhausted is modred's defensive scan-cap sentinel, aliased
	// here so every failure mode of a run matches a sentinel from this
	// package.
	ErrSearchExhausted = modred.ErrSearchExhausted
)

// Group is the slice of the finite-group engine the orchestrator consumes:
// the exact order and a presentation's relators on the generating set the
// group was built from.
type Group interface {
	Order() *big.Int
	Relators() []fpgroup.Word
}

// Engine builds a finite matrix group from generators over a finite field.
// The default is the in-tree enumeration engine; substitute a conforming
// implementation through Options to delegate to an external system.
type Engine interface {
	Build(f *ffield.Field, gens []*ffield.Matrix) (Group, error)
}

// Options tunes a recognition run. The zero value is NOT ready to use;
// start from DefaultOptions.
//   - StartAbove: the prime search begins strictly above this bound. The
//     default 1 makes 2 the first candidate, which the validators reject,
//     so the first effective candidate is 3.
//   - MaxScan: defensive cap on candidate primes (<= 0 means the modred
//     default).
//   - Engine: the finite-group computation port.
type Options struct {
	StartAbove uint64
	MaxScan    int
	Engine     Engine
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{StartAbove: 1, MaxScan: 0, Engine: builtinEngine{}}
}

// Result is the certificate of a successful recognition: the chosen prime,
// the residue field, the reduced generators (same order and indexing as
// the input) and the exact group order. The reduced group is an
// isomorphic copy of the group the input matrices generate.
type Result struct {
	Prime      uint64
	Field      *ffield.Field
	Generators []*ffield.Matrix
	Order      *big.Int
}

// builtinEngine adapts package fpgroup to the Engine port.
type builtinEngine struct{}

func (builtinEngine) Build(f *ffield.Field, gens []*ffield.Matrix) (Group, error) {
	return fpgroup.New(f, gens)
}
