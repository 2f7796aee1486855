package numfield

import (
	"errors"
	"math/big"

	"github.com/veldtlabs/finmat/ffield"
)

var (
	// ErrNotMonic is returned when the minimal polynomial is not monic of positive degree.
	ErrNotMonic = errors.New("numfield: minimal polynomial must be monic of positive degree")

	// ErrNotSquarefree is returned when the minimal polynomial has a repeated factor.
	ErrNotSquarefree = errors.New("numfield: minimal polynomial is not squarefree")

	// ErrRamified is returned by SplitPrime when p divides the discriminant
	// of the equation order (ramified or index-dividing prime).
	ErrRamified = errors.New("numfield: prime divides the discriminant")

	// ErrEvenPrime is returned by SplitPrime for p = 2, which the underlying
	// good-reduction guarantee does not cover.
	ErrEvenPrime = errors.New("numfield: p = 2 is not an admissible modulus")

	// ErrDenominator is returned by a residue map when p divides the
	// denominator of the element relative to the equation order.
	ErrDenominator = errors.New("numfield: denominator vanishes in the residue field")

	// ErrNoInverse is returned when inverting zero or a singular matrix.
	ErrNoInverse = errors.New("numfield: element is not invertible")

	// ErrFieldMismatch is returned when operands belong to different number fields.
	ErrFieldMismatch = errors.New("numfield: operands belong to different fields")

	// ErrDimensionMismatch is returned when matrix shapes are incompatible.
	ErrDimensionMismatch = errors.New("numfield: matrix dimensions differ")

	// ErrBadDimension is returned for empty or non-square matrix row sets.
	ErrBadDimension = errors.New("numfield: matrix must be square with positive dimension")
)

// Field is a number field K = Q[x]/(f) of degree deg over Q, presented by
// its monic integer minimal polynomial. Immutable after construction.
type Field struct {
	deg  int
	min  []*big.Int // monic minimal polynomial, little-endian, len deg+1
	disc *big.Int   // discriminant of the equation order Z[α]
}

// Elem is a field element: deg exact-rational coordinates in the power
// basis 1, α, ..., α^(deg-1). Use Field.Zero and friends to construct.
type Elem []*big.Rat

// ResidueMap reduces elements of K into a residue field chosen by
// SplitPrime. It fails with ErrDenominator when the element's denominator
// is divisible by the residue characteristic.
type ResidueMap func(Elem) (ffield.Elem, error)

// Matrix is a dense n×n matrix over a number field. Immutable by
// convention: all arithmetic returns fresh matrices.
type Matrix struct {
	k    *Field
	n    int
	rows [][]Elem
}
