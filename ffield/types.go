package ffield

import "errors"

// MaxCharacteristic bounds the prime p so that a product of two reduced
// limbs fits in a uint64 without overflow.
const MaxCharacteristic = 1<<31 - 1

var (
	// ErrNonPrimeModulus is returned when the requested characteristic is composite.
	ErrNonPrimeModulus = errors.New("ffield: modulus is not prime")

	// ErrModulusTooLarge is returned when the characteristic exceeds MaxCharacteristic.
	ErrModulusTooLarge = errors.New("ffield: modulus exceeds 2^31-1")

	// ErrNotMonic is returned when an extension modulus is not monic of positive degree.
	ErrNotMonic = errors.New("ffield: modulus polynomial is not monic of positive degree")

	// ErrReducible is returned when an extension modulus factors over F_p.
	ErrReducible = errors.New("ffield: modulus polynomial is reducible")

	// ErrNotSquarefree is returned by MinimalFactor when the input has a repeated factor.
	ErrNotSquarefree = errors.New("ffield: polynomial is not squarefree")

	// ErrEvenCharacteristic is returned by MinimalFactor for p = 2, where the
	// (q-1)/2 power trick used for equal-degree splitting does not apply.
	ErrEvenCharacteristic = errors.New("ffield: equal-degree splitting requires odd characteristic")

	// ErrDenominator is returned when a rational cannot be reduced because
	// its denominator is divisible by the characteristic.
	ErrDenominator = errors.New("ffield: denominator vanishes in the residue field")

	// ErrNoInverse is returned when inverting the zero element or a singular matrix.
	ErrNoInverse = errors.New("ffield: element is not invertible")

	// ErrFieldMismatch is returned when operands belong to different fields.
	ErrFieldMismatch = errors.New("ffield: operands belong to different fields")

	// ErrDimensionMismatch is returned when matrix shapes are incompatible.
	ErrDimensionMismatch = errors.New("ffield: matrix dimensions differ")

	// ErrBadDimension is returned when a matrix dimension is not positive
	// or a row set is not square.
	ErrBadDimension = errors.New("ffield: matrix must be square with positive dimension")
)

// Field describes F_q = F_p[t]/(g(t)) with q = p^deg(g). A prime field is
// the degree-1 case g(t) = t. Immutable after construction.
type Field struct {
	p   uint64
	deg int
	g   []uint64 // monic modulus, little-endian, len deg+1, limbs < p
}

// Elem is a field element: deg(g) power-basis limbs, each reduced mod p.
// The zero value of the slice type is not a valid element; use Field.Zero.
type Elem []uint64

// Matrix is a dense n×n matrix over a Field. Immutable by convention:
// all arithmetic returns fresh matrices.
type Matrix struct {
	f    *Field
	n    int
	rows [][]Elem
}
