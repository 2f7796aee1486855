// Package numfield implements algebraic number fields K = Q[x]/(f) and the
// number-theoretic side conditions the recognition pipeline needs from them.
//
// A Field is defined by a monic minimal polynomial f with integer
// coefficients (little-endian); irreducibility of f over Q is a documented
// precondition of New; monicity, positive degree and squarefreeness are
// validated, full irreducibility is the caller's responsibility. Elements
// are power-basis coefficient vectors of exact rationals; all arithmetic
// (including inversion via the extended Euclidean algorithm in Q[x]) is
// exact.
//
// The arithmetic works in the equation order Z[α]:
//
//   - Denominator returns the least positive integer b with b·e ∈ Z[α].
//   - Discriminant returns disc(Z[α]) = (-1)^(d(d-1)/2)·Res(f, f'),
//     computed as an exact Sylvester determinant. Its prime divisors are
//     the ramified and index-dividing primes, which the modulus validator
//     excludes wholesale.
//   - SplitPrime factors an odd unramified prime p into prime ideals by
//     factoring f mod p (squarefree there) and picks the first prime
//     ideal: the minimal-degree irreducible factor g returned by
//     ffield.MinimalFactor. The tie-break among same-degree factors is
//     implementation-defined: deterministic for this engine, but not
//     canonical across engines. SplitPrime returns the residue field
//     F_q (q = p^deg g) together with the residue map Z[α] → F_q that
//     sends α to the class of t; the map reduces numerator and
//     denominator separately and fails when p divides the denominator.
//
// Matrix is a dense n×n matrix over K with exact Mul, Gauss–Jordan
// Inverse and identity/equality tests, just enough linear algebra to
// re-evaluate relator words against original input matrices.
//
// # Errors
//
//	ErrNotMonic     - minimal polynomial not monic of positive degree.
//	ErrNotSquarefree- minimal polynomial has a repeated factor.
//	ErrRamified     - SplitPrime on a prime dividing the discriminant.
//	ErrEvenPrime    - SplitPrime on p = 2 (excluded by the theory).
//	ErrDenominator  - residue map on an element with p in its denominator.
//	ErrNoInverse    - inversion of zero (element or singular matrix).
//	ErrFieldMismatch, ErrDimensionMismatch, ErrBadDimension - shape guards.
package numfield
