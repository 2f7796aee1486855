// Package ffield implements finite fields F_q and the little linear algebra
// the recognition pipeline needs over them.
//
// A Field is either a prime field F_p or an extension
// F_q = F_p[t]/(g(t)), q = p^deg(g), with g monic irreducible. Both share
// one representation: an element is a power-basis coefficient vector of
// length deg(g) with limbs reduced modulo p (a prime field is the degree-1
// extension F_p[t]/(t)). The characteristic is capped at 2^31-1 so that a
// limb product always fits in a uint64.
//
// The package also exposes the polynomial toolkit over F_p that the
// number-field layer needs to split rational primes:
//
//   - Squarefree : gcd(f, f') is constant.
//   - IsIrreducible : Rabin's test via iterated Frobenius powers.
//   - MinimalFactor : one monic irreducible factor of least degree, found
//     by distinct-degree splitting followed by a deterministic
//     Cantor–Zassenhaus equal-degree split (odd characteristic only).
//     The splitting elements come from a PCG seeded by (p, d), so repeated
//     runs select the same factor: determinism is part of the contract.
//
// Matrix is a dense n×n matrix over a Field with exact Mul, Rank
// (Gaussian elimination), Inverse (Gauss–Jordan), identity/equality tests
// and a stable Key encoding used to hash group elements.
//
// # Errors
//
//	ErrNonPrimeModulus   - characteristic is not prime.
//	ErrModulusTooLarge   - characteristic does not fit below 2^31.
//	ErrNotMonic          - extension modulus is not monic.
//	ErrReducible         - extension modulus is reducible.
//	ErrNotSquarefree     - MinimalFactor input has a repeated factor.
//	ErrEvenCharacteristic- MinimalFactor needs odd characteristic.
//	ErrDenominator       - a rational's denominator vanishes mod p.
//	ErrNoInverse         - inversion of zero (element or singular matrix).
//	ErrFieldMismatch     - operands live in different fields.
//	ErrDimensionMismatch - matrix dimensions differ.
//
// All arithmetic is exact; nothing in this package allocates global state,
// so Fields and Matrices are safe for concurrent reads.
package ffield
