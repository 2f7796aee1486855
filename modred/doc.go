// Package modred chooses a good-reduction modulus for a set of invertible
// matrices over Q or over a number field, and produces the reduced matrix
// set over the resulting residue field.
//
// # Validation
//
// ValidateRational and ValidateNumberField check the number-theoretic side
// conditions for one candidate prime p and, when they hold, return the
// residue field and the entrywise images of the matrices:
//
//   - p = 2 is rejected unconditionally for both flavours: the underlying
//     good-reduction guarantee is only established for odd primes.
//   - p must not divide the denominator of any nonzero matrix entry (in
//     lowest terms for Q; relative to the equation order Z[α] for a number
//     field). This inspects the GIVEN matrices only, not their inverses,
//     even though the theorem's side condition mentions both. This is a known,
//     deliberately preserved gap; see the package-level note below.
//   - number fields only: p must not divide disc(Z[α]), keeping ramified
//     and index-dividing primes out.
//   - every reduced matrix must still have full rank over the residue
//     field. Entry denominators alone do not guarantee this (an integer
//     matrix invertible over Q can be singular mod p), so the rank is
//     re-checked explicitly.
//
// # Selection
//
// SelectRational and SelectNumberField walk the primes strictly above a
// caller-supplied bound, feeding each candidate to the validator and
// stopping at the first success. Only finitely many primes are bad (they
// divide one of finitely many entry denominators or the discriminant), so
// the walk terminates. A defensive candidate cap (DefaultMaxScan) guards
// against logic defects; hitting it signals ErrSearchExhausted, which is
// an internal-inconsistency report, never a verdict about the input group.
//
// # Known gap in the denominator check
//
// The cited theorem states its side condition over "the matrices and their
// inverses"; this package screens only the given matrices' denominators.
// The rank re-check catches the common fallout. The check is intentionally
// not strengthened here.
//
// # Errors
//
// Validator rejections carry no error: they report ok=false and drive the
// selector to the next prime. Only ErrSearchExhausted and shape errors
// from the matrix layers ever propagate.
package modred
