// Package recog decides whether finitely many invertible matrices over Q
// or over a number field generate a finite group, and certifies the
// verdict.
//
// # Procedure
//
// Rational and NumberField run the same state machine:
//
//  1. Validate the input: nonempty, all matrices square of equal dimension
//     and invertible over K (inverses are computed here because relator
//     evaluation needs them later). Violations fail with ErrInvalidInput.
//  2. Select a good-reduction prime via package modred and reduce the
//     matrices into the residue field F_q.
//  3. Build the reduced matrix group through the Engine port and read off
//     its exact order N.
//  4. Compare N against Bound(deg(K)·n), the maximal order of a finite
//     subgroup of GL(deg(K)·n, Z). N above the bound disproves finiteness:
//     ErrGroupInfinite.
//  5. Obtain a finite presentation of the reduced group on exactly the
//     given generating set and re-evaluate every relator against the
//     ORIGINAL matrices over K. Any relator that fails to evaluate to the
//     identity proves the reduction unfaithful and the input infinite:
//     ErrGroupInfinite.
//  6. Otherwise the reduced group is an isomorphic copy of the input
//     group; return it with its order, prime and residue field.
//
// The bound check is the cheap filter; the relator certificate is the
// expensive but decisive step, since order agreement alone never proves the
// reduction injective on the group the original matrices generate.
//
// ErrGroupInfinite is definitive under the underlying theorem, so it is
// never retried with another prime. The only retried condition is a bad
// prime, absorbed silently inside the selector.
//
// # Engine port
//
// The finite-group computations go through the two-method Engine/Group
// port, defaulting to the in-tree package fpgroup. Any conforming engine
// (an external computer-algebra system, say) can be substituted via
// Options without touching the orchestration.
//
// Everything is synchronous and reentrant: no caches survive a call, no
// internal timeouts exist. Callers wanting bounded latency must wrap the
// call externally; both order and presentation computations can be
// superpolynomial.
//
// # Errors
//
//	ErrInvalidInput    - malformed or singular input, detected up front.
//	ErrGroupInfinite   - the input group is proved infinite.
//	ErrSearchExhausted - defensive cap hit; internal inconsistency
//	                     (alias of the modred sentinel).
package recog
