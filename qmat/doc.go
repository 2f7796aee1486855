// Package qmat provides dense, exact n×n matrices over the rational numbers.
//
// Entries are *big.Rat, always in lowest terms by math/big's invariant, so
// denominator inspection (the good-reduction side condition in package
// modred) is a plain Denom() read. Matrices are immutable by convention:
// construction deep-copies, and all arithmetic returns fresh matrices.
//
// Supported operations: construction with validation, identity, exact
// multiplication, Gauss–Jordan inversion, identity/equality tests and
// read access to entries.
//
// # Errors
//
//	ErrBadDimension - empty or non-square row set.
//	ErrDimensionMismatch - operand shapes differ.
//	ErrSingular - inversion of a rank-deficient matrix.
package qmat
