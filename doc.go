// Package finmat decides whether a finite set of invertible matrices over
// the rationals or over an algebraic number field generates a finite group,
// and, when it does, hands back a certified isomorphic copy of that group
// acting over a finite field.
//
// 🚀 What is finmat?
//
//	An exact-arithmetic recognition library that brings together:
//		• Finite fields F_q with power-basis elements and Fq linear algebra
//		• Exact rational and number-field matrices (math/big throughout)
//		• Good-reduction prime search with number-theoretic side conditions
//		• Closure enumeration, group order and Schreier presentations
//		• A relator re-evaluation certificate against the original matrices
//
// ✨ Why choose finmat?
//
//   - Exact – no floating point anywhere, every verdict is a proof
//   - Deterministic – same input, same prime, same presentation, same answer
//   - Minimal API – one call per field flavour, sentinel errors, no globals
//   - Extensible – the group engine is a narrow port; swap in your own
//
// Under the hood, everything is organized into small subpackages:
//
//	ffield/   : finite fields F_p and F_q = F_p[t]/(g), polynomials, rank
//	qmat/     : exact n×n matrices over Q
//	numfield/ : number fields Q[x]/(f) with arithmetic, discriminant, splitting
//	fpgroup/  : finite matrix groups over F_q, order, Schreier relators
//	modred/   : good-reduction validation and ascending prime selection
//	recog/    : the order bound and the recognition orchestrator
//	cmd/      : the finmat CLI (YAML in, certified verdict out)
//
// Quick sketch of the pipeline:
//
//	matrices over K ──► prime search ──► images over F_q ──► order N
//	        ▲                                                  │
//	        └────── relators re-evaluated over K ◄── N ≤ bound ┘
//
// A success means the reduced group is an isomorphic copy of the input
// group; any failure along the certified path proves the input infinite.
//
//	go get github.com/veldtlabs/finmat
package finmat
