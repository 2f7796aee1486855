package numfield

import (
	"math/big"

	"github.com/veldtlabs/finmat/ffield"
)

// SplitPrime factors an odd unramified rational prime p into prime ideals
// of the equation order and selects the first one: the minimal-degree
// irreducible factor g of f mod p chosen deterministically by
// ffield.MinimalFactor. It returns the residue field F_q, q = p^deg(g),
// together with the residue map Z[α] → F_q sending α to the class of t.
//
// Side conditions enforced here, mirroring the modulus validator:
//
//   - p = 2 → ErrEvenPrime (the good-reduction theorem is stated for odd p).
//   - p | disc(Z[α]) → ErrRamified (keeps p away from index divisors, so
//     f mod p is squarefree and its factors correspond to the primes above p).
//
// The returned map fails with ErrDenominator on any element whose
// denominator relative to Z[α] is divisible by p; callers screen
// denominators beforehand, so a map failure indicates a logic error.
func (k *Field) SplitPrime(p uint64) (*ffield.Field, ResidueMap, error) {
	if p == 2 {
		return nil, nil, ErrEvenPrime
	}
	pBig := new(big.Int).SetUint64(p)
	if new(big.Int).Mod(k.disc, pBig).Sign() == 0 {
		return nil, nil, ErrRamified
	}
	fbar := make([]uint64, len(k.min))
	for i, c := range k.min {
		fbar[i] = new(big.Int).Mod(c, pBig).Uint64()
	}
	g, err := ffield.MinimalFactor(p, fbar)
	if err != nil {
		return nil, nil, err
	}
	fq, err := ffield.NewExtension(p, g)
	if err != nil {
		return nil, nil, err
	}
	reduce := func(e Elem) (ffield.Elem, error) {
		den := k.Denominator(e)
		if new(big.Int).Mod(den, pBig).Sign() == 0 {
			return nil, ErrDenominator
		}
		// Numerator coordinates den·e_i are integers; reduce them mod p,
		// project modulo g, then divide by the unit image of den.
		coeffs := make([]uint64, k.deg)
		scaled := new(big.Int)
		for i, c := range e {
			scaled.Div(den, c.Denom())
			scaled.Mul(scaled, c.Num())
			coeffs[i] = new(big.Int).Mod(scaled, pBig).Uint64()
		}
		num := fq.Project(coeffs)
		dInv, err := fq.Inv(fq.FromBigInt(den))
		if err != nil {
			return nil, err
		}
		return fq.Mul(num, dInv), nil
	}
	return fq, reduce, nil
}
