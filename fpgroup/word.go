package fpgroup

import "github.com/veldtlabs/finmat/ffield"

// invert returns the group-theoretic inverse of a word: reversed order,
// negated exponents.
func invert(w Word) Word {
	out := make(Word, len(w))
	for i, s := range w {
		out[len(w)-1-i] = Syllable{Gen: s.Gen, Exp: -s.Exp}
	}
	return out
}

// normalize merges adjacent syllables on the same generator and drops
// zero exponents. Purely cosmetic: evaluation is unchanged.
func normalize(w Word) Word {
	var out Word
	for _, s := range w {
		if s.Exp == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Gen == s.Gen {
			out[n-1].Exp += s.Exp
			if out[n-1].Exp == 0 {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// Eval substitutes reps for the free generators of w, position by position,
// and returns the resulting matrix product. Negative exponents use inverses
// computed on demand (each at most once per call). The empty word yields
// the identity.
func Eval(w Word, reps []*ffield.Matrix) (*ffield.Matrix, error) {
	if len(reps) == 0 {
		return nil, ErrNoGenerators
	}
	f, dim := reps[0].Field(), reps[0].Dim()
	invs := make([]*ffield.Matrix, len(reps))
	acc := ffield.Identity(f, dim)
	for _, s := range w {
		if s.Gen < 0 || s.Gen >= len(reps) {
			return nil, ErrBadWord
		}
		factor := reps[s.Gen]
		count := s.Exp
		if count < 0 {
			if invs[s.Gen] == nil {
				inv, err := factor.Inverse()
				if err != nil {
					return nil, err
				}
				invs[s.Gen] = inv
			}
			factor = invs[s.Gen]
			count = -count
		}
		for i := 0; i < count; i++ {
			next, err := acc.Mul(factor)
			if err != nil {
				return nil, err
			}
			acc = next
		}
	}
	return acc, nil
}
