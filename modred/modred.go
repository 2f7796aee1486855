package modred

import (
	"errors"
	"math/big"

	"github.com/veldtlabs/finmat/ffield"
	"github.com/veldtlabs/finmat/numfield"
	"github.com/veldtlabs/finmat/qmat"
)

// DefaultMaxScan is the defensive cap on candidate primes per selection.
// Legitimate inputs succeed within a handful of candidates; exhausting the
// cap indicates a logic defect, not a property of the input.
const DefaultMaxScan = 10000

// ErrSearchExhausted is returned when the candidate cap is hit. It signals
// an internal inconsistency, since the set of bad primes is provably finite.
var ErrSearchExhausted = errors.New("modred: prime search exhausted")

// NextPrime returns the least prime strictly greater than p.
func NextPrime(p uint64) uint64 {
	for n := p + 1; ; n++ {
		// Exact for all uint64 inputs per math/big's documentation.
		if new(big.Int).SetUint64(n).ProbablyPrime(0) {
			return n
		}
	}
}

// ValidateRational checks the rational-case side conditions for one
// candidate prime and, on success, reduces the matrices entrywise into F_p.
// A false result means "try the next prime"; it carries no further detail.
func ValidateRational(mats []*qmat.Matrix, p uint64) (*ffield.Field, []*ffield.Matrix, bool) {
	if p == 2 {
		return nil, nil, false
	}
	pBig := new(big.Int).SetUint64(p)
	for _, m := range mats {
		n := m.Dim()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				e := m.At(i, j)
				if e.Sign() == 0 {
					continue
				}
				if new(big.Int).Mod(e.Denom(), pBig).Sign() == 0 {
					return nil, nil, false
				}
			}
		}
	}
	field, err := ffield.NewPrime(p)
	if err != nil {
		return nil, nil, false
	}
	reduced := make([]*ffield.Matrix, len(mats))
	for idx, m := range mats {
		n := m.Dim()
		rows := make([][]ffield.Elem, n)
		for i := 0; i < n; i++ {
			rows[i] = make([]ffield.Elem, n)
			for j := 0; j < n; j++ {
				// Denominators already screened, so reduction cannot fail.
				e, err := field.FromRat(m.At(i, j))
				if err != nil {
					return nil, nil, false
				}
				rows[i][j] = e
			}
		}
		rm, err := ffield.NewMatrix(field, rows)
		if err != nil {
			return nil, nil, false
		}
		if rm.Rank() != n {
			return nil, nil, false
		}
		reduced[idx] = rm
	}
	return field, reduced, true
}

// ValidateNumberField checks the number-field side conditions for one
// candidate prime: p odd, p coprime to disc(Z[α]) and to all entry
// denominators. On success it reduces the matrices through the residue map
// of the first prime ideal above p and re-checks full rank.
func ValidateNumberField(k *numfield.Field, mats []*numfield.Matrix, p uint64) (*ffield.Field, []*ffield.Matrix, bool) {
	if p == 2 {
		return nil, nil, false
	}
	pBig := new(big.Int).SetUint64(p)
	if new(big.Int).Mod(k.Discriminant(), pBig).Sign() == 0 {
		return nil, nil, false
	}
	for _, m := range mats {
		n := m.Dim()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				e := m.At(i, j)
				if k.IsZero(e) {
					continue
				}
				if new(big.Int).Mod(k.Denominator(e), pBig).Sign() == 0 {
					return nil, nil, false
				}
			}
		}
	}
	field, reduce, err := k.SplitPrime(p)
	if err != nil {
		return nil, nil, false
	}
	reduced := make([]*ffield.Matrix, len(mats))
	for idx, m := range mats {
		n := m.Dim()
		rows := make([][]ffield.Elem, n)
		for i := 0; i < n; i++ {
			rows[i] = make([]ffield.Elem, n)
			for j := 0; j < n; j++ {
				e, err := reduce(m.At(i, j))
				if err != nil {
					return nil, nil, false
				}
				rows[i][j] = e
			}
		}
		rm, err := ffield.NewMatrix(field, rows)
		if err != nil {
			return nil, nil, false
		}
		if rm.Rank() != n {
			return nil, nil, false
		}
		reduced[idx] = rm
	}
	return field, reduced, true
}

// SelectRational walks the primes strictly above startAbove until
// ValidateRational accepts one, returning the chosen prime, residue field
// and reduced matrices. maxScan <= 0 means DefaultMaxScan.
func SelectRational(mats []*qmat.Matrix, startAbove uint64, maxScan int) (uint64, *ffield.Field, []*ffield.Matrix, error) {
	if maxScan <= 0 {
		maxScan = DefaultMaxScan
	}
	p := startAbove
	for i := 0; i < maxScan; i++ {
		p = NextPrime(p)
		if field, reduced, ok := ValidateRational(mats, p); ok {
			return p, field, reduced, nil
		}
	}
	return 0, nil, nil, ErrSearchExhausted
}

// SelectNumberField is SelectRational for number-field matrices.
func SelectNumberField(k *numfield.Field, mats []*numfield.Matrix, startAbove uint64, maxScan int) (uint64, *ffield.Field, []*ffield.Matrix, error) {
	if maxScan <= 0 {
		maxScan = DefaultMaxScan
	}
	p := startAbove
	for i := 0; i < maxScan; i++ {
		p = NextPrime(p)
		if field, reduced, ok := ValidateNumberField(k, mats, p); ok {
			return p, field, reduced, nil
		}
	}
	return 0, nil, nil, ErrSearchExhausted
}
