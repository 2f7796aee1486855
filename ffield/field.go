package ffield

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// NewPrime constructs the prime field F_p. p must be prime and must not
// exceed MaxCharacteristic. Internally F_p is the degree-1 quotient
// F_p[t]/(t), so prime and extension fields share all arithmetic.
func NewPrime(p uint64) (*Field, error) {
	return NewExtension(p, []uint64{0, 1})
}

// NewExtension constructs F_q = F_p[t]/(g(t)) for a monic irreducible g of
// positive degree (little-endian coefficients). Degree 1 is allowed and
// yields a copy of F_p presented as a quotient ring.
func NewExtension(p uint64, g []uint64) (*Field, error) {
	if p > MaxCharacteristic {
		return nil, ErrModulusTooLarge
	}
	if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return nil, ErrNonPrimeModulus
	}
	gn := polyNorm(p, g)
	deg := polyDeg(gn)
	if deg < 1 || gn[deg] != 1 {
		return nil, ErrNotMonic
	}
	if !IsIrreducible(p, gn) {
		return nil, ErrReducible
	}
	return &Field{p: p, deg: deg, g: gn}, nil
}

// Characteristic returns p.
func (f *Field) Characteristic() uint64 { return f.p }

// Degree returns the residue degree [F_q : F_p].
func (f *Field) Degree() int { return f.deg }

// Order returns q = p^deg as a fresh big integer.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(new(big.Int).SetUint64(f.p), big.NewInt(int64(f.deg)), nil)
}

// Modulus returns a copy of the defining polynomial g.
func (f *Field) Modulus() []uint64 {
	out := make([]uint64, len(f.g))
	copy(out, f.g)
	return out
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem { return make(Elem, f.deg) }

// One returns the multiplicative identity.
func (f *Field) One() Elem {
	e := f.Zero()
	e[0] = 1 % f.p
	return e
}

// FromInt64 embeds a signed integer into the prime subfield.
func (f *Field) FromInt64(v int64) Elem {
	e := f.Zero()
	r := v % int64(f.p)
	if r < 0 {
		r += int64(f.p)
	}
	e[0] = uint64(r)
	return e
}

// FromBigInt embeds an arbitrary-precision integer into the prime subfield.
func (f *Field) FromBigInt(v *big.Int) Elem {
	e := f.Zero()
	m := new(big.Int).Mod(v, new(big.Int).SetUint64(f.p))
	e[0] = m.Uint64()
	return e
}

// FromRat reduces an exact rational into the prime subfield. It fails with
// ErrDenominator when p divides the denominator (lowest terms), which is
// exactly the side condition the modulus validators screen for.
func (f *Field) FromRat(r *big.Rat) (Elem, error) {
	p := new(big.Int).SetUint64(f.p)
	den := new(big.Int).Mod(r.Denom(), p)
	if den.Sign() == 0 {
		return nil, ErrDenominator
	}
	num := new(big.Int).Mod(r.Num(), p)
	e := f.Zero()
	e[0] = mulMod(num.Uint64(), invMod(den.Uint64(), f.p), f.p)
	return e, nil
}

// Project reduces an F_p[t] coefficient vector (arbitrary uint64 limbs)
// modulo the defining polynomial, yielding the element it represents.
// This is the workhorse of the residue maps built by package numfield.
func (f *Field) Project(coeffs []uint64) Elem {
	r := polyMod(f.p, polyNorm(f.p, coeffs), f.g)
	e := f.Zero()
	copy(e, r)
	return e
}

// Add returns a + b.
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := range out {
		out[i] = addMod(a[i], b[i], f.p)
	}
	return out
}

// Sub returns a - b.
func (f *Field) Sub(a, b Elem) Elem {
	out := f.Zero()
	for i := range out {
		out[i] = subMod(a[i], b[i], f.p)
	}
	return out
}

// Neg returns -a.
func (f *Field) Neg(a Elem) Elem {
	out := f.Zero()
	for i := range out {
		out[i] = subMod(0, a[i], f.p)
	}
	return out
}

// Mul returns a * b, reducing modulo the defining polynomial.
func (f *Field) Mul(a, b Elem) Elem {
	return f.Project(polyMul(f.p, polyTrim([]uint64(a)), polyTrim([]uint64(b))))
}

// Inv returns a^-1, or ErrNoInverse for the zero element. Inversion runs
// the extended Euclidean algorithm in F_p[t] against the field modulus.
func (f *Field) Inv(a Elem) (Elem, error) {
	ap := polyTrim([]uint64(a))
	if len(ap) == 0 {
		return nil, ErrNoInverse
	}
	// Maintain u*ap + v*g = r; the final constant r gives the inverse u/r.
	r0, r1 := polyClone(f.g), polyClone(ap)
	u0, u1 := []uint64(nil), []uint64{1}
	for len(r1) > 0 {
		q, r := polyDivMod(f.p, r0, r1)
		r0, r1 = r1, r
		u0, u1 = u1, polySub(f.p, u0, polyMul(f.p, q, u1))
	}
	// r0 is a nonzero constant: g is irreducible and ap is nonzero mod g.
	c := invMod(r0[0], f.p)
	return f.Project(polyScale(f.p, u0, c)), nil
}

// IsZero reports a == 0.
func (f *Field) IsZero(a Elem) bool {
	for _, c := range a {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsOne reports a == 1.
func (f *Field) IsOne(a Elem) bool {
	if a[0] != 1%f.p {
		return false
	}
	for _, c := range a[1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports a == b.
func (f *Field) Equal(a, b Elem) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Same reports whether two Field handles describe the same field
// (same characteristic and defining polynomial).
func (f *Field) Same(o *Field) bool {
	if f == o {
		return true
	}
	if o == nil || f.p != o.p || f.deg != o.deg {
		return false
	}
	for i := range f.g {
		if f.g[i] != o.g[i] {
			return false
		}
	}
	return true
}

// Format renders an element as a polynomial in t, e.g. "2+t" in F_9.
func (f *Field) Format(a Elem) string {
	var parts []string
	for i, c := range a {
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			parts = append(parts, strconv.FormatUint(c, 10))
		case i == 1 && c == 1:
			parts = append(parts, "t")
		case i == 1:
			parts = append(parts, fmt.Sprintf("%d*t", c))
		case c == 1:
			parts = append(parts, fmt.Sprintf("t^%d", i))
		default:
			parts = append(parts, fmt.Sprintf("%d*t^%d", c, i))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "+")
}
