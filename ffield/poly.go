package ffield

import (
	"math/big"
	"math/rand/v2"
)

// Polynomials over F_p are little-endian coefficient slices with limbs in
// [0, p) and no leading zero (the zero polynomial is the empty slice).
// The helpers below are shared by field construction, irreducibility
// testing and the prime-splitting entry points used by package numfield.

// ---------- scalar arithmetic mod p (p < 2^31, so products fit uint64) ----------

func addMod(a, b, p uint64) uint64 {
	s := a + b
	if s >= p {
		s -= p
	}
	return s
}

func subMod(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + p - b
}

func mulMod(a, b, p uint64) uint64 {
	return a * b % p
}

// invMod computes a^-1 mod p for a != 0 via Fermat (p prime).
func invMod(a, p uint64) uint64 {
	return expMod(a, p-2, p)
}

func expMod(a, e, p uint64) uint64 {
	r := uint64(1 % p)
	a %= p
	for e > 0 {
		if e&1 == 1 {
			r = mulMod(r, a, p)
		}
		a = mulMod(a, a, p)
		e >>= 1
	}
	return r
}

// ---------- polynomial arithmetic ----------

// polyTrim strips leading zero coefficients.
func polyTrim(a []uint64) []uint64 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// polyDeg returns the degree, with -1 for the zero polynomial.
func polyDeg(a []uint64) int { return len(a) - 1 }

// polyNorm reduces every coefficient mod p and trims.
func polyNorm(p uint64, a []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i, c := range a {
		out[i] = c % p
	}
	return polyTrim(out)
}

func polyClone(a []uint64) []uint64 {
	out := make([]uint64, len(a))
	copy(out, a)
	return out
}

func polyAdd(p uint64, a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := range out {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = addMod(x, y, p)
	}
	return polyTrim(out)
}

func polySub(p uint64, a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := range out {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = subMod(x, y, p)
	}
	return polyTrim(out)
}

func polyMul(p uint64, a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[i+j] = addMod(out[i+j], mulMod(x, y, p), p)
		}
	}
	return polyTrim(out)
}

func polyScale(p uint64, a []uint64, c uint64) []uint64 {
	if c == 0 {
		return nil
	}
	out := make([]uint64, len(a))
	for i, x := range a {
		out[i] = mulMod(x, c, p)
	}
	return polyTrim(out)
}

// polyMonic divides a nonzero polynomial by its leading coefficient.
func polyMonic(p uint64, a []uint64) []uint64 {
	lc := a[len(a)-1]
	if lc == 1 {
		return polyClone(a)
	}
	return polyScale(p, a, invMod(lc, p))
}

// polyDivMod computes a = q*b + r with deg r < deg b. b must be nonzero.
func polyDivMod(p uint64, a, b []uint64) (q, r []uint64) {
	r = polyClone(a)
	db := polyDeg(b)
	if polyDeg(r) < db {
		return nil, polyTrim(r)
	}
	q = make([]uint64, polyDeg(r)-db+1)
	inv := invMod(b[db], p)
	for polyDeg(r) >= db {
		dr := polyDeg(r)
		c := mulMod(r[dr], inv, p)
		q[dr-db] = c
		for i := 0; i <= db; i++ {
			r[dr-db+i] = subMod(r[dr-db+i], mulMod(c, b[i], p), p)
		}
		r = polyTrim(r)
	}
	return polyTrim(q), r
}

// polyMod returns a mod b.
func polyMod(p uint64, a, b []uint64) []uint64 {
	_, r := polyDivMod(p, a, b)
	return r
}

// polyGCD returns the monic gcd of a and b (nil iff both are zero).
func polyGCD(p uint64, a, b []uint64) []uint64 {
	a, b = polyTrim(polyClone(a)), polyTrim(polyClone(b))
	for len(b) > 0 {
		a, b = b, polyMod(p, a, b)
	}
	if len(a) == 0 {
		return nil
	}
	return polyMonic(p, a)
}

// polyMulMod returns a*b mod m.
func polyMulMod(p uint64, a, b, m []uint64) []uint64 {
	return polyMod(p, polyMul(p, a, b), m)
}

// polyPowMod raises base to an arbitrary-precision exponent modulo m
// by square-and-multiply. e must be non-negative.
func polyPowMod(p uint64, base []uint64, e *big.Int, m []uint64) []uint64 {
	result := []uint64{1 % p}
	b := polyMod(p, base, m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = polyMulMod(p, result, result, m)
		if e.Bit(i) == 1 {
			result = polyMulMod(p, result, b, m)
		}
	}
	return result
}

// polyDeriv returns the formal derivative.
func polyDeriv(p uint64, a []uint64) []uint64 {
	if len(a) <= 1 {
		return nil
	}
	out := make([]uint64, len(a)-1)
	for i := 1; i < len(a); i++ {
		out[i-1] = mulMod(a[i], uint64(i)%p, p)
	}
	return polyTrim(out)
}

// polyX is the monomial t.
func polyX() []uint64 { return []uint64{0, 1} }

// ---------- exported predicates and factor search ----------

// Squarefree reports whether f is squarefree over F_p, i.e. gcd(f, f') is
// a nonzero constant. The zero polynomial and constants are not squarefree
// in any useful sense and report false.
func Squarefree(p uint64, f []uint64) bool {
	f = polyNorm(p, f)
	if polyDeg(f) < 1 {
		return false
	}
	d := polyDeriv(p, f)
	if len(d) == 0 {
		// f is a p-th power (or constant) when f' vanishes identically.
		return false
	}
	return polyDeg(polyGCD(p, f, d)) == 0
}

// IsIrreducible reports whether f is irreducible over F_p using Rabin's
// criterion: t^(p^n) ≡ t (mod f) and gcd(t^(p^(n/q)) - t, f) = 1 for every
// prime divisor q of n = deg f.
func IsIrreducible(p uint64, f []uint64) bool {
	f = polyNorm(p, f)
	n := polyDeg(f)
	if n < 1 {
		return false
	}
	if n == 1 {
		return true
	}
	pBig := new(big.Int).SetUint64(p)
	// frob[k] = t^(p^k) mod f, built by iterating the Frobenius map.
	frob := make([][]uint64, n+1)
	frob[0] = polyMod(p, polyX(), f)
	for k := 1; k <= n; k++ {
		frob[k] = polyPowMod(p, frob[k-1], pBig, f)
	}
	if len(polySub(p, frob[n], polyMod(p, polyX(), f))) != 0 {
		return false
	}
	for _, q := range primeDivisors(n) {
		diff := polySub(p, frob[n/q], polyMod(p, polyX(), f))
		if polyDeg(polyGCD(p, diff, f)) != 0 {
			return false
		}
	}
	return true
}

// primeDivisors returns the distinct prime divisors of n >= 2 by trial division.
func primeDivisors(n int) []int {
	var out []int
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

// MinimalFactor returns a monic irreducible factor of least degree of a
// squarefree polynomial f over F_p, p odd. The equal-degree stage derives
// its splitting elements from a PCG seeded by (p, degree), so the returned
// factor is a deterministic function of the input: the same prime always
// selects the same factor. The choice among same-degree factors is
// implementation-defined, not canonical.
func MinimalFactor(p uint64, f []uint64) ([]uint64, error) {
	if p == 2 {
		return nil, ErrEvenCharacteristic
	}
	f = polyNorm(p, f)
	if !Squarefree(p, f) {
		return nil, ErrNotSquarefree
	}
	f = polyMonic(p, f)
	pBig := new(big.Int).SetUint64(p)
	// Distinct-degree stage: the first d with a nontrivial
	// gcd(t^(p^d) - t, f) isolates the product of all degree-d factors.
	xq := polyMod(p, polyX(), f)
	for d := 1; 2*d <= polyDeg(f); d++ {
		xq = polyPowMod(p, xq, pBig, f)
		h := polyGCD(p, polySub(p, xq, polyX()), f)
		if polyDeg(h) > 0 {
			return equalDegreeFactor(p, h, d), nil
		}
	}
	// No factor of degree <= deg(f)/2, so f itself is irreducible.
	return f, nil
}

// equalDegreeFactor extracts one irreducible factor from a monic squarefree
// product h of irreducible degree-d polynomials, via Cantor–Zassenhaus with
// a deterministic element sequence.
func equalDegreeFactor(p uint64, h []uint64, d int) []uint64 {
	for polyDeg(h) > d {
		h = splitOnce(p, h, d)
	}
	return polyMonic(p, h)
}

func splitOnce(p uint64, h []uint64, d int) []uint64 {
	// e = (p^d - 1) / 2; r^e mod h is ±1 on each irreducible component,
	// so gcd(r^e - 1, h) splits h for roughly half the choices of r.
	e := new(big.Int).Exp(new(big.Int).SetUint64(p), big.NewInt(int64(d)), nil)
	e.Rsh(e.Sub(e, big.NewInt(1)), 1)
	rng := rand.New(rand.NewPCG(p, uint64(d)))
	one := []uint64{1}
	for {
		r := randPoly(rng, p, polyDeg(h)-1)
		if polyDeg(r) < 1 {
			continue
		}
		if g := polyGCD(p, r, h); polyDeg(g) > 0 && polyDeg(g) < polyDeg(h) {
			return smallerPart(p, h, g)
		}
		w := polyPowMod(p, r, e, h)
		g := polyGCD(p, polySub(p, w, one), h)
		if polyDeg(g) > 0 && polyDeg(g) < polyDeg(h) {
			return smallerPart(p, h, g)
		}
	}
}

// smallerPart keeps the lower-degree side of a split to converge faster.
func smallerPart(p uint64, h, g []uint64) []uint64 {
	q, _ := polyDivMod(p, h, g)
	if polyDeg(q) < polyDeg(g) {
		return q
	}
	return g
}

func randPoly(rng *rand.Rand, p uint64, maxDeg int) []uint64 {
	out := make([]uint64, maxDeg+1)
	for i := range out {
		out[i] = rng.Uint64N(p)
	}
	return polyTrim(out)
}
