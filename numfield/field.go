package numfield

import "math/big"

// New constructs K = Q[x]/(f) from the monic integer minimal polynomial f
// (little-endian, nil coefficients treated as zero). Monicity, positive
// degree and squarefreeness are validated; irreducibility over Q is a
// precondition the caller must guarantee; for a reducible squarefree f
// the arithmetic silently works in a product of fields and inversion of a
// zero divisor surfaces as ErrNoInverse.
func New(min []*big.Int) (*Field, error) {
	deg := len(min) - 1
	if deg < 1 {
		return nil, ErrNotMonic
	}
	cp := make([]*big.Int, len(min))
	for i, c := range min {
		if c == nil {
			cp[i] = new(big.Int)
		} else {
			cp[i] = new(big.Int).Set(c)
		}
	}
	if cp[deg].Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotMonic
	}
	k := &Field{deg: deg, min: cp}
	fq := k.minRat()
	if deg > 1 && !rpGCDIsConstant(fq, rpDeriv(fq)) {
		return nil, ErrNotSquarefree
	}
	k.disc = k.computeDiscriminant()
	return k, nil
}

// Rationals returns the degree-1 field Q presented as Q[x]/(x). Handy when
// a caller wants one code path for both field flavours.
func Rationals() *Field {
	k, _ := New([]*big.Int{big.NewInt(0), big.NewInt(1)})
	return k
}

// Degree returns [K : Q].
func (k *Field) Degree() int { return k.deg }

// MinPoly returns a copy of the minimal polynomial.
func (k *Field) MinPoly() []*big.Int {
	out := make([]*big.Int, len(k.min))
	for i, c := range k.min {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Discriminant returns a copy of disc(Z[α]).
func (k *Field) Discriminant() *big.Int { return new(big.Int).Set(k.disc) }

// Same reports whether two Field handles describe the same field.
func (k *Field) Same(o *Field) bool {
	if k == o {
		return true
	}
	if o == nil || k.deg != o.deg {
		return false
	}
	for i := range k.min {
		if k.min[i].Cmp(o.min[i]) != 0 {
			return false
		}
	}
	return true
}

func (k *Field) minRat() []*big.Rat {
	out := make([]*big.Rat, len(k.min))
	for i, c := range k.min {
		out[i] = new(big.Rat).SetInt(c)
	}
	return out
}

// computeDiscriminant evaluates (-1)^(d(d-1)/2) * Res(f, f') exactly.
// For monic integer f the resultant is an integer.
func (k *Field) computeDiscriminant() *big.Int {
	fq := k.minRat()
	res := resultant(fq, rpDeriv(fq))
	if k.deg*(k.deg-1)/2%2 == 1 {
		res.Neg(res)
	}
	return new(big.Int).Set(res.Num())
}

// ---------- element construction ----------

// pad copies a trimmed rational polynomial of degree < deg into a
// fixed-length element.
func (k *Field) pad(p []*big.Rat) Elem {
	e := make(Elem, k.deg)
	for i := range e {
		if i < len(p) {
			e[i] = new(big.Rat).Set(p[i])
		} else {
			e[i] = new(big.Rat)
		}
	}
	return e
}

// Zero returns the additive identity.
func (k *Field) Zero() Elem { return k.pad(nil) }

// One returns the multiplicative identity.
func (k *Field) One() Elem { return k.FromRat(big.NewRat(1, 1)) }

// FromRat embeds a rational into K.
func (k *Field) FromRat(r *big.Rat) Elem {
	e := k.Zero()
	e[0].Set(r)
	return e
}

// FromRats builds an element from power-basis coordinates. Slices longer
// than the degree are reduced modulo the minimal polynomial, so α^deg and
// beyond are legal inputs. Nil coordinates are treated as zero.
func (k *Field) FromRats(coords []*big.Rat) Elem {
	p := make([]*big.Rat, len(coords))
	for i, c := range coords {
		if c == nil {
			p[i] = new(big.Rat)
		} else {
			p[i] = new(big.Rat).Set(c)
		}
	}
	return k.pad(rpMod(rpTrim(p), k.minRat()))
}

// Gen returns the generator α (the class of x). For degree 1 this is the
// rational root of the minimal polynomial.
func (k *Field) Gen() Elem {
	return k.FromRats([]*big.Rat{new(big.Rat), big.NewRat(1, 1)})
}

// ---------- element arithmetic ----------

// Add returns a + b.
func (k *Field) Add(a, b Elem) Elem {
	e := k.Zero()
	for i := range e {
		e[i].Add(a[i], b[i])
	}
	return e
}

// Sub returns a - b.
func (k *Field) Sub(a, b Elem) Elem {
	e := k.Zero()
	for i := range e {
		e[i].Sub(a[i], b[i])
	}
	return e
}

// Neg returns -a.
func (k *Field) Neg(a Elem) Elem {
	e := k.Zero()
	for i := range e {
		e[i].Neg(a[i])
	}
	return e
}

// Mul returns a * b, reduced modulo the minimal polynomial.
func (k *Field) Mul(a, b Elem) Elem {
	prod := rpMul(rpTrim(rpClone([]*big.Rat(a))), rpTrim(rpClone([]*big.Rat(b))))
	return k.pad(rpMod(prod, k.minRat()))
}

// Inv returns a^-1 via the extended Euclidean algorithm in Q[x] against
// the minimal polynomial, or ErrNoInverse for zero (and, when the
// precondition on irreducibility was violated, for zero divisors).
func (k *Field) Inv(a Elem) (Elem, error) {
	ap := rpTrim(rpClone([]*big.Rat(a)))
	if len(ap) == 0 {
		return nil, ErrNoInverse
	}
	r0, r1 := k.minRat(), ap
	var u0, u1 []*big.Rat
	u1 = []*big.Rat{big.NewRat(1, 1)}
	for len(r1) > 0 {
		q, r := rpDivMod(r0, r1)
		r0, r1 = r1, r
		u0, u1 = u1, rpSub(u0, rpMul(q, u1))
	}
	if rpDeg(r0) != 0 {
		return nil, ErrNoInverse
	}
	return k.pad(rpScale(u0, new(big.Rat).Inv(r0[0]))), nil
}

// Equal reports a == b.
func (k *Field) Equal(a, b Elem) bool {
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports a == 0.
func (k *Field) IsZero(a Elem) bool {
	for _, c := range a {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// IsOne reports a == 1.
func (k *Field) IsOne(a Elem) bool {
	if a[0].Cmp(big.NewRat(1, 1)) != 0 {
		return false
	}
	for _, c := range a[1:] {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// Denominator returns the least positive integer b with b·e in the
// equation order Z[α]: the lcm of the coordinate denominators.
func (k *Field) Denominator(e Elem) *big.Int {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, c := range e {
		d := c.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Div(lcm, g)
		lcm.Mul(lcm, d)
	}
	return lcm
}
