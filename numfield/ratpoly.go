package numfield

import "math/big"

// Rational polynomials are little-endian []*big.Rat slices with no leading
// zero (the zero polynomial is the empty slice). These helpers back element
// multiplication, inversion and the resultant behind Discriminant.

func rpTrim(a []*big.Rat) []*big.Rat {
	n := len(a)
	for n > 0 && a[n-1].Sign() == 0 {
		n--
	}
	return a[:n]
}

func rpDeg(a []*big.Rat) int { return len(a) - 1 }

func rpClone(a []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i, c := range a {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

func rpSub(a, b []*big.Rat) []*big.Rat {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}
	return rpTrim(out)
}

func rpMul(a, b []*big.Rat) []*big.Rat {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]*big.Rat, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			out[i+j].Add(out[i+j], tmp.Mul(x, y))
		}
	}
	return rpTrim(out)
}

func rpScale(a []*big.Rat, c *big.Rat) []*big.Rat {
	if c.Sign() == 0 {
		return nil
	}
	out := make([]*big.Rat, len(a))
	for i, x := range a {
		out[i] = new(big.Rat).Mul(x, c)
	}
	return rpTrim(out)
}

// rpDivMod computes a = q*b + r with deg r < deg b. b must be nonzero.
func rpDivMod(a, b []*big.Rat) (q, r []*big.Rat) {
	r = rpClone(a)
	db := rpDeg(b)
	if rpDeg(r) < db {
		return nil, rpTrim(r)
	}
	q = make([]*big.Rat, rpDeg(r)-db+1)
	for i := range q {
		q[i] = new(big.Rat)
	}
	inv := new(big.Rat).Inv(b[db])
	tmp := new(big.Rat)
	for rpDeg(r) >= db {
		dr := rpDeg(r)
		c := new(big.Rat).Mul(r[dr], inv)
		q[dr-db].Set(c)
		for i := 0; i <= db; i++ {
			r[dr-db+i].Sub(r[dr-db+i], tmp.Mul(c, b[i]))
		}
		r = rpTrim(r)
	}
	return rpTrim(q), r
}

func rpMod(a, b []*big.Rat) []*big.Rat {
	_, r := rpDivMod(a, b)
	return r
}

// rpDeriv returns the formal derivative.
func rpDeriv(a []*big.Rat) []*big.Rat {
	if len(a) <= 1 {
		return nil
	}
	out := make([]*big.Rat, len(a)-1)
	for i := 1; i < len(a); i++ {
		out[i-1] = new(big.Rat).Mul(a[i], new(big.Rat).SetInt64(int64(i)))
	}
	return rpTrim(out)
}

// rpGCDIsConstant reports whether gcd(a, b) is a nonzero constant.
func rpGCDIsConstant(a, b []*big.Rat) bool {
	a, b = rpTrim(rpClone(a)), rpTrim(rpClone(b))
	for len(b) > 0 {
		a, b = b, rpMod(a, b)
	}
	return rpDeg(a) == 0
}

// resultant computes Res(a, b) as the Sylvester determinant, exactly.
func resultant(a, b []*big.Rat) *big.Rat {
	m, n := rpDeg(a), rpDeg(b)
	size := m + n
	if size == 0 {
		return big.NewRat(1, 1)
	}
	// Sylvester matrix: n shifted copies of a, then m shifted copies of b,
	// coefficients written highest-degree first.
	s := make([][]*big.Rat, size)
	for i := range s {
		s[i] = make([]*big.Rat, size)
		for j := range s[i] {
			s[i][j] = new(big.Rat)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			s[i][i+j].Set(a[m-j])
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			s[n+i][i+j].Set(b[n-j])
		}
	}
	return det(s)
}

// det computes an exact determinant by Gaussian elimination with row swaps.
func det(s [][]*big.Rat) *big.Rat {
	n := len(s)
	sign := 1
	result := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if s[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return new(big.Rat)
		}
		if pivot != col {
			s[col], s[pivot] = s[pivot], s[col]
			sign = -sign
		}
		result.Mul(result, s[col][col])
		inv := new(big.Rat).Inv(s[col][col])
		for r := col + 1; r < n; r++ {
			if s[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Mul(s[r][col], inv)
			for c := col; c < n; c++ {
				s[r][c].Sub(s[r][c], tmp.Mul(factor, s[col][c]))
			}
		}
	}
	if sign < 0 {
		result.Neg(result)
	}
	return result
}
