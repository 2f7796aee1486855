package recog

import "math/big"

// maxOrders lists the maximal orders of finite subgroups of GL(n, Z) for
// n = 1..10 (Feit, building on Weisfeiler): index i-1 holds dimension i.
// Beyond dimension 10 the signed permutation matrices are extremal, giving
// the closed form n!·2^n.
var maxOrders = [10]uint64{
	2,
	12,
	48,
	1152,
	3840,
	103680,
	2903040,
	696729600,
	1393459200,
	8360755200,
}

// Bound returns the maximal order of a finite subgroup of GL(n, Z):
// table-driven for n <= 10, n!·2^n above. The result is a fresh big
// integer. Bound panics for n < 1; callers always pass deg(K)·dim >= 1,
// so a smaller argument is a programmer error.
func Bound(n int) *big.Int {
	if n < 1 {
		panic("recog: Bound requires n >= 1")
	}
	if n <= len(maxOrders) {
		return new(big.Int).SetUint64(maxOrders[n-1])
	}
	b := new(big.Int).MulRange(1, int64(n))
	return b.Lsh(b, uint(n))
}
