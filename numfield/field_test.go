package numfield_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/finmat/numfield"
)

// gaussian builds Q(i) = Q[x]/(x^2+1).
func gaussian(t *testing.T) *numfield.Field {
	t.Helper()
	k, err := numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	return k
}

// TestNew_Validation rejects non-monic and repeated-factor minimal polynomials.
func TestNew_Validation(t *testing.T) {
	_, err := numfield.New([]*big.Int{big.NewInt(3)})
	assert.ErrorIs(t, err, numfield.ErrNotMonic, "constants have no root")

	_, err = numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(2)})
	assert.ErrorIs(t, err, numfield.ErrNotMonic, "leading coefficient 2")

	// (x-1)^2 = x^2 - 2x + 1.
	_, err = numfield.New([]*big.Int{big.NewInt(1), big.NewInt(-2), big.NewInt(1)})
	assert.ErrorIs(t, err, numfield.ErrNotSquarefree)
}

// TestGaussian_Arithmetic checks α^2 = -1, inversion and the field axioms
// spot-wise in Q(i).
func TestGaussian_Arithmetic(t *testing.T) {
	k := gaussian(t)
	assert.Equal(t, 2, k.Degree())

	i := k.Gen()
	minusOne := k.FromRat(big.NewRat(-1, 1))
	assert.True(t, k.Equal(k.Mul(i, i), minusOne), "α^2 = -1")

	// (1+i)(1-i) = 2.
	onePlusI := k.Add(k.One(), i)
	oneMinusI := k.Sub(k.One(), i)
	assert.True(t, k.Equal(k.Mul(onePlusI, oneMinusI), k.FromRat(big.NewRat(2, 1))))

	inv, err := k.Inv(onePlusI)
	require.NoError(t, err)
	assert.True(t, k.IsOne(k.Mul(onePlusI, inv)), "(1+i)·(1+i)^-1 = 1")

	_, err = k.Inv(k.Zero())
	assert.ErrorIs(t, err, numfield.ErrNoInverse)
}

// TestDiscriminant pins disc(Z[α]) for three classical fields:
// x^2+1 → -4, x^2-5 → 20, x^2-x-1 → 5.
func TestDiscriminant(t *testing.T) {
	assert.Equal(t, int64(-4), gaussian(t).Discriminant().Int64())

	k5, err := numfield.New([]*big.Int{big.NewInt(-5), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(20), k5.Discriminant().Int64())

	kphi, err := numfield.New([]*big.Int{big.NewInt(-1), big.NewInt(-1), big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), kphi.Discriminant().Int64())
}

// TestDenominator returns the least b with b·e in Z[α].
func TestDenominator(t *testing.T) {
	k := gaussian(t)
	e := k.FromRats([]*big.Rat{big.NewRat(1, 6), big.NewRat(3, 4)})
	assert.Equal(t, int64(12), k.Denominator(e).Int64(), "lcm(6, 4) = 12")
	assert.Equal(t, int64(1), k.Denominator(k.Zero()).Int64())
}

// TestSplitPrime_Inert keeps x^2+1 irreducible mod 3, so the residue field
// is F_9 and α maps to a square root of -1.
func TestSplitPrime_Inert(t *testing.T) {
	k := gaussian(t)
	fq, reduce, err := k.SplitPrime(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), fq.Characteristic())
	assert.Equal(t, 2, fq.Degree(), "3 is inert in Q(i)")
	assert.Equal(t, int64(9), fq.Order().Int64())

	img, err := reduce(k.Gen())
	require.NoError(t, err)
	sq := fq.Mul(img, img)
	assert.True(t, fq.Equal(sq, fq.FromInt64(-1)), "image of α squares to -1")
}

// TestSplitPrime_Split sends α to a rational square root of -1 mod 5,
// giving residue degree 1.
func TestSplitPrime_Split(t *testing.T) {
	k := gaussian(t)
	fq, reduce, err := k.SplitPrime(5)
	require.NoError(t, err)
	assert.Equal(t, 1, fq.Degree(), "5 splits in Q(i)")
	assert.Equal(t, int64(5), fq.Order().Int64())

	img, err := reduce(k.Gen())
	require.NoError(t, err)
	assert.True(t, fq.Equal(fq.Mul(img, img), fq.FromInt64(-1)), "root of -1 mod 5")
}

// TestSplitPrime_SideConditions rejects p = 2 and ramified primes, and the
// residue map rejects denominators divisible by p.
func TestSplitPrime_SideConditions(t *testing.T) {
	k := gaussian(t)
	_, _, err := k.SplitPrime(2)
	assert.ErrorIs(t, err, numfield.ErrEvenPrime)

	k5, err := numfield.New([]*big.Int{big.NewInt(-5), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	_, _, err = k5.SplitPrime(5)
	assert.ErrorIs(t, err, numfield.ErrRamified, "5 | disc = 20")

	_, reduce, err := k.SplitPrime(3)
	require.NoError(t, err)
	_, err = reduce(k.FromRats([]*big.Rat{big.NewRat(1, 3)}))
	assert.ErrorIs(t, err, numfield.ErrDenominator)
}

// TestSplitPrime_ReductionIsHomomorphism checks multiplicativity of the
// residue map on a handful of elements with admissible denominators.
func TestSplitPrime_ReductionIsHomomorphism(t *testing.T) {
	k := gaussian(t)
	fq, reduce, err := k.SplitPrime(7)
	require.NoError(t, err)

	a := k.FromRats([]*big.Rat{big.NewRat(3, 4), big.NewRat(-2, 5)})
	b := k.FromRats([]*big.Rat{big.NewRat(1, 2), big.NewRat(5, 3)})

	ra, err := reduce(a)
	require.NoError(t, err)
	rb, err := reduce(b)
	require.NoError(t, err)
	rab, err := reduce(k.Mul(a, b))
	require.NoError(t, err)
	assert.True(t, fq.Equal(fq.Mul(ra, rb), rab), "reduce(ab) = reduce(a)·reduce(b)")
}

// TestMatrix_InverseOverK inverts a 2×2 matrix over Q(i) and re-multiplies
// to the identity.
func TestMatrix_InverseOverK(t *testing.T) {
	k := gaussian(t)
	i := k.Gen()
	rows := [][]numfield.Elem{
		{i, k.Zero()},
		{k.One(), k.Neg(i)},
	}
	m, err := numfield.NewMatrix(k, rows)
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)
	prod, err := m.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.IsIdentity())

	sing, err := numfield.NewMatrix(k, [][]numfield.Elem{
		{i, i},
		{i, i},
	})
	require.NoError(t, err)
	_, err = sing.Inverse()
	assert.ErrorIs(t, err, numfield.ErrNoInverse)
}
