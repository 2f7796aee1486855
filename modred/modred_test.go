package modred_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/finmat/modred"
	"github.com/veldtlabs/finmat/numfield"
	"github.com/veldtlabs/finmat/qmat"
)

// TestNextPrime walks the small primes and a prime gap.
func TestNextPrime(t *testing.T) {
	assert.Equal(t, uint64(2), modred.NextPrime(1))
	assert.Equal(t, uint64(3), modred.NextPrime(2))
	assert.Equal(t, uint64(5), modred.NextPrime(3))
	assert.Equal(t, uint64(127), modred.NextPrime(113), "gap after 113")
}

// TestValidateRational_RejectsTwo: p = 2 is refused unconditionally, even
// for matrices 2 would reduce perfectly well.
func TestValidateRational_RejectsTwo(t *testing.T) {
	id, err := qmat.FromInt64([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	_, _, ok := modred.ValidateRational([]*qmat.Matrix{id}, 2)
	assert.False(t, ok)
}

// TestValidateRational_DenominatorRejection rejects any p dividing the
// denominator of a nonzero entry, and accepts a coprime prime.
func TestValidateRational_DenominatorRejection(t *testing.T) {
	m, err := qmat.New([][]*big.Rat{
		{big.NewRat(1, 3), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(3, 1)},
	})
	require.NoError(t, err)

	_, _, ok := modred.ValidateRational([]*qmat.Matrix{m}, 3)
	assert.False(t, ok, "3 divides the denominator of 1/3")

	field, reduced, ok := modred.ValidateRational([]*qmat.Matrix{m}, 5)
	require.True(t, ok)
	assert.Equal(t, uint64(5), field.Characteristic())
	require.Len(t, reduced, 1)
	// 1/3 ≡ 2 mod 5.
	assert.True(t, field.Equal(reduced[0].At(0, 0), field.FromInt64(2)))
}

// TestValidateRational_RankLoss rejects a prime under which an
// invertible-over-Q integer matrix degenerates: [[1,2],[2,1]] has
// det = -3, so it drops rank mod 3 with no denominator involved.
func TestValidateRational_RankLoss(t *testing.T) {
	m, err := qmat.FromInt64([][]int64{{1, 2}, {2, 1}})
	require.NoError(t, err)

	_, _, ok := modred.ValidateRational([]*qmat.Matrix{m}, 3)
	assert.False(t, ok, "singular mod 3")

	_, _, ok = modred.ValidateRational([]*qmat.Matrix{m}, 5)
	assert.True(t, ok, "det = -3 is a unit mod 5")
}

// TestSelectRational_SkipsBadPrimes: with 3 killed by a denominator and 5
// killed by rank loss, the selector must land on 7.
func TestSelectRational_SkipsBadPrimes(t *testing.T) {
	// det = 1 - 6 = -5: singular mod 5; entry 1/3 kills 3.
	m, err := qmat.New([][]*big.Rat{
		{big.NewRat(1, 3), big.NewRat(2, 3)},
		{big.NewRat(3, 1), big.NewRat(1, 1)},
	})
	require.NoError(t, err)

	p, field, reduced, err := modred.SelectRational([]*qmat.Matrix{m}, 1, 0)
	require.NoError(t, err)
	assert.Greater(t, p, uint64(1), "selected prime exceeds the start bound")
	assert.Equal(t, uint64(7), p, "2 unconditional, 3 denominator, 5 rank loss")
	assert.Equal(t, uint64(7), field.Characteristic())
	assert.Len(t, reduced, 1)
}

// TestSelectRational_ExhaustsScanCap hits the defensive candidate cap:
// with maxScan = 1 the only candidate is 2, which is rejected outright.
func TestSelectRational_ExhaustsScanCap(t *testing.T) {
	id, err := qmat.FromInt64([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, _, _, err = modred.SelectRational([]*qmat.Matrix{id}, 1, 1)
	assert.ErrorIs(t, err, modred.ErrSearchExhausted)
}

// TestSelectRational_StartBound returns a prime strictly above the
// caller's lower bound.
func TestSelectRational_StartBound(t *testing.T) {
	id, err := qmat.FromInt64([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	p, _, _, err := modred.SelectRational([]*qmat.Matrix{id}, 11, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(13), p, "first admissible prime above 11")
}

// TestValidateNumberField_SideConditions covers the p = 2 rejection, the
// discriminant rejection and denominator screening over Q(√5).
func TestValidateNumberField_SideConditions(t *testing.T) {
	k, err := numfield.New([]*big.Int{big.NewInt(-5), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	sqrt5 := k.Gen()

	m, err := numfield.NewMatrix(k, [][]numfield.Elem{
		{sqrt5, k.Zero()},
		{k.Zero(), k.One()},
	})
	require.NoError(t, err)
	mats := []*numfield.Matrix{m}

	_, _, ok := modred.ValidateNumberField(k, mats, 2)
	assert.False(t, ok, "p = 2 is always rejected")

	_, _, ok = modred.ValidateNumberField(k, mats, 5)
	assert.False(t, ok, "5 divides disc = 20")

	field, reduced, ok := modred.ValidateNumberField(k, mats, 11)
	require.True(t, ok, "5 is a square mod 11")
	assert.Equal(t, 1, field.Degree(), "11 splits in Q(√5)")
	img := reduced[0].At(0, 0)
	assert.True(t, field.Equal(field.Mul(img, img), field.FromInt64(5)), "image of √5 squares to 5")
}

// TestValidateNumberField_DenominatorRejection rejects a prime dividing an
// entry denominator relative to Z[α].
func TestValidateNumberField_DenominatorRejection(t *testing.T) {
	k, err := numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	third := k.FromRat(big.NewRat(1, 3))

	m, err := numfield.NewMatrix(k, [][]numfield.Elem{
		{third, k.Zero()},
		{k.Zero(), k.One()},
	})
	require.NoError(t, err)

	_, _, ok := modred.ValidateNumberField(k, []*numfield.Matrix{m}, 3)
	assert.False(t, ok)

	_, _, ok = modred.ValidateNumberField(k, []*numfield.Matrix{m}, 5)
	assert.True(t, ok)
}

// TestValidateNumberField_RankLoss rejects a prime under which a matrix
// invertible over K degenerates: [[1,2],[2,1]] has det = -3, so it drops
// rank in the residue field above 3 even though no side condition on
// denominators or the discriminant fires.
func TestValidateNumberField_RankLoss(t *testing.T) {
	k, err := numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)

	m, err := numfield.NewMatrix(k, [][]numfield.Elem{
		{k.One(), k.FromRat(big.NewRat(2, 1))},
		{k.FromRat(big.NewRat(2, 1)), k.One()},
	})
	require.NoError(t, err)
	mats := []*numfield.Matrix{m}

	_, _, ok := modred.ValidateNumberField(k, mats, 3)
	assert.False(t, ok, "singular in the residue field above 3")

	_, _, ok = modred.ValidateNumberField(k, mats, 7)
	assert.True(t, ok, "det = -3 is a unit above 7")
}

// TestSelectNumberField_ExhaustsScanCap mirrors the rational cap test on
// the number-field path.
func TestSelectNumberField_ExhaustsScanCap(t *testing.T) {
	k, err := numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	m, err := numfield.NewMatrix(k, [][]numfield.Elem{{k.One()}})
	require.NoError(t, err)

	_, _, _, err = modred.SelectNumberField(k, []*numfield.Matrix{m}, 1, 1)
	assert.ErrorIs(t, err, modred.ErrSearchExhausted)
}

// TestSelectNumberField_Terminates picks the first admissible prime for a
// clean generator set over Q(i): 2 is rejected outright (and divides
// disc = -4), so 3 wins.
func TestSelectNumberField_Terminates(t *testing.T) {
	k, err := numfield.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)})
	require.NoError(t, err)
	i := k.Gen()

	m, err := numfield.NewMatrix(k, [][]numfield.Elem{
		{i, k.Zero()},
		{k.Zero(), k.Neg(i)},
	})
	require.NoError(t, err)

	p, field, reduced, err := modred.SelectNumberField(k, []*numfield.Matrix{m}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), p)
	assert.Equal(t, int64(9), field.Order().Int64(), "3 is inert in Q(i)")
	assert.Len(t, reduced, 1)
}
