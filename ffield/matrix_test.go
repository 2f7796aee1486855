package ffield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/finmat/ffield"
)

// mat is a test helper building a matrix from int64 entries in the prime subfield.
func mat(t *testing.T, f *ffield.Field, entries [][]int64) *ffield.Matrix {
	t.Helper()
	rows := make([][]ffield.Elem, len(entries))
	for i, row := range entries {
		rows[i] = make([]ffield.Elem, len(row))
		for j, v := range row {
			rows[i][j] = f.FromInt64(v)
		}
	}
	m, err := ffield.NewMatrix(f, rows)
	require.NoError(t, err)
	return m
}

// TestMatrix_MulAndIdentity multiplies a rotation-like matrix by its known
// inverse over F_7 and expects the identity.
func TestMatrix_MulAndIdentity(t *testing.T) {
	f, err := ffield.NewPrime(7)
	require.NoError(t, err)

	a := mat(t, f, [][]int64{{0, -1}, {1, 0}})
	b := mat(t, f, [][]int64{{0, 1}, {-1, 0}})

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, prod.IsIdentity(), "a * a^-1 = I")
	assert.False(t, a.IsIdentity())
	assert.True(t, ffield.Identity(f, 3).IsIdentity())
}

// TestMatrix_Rank covers full-rank, singular and zero matrices over F_3.
func TestMatrix_Rank(t *testing.T) {
	f, err := ffield.NewPrime(3)
	require.NoError(t, err)

	assert.Equal(t, 2, mat(t, f, [][]int64{{1, 1}, {0, 1}}).Rank())
	// det = 1 - 4 = -3 ≡ 0 mod 3.
	assert.Equal(t, 1, mat(t, f, [][]int64{{1, 2}, {2, 1}}).Rank())
	assert.Equal(t, 0, mat(t, f, [][]int64{{0, 0}, {0, 0}}).Rank())
}

// TestMatrix_Inverse checks Gauss–Jordan inversion and the singular sentinel.
func TestMatrix_Inverse(t *testing.T) {
	f, err := ffield.NewPrime(5)
	require.NoError(t, err)

	a := mat(t, f, [][]int64{{1, 1}, {0, 1}})
	inv, err := a.Inverse()
	require.NoError(t, err)
	prod, err := a.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.IsIdentity(), "a * a^-1 = I")

	_, err = mat(t, f, [][]int64{{1, 2}, {2, 4}}).Inverse()
	assert.ErrorIs(t, err, ffield.ErrNoInverse, "rank-1 matrix is singular")
}

// TestMatrix_KeyStability requires equal matrices to share a Key and
// distinct matrices to differ, since group enumeration hashes on it.
func TestMatrix_KeyStability(t *testing.T) {
	f, err := ffield.NewPrime(3)
	require.NoError(t, err)

	a := mat(t, f, [][]int64{{1, 1}, {0, 1}})
	b := mat(t, f, [][]int64{{1, 1}, {0, 1}})
	c := mat(t, f, [][]int64{{1, 0}, {0, 1}})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestMatrix_FieldMismatch rejects mixing matrices over different fields.
func TestMatrix_FieldMismatch(t *testing.T) {
	f3, err := ffield.NewPrime(3)
	require.NoError(t, err)
	f5, err := ffield.NewPrime(5)
	require.NoError(t, err)

	a := mat(t, f3, [][]int64{{1, 0}, {0, 1}})
	b := mat(t, f5, [][]int64{{1, 0}, {0, 1}})
	_, err = a.Mul(b)
	assert.ErrorIs(t, err, ffield.ErrFieldMismatch)
}
