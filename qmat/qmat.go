package qmat

import (
	"errors"
	"math/big"
	"strings"
)

var (
	// ErrBadDimension is returned when a row set is empty or not square.
	ErrBadDimension = errors.New("qmat: matrix must be square with positive dimension")

	// ErrDimensionMismatch is returned when operand shapes differ.
	ErrDimensionMismatch = errors.New("qmat: matrix dimensions differ")

	// ErrSingular is returned when inverting a rank-deficient matrix.
	ErrSingular = errors.New("qmat: matrix is singular")
)

// Matrix is a dense n×n matrix over Q. Arithmetic never mutates operands.
type Matrix struct {
	n    int
	rows [][]*big.Rat
}

// New builds a matrix from a square slice of rows, deep-copying every entry.
// Nil entries are treated as zero.
func New(rows [][]*big.Rat) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadDimension
	}
	out := make([][]*big.Rat, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrBadDimension
		}
		out[i] = make([]*big.Rat, n)
		for j, e := range row {
			if e == nil {
				out[i][j] = new(big.Rat)
			} else {
				out[i][j] = new(big.Rat).Set(e)
			}
		}
	}
	return &Matrix{n: n, rows: out}, nil
}

// FromInt64 builds a matrix from int64 entries; handy in tests and examples.
func FromInt64(entries [][]int64) (*Matrix, error) {
	rows := make([][]*big.Rat, len(entries))
	for i, row := range entries {
		rows[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rows[i][j] = new(big.Rat).SetInt64(v)
		}
	}
	return New(rows)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	rows := make([][]*big.Rat, n)
	for i := range rows {
		rows[i] = make([]*big.Rat, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = big.NewRat(1, 1)
			} else {
				rows[i][j] = new(big.Rat)
			}
		}
	}
	return &Matrix{n: n, rows: rows}
}

// Dim returns n.
func (m *Matrix) Dim() int { return m.n }

// At returns the entry at (i, j). The returned value is shared with the
// matrix; treat it as read-only.
func (m *Matrix) At(i, j int) *big.Rat { return m.rows[i][j] }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c, _ := New(m.rows)
	return c
}

// Mul returns the exact product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	n := m.n
	rows := make([][]*big.Rat, n)
	tmp := new(big.Rat)
	for i := range rows {
		rows[i] = make([]*big.Rat, n)
		for j := range rows[i] {
			acc := new(big.Rat)
			for k := 0; k < n; k++ {
				acc.Add(acc, tmp.Mul(m.rows[i][k], o.rows[k][j]))
			}
			rows[i][j] = acc
		}
	}
	return &Matrix{n: n, rows: rows}, nil
}

// Inverse computes m^-1 by exact Gauss–Jordan elimination, or ErrSingular.
func (m *Matrix) Inverse() (*Matrix, error) {
	n := m.n
	a := m.Clone().rows
	b := Identity(n).rows
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if a[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		inv := new(big.Rat).Inv(a[col][col])
		for c := 0; c < n; c++ {
			a[col][c].Mul(a[col][c], inv)
			b[col][c].Mul(b[col][c], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || a[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(a[r][col])
			for c := 0; c < n; c++ {
				a[r][c].Sub(a[r][c], tmp.Mul(factor, a[col][c]))
				b[r][c].Sub(b[r][c], tmp.Mul(factor, b[col][c]))
			}
		}
	}
	return &Matrix{n: n, rows: b}, nil
}

// IsIdentity reports whether m is the identity matrix.
func (m *Matrix) IsIdentity() bool {
	one := big.NewRat(1, 1)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				if m.rows[i][j].Cmp(one) != 0 {
					return false
				}
			} else if m.rows[i][j].Sign() != 0 {
				return false
			}
		}
	}
	return true
}

// Equal reports exact entrywise equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if m.rows[i][j].Cmp(o.rows[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row by row with exact rational entries.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteByte('[')
		for j := range m.rows[i] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.rows[i][j].RatString())
		}
		sb.WriteByte(']')
		if i+1 < m.n {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
