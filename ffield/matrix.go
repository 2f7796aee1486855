package ffield

import (
	"strconv"
	"strings"
)

// NewMatrix builds an n×n matrix over f from a square slice of rows.
// Rows are deep-copied; every entry must have the field's limb length.
func NewMatrix(f *Field, rows [][]Elem) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadDimension
	}
	out := make([][]Elem, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrBadDimension
		}
		out[i] = make([]Elem, n)
		for j, e := range row {
			if len(e) != f.deg {
				return nil, ErrFieldMismatch
			}
			c := f.Zero()
			copy(c, e)
			out[i][j] = c
		}
	}
	return &Matrix{f: f, n: n, rows: out}, nil
}

// Identity returns the n×n identity matrix over f.
func Identity(f *Field, n int) *Matrix {
	rows := make([][]Elem, n)
	for i := range rows {
		rows[i] = make([]Elem, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = f.One()
			} else {
				rows[i][j] = f.Zero()
			}
		}
	}
	return &Matrix{f: f, n: n, rows: rows}
}

// Dim returns n.
func (m *Matrix) Dim() int { return m.n }

// Field returns the matrix's field handle.
func (m *Matrix) Field() *Field { return m.f }

// At returns the entry at (i, j). The returned slice is shared with the
// matrix; treat it as read-only.
func (m *Matrix) At(i, j int) Elem { return m.rows[i][j] }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c, _ := NewMatrix(m.f, m.rows)
	return c
}

// Mul returns m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if !m.f.Same(o.f) {
		return nil, ErrFieldMismatch
	}
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	f, n := m.f, m.n
	rows := make([][]Elem, n)
	for i := range rows {
		rows[i] = make([]Elem, n)
		for j := range rows[i] {
			acc := f.Zero()
			for k := 0; k < n; k++ {
				acc = f.Add(acc, f.Mul(m.rows[i][k], o.rows[k][j]))
			}
			rows[i][j] = acc
		}
	}
	return &Matrix{f: f, n: n, rows: rows}, nil
}

// Rank computes the rank by Gaussian elimination on a scratch copy.
func (m *Matrix) Rank() int {
	f, n := m.f, m.n
	w := make([][]Elem, n)
	for i := range w {
		w[i] = make([]Elem, n)
		for j := range w[i] {
			e := f.Zero()
			copy(e, m.rows[i][j])
			w[i][j] = e
		}
	}
	rank := 0
	for col := 0; col < n && rank < n; col++ {
		pivot := -1
		for r := rank; r < n; r++ {
			if !f.IsZero(w[r][col]) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		w[rank], w[pivot] = w[pivot], w[rank]
		inv, _ := f.Inv(w[rank][col])
		for r := rank + 1; r < n; r++ {
			if f.IsZero(w[r][col]) {
				continue
			}
			factor := f.Mul(w[r][col], inv)
			for c := col; c < n; c++ {
				w[r][c] = f.Sub(w[r][c], f.Mul(factor, w[rank][c]))
			}
		}
		rank++
	}
	return rank
}

// Inverse computes m^-1 by Gauss–Jordan elimination, or ErrNoInverse when
// m is singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	f, n := m.f, m.n
	a := make([][]Elem, n)
	b := Identity(f, n).rows
	for i := range a {
		a[i] = make([]Elem, n)
		for j := range a[i] {
			e := f.Zero()
			copy(e, m.rows[i][j])
			a[i][j] = e
		}
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !f.IsZero(a[r][col]) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrNoInverse
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		inv, _ := f.Inv(a[col][col])
		for c := 0; c < n; c++ {
			a[col][c] = f.Mul(a[col][c], inv)
			b[col][c] = f.Mul(b[col][c], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || f.IsZero(a[r][col]) {
				continue
			}
			factor := a[r][col]
			for c := 0; c < n; c++ {
				a[r][c] = f.Sub(a[r][c], f.Mul(factor, a[col][c]))
				b[r][c] = f.Sub(b[r][c], f.Mul(factor, b[col][c]))
			}
		}
	}
	return &Matrix{f: f, n: n, rows: b}, nil
}

// IsIdentity reports whether m is the identity matrix.
func (m *Matrix) IsIdentity() bool {
	f := m.f
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				if !f.IsOne(m.rows[i][j]) {
					return false
				}
			} else if !f.IsZero(m.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// Equal reports entrywise equality over the same field.
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.f.Same(o.f) || m.n != o.n {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if !m.f.Equal(m.rows[i][j], o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// Key returns a stable string encoding of the entry limbs, suitable for
// hashing matrices as group elements.
func (m *Matrix) Key() string {
	var sb strings.Builder
	for i := range m.rows {
		for j := range m.rows[i] {
			for _, limb := range m.rows[i][j] {
				sb.WriteString(strconv.FormatUint(limb, 36))
				sb.WriteByte(',')
			}
			sb.WriteByte(';')
		}
	}
	return sb.String()
}

// String renders the matrix row by row with Format-ed entries.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteByte('[')
		for j := range m.rows[i] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.f.Format(m.rows[i][j]))
		}
		sb.WriteByte(']')
		if i+1 < m.n {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
