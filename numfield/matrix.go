package numfield

import "strings"

// NewMatrix builds an n×n matrix over k from a square slice of rows,
// deep-copying every entry. Entries must have the field's degree.
func NewMatrix(k *Field, rows [][]Elem) (*Matrix, error) {
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
			if len(e) != k.deg {
				return nil, ErrFieldMismatch
			}
			c := k.Zero()
			for l := range c {
				c[l].Set(e[l])
			}
			out[i][j] = c
		}
	}
	return &Matrix{k: k, n: n, rows: out}, nil
}

// Identity returns the n×n identity matrix over k.
func Identity(k *Field, n int) *Matrix {
	rows := make([][]Elem, n)
	for i := range rows {
		rows[i] = make([]Elem, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = k.One()
			} else {
				rows[i][j] = k.Zero()
			}
		}
	}
	return &Matrix{k: k, n: n, rows: rows}
}

// Dim returns n.
func (m *Matrix) Dim() int { return m.n }

// Base returns the number field the matrix lives over.
func (m *Matrix) Base() *Field { return m.k }

// At returns the entry at (i, j). Treat the returned element as read-only.
func (m *Matrix) At(i, j int) Elem { return m.rows[i][j] }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c, _ := NewMatrix(m.k, m.rows)
	return c
}

// Mul returns the exact product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if !m.k.Same(o.k) {
		return nil, ErrFieldMismatch
	}
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}
	k, n := m.k, m.n
	rows := make([][]Elem, n)
	for i := range rows {
		rows[i] = make([]Elem, n)
		for j := range rows[i] {
			acc := k.Zero()
			for l := 0; l < n; l++ {
				acc = k.Add(acc, k.Mul(m.rows[i][l], o.rows[l][j]))
			}
			rows[i][j] = acc
		}
	}
	return &Matrix{k: k, n: n, rows: rows}, nil
}

// Inverse computes m^-1 by Gauss–Jordan elimination over K, or
// ErrNoInverse when m is singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	k, n := m.k, m.n
	a := m.Clone().rows
	b := Identity(k, n).rows
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !k.IsZero(a[r][col]) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrNoInverse
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		inv, err := k.Inv(a[col][col])
		if err != nil {
			return nil, err
		}
		for c := 0; c < n; c++ {
			a[col][c] = k.Mul(a[col][c], inv)
			b[col][c] = k.Mul(b[col][c], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || k.IsZero(a[r][col]) {
				continue
			}
			factor := a[r][col]
			for c := 0; c < n; c++ {
				a[r][c] = k.Sub(a[r][c], k.Mul(factor, a[col][c]))
				b[r][c] = k.Sub(b[r][c], k.Mul(factor, b[col][c]))
			}
		}
	}
	return &Matrix{k: k, n: n, rows: b}, nil
}

// IsIdentity reports whether m is the identity matrix.
func (m *Matrix) IsIdentity() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				if !m.k.IsOne(m.rows[i][j]) {
					return false
				}
			} else if !m.k.IsZero(m.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// Equal reports exact entrywise equality over the same field.
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.k.Same(o.k) || m.n != o.n {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if !m.k.Equal(m.rows[i][j], o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with entries as coordinate vectors.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteByte('[')
		for j := range m.rows[i] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('(')
			for l, c := range m.rows[i][j] {
				if l > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(c.RatString())
			}
			sb.WriteByte(')')
		}
		sb.WriteByte(']')
		if i+1 < m.n {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
