package recog

import (
	"fmt"
	"math/big"

	"github.com/veldtlabs/finmat/fpgroup"
	"github.com/veldtlabs/finmat/modred"
	"github.com/veldtlabs/finmat/numfield"
	"github.com/veldtlabs/finmat/qmat"
)

// Rational decides finiteness for matrices over Q. On success the returned
// Result carries an isomorphic copy of the generated group over a prime
// field; ErrGroupInfinite means the group is provably infinite. opts may
// be nil for defaults.
func Rational(mats []*qmat.Matrix, opts *Options) (*Result, error) {
	o := withDefaults(opts)
	if len(mats) == 0 {
		return nil, fmt.Errorf("%w: empty matrix list", ErrInvalidInput)
	}
	n := mats[0].Dim()
	invs := make([]*qmat.Matrix, len(mats))
	for i, m := range mats {
		if m.Dim() != n {
			return nil, fmt.Errorf("%w: matrix %d has dimension %d, want %d", ErrInvalidInput, i, m.Dim(), n)
		}
		inv, err := m.Inverse()
		if err != nil {
			return nil, fmt.Errorf("%w: matrix %d is singular over Q", ErrInvalidInput, i)
		}
		invs[i] = inv
	}

	p, field, reduced, err := modred.SelectRational(mats, o.StartAbove, o.MaxScan)
	if err != nil {
		return nil, err
	}
	grp, err := o.Engine.Build(field, reduced)
	if err != nil {
		return nil, err
	}
	order, err := certify(grp, Bound(n), func(w fpgroup.Word) (bool, error) {
		got, err := evalRational(w, mats, invs)
		if err != nil {
			return false, err
		}
		return got.IsIdentity(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Result{Prime: p, Field: field, Generators: reduced, Order: order}, nil
}

// NumberField decides finiteness for matrices over the number field k.
// The theoretical bound accounts for the field degree: the group embeds
// into GL(deg(k)·n, Q) by restriction of scalars.
func NumberField(k *numfield.Field, mats []*numfield.Matrix, opts *Options) (*Result, error) {
	o := withDefaults(opts)
	if k == nil || len(mats) == 0 {
		return nil, fmt.Errorf("%w: empty matrix list", ErrInvalidInput)
	}
	n := mats[0].Dim()
	invs := make([]*numfield.Matrix, len(mats))
	for i, m := range mats {
		if !m.Base().Same(k) {
			return nil, fmt.Errorf("%w: matrix %d is over a different field", ErrInvalidInput, i)
		}
		if m.Dim() != n {
			return nil, fmt.Errorf("%w: matrix %d has dimension %d, want %d", ErrInvalidInput, i, m.Dim(), n)
		}
		inv, err := m.Inverse()
		if err != nil {
			return nil, fmt.Errorf("%w: matrix %d is singular over K", ErrInvalidInput, i)
		}
		invs[i] = inv
	}

	p, field, reduced, err := modred.SelectNumberField(k, mats, o.StartAbove, o.MaxScan)
	if err != nil {
		return nil, err
	}
	grp, err := o.Engine.Build(field, reduced)
	if err != nil {
		return nil, err
	}
	order, err := certify(grp, Bound(k.Degree()*n), func(w fpgroup.Word) (bool, error) {
		got, err := evalNumberField(k, w, mats, invs)
		if err != nil {
			return false, err
		}
		return got.IsIdentity(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Result{Prime: p, Field: field, Generators: reduced, Order: order}, nil
}

func withDefaults(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.Engine == nil {
		o.Engine = builtinEngine{}
	}
	return o
}

// certify runs steps 4-6 of the state machine: bound check, then the
// relator faithfulness certificate against the original matrices.
func certify(grp Group, bound *big.Int, relatorHolds func(fpgroup.Word) (bool, error)) (*big.Int, error) {
	order := grp.Order()
	if order.Cmp(bound) > 0 {
		return nil, fmt.Errorf("%w: reduced order %s exceeds bound %s", ErrGroupInfinite, order, bound)
	}
	for _, w := range grp.Relators() {
		ok, err := relatorHolds(w)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: relator fails on the original matrices", ErrGroupInfinite)
		}
	}
	return order, nil
}

// evalRational substitutes the original rational matrices for the free
// generators of w, inverses standing in for negative exponents.
func evalRational(w fpgroup.Word, mats, invs []*qmat.Matrix) (*qmat.Matrix, error) {
	acc := qmat.Identity(mats[0].Dim())
	for _, s := range w {
		if s.Gen < 0 || s.Gen >= len(mats) {
			return nil, fpgroup.ErrBadWord
		}
		factor, count := mats[s.Gen], s.Exp
		if count < 0 {
			factor, count = invs[s.Gen], -count
		}
		for i := 0; i < count; i++ {
			next, err := acc.Mul(factor)
			if err != nil {
				return nil, err
			}
			acc = next
		}
	}
	return acc, nil
}

// evalNumberField is evalRational over a number field.
func evalNumberField(k *numfield.Field, w fpgroup.Word, mats, invs []*numfield.Matrix) (*numfield.Matrix, error) {
	acc := numfield.Identity(k, mats[0].Dim())
	for _, s := range w {
		if s.Gen < 0 || s.Gen >= len(mats) {
			return nil, fpgroup.ErrBadWord
		}
		factor, count := mats[s.Gen], s.Exp
		if count < 0 {
			factor, count = invs[s.Gen], -count
		}
		for i := 0; i < count; i++ {
			next, err := acc.Mul(factor)
			if err != nil {
				return nil, err
			}
			acc = next
		}
	}
	return acc, nil
}
