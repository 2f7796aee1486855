package main

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veldtlabs/finmat/numfield"
	"github.com/veldtlabs/finmat/qmat"
)

// entry is one matrix entry: a single rational string over Q, or a
// coordinate vector of rational strings over a number field. Both YAML
// shapes are accepted:
//
//	"1/2"            → ["1/2"]
//	["1/2", "-3"]    → as given
type entry []string

func (e *entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*e = entry{value.Value}
		return nil
	case yaml.SequenceNode:
		var coords []string
		if err := value.Decode(&coords); err != nil {
			return err
		}
		*e = entry(coords)
		return nil
	default:
		return fmt.Errorf("matrix entry must be a scalar or a sequence (line %d)", value.Line)
	}
}

// inputFile is the YAML description of a recognition problem.
//
//	minpoly: [1, 0, 1]        # optional: integer coefficients, constant
//	                          # first; omit to work over Q
//	start_above: 1            # optional prime search lower bound
//	matrices:
//	  - [["0","1"], ["-1","0"]]   # rows of entries
type inputFile struct {
	MinPoly    []int64     `yaml:"minpoly"`
	StartAbove uint64      `yaml:"start_above"`
	Matrices   [][][]entry `yaml:"matrices"`
}

func loadInput(path string) (*inputFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in inputFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(in.Matrices) == 0 {
		return nil, fmt.Errorf("%s: no matrices given", path)
	}
	return &in, nil
}

func (in *inputFile) isNumberField() bool { return len(in.MinPoly) > 0 }

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	return r, nil
}

// buildRational converts the parsed matrices into exact rational matrices.
func (in *inputFile) buildRational() ([]*qmat.Matrix, error) {
	out := make([]*qmat.Matrix, len(in.Matrices))
	for mi, rows := range in.Matrices {
		qrows := make([][]*big.Rat, len(rows))
		for i, row := range rows {
			qrows[i] = make([]*big.Rat, len(row))
			for j, e := range row {
				if len(e) != 1 {
					return nil, fmt.Errorf("matrix %d entry (%d,%d): expected a single rational over Q", mi, i, j)
				}
				r, err := parseRat(e[0])
				if err != nil {
					return nil, fmt.Errorf("matrix %d entry (%d,%d): %w", mi, i, j, err)
				}
				qrows[i][j] = r
			}
		}
		m, err := qmat.New(qrows)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", mi, err)
		}
		out[mi] = m
	}
	return out, nil
}

// buildNumberField constructs the field from minpoly and converts the
// matrices into number-field matrices.
func (in *inputFile) buildNumberField() (*numfield.Field, []*numfield.Matrix, error) {
	coeffs := make([]*big.Int, len(in.MinPoly))
	for i, c := range in.MinPoly {
		coeffs[i] = big.NewInt(c)
	}
	k, err := numfield.New(coeffs)
	if err != nil {
		return nil, nil, fmt.Errorf("minpoly: %w", err)
	}
	out := make([]*numfield.Matrix, len(in.Matrices))
	for mi, rows := range in.Matrices {
		krows := make([][]numfield.Elem, len(rows))
		for i, row := range rows {
			krows[i] = make([]numfield.Elem, len(row))
			for j, e := range row {
				coords := make([]*big.Rat, len(e))
				for l, s := range e {
					r, err := parseRat(s)
					if err != nil {
						return nil, nil, fmt.Errorf("matrix %d entry (%d,%d): %w", mi, i, j, err)
					}
					coords[l] = r
				}
				krows[i][j] = k.FromRats(coords)
			}
		}
		m, err := numfield.NewMatrix(k, krows)
		if err != nil {
			return nil, nil, fmt.Errorf("matrix %d: %w", mi, err)
		}
		out[mi] = m
	}
	return k, out, nil
}
