package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veldtlabs/finmat/recog"
)

// recognizeCmd runs the full recognition pipeline on a YAML problem file.
var recognizeCmd = &cobra.Command{
	Use:   "recognize <file.yaml>",
	Short: "Decide whether the given matrices generate a finite group",
	Long: `Reads a YAML file describing invertible matrices over Q (or over a
number field when "minpoly" is present) and runs the recognition
pipeline: good-reduction prime search, reduced group order, maximal-order
bound check, and the relator faithfulness certificate.

Example:
  finmat recognize quaternion.yaml
  finmat recognize --start-above 100 s4.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRecognize,
}

func runRecognize(cmd *cobra.Command, args []string) error {
	in, err := loadInput(args[0])
	if err != nil {
		return err
	}
	opts := recog.DefaultOptions()
	if in.StartAbove > 0 {
		opts.StartAbove = in.StartAbove
	}
	if startAbove > 0 {
		opts.StartAbove = startAbove
	}

	start := time.Now()
	var res *recog.Result
	if in.isNumberField() {
		k, mats, berr := in.buildNumberField()
		if berr != nil {
			return berr
		}
		logger.Debug("recognizing over a number field",
			zap.Int("degree", k.Degree()),
			zap.Int("generators", len(mats)),
			zap.String("discriminant", k.Discriminant().String()))
		res, err = recog.NumberField(k, mats, &opts)
	} else {
		mats, berr := in.buildRational()
		if berr != nil {
			return berr
		}
		logger.Debug("recognizing over Q", zap.Int("generators", len(mats)))
		res, err = recog.Rational(mats, &opts)
	}
	elapsed := time.Since(start)

	switch {
	case err == nil:
		logger.Info("group is finite",
			zap.Uint64("prime", res.Prime),
			zap.String("residue_field_order", res.Field.Order().String()),
			zap.String("group_order", res.Order.String()),
			zap.Duration("elapsed", elapsed))
		fmt.Printf("finite: order %s over GF(%s), reduction mod %d\n",
			res.Order, res.Field.Order(), res.Prime)
		return nil
	case errors.Is(err, recog.ErrGroupInfinite):
		logger.Info("group is infinite", zap.Duration("elapsed", elapsed))
		fmt.Println("infinite")
		return err
	default:
		return err
	}
}
