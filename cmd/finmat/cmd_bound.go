package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/finmat/recog"
)

// boundCmd prints the maximal order of a finite subgroup of GL(n, Z).
var boundCmd = &cobra.Command{
	Use:   "bound <n>",
	Short: "Print the maximal order of a finite subgroup of GL(n, Z)",
	Long: `Prints the largest possible order of a finite subgroup of GL(n, Z):
table-driven for n ≤ 10, n!·2^n beyond. This is the bound the recognition
pipeline compares reduced group orders against (with n scaled by the
field degree).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("bound: n must be a positive integer, got %q", args[0])
		}
		fmt.Println(recog.Bound(n))
		return nil
	},
}
