package main

import (
	"fmt"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/render"
	"github.com/spf13/cobra"
)

var cmdGCD = &cobra.Command{
	Use:     "gcd A B",
	Short:   "Compute the greatest common divisor of two positive integers",
	Example: "  bigcalc gcd 48 18",
	Args:    cobra.ExactArgs(2),
	RunE:    runGCD,
}

func init() {
	cmdMain.AddCommand(cmdGCD)
}

func runGCD(cmd *cobra.Command, args []string) error {
	x, err := bignum.ParseInteger(args[0])
	if err != nil {
		return err
	}
	y, err := bignum.ParseInteger(args[1])
	if err != nil {
		return err
	}
	g, err := bignum.GCD(x, y)
	if err != nil {
		return err
	}
	expr := fmt.Sprintf("gcd(%v, %v)", x, y)
	return writeResults(cmd, []render.Result{render.FromInteger(expr, g)})
}
