package main

import (
	"fmt"

	"github.com/govalues/bignum/internal/config"
	"github.com/govalues/bignum/internal/render"
	"github.com/govalues/bignum/internal/rpn"
	"github.com/spf13/cobra"
)

var cmdEval = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate expressions in reverse Polish notation",
	Long: `Evaluate each argument as an expression in reverse Polish notation.

In integer mode the operators are + - * / % gcd neg abs dup swap and division
truncates toward zero. In rational mode the operators are + - * / neg abs inv
dup swap, operands may be fractions such as 1/3 and results are exact.`,
	Example: `  bigcalc eval "999999999 1 +"
  bigcalc eval --mode integer "123456789123456789 1000000000 /"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	cmdMain.AddCommand(cmdEval)
}

func runEval(cmd *cobra.Command, args []string) error {
	results, err := evaluate(cfg.Mode, args)
	if err != nil {
		return err
	}
	return writeResults(cmd, results)
}

func evaluate(mode config.Mode, exprs []string) ([]render.Result, error) {
	results := make([]render.Result, 0, len(exprs))
	switch mode {
	case config.IntegerMode:
		calc := rpn.NewIntegerCalculator(logger)
		for _, expr := range exprs {
			x, err := calc.Eval(expr)
			if err != nil {
				return nil, fmt.Errorf("evaluating %q: %w", expr, err)
			}
			results = append(results, render.FromInteger(expr, x))
		}

	case config.RationalMode:
		calc := rpn.NewRationalCalculator(logger)
		for _, expr := range exprs {
			r, err := calc.Eval(expr)
			if err != nil {
				return nil, fmt.Errorf("evaluating %q: %w", expr, err)
			}
			results = append(results, render.FromRational(expr, r, cfg.Precision))
		}

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return results, nil
}
