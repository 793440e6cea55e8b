package main

import (
	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/render"
	"github.com/spf13/cobra"
)

var cmdDecimal = &cobra.Command{
	Use:   "decimal FRACTION...",
	Short: "Expand fractions to decimals",
	Long: `Expand each fraction to a decimal with --precision fractional digits.
Digits beyond the precision are truncated.`,
	Example: "  bigcalc decimal 1/3 --precision 5",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDecimal,
}

func init() {
	cmdMain.AddCommand(cmdDecimal)
}

func runDecimal(cmd *cobra.Command, args []string) error {
	results := make([]render.Result, 0, len(args))
	for _, arg := range args {
		r, err := bignum.ParseRational(arg)
		if err != nil {
			return err
		}
		results = append(results, render.FromRational(arg, r, cfg.Precision))
	}
	return writeResults(cmd, results)
}
