package main

import (
	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/render"
	"github.com/spf13/cobra"
)

var cmdInfo = &cobra.Command{
	Use:   "info INTEGER...",
	Short: "Describe the sign, digits and limbs of integers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

var flagInfo struct {
	Table bool
}

func init() {
	cmdMain.AddCommand(cmdInfo)
	cmdInfo.Flags().BoolVarP(&flagInfo.Table, "table", "t", true, "Render a table regardless of --output")
}

func runInfo(cmd *cobra.Command, args []string) error {
	results := make([]render.Result, 0, len(args))
	for _, arg := range args {
		x, err := bignum.ParseInteger(arg)
		if err != nil {
			return err
		}
		results = append(results, render.FromInteger(arg, x))
	}
	if flagInfo.Table {
		return render.Write(cmd.OutOrStdout(), render.Table, results, render.Options{})
	}
	return writeResults(cmd, results)
}
