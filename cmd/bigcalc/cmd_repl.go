package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/govalues/bignum/internal/config"
	"github.com/govalues/bignum/internal/rpn"
	"github.com/spf13/cobra"
)

var cmdRepl = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long: `Start an interactive calculator session.

Tokens are pushed onto a stack that persists between lines, and the top of the
stack is printed after every line. The command "stack" shows the whole stack,
"clear" empties it, "help" lists the operators and "quit" ends the session.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

var flagRepl struct {
	HistoryFile string
}

func init() {
	cmdMain.AddCommand(cmdRepl)
	cmdRepl.Flags().StringVar(&flagRepl.HistoryFile, "history", "", "File to keep the line history in")
}

func runRepl(cmd *cobra.Command, _ []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("%s> ", cfg.Mode),
		HistoryFile:     flagRepl.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}
	defer rl.Close()

	switch cfg.Mode {
	case config.IntegerMode:
		return repl(rl, rl.Stdout(), rpn.NewIntegerCalculator(logger))
	case config.RationalMode:
		return repl(rl, rl.Stdout(), rpn.NewRationalCalculator(logger))
	}
	return fmt.Errorf("unknown mode %q", cfg.Mode)
}

type lineReader interface {
	Readline() (string, error)
}

// repl reads lines until the input ends or the user quits. Errors in a line
// are reported and the rest of that line is skipped.
func repl[T fmt.Stringer](rl lineReader, out io.Writer, calc *rpn.Calculator[T]) error {
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "clear":
			calc.Reset()
			continue
		case "stack":
			for _, v := range calc.Stack() {
				fmt.Fprintln(out, v)
			}
			continue
		case "help":
			fmt.Fprintln(out, strings.Join(calc.Operators(), " "))
			continue
		}

		for _, token := range strings.Fields(line) {
			err := calc.Push(token)
			if err != nil {
				fmt.Fprintf(out, "Error: %q: %v\n", token, err)
				break
			}
		}
		if stack := calc.Stack(); len(stack) > 0 {
			fmt.Fprintln(out, stack[len(stack)-1])
		}
	}
}
