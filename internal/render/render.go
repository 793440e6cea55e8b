package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/govalues/bignum"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	Text  Format = "text"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML, Table:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %q", s)
}

// Result describes a single evaluated value.
type Result struct {
	Expr    string `json:"expr" yaml:"expr"`
	Value   string `json:"value" yaml:"value"`
	Decimal string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Sign    string `json:"sign" yaml:"sign"`
	Digits  int    `json:"digits" yaml:"digits"`
	Limbs   int    `json:"limbs" yaml:"limbs"`
}

// FromInteger describes an integer.
func FromInteger(expr string, x bignum.Integer) Result {
	return Result{
		Expr:   expr,
		Value:  x.String(),
		Sign:   x.Sign().String(),
		Digits: x.Digits(),
		Limbs:  x.Limbs(),
	}
}

// FromRational describes a rational together with its decimal expansion
// to prec fractional digits. Digits and limbs are those of the numerator.
func FromRational(expr string, r bignum.Rational, prec int) Result {
	num := r.Num()
	return Result{
		Expr:    expr,
		Value:   r.String(),
		Decimal: r.AsDecimal(prec),
		Sign:    r.Sign().String(),
		Digits:  num.Digits(),
		Limbs:   num.Limbs(),
	}
}

// Options adjusts the rendering of text output.
type Options struct {
	// Color enables ANSI colors in text output regardless of the terminal.
	Color bool
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []Result, opts Options) error {
	switch format {
	case Text:
		return writeText(w, results, opts)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(results)
		if err != nil {
			return err
		}
		return enc.Close()
	case Table:
		writeTable(w, results)
		return nil
	}
	return fmt.Errorf("unsupported output format: %q", format)
}

func writeText(w io.Writer, results []Result, opts Options) error {
	exprColor := color.New(color.FgHiBlack)
	valueColor := color.New(color.FgGreen, color.Bold)
	decimalColor := color.New(color.FgCyan)
	for _, c := range []*color.Color{exprColor, valueColor, decimalColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, r := range results {
		line := valueColor.Sprint(r.Value)
		if r.Expr != "" && r.Expr != r.Value {
			line = exprColor.Sprint(r.Expr) + " = " + line
		}
		if r.Decimal != "" && r.Decimal != r.Value {
			line += " ≈ " + decimalColor.Sprint(r.Decimal)
		}
		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []Result) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Expression", "Value", "Decimal", "Sign", "Digits", "Limbs"})
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		tw.Append([]string{
			r.Expr,
			r.Value,
			r.Decimal,
			r.Sign,
			humanize.Comma(int64(r.Digits)),
			strconv.Itoa(r.Limbs),
		})
	}
	tw.Render()
}
