package rpn

import (
	"github.com/govalues/bignum"
	"github.com/rs/zerolog"
)

// NewIntegerCalculator returns a calculator over integers with truncating
// division. Its operators are + - * / % gcd neg abs.
func NewIntegerCalculator(logger zerolog.Logger) *Calculator[bignum.Integer] {
	binary := map[string]BinaryFunc[bignum.Integer]{
		"+":   func(x, y bignum.Integer) (bignum.Integer, error) { return x.Add(y), nil },
		"-":   func(x, y bignum.Integer) (bignum.Integer, error) { return x.Sub(y), nil },
		"*":   func(x, y bignum.Integer) (bignum.Integer, error) { return x.Mul(y), nil },
		"/":   bignum.Integer.Quo,
		"%":   bignum.Integer.Rem,
		"gcd": bignum.GCD,
	}
	unary := map[string]UnaryFunc[bignum.Integer]{
		"neg": func(x bignum.Integer) (bignum.Integer, error) { return x.Neg(), nil },
		"abs": func(x bignum.Integer) (bignum.Integer, error) { return x.Abs(), nil },
	}
	return New(logger, bignum.ParseInteger, unary, binary)
}

// NewRationalCalculator returns a calculator over exact rationals.
// Its operators are + - * / neg abs inv.
// Operands are either integers or fractions such as 1/3.
func NewRationalCalculator(logger zerolog.Logger) *Calculator[bignum.Rational] {
	binary := map[string]BinaryFunc[bignum.Rational]{
		"+": func(x, y bignum.Rational) (bignum.Rational, error) { return x.Add(y), nil },
		"-": func(x, y bignum.Rational) (bignum.Rational, error) { return x.Sub(y), nil },
		"*": func(x, y bignum.Rational) (bignum.Rational, error) { return x.Mul(y), nil },
		"/": bignum.Rational.Quo,
	}
	unary := map[string]UnaryFunc[bignum.Rational]{
		"neg": func(x bignum.Rational) (bignum.Rational, error) { return x.Neg(), nil },
		"abs": func(x bignum.Rational) (bignum.Rational, error) { return x.Abs(), nil },
		"inv": bignum.Rational.Inv,
	}
	return New(logger, bignum.ParseRational, unary, binary)
}
