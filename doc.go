/*
Package bignum implements arbitrary-precision signed integers and exact
rational numbers.
It is designed for computations where the magnitude of intermediate values
must not be bounded by any machine integer.

# Representation

[Integer] is a struct with two fields:

  - Sign: one of [Negative], [Zero] or [Positive].
  - Magnitude: a sequence of limbs, each holding a value in the range
    from 0 to 999,999,999, least significant limb first.
    The magnitude has no most significant zero limbs,
    and the magnitude of 0 has no limbs at all.

The numerical value of an integer is calculated as:

	Sign * (limb[n-1] * 10^(9*(n-1)) + ... + limb[1] * 10^9 + limb[0])

The limb radix of 10^9 makes conversion to and from decimal strings
a matter of splitting digits into groups of nine.

[Rational] is a struct with a sign and two magnitudes, the numerator and
the denominator.
Rationals are always kept in lowest terms with a positive denominator,
so every rational value has exactly one representation.
For example, 2/4 and -3/-6 both become 1/2.

# Conversions

The package provides methods for converting values:

  - from/to string:
    [ParseInteger], [Integer.String], [Integer.Format], [Integer.Scan],
    [ParseRational], [Rational.String], [Rational.Format], [Rational.Scan].
  - to decimal string:
    [Rational.AsDecimal].
  - from/to machine integers:
    [NewInteger], [Integer.Int64], [NewRational].
  - from/to [big.Int]:
    [NewIntegerFromBigInt], [Integer.BigInt].
  - to float64:
    [Rational.Float64].

# Operations

Each arithmetic operation comes in two forms:

  - pure methods, such as [Integer.Add] or [Rational.Quo], which
    return a new value and leave the operands untouched.
  - compound methods, such as [Integer.AddAssign] or [Rational.QuoAssign],
    which replace the receiver with the result.

Pure methods are implemented on top of the compound ones.
Results never share limb storage with values that might be modified later,
so values can be copied and passed around freely, and x - x is always 0
even when both operands are the same variable.

Integer division truncates toward zero.
The quotient takes the product of the operand signs and the remainder
takes the sign of the dividend, so that for any x and non-zero y:

	x = y * x.Quo(y) + x.Rem(y), where |x.Rem(y)| < |y|

Multiplication is schoolbook and division is long division where
each quotient limb is found by binary search.

# Errors

All methods are panic-free, except for the Must* helpers.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [Integer.Quo], [Integer.Rem], [Rational.Quo]
    and [Rational.Inv] do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].
    Compound forms additionally set the receiver to 0.

  - Invalid GCD Operands.
    [GCD] returns an error wrapping [ErrInvalidGCDOperands] if either
    operand is not positive.

  - Malformed Literal.
    [ParseInteger] and [ParseRational] return an error wrapping
    [ErrMalformedLiteral] if the input does not match the grammar.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package bignum
