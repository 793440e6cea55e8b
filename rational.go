package bignum

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational represents an exact fraction of two arbitrary-precision integers.
// A rational is always kept in lowest terms with a positive denominator,
// and the sign is stored separately from the magnitudes.
//
// The zero value is 0 and is ready to use.
type Rational struct {
	sign Sign    // Zero if and only if the numerator is 0
	num  Integer // magnitude of the numerator
	den  Integer // magnitude of the denominator, 0 stands for 1
}

// one is the magnitude used as the denominator of integral rationals.
var one = nat{1}

// newRational returns num/den in lowest terms.
// Both magnitudes are expected to be normalized and den must not be 0.
func newRational(sign Sign, num, den nat) Rational {
	n, d := newInteger(Positive, num), newInteger(Positive, den)
	if n.IsZero() || sign == Zero {
		return Rational{}
	}
	g, _ := GCD(n, d)
	if g.abs.cmp(one) != 0 {
		n, _, _ = n.quoRem(g)
		d, _, _ = d.quoRem(g)
	}
	return Rational{sign: sign, num: n, den: d}
}

// denom returns the magnitude of the denominator.
func (r Rational) denom() nat {
	if len(r.den.abs) == 0 {
		return one
	}
	return r.den.abs
}

// NewRational returns the rational num/den in lowest terms.
//
// NewRational returns an error wrapping [ErrDivisionByZero] if den is 0.
func NewRational(num, den int64) (Rational, error) {
	return NewRationalFromIntegers(NewInteger(num), NewInteger(den))
}

// MustNewRational is like [NewRational] but panics if den is 0.
func MustNewRational(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRational(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewRationalFromIntegers returns the rational num/den in lowest terms.
//
// NewRationalFromIntegers returns an error wrapping [ErrDivisionByZero]
// if den is 0.
func NewRationalFromIntegers(num, den Integer) (Rational, error) {
	if den.IsZero() {
		return Rational{}, fmt.Errorf("creating rational [%v / %v]: %w", num, den, ErrDivisionByZero)
	}
	return newRational(num.sign.Mul(den.sign), num.abs, den.abs), nil
}

// NewRationalFromInteger returns the rational x/1.
func NewRationalFromInteger(x Integer) Rational {
	return newRational(x.sign, x.abs, one)
}

// ParseRational converts a string to a rational in lowest terms.
// The input string must be formatted according to the following grammar:
//
//	sign     ::= '-'
//	digits   ::= digit { digit }
//	rational ::= [sign] digits [ '/' digits ]
//
// Both the numerator and the denominator follow the leading zero rules
// of [ParseInteger].
//
// ParseRational returns an error wrapping:
//   - [ErrMalformedLiteral] if the string does not match the grammar;
//   - [ErrDivisionByZero] if the denominator is 0.
func ParseRational(s string) (Rational, error) {
	numText, denText, hasDen := strings.Cut(s, "/")
	neg, numDigits, err := parseLiteral(numText)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing rational %q: numerator: %w", s, err)
	}
	sign := Positive
	if neg {
		sign = Negative
	}
	if !hasDen {
		return newRational(sign, parseNat(numDigits), one), nil
	}
	if strings.HasPrefix(denText, "-") {
		return Rational{}, fmt.Errorf("parsing rational %q: denominator: signed denominator: %w", s, ErrMalformedLiteral)
	}
	_, denDigits, err := parseLiteral(denText)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing rational %q: denominator: %w", s, err)
	}
	den := parseNat(denDigits)
	if len(den) == 0 {
		return Rational{}, fmt.Errorf("parsing rational %q: %w", s, ErrDivisionByZero)
	}
	return newRational(sign, parseNat(numDigits), den), nil
}

// MustParseRational is like [ParseRational] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParseRational(s string) Rational {
	r, err := ParseRational(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRational(%q) failed: %v", s, err))
	}
	return r
}

// Sign returns the sign of the rational.
func (r Rational) Sign() Sign {
	return r.sign
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.sign == Zero
}

// IsInt returns true if the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.denom().cmp(one) == 0
}

// Num returns the signed numerator of r.
func (r Rational) Num() Integer {
	return newInteger(r.sign, r.num.abs.clone())
}

// Denom returns the denominator of r, which is always positive.
func (r Rational) Denom() Integer {
	return newInteger(Positive, r.denom().clone())
}

// Trunc returns the integer part of r, rounded toward zero.
func (r Rational) Trunc() Integer {
	q, _ := r.num.abs.quoRem(r.denom())
	return newInteger(r.sign, q)
}

// Cmp compares r and s and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
func (r Rational) Cmp(s Rational) int {
	switch {
	case r.sign < s.sign:
		return -1
	case r.sign > s.sign:
		return 1
	case r.sign == Zero:
		return 0
	}
	a := r.num.abs.mul(s.denom())
	b := s.num.abs.mul(r.denom())
	return int(r.sign) * a.cmp(b)
}

// Equal returns true if r and s have the same sign, numerator and denominator.
func (r Rational) Equal(s Rational) bool {
	return r.sign == s.sign &&
		r.num.abs.cmp(s.num.abs) == 0 &&
		r.denom().cmp(s.denom()) == 0
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{sign: r.sign.Neg(), num: r.num, den: r.den}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.sign == Negative {
		return r.Neg()
	}
	return r
}

// Inv returns 1/r.
//
// Inv returns an error wrapping [ErrDivisionByZero] if r is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrDivisionByZero)
	}
	return Rational{sign: r.sign, num: newInteger(Positive, r.denom()), den: r.num}, nil
}

// AddAssign sets r to r + s.
func (r *Rational) AddAssign(s Rational) {
	// a/b + c/d = (a*d + c*b) / (b*d)
	a := r.Num()
	a.MulAssign(s.Denom())
	a.AddAssign(s.Num().Mul(r.Denom()))
	*r = newRational(a.sign, a.abs, r.denom().mul(s.denom()))
}

// SubAssign sets r to r - s.
// Subtracting a rational from itself always yields 0.
func (r *Rational) SubAssign(s Rational) {
	r.AddAssign(s.Neg())
}

// MulAssign sets r to r * s.
func (r *Rational) MulAssign(s Rational) {
	*r = newRational(r.sign.Mul(s.sign), r.num.abs.mul(s.num.abs), r.denom().mul(s.denom()))
}

// QuoAssign sets r to r / s.
// If s is 0, QuoAssign sets r to 0 and returns an error wrapping [ErrDivisionByZero].
func (r *Rational) QuoAssign(s Rational) error {
	if s.IsZero() {
		err := fmt.Errorf("computing [%v / %v]: %w", *r, s, ErrDivisionByZero)
		*r = Rational{}
		return err
	}
	*r = newRational(r.sign.Mul(s.sign), r.num.abs.mul(s.denom()), r.denom().mul(s.num.abs))
	return nil
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	z := r
	z.AddAssign(s)
	return z
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	z := r
	z.SubAssign(s)
	return z
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	z := r
	z.MulAssign(s)
	return z
}

// Quo returns the exact quotient r / s.
//
// Quo returns an error wrapping [ErrDivisionByZero] if s is 0.
func (r Rational) Quo(s Rational) (Rational, error) {
	z := r
	err := z.QuoAssign(s)
	return z, err
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the rational:
//
//	sign     ::= '-'
//	rational ::= [sign] numerator [ '/' denominator ]
//
// The denominator is omitted if it equals 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	buf := make([]byte, 0, 8)
	if r.sign == Negative {
		buf = append(buf, '-')
	}
	return string(r.appendAbs(buf))
}

func (r Rational) appendAbs(buf []byte) []byte {
	buf = r.num.abs.appendDecimal(buf)
	if !r.IsInt() {
		buf = append(buf, '/')
		buf = r.denom().appendDecimal(buf)
	}
	return buf
}

// AsDecimal returns the decimal expansion of r with exactly prec digits
// after the decimal point, truncated toward zero:
//
//	sign    ::= '-'
//	decimal ::= [sign] digits [ '.' digits ]
//
// The decimal point is omitted if prec is 0, and a negative prec
// is treated as 0. A negative r keeps its sign even when all the
// rendered digits are zeros, as [strconv.FormatFloat] does.
func (r Rational) AsDecimal(prec int) string {
	if prec < 0 {
		prec = 0
	}
	buf := make([]byte, 0, prec+16)
	if r.sign == Negative {
		buf = append(buf, '-')
	}
	return string(r.appendDecimalAbs(buf, prec))
}

// appendDecimalAbs appends |r| truncated to prec fractional digits.
func (r Rational) appendDecimalAbs(buf []byte, prec int) []byte {
	// Shift by whole limbs, so that a single division yields
	// at least prec fractional digits.
	k := (prec + radixWidth - 1) / radixWidth
	q, _ := r.num.abs.lsh(k).quoRem(r.denom())
	digs := q.appendDecimal(nil)

	// Leading zeros for |r| < 1
	if need := k*radixWidth + 1; len(digs) < need {
		pad := make([]byte, need-len(digs), need)
		for i := range pad {
			pad[i] = '0'
		}
		digs = append(pad, digs...)
	}

	split := len(digs) - k*radixWidth
	buf = append(buf, digs[:split]...)
	if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, digs[split:split+prec]...)
	}
	return buf
}

// Float64 returns a float64 approximation of r computed from its decimal
// expansion to 310 fractional digits.
// If r is outside the range of float64, the result is (±Inf, false).
func (r Rational) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(r.AsDecimal(maxFloatDigits), 64)
	if err != nil {
		return f, false
	}
	return f, true
}

// maxFloatDigits is enough fractional digits to reach below the smallest
// subnormal float64.
const maxFloatDigits = 310

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseRational].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRational(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/3
//	%q:    "-1/3"
//	%f:     -0.333333
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb, and the default precision is 6.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		formatNumber(state, verb, r.sign == Negative, r.appendAbs(nil))
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		formatNumber(state, verb, r.sign == Negative, r.appendDecimalAbs(nil, prec))
	default:
		writeBadVerb(state, verb, "bignum.Rational", []byte(r.String()))
	}
}

// Scan implements [fmt.Scanner] interface.
// It reads a single whitespace-delimited token and parses it
// with [ParseRational].
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (r *Rational) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 's', 'v':
	default:
		return fmt.Errorf("scanning %T: unsupported verb %%%c", r, verb)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	*r, err = ParseRational(string(tok))
	return err
}
