package bignum

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Integer represents an arbitrary-precision signed integer.
// It stores the magnitude as a sequence of base 10^9 limbs,
// least significant limb first, and the sign separately.
//
// The zero value is 0 and is ready to use.
// Integers can be copied freely: no operation writes into limb storage
// that is visible to another Integer.
type Integer struct {
	sign Sign // Zero if and only if abs is empty
	abs  nat  // normalized magnitude
}

var (
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInvalidGCDOperands = errors.New("gcd operands must be positive")
	ErrMalformedLiteral   = errors.New("malformed literal")
)

// newInteger returns an integer with the given sign and magnitude.
// The sign of a zero magnitude is always [Zero].
func newInteger(sign Sign, abs nat) Integer {
	abs = abs.norm()
	if len(abs) == 0 || sign == Zero {
		return Integer{}
	}
	return Integer{sign: sign, abs: abs}
}

// NewInteger returns an integer equal to v.
// Every machine integer, including [math.MinInt64] and [math.MaxUint64],
// is represented exactly.
func NewInteger[T constraints.Integer](v T) Integer {
	if v < 0 {
		return newInteger(Negative, natFromUint64(uint64(-(v+1))+1))
	}
	return newInteger(Positive, natFromUint64(uint64(v)))
}

// NewIntegerFromBigInt returns an integer equal to b.
// A nil b is treated as 0.
func NewIntegerFromBigInt(b *big.Int) Integer {
	if b == nil || b.Sign() == 0 {
		return Integer{}
	}
	var (
		q    = new(big.Int).Abs(b)
		r    = new(big.Int)
		base = big.NewInt(radix)
		abs  = make(nat, 0, (q.BitLen()+29)/29)
	)
	for q.Sign() != 0 {
		q.QuoRem(q, base, r)
		abs = append(abs, uint32(r.Uint64()))
	}
	return newInteger(Sign(b.Sign()), abs)
}

// ParseInteger converts a string to an integer.
// The input string must be formatted according to the following grammar:
//
//	sign    ::= '-'
//	digit   ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	integer ::= [sign] digit { digit }
//
// Leading zeros are rejected unless the integer is 0 itself.
// The strings "0" and "-0" both represent 0.
//
// ParseInteger returns an error wrapping [ErrMalformedLiteral]
// if the string does not match the grammar.
func ParseInteger(s string) (Integer, error) {
	neg, digits, err := parseLiteral(s)
	if err != nil {
		return Integer{}, fmt.Errorf("parsing integer %q: %w", s, err)
	}
	sign := Positive
	if neg {
		sign = Negative
	}
	return newInteger(sign, parseNat(digits)), nil
}

// parseLiteral splits s into its sign and digits and validates both.
func parseLiteral(s string) (neg bool, digits string, err error) {
	pos := 0
	if pos < len(s) && s[pos] == '-' {
		neg = true
		pos++
	}
	digits = s[pos:]
	if len(digits) == 0 {
		return false, "", fmt.Errorf("no digits: %w", ErrMalformedLiteral)
	}
	for i := 0; i < len(digits); i++ {
		if ch := digits[i]; ch < '0' || ch > '9' {
			return false, "", fmt.Errorf("invalid character %q at position %v: %w", ch, pos+i, ErrMalformedLiteral)
		}
	}
	if digits[0] == '0' && len(digits) > 1 {
		return false, "", fmt.Errorf("leading zero at position %v: %w", pos, ErrMalformedLiteral)
	}
	return neg, digits, nil
}

// MustParseInteger is like [ParseInteger] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInteger(s string) Integer {
	x, err := ParseInteger(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q) failed: %v", s, err))
	}
	return x
}

// Int64 returns the integer as int64.
// If the integer does not fit into int64, the result is (0, false).
func (x Integer) Int64() (int64, bool) {
	var u uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		w := uint64(x.abs[i])
		if u > (math.MaxUint64-w)/radix {
			return 0, false
		}
		u = u*radix + w
	}
	switch {
	case x.sign == Negative && u <= 1<<63:
		return -int64(u-1) - 1, true
	case x.sign != Negative && u <= math.MaxInt64:
		return int64(u), true
	}
	return 0, false
}

// BigInt returns the integer as a newly allocated [big.Int].
func (x Integer) BigInt() *big.Int {
	z := new(big.Int)
	base := big.NewInt(radix)
	limb := new(big.Int)
	for i := len(x.abs) - 1; i >= 0; i-- {
		z.Mul(z, base)
		z.Add(z, limb.SetUint64(uint64(x.abs[i])))
	}
	if x.sign == Negative {
		z.Neg(z)
	}
	return z
}

// Sign returns the sign of the integer.
func (x Integer) Sign() Sign {
	return x.sign
}

// IsZero returns true if x == 0.
func (x Integer) IsZero() bool {
	return x.sign == Zero
}

// IsPos returns true if x > 0.
func (x Integer) IsPos() bool {
	return x.sign == Positive
}

// IsNeg returns true if x < 0.
func (x Integer) IsNeg() bool {
	return x.sign == Negative
}

// Limbs returns the number of base 10^9 limbs in the magnitude.
// The magnitude of 0 has no limbs.
func (x Integer) Limbs() int {
	return len(x.abs)
}

// Digits returns the number of decimal digits in the magnitude.
// The magnitude of 0 has no digits.
func (x Integer) Digits() int {
	return x.abs.digits()
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	}
	return int(x.sign) * x.abs.cmp(y.abs)
}

// CmpAbs compares |x| and |y|.
func (x Integer) CmpAbs(y Integer) int {
	return x.abs.cmp(y.abs)
}

// Equal returns true if x and y have the same sign and identical limbs.
func (x Integer) Equal(y Integer) bool {
	return x.sign == y.sign && x.abs.cmp(y.abs) == 0
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	return Integer{sign: x.sign.Neg(), abs: x.abs.clone()}
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	if x.sign == Negative {
		return x.Neg()
	}
	return Integer{sign: x.sign, abs: x.abs.clone()}
}

// Lsh returns x * 10^(9n), i.e. x shifted left by n limbs.
// Negative n is treated as 0.
func (x Integer) Lsh(n int) Integer {
	return Integer{sign: x.sign, abs: x.abs.lsh(n)}
}

// negView returns -x sharing the storage of x.
// The result must not escape: it is only read by compound operators.
func (x Integer) negView() Integer {
	return Integer{sign: x.sign.Neg(), abs: x.abs}
}

// AddAssign sets x to x + y.
func (x *Integer) AddAssign(y Integer) {
	switch {
	case y.sign == Zero:
		return
	case x.sign == Zero:
		*x = Integer{sign: y.sign, abs: y.abs.clone()}
	case x.sign == y.sign:
		x.abs = x.abs.add(y.abs)
	default:
		switch c := x.abs.cmp(y.abs); {
		case c == 0:
			*x = Integer{}
		case c > 0:
			x.abs = x.abs.sub(y.abs)
		default:
			*x = Integer{sign: y.sign, abs: y.abs.sub(x.abs)}
		}
	}
}

// SubAssign sets x to x - y.
// Subtracting an integer from itself always yields 0.
func (x *Integer) SubAssign(y Integer) {
	x.AddAssign(y.negView())
}

// MulAssign sets x to x * y.
func (x *Integer) MulAssign(y Integer) {
	if x.sign == Zero || y.sign == Zero {
		*x = Integer{}
		return
	}
	*x = Integer{sign: x.sign.Mul(y.sign), abs: x.abs.mul(y.abs)}
}

// splitInt64 returns the sign and magnitude of v.
func splitInt64(v int64) (Sign, uint64) {
	switch {
	case v < 0:
		return Negative, uint64(-(v + 1)) + 1
	case v > 0:
		return Positive, uint64(v)
	}
	return Zero, 0
}

// AddInt64Assign sets x to x + v.
// If |v| is less than 10^9, only a single limb delta is propagated.
func (x *Integer) AddInt64Assign(v int64) {
	sign, u := splitInt64(v)
	if u >= radix {
		x.AddAssign(NewInteger(v))
		return
	}
	w := uint32(u)
	switch {
	case sign == Zero:
		return
	case x.sign == Zero:
		*x = Integer{sign: sign, abs: nat{w}}
	case x.sign == sign:
		x.abs = x.abs.addSmall(w)
	case len(x.abs) > 1 || x.abs[0] > w:
		x.abs = x.abs.subSmall(w)
	case x.abs[0] == w:
		*x = Integer{}
	default:
		*x = Integer{sign: sign, abs: nat{w - x.abs[0]}}
	}
}

// MulInt64Assign sets x to x * v.
// If |v| is less than 10^9, the multiplication is done in a single pass
// over the limbs of x.
func (x *Integer) MulInt64Assign(v int64) {
	sign, u := splitInt64(v)
	switch {
	case u >= radix:
		x.MulAssign(NewInteger(v))
	case sign == Zero || x.sign == Zero:
		*x = Integer{}
	default:
		*x = Integer{sign: x.sign.Mul(sign), abs: x.abs.mulSmall(uint32(u))}
	}
}

// Inc sets x to x + 1.
func (x *Integer) Inc() {
	x.AddInt64Assign(1)
}

// Dec sets x to x - 1.
func (x *Integer) Dec() {
	x.AddInt64Assign(-1)
}

// quoRem calculates the truncated quotient and the remainder of x and y.
// The quotient is rounded toward zero, the remainder has the sign of x,
// so that x = y * q + r and |r| < |y|.
// If y is 0, the result is (0, 0, false).
func (x Integer) quoRem(y Integer) (q, r Integer, ok bool) {
	if y.sign == Zero {
		return Integer{}, Integer{}, false
	}
	if x.sign == Zero {
		return Integer{}, Integer{}, true
	}
	qa, ra := x.abs.quoRem(y.abs)
	return newInteger(x.sign.Mul(y.sign), qa), newInteger(x.sign, ra), true
}

// QuoAssign sets x to the truncated quotient x / y.
// If y is 0, QuoAssign sets x to 0 and returns an error wrapping [ErrDivisionByZero].
func (x *Integer) QuoAssign(y Integer) error {
	q, _, ok := x.quoRem(y)
	if !ok {
		err := fmt.Errorf("computing [%v / %v]: %w", *x, y, ErrDivisionByZero)
		*x = Integer{}
		return err
	}
	*x = q
	return nil
}

// RemAssign sets x to the remainder of the truncated division x / y.
// If y is 0, RemAssign sets x to 0 and returns an error wrapping [ErrDivisionByZero].
func (x *Integer) RemAssign(y Integer) error {
	_, r, ok := x.quoRem(y)
	if !ok {
		err := fmt.Errorf("computing [%v %% %v]: %w", *x, y, ErrDivisionByZero)
		*x = Integer{}
		return err
	}
	*x = r
	return nil
}

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	z := x
	z.AddAssign(y)
	return z
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	z := x
	z.SubAssign(y)
	return z
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	z := x
	z.MulAssign(y)
	return z
}

// AddInt64 returns x + v.
func (x Integer) AddInt64(v int64) Integer {
	z := x
	z.AddInt64Assign(v)
	return z
}

// MulInt64 returns x * v.
func (x Integer) MulInt64(v int64) Integer {
	z := x
	z.MulInt64Assign(v)
	return z
}

// Quo returns the quotient x / y truncated toward zero.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Integer) Quo(y Integer) (Integer, error) {
	z := x
	err := z.QuoAssign(y)
	return z, err
}

// Rem returns the remainder of x / y.
// The remainder is either 0 or has the sign of x, and |x % y| < |y|.
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Integer) Rem(y Integer) (Integer, error) {
	z := x
	err := z.RemAssign(y)
	return z, err
}

// QuoRem returns the quotient q and the remainder r of x / y such that
//
//	x = y * q + r, where |r| < |y|
//
// The quotient is truncated toward zero and the remainder has the sign of x.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Integer) QuoRem(y Integer) (q, r Integer, err error) {
	q, r, ok := x.quoRem(y)
	if !ok {
		return Integer{}, Integer{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return q, r, nil
}

// GCD returns the greatest common divisor of x and y
// computed with Euclid's algorithm.
//
// GCD returns an error wrapping [ErrInvalidGCDOperands]
// if either x or y is not positive.
func GCD(x, y Integer) (Integer, error) {
	if !x.IsPos() || !y.IsPos() {
		return Integer{}, fmt.Errorf("computing gcd(%v, %v): %w", x, y, ErrInvalidGCDOperands)
	}
	return newInteger(Positive, x.abs.gcd(y.abs)), nil
}

// String implements the [fmt.Stringer] interface and returns
// the decimal representation of the integer.
// The result is accepted by [ParseInteger] and matches the grammar
// documented there, with "-0" never produced.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Integer) String() string {
	return string(x.appendTo(nil))
}

func (x Integer) appendTo(buf []byte) []byte {
	if x.sign == Negative {
		buf = append(buf, '-')
	}
	return x.abs.appendDecimal(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseInteger].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Integer) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseInteger(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Integer.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Integer) MarshalText() ([]byte, error) {
	return x.appendTo(nil), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456
//	%q:        "-123456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Integer) Format(state fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'S', 'v', 'V', 'q', 'Q':
		formatNumber(state, verb, x.IsNeg(), x.abs.appendDecimal(nil))
	default:
		writeBadVerb(state, verb, "bignum.Integer", x.appendTo(nil))
	}
}

// Scan implements [fmt.Scanner] interface.
// It reads a single whitespace-delimited token and parses it
// with [ParseInteger].
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (x *Integer) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("scanning %T: unsupported verb %%%c", x, verb)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	*x, err = ParseInteger(string(tok))
	return err
}
