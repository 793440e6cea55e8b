package bignum

import (
	"strconv"
)

// nat is an unsigned magnitude x of the form
//
//	x = x[n-1]*R^(n-1) + x[n-2]*R^(n-2) + ... + x[1]*R + x[0]
//
// with 0 <= x[i] < R, stored least significant limb first.
// A nat is normalized if it has no most significant zero limbs.
// The normalized representation of 0 is the empty or nil slice.
//
// Methods of nat never write into their operands: every result that differs
// from an operand is built in a freshly allocated slice.
type nat []uint32

const (
	radix      = 1_000_000_000 // R, limb radix
	radixWidth = 9             // decimal digits per limb
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// limbDigits returns the number of decimal digits in a single limb.
// limbDigits assumes that 0 has no digits.
func limbDigits(w uint32) int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if w < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// norm removes most significant zero limbs.
func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// natFromUint64 decomposes x into limbs.
func natFromUint64(x uint64) nat {
	if x == 0 {
		return nil
	}
	z := make(nat, 0, 3)
	for x > 0 {
		z = append(z, uint32(x%radix))
		x /= radix
	}
	return z
}

// clone returns a copy of x with its own storage.
func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// cmp compares magnitudes and returns -1, 0 or +1.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// digits returns the number of decimal digits of x.
// digits assumes that 0 has no digits.
func (x nat) digits() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*radixWidth + limbDigits(x[len(x)-1])
}

//-----------------------------------------------------------------------------
// Carry and borrow propagation
//

// addLimb calculates x + y + c with 0 <= x, y < R and c in {0, 1}.
// The resulting carry is either 0 or 1, since x + y + c < 2R.
func addLimb(x, y, c uint32) (s, carry uint32) {
	s = x + y + c
	if s >= radix {
		return s - radix, 1
	}
	return s, 0
}

// subLimb calculates x - y - b with 0 <= x, y < R and b in {0, 1}.
// The resulting borrow is either 0 or 1.
func subLimb(x, y, b uint32) (d, borrow uint32) {
	if x >= y+b {
		return x - y - b, 0
	}
	return x + radix - y - b, 1
}

// propagateCarry adds carry c to z starting at limb i and walks forward until
// the carry is absorbed. It returns the carry out of the most significant limb.
func propagateCarry(z []uint32, i int, c uint32) uint32 {
	for ; c != 0 && i < len(z); i++ {
		z[i], c = addLimb(z[i], 0, c)
	}
	return c
}

// propagateBorrow subtracts borrow b from z starting at limb i and walks
// forward until a non-zero limb absorbs it. It returns the borrow out of the
// most significant limb.
func propagateBorrow(z []uint32, i int, b uint32) uint32 {
	for ; b != 0 && i < len(z); i++ {
		z[i], b = subLimb(z[i], 0, b)
	}
	return b
}

//-----------------------------------------------------------------------------
// Arithmetic
//

// add calculates x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)
	if len(y) == 0 {
		return x.clone()
	}
	z := make(nat, len(x)+1)
	copy(z, x)
	var c uint32
	for i := range y {
		z[i], c = addLimb(z[i], y[i], c)
	}
	z[len(x)] = propagateCarry(z[:len(x)], len(y), c)
	return z.norm()
}

// addSmall calculates x + w, where w < R.
func (x nat) addSmall(w uint32) nat {
	z := make(nat, len(x)+1)
	copy(z, x)
	var c uint32
	z[0], c = addLimb(z[0], w, 0)
	propagateCarry(z, 1, c) // z[len(x)] is 0 and absorbs the carry
	return z.norm()
}

// sub calculates x - y.
// If x < y, the result is unpredictable.
func (x nat) sub(y nat) nat {
	z := x.clone()
	var b uint32
	for i := range y {
		z[i], b = subLimb(z[i], y[i], b)
	}
	if propagateBorrow(z, len(y), b) != 0 {
		panic("bignum: magnitude underflow")
	}
	return z.norm()
}

// subSmall calculates x - w, where w < R and x >= w.
func (x nat) subSmall(w uint32) nat {
	if w == 0 {
		return x.clone()
	}
	z := x.clone()
	var b uint32
	z[0], b = subLimb(z[0], w, 0)
	if propagateBorrow(z, 1, b) != 0 {
		panic("bignum: magnitude underflow")
	}
	return z.norm()
}

// mulSmall calculates x * w, where w < R.
func (x nat) mulSmall(w uint32) nat {
	if len(x) == 0 || w == 0 {
		return nil
	}
	z := make(nat, len(x)+1)
	var c uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(w) + c // < R^2, fits uint64
		z[i] = uint32(t % radix)
		c = t / radix
	}
	z[len(x)] = uint32(c)
	return z.norm()
}

// mul calculates x * y using schoolbook multiplication.
func (x nat) mul(y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(y) == 1 {
		return x.mulSmall(y[0])
	}
	if len(x) == 1 {
		return y.mulSmall(x[0])
	}
	// Each column holds a normalized limb plus at most one pending product
	// and carry, which is below 2^64.
	cols := make([]uint64, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		for i, xi := range x {
			cols[i+j] += uint64(xi) * uint64(yj)
		}
		// Carry normalization pass for the columns touched by this row
		for k := j; k < len(cols)-1; k++ {
			if cols[k] >= radix {
				cols[k+1] += cols[k] / radix
				cols[k] %= radix
			}
		}
	}
	z := make(nat, len(cols))
	for i, c := range cols {
		z[i] = uint32(c)
	}
	return z.norm()
}

// lsh calculates x * R^n.
func (x nat) lsh(n int) nat {
	if len(x) == 0 || n <= 0 {
		return x.clone()
	}
	z := make(nat, len(x)+n)
	copy(z[n:], x)
	return z
}

// shiftIn calculates x * R + w, i.e. brings limb w down into x.
func (x nat) shiftIn(w uint32) nat {
	z := make(nat, len(x)+1)
	z[0] = w
	copy(z[1:], x)
	return z.norm()
}

// quoDigit returns the largest q in [0, R] such that y * q <= x.
// The candidate range is searched by bisection, so each quotient limb
// costs O(log R) multiplications.
func quoDigit(x, y nat) uint32 {
	if x.cmp(y) < 0 {
		return 0
	}
	lo, hi := uint32(1), uint32(radix)
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		var p nat
		if mid == radix {
			p = y.lsh(1)
		} else {
			p = y.mulSmall(mid)
		}
		if p.cmp(x) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// If y is 0, the result is unpredictable.
func (x nat) quoRem(y nat) (q, r nat) {
	if x.cmp(y) < 0 {
		return nil, x.clone()
	}
	n := len(y)
	// Seed the window with the top n limbs of the dividend
	win := x[len(x)-n:].clone().norm()
	rev := make([]uint32, 0, len(x)-n+1) // quotient, most significant first
	for i := len(x) - n; ; i-- {
		d := quoDigit(win, y)
		if d != 0 {
			var p nat
			if d == radix {
				p = y.lsh(1)
			} else {
				p = y.mulSmall(d)
			}
			win = win.sub(p)
		}
		rev = append(rev, d)
		if i == 0 {
			break
		}
		win = win.shiftIn(x[i-1])
	}
	// Reverse into least significant first order
	q = make(nat, len(rev))
	for i, d := range rev {
		q[len(rev)-1-i] = d
	}
	return q.norm(), win
}

// gcd calculates the greatest common divisor of x and y with Euclid's
// algorithm. Both x and y must be positive.
func (x nat) gcd(y nat) nat {
	a, b := x, y
	for len(b) != 0 {
		_, r := a.quoRem(b)
		a, b = b, r
	}
	return a.clone()
}

//-----------------------------------------------------------------------------
// Conversions
//

// appendDecimal appends the decimal representation of x to buf.
// The most significant limb is not padded, other limbs are zero-padded
// to radixWidth digits. The representation of 0 is "0".
func (x nat) appendDecimal(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	buf = strconv.AppendUint(buf, uint64(x[len(x)-1]), 10)
	for i := len(x) - 2; i >= 0; i-- {
		buf = appendLimb(buf, x[i])
	}
	return buf
}

// appendLimb appends w zero-padded to radixWidth digits.
func appendLimb(buf []byte, w uint32) []byte {
	var tmp [radixWidth]byte
	for i := radixWidth - 1; i >= 0; i-- {
		tmp[i] = byte(w%10) + '0'
		w /= 10
	}
	return append(buf, tmp[:]...)
}

// parseNat converts a string of decimal digits into a magnitude.
// The string is chunked from its least significant end into groups of
// radixWidth digits, each group becoming one limb.
// parseNat assumes that s contains only ASCII digits.
func parseNat(s string) nat {
	z := make(nat, 0, (len(s)+radixWidth-1)/radixWidth)
	for end := len(s); end > 0; end -= radixWidth {
		start := end - radixWidth
		if start < 0 {
			start = 0
		}
		var w uint32
		for _, ch := range []byte(s[start:end]) {
			w = w*10 + uint32(ch-'0')
		}
		z = append(z, w)
	}
	return z.norm()
}
