package bignum

import "fmt"

// MustQuo is like [Integer.Quo] but panics if y is 0.
func (x Integer) MustQuo(y Integer) Integer {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [Integer.Rem] but panics if y is 0.
func (x Integer) MustRem(y Integer) Integer {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustGCD is like [GCD] but panics if either operand is not positive.
func MustGCD(x, y Integer) Integer {
	z, err := GCD(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustGCD(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustQuo is like [Rational.Quo] but panics if s is 0.
func (r Rational) MustQuo(s Rational) Rational {
	z, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return z
}

// MustInv is like [Rational.Inv] but panics if r is 0.
func (r Rational) MustInv() Rational {
	z, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return z
}
