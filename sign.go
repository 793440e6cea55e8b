package bignum

import "strconv"

// Sign is the arithmetic sign of an [Integer] or a [Rational].
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Mul returns the sign of a product of values with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	return s * t
}

// Neg returns the opposite sign. The opposite of [Zero] is [Zero].
func (s Sign) Neg() Sign {
	return -s
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return "Sign(" + strconv.Itoa(int(s)) + ")"
}
