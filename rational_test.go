package bignum

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestRational_ZeroValue(t *testing.T) {
	got := Rational{}
	want := MustNewRational(0, 1)
	if !got.Equal(want) {
		t.Errorf("Rational{} = %v, want %v", got, want)
	}
	if got.Denom().String() != "1" {
		t.Errorf("Rational{}.Denom() = %v, want 1", got.Denom())
	}
	if !got.IsInt() {
		t.Errorf("Rational{}.IsInt() = false, want true")
	}
}

func TestRational_Interfaces(t *testing.T) {
	var r any

	r = Rational{}
	_, ok := r.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", r)
	}
	_, ok = r.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", r)
	}
	_, ok = r.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", r)
	}

	r = &Rational{}
	_, ok = r.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", r)
	}
	_, ok = r.(fmt.Scanner)
	if !ok {
		t.Errorf("%T does not implement fmt.Scanner", r)
	}
}

func TestNewRational(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den int64
			want     string
		}{
			{0, 1, "0"},
			{0, -7, "0"},
			{2, 4, "1/2"},
			{-2, 4, "-1/2"},
			{2, -4, "-1/2"},
			{-3, -6, "1/2"},
			{6, 3, "2"},
			{-6, 3, "-2"},
			{48, 18, "8/3"},
			{math.MinInt64, math.MinInt64, "1"},
			{1, math.MinInt64, "-1/9223372036854775808"},
		}
		for _, tt := range tests {
			got, err := NewRational(tt.num, tt.den)
			if err != nil {
				t.Errorf("NewRational(%v, %v) failed: %v", tt.num, tt.den, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewRational(%v, %v) = %v, want %v", tt.num, tt.den, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewRational(1, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("NewRational(1, 0) failed with %v, want %v", err, ErrDivisionByZero)
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewRational(1, 0) did not panic")
			}
		}()
		MustNewRational(1, 0)
	})
}

func TestNewRationalFromIntegers(t *testing.T) {
	num := MustParseInteger("123456789123456789000")
	den := MustParseInteger("-1000000000")
	got, err := NewRationalFromIntegers(num, den)
	if err != nil {
		t.Fatalf("NewRationalFromIntegers(%v, %v) failed: %v", num, den, err)
	}
	if want := "-123456789123456789/1000000"; got.String() != want {
		t.Errorf("NewRationalFromIntegers(%v, %v) = %v, want %v", num, den, got, want)
	}
	if num.String() != "123456789123456789000" || den.String() != "-1000000000" {
		t.Errorf("NewRationalFromIntegers modified its arguments: %v, %v", num, den)
	}

	if _, err := NewRationalFromIntegers(num, Integer{}); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NewRationalFromIntegers(%v, 0) failed with %v, want %v", num, err, ErrDivisionByZero)
	}

	x := MustParseInteger("-42")
	if got := NewRationalFromInteger(x); got.String() != "-42" || !got.IsInt() {
		t.Errorf("NewRationalFromInteger(%v) = %v, want -42", x, got)
	}
}

func TestParseRational(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"0/5", "0"},
			{"-0/5", "0"},
			{"7", "7"},
			{"2/4", "1/2"},
			{"-2/4", "-1/2"},
			{"10/5", "2"},
			{"1000000000/3000000000", "1/3"},
			{"123456789123456789/987654321987654321", "13717421/109739369"},
		}
		for _, tt := range tests {
			got, err := ParseRational(tt.s)
			if err != nil {
				t.Errorf("ParseRational(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseRational(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":            {"", ErrMalformedLiteral},
			"slash only":       {"/", ErrMalformedLiteral},
			"no numerator":     {"/2", ErrMalformedLiteral},
			"no denominator":   {"1/", ErrMalformedLiteral},
			"signed den":       {"1/-2", ErrMalformedLiteral},
			"leading zero num": {"01/2", ErrMalformedLiteral},
			"leading zero den": {"1/02", ErrMalformedLiteral},
			"two slashes":      {"1/2/3", ErrMalformedLiteral},
			"decimal":          {"0.5", ErrMalformedLiteral},
			"zero den":         {"1/0", ErrDivisionByZero},
		}
		for name, tt := range tests {
			_, err := ParseRational(tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: ParseRational(%q) failed with %v, want %v", name, tt.s, err, tt.want)
			}
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRational(\"1/0\") did not panic")
			}
		}()
		MustParseRational("1/0")
	})
}

func TestRational_Accessors(t *testing.T) {
	tests := []struct {
		r                   string
		wantSign            Sign
		wantNum, wantDen    string
		wantTrunc           string
		wantIsInt, wantZero bool
	}{
		{"0", Zero, "0", "1", "0", true, true},
		{"5", Positive, "5", "1", "5", true, false},
		{"-7/2", Negative, "-7", "2", "-3", false, false},
		{"1/3", Positive, "1", "3", "0", false, false},
		{"-1000000001/1000000000", Negative, "-1000000001", "1000000000", "-1", false, false},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		if got := r.Sign(); got != tt.wantSign {
			t.Errorf("%v.Sign() = %v, want %v", r, got, tt.wantSign)
		}
		if got := r.Num(); got.String() != tt.wantNum {
			t.Errorf("%v.Num() = %v, want %v", r, got, tt.wantNum)
		}
		if got := r.Denom(); got.String() != tt.wantDen {
			t.Errorf("%v.Denom() = %v, want %v", r, got, tt.wantDen)
		}
		if got := r.Trunc(); got.String() != tt.wantTrunc {
			t.Errorf("%v.Trunc() = %v, want %v", r, got, tt.wantTrunc)
		}
		if got := r.IsInt(); got != tt.wantIsInt {
			t.Errorf("%v.IsInt() = %v, want %v", r, got, tt.wantIsInt)
		}
		if got := r.IsZero(); got != tt.wantZero {
			t.Errorf("%v.IsZero() = %v, want %v", r, got, tt.wantZero)
		}
	}
}

func TestRational_Add(t *testing.T) {
	tests := []struct {
		r, s, want string
	}{
		{"0", "0", "0"},
		{"0", "1/2", "1/2"},
		{"1/2", "1/2", "1"},
		{"1/2", "1/3", "5/6"},
		{"1/2", "-1/3", "1/6"},
		{"-1/2", "1/3", "-1/6"},
		{"1/3", "-1/2", "-1/6"},
		{"1/6", "1/3", "1/2"},
		{"-1/2", "1/2", "0"},
		{"999999999/1000000000", "1/1000000000", "1"},
		{"1/999999999", "1/999999999", "2/999999999"},
	}
	for _, tt := range tests {
		r, s := MustParseRational(tt.r), MustParseRational(tt.s)
		if got := r.Add(s); got.String() != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", r, s, got, tt.want)
		}
		if got := s.Add(r); got.String() != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", s, r, got, tt.want)
		}
	}
}

func TestRational_Sub(t *testing.T) {
	tests := []struct {
		r, s, want string
	}{
		{"0", "1/2", "-1/2"},
		{"1/2", "1/3", "1/6"},
		{"1/3", "1/2", "-1/6"},
		{"-1/2", "-1/2", "0"},
		{"3/4", "-1/4", "1"},
	}
	for _, tt := range tests {
		r, s := MustParseRational(tt.r), MustParseRational(tt.s)
		if got := r.Sub(s); got.String() != tt.want {
			t.Errorf("%v.Sub(%v) = %v, want %v", r, s, got, tt.want)
		}
	}

	r := MustParseRational("-7/3")
	r.SubAssign(r)
	if !r.IsZero() {
		t.Errorf("r.SubAssign(r) = %v, want 0", r)
	}
}

func TestRational_Mul(t *testing.T) {
	tests := []struct {
		r, s, want string
	}{
		{"0", "1/2", "0"},
		{"1/2", "2", "1"},
		{"2/3", "3/4", "1/2"},
		{"-2/3", "3/4", "-1/2"},
		{"-2/3", "-3/4", "1/2"},
		{"1000000000/3", "3/1000000000", "1"},
	}
	for _, tt := range tests {
		r, s := MustParseRational(tt.r), MustParseRational(tt.s)
		if got := r.Mul(s); got.String() != tt.want {
			t.Errorf("%v.Mul(%v) = %v, want %v", r, s, got, tt.want)
		}
		z := r
		z.MulAssign(s)
		if z.String() != tt.want {
			t.Errorf("%v.MulAssign(%v) = %v, want %v", r, s, z, tt.want)
		}
	}
}

func TestRational_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, s, want string
		}{
			{"0", "1/2", "0"},
			{"1", "3", "1/3"},
			{"1/2", "1/4", "2"},
			{"-1/2", "1/4", "-2"},
			{"1/2", "-3/4", "-2/3"},
			{"2", "4", "1/2"},
		}
		for _, tt := range tests {
			r, s := MustParseRational(tt.r), MustParseRational(tt.s)
			got, err := r.Quo(s)
			if err != nil {
				t.Errorf("%v.Quo(%v) failed: %v", r, s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Quo(%v) = %v, want %v", r, s, got, tt.want)
			}
			if back := got.Mul(s); !back.Equal(r) {
				t.Errorf("%v.Quo(%v).Mul(%v) = %v, want %v", r, s, s, back, r)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseRational("1/2")
		if got, err := r.Quo(Rational{}); !errors.Is(err, ErrDivisionByZero) || !got.IsZero() {
			t.Errorf("%v.Quo(0) = (%v, %v), want (0, %v)", r, got, err, ErrDivisionByZero)
		}
		z := r
		if err := z.QuoAssign(Rational{}); err == nil || !z.IsZero() {
			t.Errorf("%v.QuoAssign(0) = (%v, %v), want (0, error)", r, z, err)
		}
	})
}

func TestRational_Inv(t *testing.T) {
	tests := []struct {
		r, want string
	}{
		{"1/2", "2"},
		{"-1/3", "-3"},
		{"7", "1/7"},
		{"-22/7", "-7/22"},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		got, err := r.Inv()
		if err != nil {
			t.Errorf("%v.Inv() failed: %v", r, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%v.Inv() = %v, want %v", r, got, tt.want)
		}
		if !got.Equal(MustParseRational(tt.want)) {
			t.Errorf("%v.Inv() = %v is not equal to %v", r, got, tt.want)
		}
	}
	if _, err := (Rational{}).Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("0.Inv() failed with %v, want %v", err, ErrDivisionByZero)
	}
}

func TestRational_NegAbs(t *testing.T) {
	tests := []struct {
		r, wantNeg, wantAbs string
	}{
		{"0", "0", "0"},
		{"1/2", "-1/2", "1/2"},
		{"-1/2", "1/2", "1/2"},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		if got := r.Neg(); got.String() != tt.wantNeg {
			t.Errorf("%v.Neg() = %v, want %v", r, got, tt.wantNeg)
		}
		if got := r.Abs(); got.String() != tt.wantAbs {
			t.Errorf("%v.Abs() = %v, want %v", r, got, tt.wantAbs)
		}
	}
}

func TestRational_Cmp(t *testing.T) {
	tests := []struct {
		r, s string
		want int
	}{
		{"0", "0", 0},
		{"1/2", "1/2", 0},
		{"1/2", "2/4", 0},
		{"1/3", "1/2", -1},
		{"-1/3", "-1/2", 1},
		{"-1/3", "0", -1},
		{"0", "1/1000000000", -1},
		{"999999999/1000000000", "1", -1},
		{"1000000001/1000000000", "1", 1},
	}
	for _, tt := range tests {
		r, s := MustParseRational(tt.r), MustParseRational(tt.s)
		if got := r.Cmp(s); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", r, s, got, tt.want)
		}
		if got := s.Cmp(r); got != -tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", s, r, got, -tt.want)
		}
		if got := r.Equal(s); got != (tt.want == 0) {
			t.Errorf("%v.Equal(%v) = %v, want %v", r, s, got, tt.want == 0)
		}
	}
}

func TestRational_AsDecimal(t *testing.T) {
	tests := []struct {
		r    string
		prec int
		want string
	}{
		{"0", 0, "0"},
		{"0", 3, "0.000"},
		{"1/3", 5, "0.33333"},
		{"1/3", 0, "0"},
		{"1/3", -1, "0"},
		{"2/3", 9, "0.666666666"},
		{"2/3", 10, "0.6666666666"},
		{"2/3", 20, "0.66666666666666666666"},
		{"7", 2, "7.00"},
		{"-7/2", 1, "-3.5"},
		{"-7/2", 0, "-3"},
		{"-1/3", 2, "-0.33"},
		{"-1/1000", 2, "-0.00"},
		{"1/1000000000", 9, "0.000000001"},
		{"1/1000000000", 8, "0.00000000"},
		{"1000000001/1000000000", 12, "1.000000001000"},
		{"123456789123456789/1000", 3, "123456789123456.789"},
		{"22/7", 18, "3.142857142857142857"},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		if got := r.AsDecimal(tt.prec); got != tt.want {
			t.Errorf("%v.AsDecimal(%v) = %q, want %q", r, tt.prec, got, tt.want)
		}
	}
}

func TestRational_Float64(t *testing.T) {
	tests := []struct {
		r      string
		want   float64
		wantOk bool
	}{
		{"0", 0, true},
		{"1/2", 0.5, true},
		{"-1/4", -0.25, true},
		{"1/3", 1.0 / 3, true},
		{"22/7", 22.0 / 7, true},
		{"123456789", 123456789, true},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		got, ok := r.Float64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.Float64() = (%v, %v), want (%v, %v)", r, got, ok, tt.want, tt.wantOk)
		}
	}

	huge := NewRationalFromInteger(NewInteger(10).Lsh(40))
	if _, ok := huge.Float64(); ok {
		t.Errorf("%v.Float64() succeeded, want failure", huge)
	}
}

func TestRational_Format(t *testing.T) {
	tests := []struct {
		r, format, want string
	}{
		// %T verb
		{"1/3", "%T", "bignum.Rational"},

		// %s and %v verbs
		{"1/3", "%s", "1/3"},
		{"-1/3", "%v", "-1/3"},
		{"1/3", "%+v", "+1/3"},
		{"1/3", "%6v", "   1/3"},
		{"1/3", "%-6v", "1/3   "},

		// %q verb
		{"-1/3", "%q", "\"-1/3\""},

		// %f verb
		{"1/3", "%f", "0.333333"},
		{"-1/3", "%.2f", "-0.33"},
		{"2", "%.0f", "2"},
		{"1/8", "%8.3f", "   0.125"},
		{"-1/8", "%08.3f", "-000.125"},

		// wrong verbs
		{"1/3", "%d", "%!d(bignum.Rational=1/3)"},
	}
	for _, tt := range tests {
		r := MustParseRational(tt.r)
		got := fmt.Sprintf(tt.format, r)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, r, got, tt.want)
		}
	}
}

func TestRational_Scan(t *testing.T) {
	var r, s Rational
	n, err := fmt.Sscan("2/4 -3", &r, &s)
	if err != nil {
		t.Fatalf("fmt.Sscan() failed: %v", err)
	}
	if n != 2 || r.String() != "1/2" || s.String() != "-3" {
		t.Errorf("fmt.Sscan() = (%v, %v, %v), want (2, 1/2, -3)", n, r, s)
	}
}

func TestRational_MarshalText(t *testing.T) {
	tests := []string{"0", "-1/2", "123456789123456789/2"}
	for _, s := range tests {
		r := MustParseRational(s)
		text, err := r.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", r, err)
			continue
		}
		var got Rational
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if !got.Equal(r) {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, r)
		}
	}
}

func TestRational_Musts(t *testing.T) {
	r := MustParseRational("1/2")
	if got := r.MustQuo(MustParseRational("1/4")); got.String() != "2" {
		t.Errorf("%v.MustQuo(1/4) = %v, want 2", r, got)
	}
	if got := r.MustInv(); got.String() != "2" {
		t.Errorf("%v.MustInv() = %v, want 2", r, got)
	}

	t.Run("panic", func(t *testing.T) {
		tests := map[string]func(){
			"MustQuo": func() { r.MustQuo(Rational{}) },
			"MustInv": func() { Rational{}.MustInv() },
		}
		for name, f := range tests {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%v did not panic", name)
					}
				}()
				f()
			}()
		}
	})
}

func TestRational_Properties(t *testing.T) {
	var rats []Rational
	for _, n := range corpus {
		for _, d := range []string{"1", "7", "-13", "999999999", "1000000000"} {
			r, err := NewRationalFromIntegers(MustParseInteger(n), MustParseInteger(d))
			if err != nil {
				t.Fatalf("NewRationalFromIntegers(%v, %v) failed: %v", n, d, err)
			}
			rats = append(rats, r)
		}
	}
	unit := MustNewRational(1, 1)

	for _, a := range rats {
		if !a.IsZero() {
			if g := MustGCD(a.Num().Abs(), a.Denom()); g.Cmp(NewInteger(1)) != 0 {
				t.Errorf("%v is not in lowest terms, gcd is %v", a, g)
			}
			if got := a.Mul(a.MustInv()); !got.Equal(unit) {
				t.Errorf("%v * 1/%v = %v, want 1", a, a, got)
			}
			if got := a.MustQuo(a); !got.Equal(unit) {
				t.Errorf("%v / %v = %v, want 1", a, a, got)
			}
		}
		if !a.Denom().IsPos() {
			t.Errorf("%v.Denom() = %v, want positive", a, a.Denom())
		}
		if got := a.Add(a.Neg()); !got.IsZero() {
			t.Errorf("%v + (%v) = %v, want 0", a, a.Neg(), got)
		}
		if got := a.Sub(a); !got.IsZero() {
			t.Errorf("%v - %v = %v, want 0", a, a, got)
		}
	}

	// One value per numerator, with rotating denominators,
	// keeps the triple loop small.
	var sample []Rational
	for i := 0; i < len(rats); i += 5 {
		sample = append(sample, rats[i+i/5%5])
	}
	for _, a := range sample {
		for _, b := range sample {
			if got, want := a.Add(b), b.Add(a); !got.Equal(want) {
				t.Errorf("%v + %v = %v, %v + %v = %v", a, b, got, b, a, want)
			}
			if got, want := a.Mul(b), b.Mul(a); !got.Equal(want) {
				t.Errorf("%v * %v = %v, %v * %v = %v", a, b, got, b, a, want)
			}
			if !b.IsZero() {
				if got := a.MustQuo(b).Mul(b); !got.Equal(a) {
					t.Errorf("%v / %v * %v = %v, want %v", a, b, b, got, a)
				}
			}
			for _, c := range sample {
				if got, want := a.Add(b).Add(c), a.Add(b.Add(c)); !got.Equal(want) {
					t.Errorf("(%v + %v) + %v = %v, want %v", a, b, c, got, want)
				}
				if got, want := a.Mul(b).Mul(c), a.Mul(b.Mul(c)); !got.Equal(want) {
					t.Errorf("(%v * %v) * %v = %v, want %v", a, b, c, got, want)
				}
				if got, want := a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)); !got.Equal(want) {
					t.Errorf("%v * (%v + %v) = %v, want %v", a, b, c, got, want)
				}
			}
		}
	}
}
