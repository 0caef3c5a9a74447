package common

import (
	"fmt"
	"math/big"
)

var (
	Zero         Rational
	One          Rational
	MinusOne     Rational
	OneHalf      Rational
	MinusOneHalf Rational
	Two          Rational
	MinusTwo     Rational
	Ten          Rational
	MinusTen     Rational
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigTen  = big.NewInt(10)
)

func init() {
	Zero = newTrusted(big.NewInt(0), bigOne, 0, true, false)
	One = newTrusted(big.NewInt(1), bigOne, 1, true, true)
	MinusOne = newTrusted(big.NewInt(-1), bigOne, -1, true, false)
	OneHalf = newTrusted(big.NewInt(1), bigTwo, 1, false, false)
	MinusOneHalf = newTrusted(big.NewInt(-1), bigTwo, -1, false, false)
	Two = newTrusted(big.NewInt(2), bigOne, 1, true, false)
	MinusTwo = newTrusted(big.NewInt(-2), bigOne, -1, true, false)
	Ten = newTrusted(big.NewInt(10), bigOne, 1, true, false)
	MinusTen = newTrusted(big.NewInt(-10), bigOne, -1, true, false)
}

// Rational is an immutable rational number backed by big.Int numerator and
// denominator. Values are always fully reduced, the denominator is positive
// and zero is 0/1. The zero value is a valid zero.
//
// The big.Int values held by a Rational are shared between results and never
// modified after construction, so a Rational can be copied freely and used
// from many goroutines.
type Rational struct {
	num  *big.Int
	den  *big.Int
	sign int
	frac bool
	one  bool
}

// newTrusted skips every check, the caller must prove the pair is canonical.
func newTrusted(num, den *big.Int, sign int, integer, one bool) Rational {
	return Rational{num: num, den: den, sign: sign, frac: !integer, one: one}
}

// normalize takes ownership of num and den and may modify them.
func normalize(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Zero, fmt.Errorf("%w: denominator must be non-zero", ErrInvalidArgument)
	}
	if num.Sign() == 0 {
		return Zero, nil
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Cmp(bigOne) == 0 {
		return integerOf(num), nil
	}
	return newTrusted(num, den, num.Sign(), false, false), nil
}

// reduce is normalize for pairs whose denominator is known to be non-zero.
func reduce(num, den *big.Int) Rational {
	r, err := normalize(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// integerOf takes ownership of x.
func integerOf(x *big.Int) Rational {
	if r, ok := pooled(x); ok {
		return r
	}
	return newTrusted(x, bigOne, x.Sign(), true, false)
}

func pooled(x *big.Int) (Rational, bool) {
	if !x.IsInt64() {
		return Zero, false
	}
	switch x.Int64() {
	case 0:
		return Zero, true
	case 1:
		return One, true
	case -1:
		return MinusOne, true
	case 2:
		return Two, true
	case -2:
		return MinusTwo, true
	case 10:
		return Ten, true
	case -10:
		return MinusTen, true
	}
	return Zero, false
}

func unitFraction(den *big.Int) Rational {
	if den.Cmp(bigOne) == 0 {
		return One
	}
	return newTrusted(big.NewInt(1), den, 1, false, false)
}

func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Zero, fmt.Errorf("%w: denominator must be non-zero", ErrInvalidArgument)
	}
	if num == 0 {
		return Zero, nil
	}
	if num == den {
		return One, nil
	}
	if den == 1 {
		return NewInteger(num), nil
	}
	return normalize(big.NewInt(num), big.NewInt(den))
}

// NewRationalPanic is NewRational for literals known to be valid.
func NewRationalPanic(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func NewRationalFromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Zero, fmt.Errorf("%w: denominator must be non-zero", ErrInvalidArgument)
	}
	if num.Sign() == 0 {
		return Zero, nil
	}
	if num.Cmp(den) == 0 {
		return One, nil
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den))
}

func NewInteger(x int64) Rational {
	return integerOf(big.NewInt(x))
}

func NewIntegerFromBig(x *big.Int) Rational {
	return integerOf(new(big.Int).Set(x))
}

// NewReciprocal returns 1/den.
func NewReciprocal(den int64) (Rational, error) {
	return NewReciprocalFromBig(big.NewInt(den))
}

func NewReciprocalFromBig(den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Zero, fmt.Errorf("%w: denominator must be non-zero", ErrInvalidArgument)
	}
	if den.Sign() < 0 {
		return NewIntegerFromBig(den).Reciprocal(), nil
	}
	return unitFraction(new(big.Int).Set(den)), nil
}

func (x Rational) n() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

func (x Rational) d() *big.Int {
	if x.den == nil {
		return bigOne
	}
	return x.den
}

// Num returns a copy of the numerator, which carries the sign.
func (x Rational) Num() *big.Int {
	return new(big.Int).Set(x.n())
}

// Denom returns a copy of the denominator, always positive.
func (x Rational) Denom() *big.Int {
	return new(big.Int).Set(x.d())
}

func (x Rational) Sign() int {
	return x.sign
}

func (x Rational) IsInteger() bool {
	return !x.frac
}

func (x Rational) IsZero() bool {
	return x.sign == 0
}

func (x Rational) IsOne() bool {
	return x.one
}

func (x Rational) isTwo() bool {
	return !x.frac && x.sign > 0 && x.n().Cmp(bigTwo) == 0
}

func (x Rational) isMinusOne() bool {
	return !x.frac && x.sign < 0 && x.n().IsInt64() && x.n().Int64() == -1
}

// Check verifies the canonical form and the cached flags, reporting the
// first violated invariant.
func (x Rational) Check() error {
	n, d := x.n(), x.d()
	if d.Sign() <= 0 {
		return fmt.Errorf("%w: denominator %s is not positive", ErrInvalidState, d)
	}
	if n.Sign() == 0 && d.Cmp(bigOne) != 0 {
		return fmt.Errorf("%w: zero with denominator %s", ErrInvalidState, d)
	}
	if n.Sign() != 0 {
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
		if g.Cmp(bigOne) != 0 {
			return fmt.Errorf("%w: %s/%s not reduced by %s", ErrInvalidState, n, d, g)
		}
	}
	if x.sign != n.Sign() {
		return fmt.Errorf("%w: signum %d of %s/%s", ErrInvalidState, x.sign, n, d)
	}
	integer := d.Cmp(bigOne) == 0
	if x.frac == integer {
		return fmt.Errorf("%w: integer flag %t of %s/%s", ErrInvalidState, !x.frac, n, d)
	}
	if x.one != (integer && n.Cmp(bigOne) == 0) {
		return fmt.Errorf("%w: one flag %t of %s/%s", ErrInvalidState, x.one, n, d)
	}
	return nil
}

func (x Rational) String() string {
	if !x.frac {
		return x.n().String()
	}
	return x.n().String() + "/" + x.d().String()
}
