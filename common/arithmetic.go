package common

import (
	"fmt"
	"math/big"
)

func (x Rational) Add(y Rational) Rational {
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if !x.frac && !y.frac {
		return integerOf(new(big.Int).Add(x.n(), y.n()))
	}
	if x.IsNegationOf(y) {
		return Zero
	}
	num := new(big.Int).Mul(x.n(), y.d())
	num.Add(num, new(big.Int).Mul(y.n(), x.d()))
	return reduce(num, new(big.Int).Mul(x.d(), y.d()))
}

func (x Rational) Sub(y Rational) Rational {
	if x.Equal(y) {
		return Zero
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == 0 {
		return y.Neg()
	}
	if !x.frac && !y.frac {
		return integerOf(new(big.Int).Sub(x.n(), y.n()))
	}
	num := new(big.Int).Mul(x.n(), y.d())
	num.Sub(num, new(big.Int).Mul(y.n(), x.d()))
	return reduce(num, new(big.Int).Mul(x.d(), y.d()))
}

func (x Rational) Mul(y Rational) Rational {
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	if x.one {
		return y
	}
	if y.one {
		return x
	}
	if y.isTwo() {
		return x.Redouble()
	}
	if x.isTwo() {
		return y.Redouble()
	}
	if x.IsReciprocalOf(y) {
		return One
	}
	num := new(big.Int).Mul(x.n(), y.n())
	return reduce(num, new(big.Int).Mul(x.d(), y.d()))
}

// Div panics with ErrDivisionByZero if y is zero.
func (x Rational) Div(y Rational) Rational {
	if y.sign == 0 {
		panic(fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x))
	}
	if x.sign == 0 {
		return Zero
	}
	if y.one {
		return x
	}
	if x.Equal(y) {
		return One
	}
	if y.isTwo() {
		return x.Halve()
	}
	num := new(big.Int).Mul(x.n(), y.d())
	return reduce(num, new(big.Int).Mul(x.d(), y.n()))
}

// DivInteger returns x/y truncated toward zero.
func (x Rational) DivInteger(y Rational) *big.Int {
	if y.sign == 0 {
		panic(fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x))
	}
	if x.sign == 0 {
		return new(big.Int)
	}
	if x.Equal(y) {
		return big.NewInt(1)
	}
	if !x.frac {
		if y.one {
			return x.Num()
		}
		if !y.frac {
			return new(big.Int).Quo(x.n(), y.n())
		}
		num := new(big.Int).Mul(x.n(), y.d())
		return num.Quo(num, y.n())
	}
	if !y.frac {
		den := new(big.Int).Mul(y.n(), x.d())
		return den.Quo(x.n(), den)
	}
	num := new(big.Int).Mul(x.n(), y.d())
	return num.Quo(num, new(big.Int).Mul(y.n(), x.d()))
}

// DivIntegerAndRemainder returns q and r with x == q*y + r, q truncated toward
// zero, so r is zero or has the sign of x and |r| < |y|.
func (x Rational) DivIntegerAndRemainder(y Rational) (*big.Int, Rational) {
	if y.sign == 0 {
		panic(fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x))
	}
	if x.sign == 0 {
		return new(big.Int), Zero
	}
	if x.Equal(y) {
		return big.NewInt(1), Zero
	}
	if !x.frac && !y.frac {
		if y.one {
			return x.Num(), Zero
		}
		q, r := new(big.Int).QuoRem(x.n(), y.n(), new(big.Int))
		return q, integerOf(r)
	}
	// both sides over the common denominator x.d*y.d
	a := new(big.Int).Mul(x.n(), y.d())
	b := new(big.Int).Mul(y.n(), x.d())
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	return q, reduce(r, new(big.Int).Mul(x.d(), y.d()))
}

// Mod returns the remainder of x/y taking the sign of y, so the result lies in
// [0, y) for positive y and in (y, 0] for negative y.
func (x Rational) Mod(y Rational) Rational {
	if y.sign == 0 {
		panic(fmt.Errorf("%w: %s mod 0", ErrDivisionByZero, x))
	}
	if x.sign == 0 {
		return Zero
	}
	_, r := x.DivIntegerAndRemainder(y)
	if r.sign != 0 && r.sign != y.sign {
		return r.Add(y)
	}
	return r
}

// Pow panics with ErrInvalidOperation for 0^0 and with ErrDivisionByZero for
// negative powers of zero.
func (x Rational) Pow(n int) Rational {
	if n == 0 {
		if x.sign == 0 {
			panic(fmt.Errorf("%w: 0^0", ErrInvalidOperation))
		}
		return One
	}
	if x.sign == 0 {
		if n < 0 {
			panic(fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n))
		}
		return Zero
	}
	if x.one {
		return One
	}
	if x.isMinusOne() {
		if n%2 == 0 {
			return One
		}
		return MinusOne
	}
	switch n {
	case 1:
		return x
	case 2:
		return x.Square()
	case 3:
		return x.Square().Mul(x)
	case 4:
		return x.Square().Square()
	case -1:
		return x.Reciprocal()
	case -2:
		return x.Square().Reciprocal()
	}

	e := big.NewInt(int64(n))
	e.Abs(e)
	num := new(big.Int).Exp(x.n(), e, nil)
	den := new(big.Int).Exp(x.d(), e, nil)
	if n < 0 {
		num, den = den, num
		if den.Sign() < 0 {
			num.Neg(num)
			den.Neg(den)
		}
	}
	if den.Cmp(bigOne) == 0 {
		return integerOf(num)
	}
	return newTrusted(num, den, num.Sign(), false, false)
}

// Gcd returns the largest positive rational g such that x/g and y/g are both integers.
// The result is never negative, whatever the signs of x and y, and is zero only
// when both are zero.
func (x Rational) Gcd(y Rational) Rational {
	if x.Equal(y) {
		return x.Abs()
	}
	if x.sign == 0 {
		return y.Abs()
	}
	if x.one {
		return unitFraction(y.d())
	}
	if y.sign == 0 {
		return x.Abs()
	}
	if y.one {
		return unitFraction(x.d())
	}
	// gcd(a, c) / lcm(b, d) is already reduced
	num := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x.n()), new(big.Int).Abs(y.n()))
	g := new(big.Int).GCD(nil, nil, x.d(), y.d())
	den := new(big.Int).Quo(x.d(), g)
	den.Mul(den, y.d())
	if den.Cmp(bigOne) == 0 {
		return integerOf(num)
	}
	return newTrusted(num, den, 1, false, false)
}

// Lcm returns the smallest positive rational that is an integer multiple of
// both x and y, or zero if either is zero.
func (x Rational) Lcm(y Rational) Rational {
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	if x.Equal(y) {
		return x.Abs()
	}
	return x.Reciprocal().Gcd(y.Reciprocal()).Reciprocal()
}

func (x Rational) Reciprocal() Rational {
	if x.sign == 0 {
		panic(fmt.Errorf("%w: 1 / 0", ErrDivisionByZero))
	}
	if x.one {
		return One
	}
	num, den := x.d(), x.n()
	if x.sign < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	if den.Cmp(bigOne) == 0 {
		return integerOf(new(big.Int).Set(num))
	}
	return newTrusted(num, den, x.sign, false, false)
}

func (x Rational) Neg() Rational {
	if x.sign == 0 {
		return Zero
	}
	if !x.frac {
		return integerOf(new(big.Int).Neg(x.n()))
	}
	return newTrusted(new(big.Int).Neg(x.n()), x.d(), -x.sign, false, false)
}

func (x Rational) Abs() Rational {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

func (x Rational) Square() Rational {
	if x.sign == 0 {
		return Zero
	}
	if x.one || x.isMinusOne() {
		return One
	}
	num := new(big.Int).Mul(x.n(), x.n())
	den := new(big.Int).Mul(x.d(), x.d())
	return newTrusted(num, den, 1, !x.frac, false)
}

// Redouble returns 2x, shifting the denominator when it is even.
func (x Rational) Redouble() Rational {
	if x.sign == 0 {
		return Zero
	}
	if x.one {
		return Two
	}
	if x.d().Bit(0) == 0 {
		den := new(big.Int).Rsh(x.d(), 1)
		if den.Cmp(bigOne) == 0 {
			return integerOf(new(big.Int).Set(x.n()))
		}
		return newTrusted(x.n(), den, x.sign, false, false)
	}
	num := new(big.Int).Lsh(x.n(), 1)
	return newTrusted(num, x.d(), x.sign, !x.frac, false)
}

// Halve returns x/2, shifting the numerator when it is even.
func (x Rational) Halve() Rational {
	if x.sign == 0 {
		return Zero
	}
	if x.one {
		return OneHalf
	}
	if x.n().Bit(0) == 0 {
		num := new(big.Int).Rsh(x.n(), 1)
		if !x.frac {
			return integerOf(num)
		}
		return newTrusted(num, x.d(), x.sign, false, false)
	}
	den := new(big.Int).Lsh(x.d(), 1)
	return newTrusted(x.n(), den, x.sign, false, false)
}

func (x Rational) Min(y Rational) Rational {
	if x.Cmp(y) < 0 {
		return x
	}
	return y
}

func (x Rational) Max(y Rational) Rational {
	if x.Cmp(y) < 0 {
		return y
	}
	return x
}

// IsReciprocalOf reports whether x*y == 1.
func (x Rational) IsReciprocalOf(y Rational) bool {
	if x.sign == 0 || x.sign != y.sign {
		return false
	}
	return x.n().CmpAbs(y.d()) == 0 && x.d().CmpAbs(y.n()) == 0
}

// IsNegationOf reports whether x+y == 0.
func (x Rational) IsNegationOf(y Rational) bool {
	if x.sign != -y.sign {
		return false
	}
	if x.sign == 0 {
		return true
	}
	return x.n().CmpAbs(y.n()) == 0 && x.d().Cmp(y.d()) == 0
}
