package common

import "math/big"

// Truncate rounds toward zero.
func (x Rational) Truncate() Rational {
	if !x.frac {
		return x
	}
	return integerOf(new(big.Int).Quo(x.n(), x.d()))
}

func (x Rational) Floor() Rational {
	if !x.frac {
		return x
	}
	// Euclidean division by a positive denominator floors
	return integerOf(new(big.Int).Div(x.n(), x.d()))
}

func (x Rational) Ceil() Rational {
	if !x.frac {
		return x
	}
	q := new(big.Int).Div(x.n(), x.d())
	return integerOf(q.Add(q, bigOne))
}

// Round returns the nearest integer, halves go up for positive values and
// down for negative values.
func (x Rational) Round() Rational {
	if !x.frac {
		return x
	}
	num := new(big.Int).Abs(x.n())
	num.Lsh(num, 1)
	num.Add(num, x.d())
	q := num.Quo(num, new(big.Int).Lsh(x.d(), 1))
	if x.sign < 0 {
		q.Neg(q)
	}
	return integerOf(q)
}

// Int returns x truncated toward zero.
func (x Rational) Int() *big.Int {
	if !x.frac {
		return x.Num()
	}
	return new(big.Int).Quo(x.n(), x.d())
}

// Int64 truncates toward zero, the result is undefined if it overflows.
func (x Rational) Int64() int64 {
	return x.Int().Int64()
}

// Int32 truncates toward zero and wraps like an int32 conversion.
func (x Rational) Int32() int32 {
	return int32(x.Int64())
}
