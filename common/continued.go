package common

import (
	"fmt"
	"math/big"
)

// ContinuedFraction returns the terms a0, a1, ..., an of the finite simple
// continued fraction x = a0 + 1/(a1 + 1/(... + 1/an)). The first term is the
// floor of x and may be negative, all later terms are positive.
func (x Rational) ContinuedFraction() []*big.Int {
	if !x.frac {
		return []*big.Int{x.Num()}
	}
	a, b := x.Num(), x.Denom()
	var terms []*big.Int
	for b.Sign() != 0 {
		q, r := new(big.Int).DivMod(a, b, new(big.Int))
		terms = append(terms, q)
		a, b = b, r
	}
	return terms
}

// NewRationalFromContinuedFraction evaluates a0 + 1/(a1 + 1/(... + 1/an))
// from the innermost term outward.
func NewRationalFromContinuedFraction(terms ...*big.Int) (Rational, error) {
	if len(terms) == 0 {
		return Zero, fmt.Errorf("%w: empty continued fraction", ErrInvalidArgument)
	}
	x := NewIntegerFromBig(terms[len(terms)-1])
	for i := len(terms) - 2; i >= 0; i-- {
		if x.sign == 0 {
			return Zero, fmt.Errorf("%w: continued fraction tail from term %d is zero", ErrDivisionByZero, i+1)
		}
		x = x.Reciprocal().Add(NewIntegerFromBig(terms[i]))
	}
	return x, nil
}

func NewRationalFromContinuedFractionInt64(terms ...int64) (Rational, error) {
	bs := make([]*big.Int, len(terms))
	for i, t := range terms {
		bs[i] = big.NewInt(t)
	}
	return NewRationalFromContinuedFraction(bs...)
}
