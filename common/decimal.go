package common

import (
	"fmt"
	"math/big"

	"github.com/MixinNetwork/rational/config"
	"github.com/shopspring/decimal"
)

type RoundingMode int

const (
	RoundDown RoundingMode = iota
	RoundUp
	RoundFloor
	RoundCeiling
	RoundHalfUp
	RoundHalfDown
	RoundHalfEven
)

var roundingModeNames = []string{
	RoundDown:     "down",
	RoundUp:       "up",
	RoundFloor:    "floor",
	RoundCeiling:  "ceiling",
	RoundHalfUp:   "half-up",
	RoundHalfDown: "half-down",
	RoundHalfEven: "half-even",
}

func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingModeNames {
		if name == s {
			return RoundingMode(m), nil
		}
	}
	return RoundDown, fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidArgument, s)
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

// Decimal truncates x to config.DecimalScale digits after the point.
func (x Rational) Decimal() decimal.Decimal {
	return x.DecimalRound(config.DecimalScale, RoundDown)
}

// DecimalRound returns x with scale digits after the point, rounded by mode.
// Integers are returned exactly without padding.
func (x Rational) DecimalRound(scale int32, mode RoundingMode) decimal.Decimal {
	if !x.frac {
		return decimal.NewFromBigInt(x.n(), 0)
	}
	num, den := x.Num(), x.Denom()
	if scale >= 0 {
		num.Mul(num, pow10(int(scale)))
	} else {
		den.Mul(den, pow10(int(-scale)))
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 && mode.away(x.sign, q, r, den) {
		q.Add(q, big.NewInt(int64(x.sign)))
	}
	return decimal.NewFromBigInt(q, -scale)
}

// away decides whether the truncated quotient q moves one unit away from zero.
func (m RoundingMode) away(sign int, q, r, den *big.Int) bool {
	switch m {
	case RoundUp:
		return true
	case RoundFloor:
		return sign < 0
	case RoundCeiling:
		return sign > 0
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		switch twice.Cmp(den) {
		case 1:
			return true
		case -1:
			return false
		}
		if m == RoundHalfEven {
			return q.Bit(0) == 1
		}
		return m == RoundHalfUp
	}
	return false
}

// DecimalString formats x with exactly scale digits after the point.
func (x Rational) DecimalString(scale int32) string {
	return x.DecimalRound(scale, RoundHalfUp).StringFixed(scale)
}

func (x Rational) Float64() float64 {
	f, _ := x.Decimal().Float64()
	return f
}

func NewRationalFromDecimal(d decimal.Decimal) Rational {
	r, err := Parse(d.String())
	if err != nil {
		panic(fmt.Errorf("NewRationalFromDecimal: %s %s", d, err.Error()))
	}
	return r
}
