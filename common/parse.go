package common

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads a rational from one of these forms:
//
//	-123
//	41/152, -5/-7
//	123.456, 123.
//	123.456_789 (the digits after '_' repeat forever)
//
// Only ASCII digits are accepted and no surrounding space is allowed.
func Parse(s string) (Rational, error) {
	if s == "" {
		return Zero, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		if strings.IndexByte(s[i+1:], '/') >= 0 {
			return Zero, fmt.Errorf("%w: more than one '/' in %q", ErrInvalidFormat, s)
		}
		num, err := parseInteger(s[:i])
		if err != nil {
			return Zero, fmt.Errorf("numerator of %q: %w", s, err)
		}
		den, err := parseInteger(s[i+1:])
		if err != nil {
			return Zero, fmt.Errorf("denominator of %q: %w", s, err)
		}
		if den.Sign() == 0 {
			return Zero, fmt.Errorf("%w: %q", ErrDivisionByZero, s)
		}
		return normalize(num, den)
	}
	if strings.IndexByte(s, '.') < 0 {
		n, err := parseInteger(s)
		if err != nil {
			return Zero, err
		}
		return integerOf(n), nil
	}
	return parseDecimal(s)
}

// NewRationalFromString is Parse for literals known to be valid.
func NewRationalFromString(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseInteger(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(s, "-")
	if !isDigits(digits) {
		return nil, fmt.Errorf("%w: invalid integer %q", ErrInvalidFormat, s)
	}
	n, _ := new(big.Int).SetString(digits, 10)
	if len(digits) < len(s) {
		n.Neg(n)
	}
	return n, nil
}

func parseDecimal(s string) (Rational, error) {
	body := strings.TrimPrefix(s, "-")
	negative := len(body) < len(s)

	dot := strings.IndexByte(body, '.')
	whole, fraction, repeating := body[:dot], body[dot+1:], ""
	if u := strings.IndexByte(fraction, '_'); u >= 0 {
		fraction, repeating = fraction[:u], fraction[u+1:]
	}
	if !isDigits(whole) {
		return Zero, fmt.Errorf("%w: invalid integer part in %q", ErrInvalidFormat, s)
	}
	if fraction != "" && !isDigits(fraction) {
		return Zero, fmt.Errorf("%w: invalid fraction part in %q", ErrInvalidFormat, s)
	}
	if repeating != "" && !isDigits(repeating) {
		return Zero, fmt.Errorf("%w: invalid repeating part in %q", ErrInvalidFormat, s)
	}

	trimmed := strings.TrimRight(fraction, "0")
	num, _ := new(big.Int).SetString(whole+trimmed, 10)
	if negative {
		num.Neg(num)
	}
	fixed := reduce(num, pow10(len(trimmed)))

	rep, _ := new(big.Int).SetString("0"+repeating, 10)
	if rep.Sign() == 0 {
		return fixed, nil
	}
	if negative {
		rep.Neg(rep)
	}
	// 0.000_ddd == ddd / ((10^len(ddd) - 1) * 10^len(000))
	den := pow10(len(repeating))
	den.Sub(den, bigOne)
	den.Mul(den, pow10(len(fraction)))
	return fixed.Add(reduce(rep, den)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
