package common

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Random returns a uniformly chosen value of {0, 1/2^bits, ..., (2^bits-1)/2^bits}
// read from crypto/rand.
func Random(bits int) (Rational, error) {
	return RandomFrom(bits, rand.Reader)
}

// RandomFrom is Random with the caller's entropy source, a fixed source
// gives reproducible values.
func RandomFrom(bits int, src io.Reader) (Rational, error) {
	if bits <= 0 {
		return Zero, fmt.Errorf("%w: random bits %d", ErrInvalidArgument, bits)
	}
	if src == nil {
		return Zero, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	limit := new(big.Int).Lsh(bigOne, uint(bits))
	num, err := rand.Int(src, limit)
	if err != nil {
		return Zero, err
	}
	if num.Sign() == 0 {
		return Zero, nil
	}
	// num < 2^bits, so at least one factor of two stays in the denominator
	shift := num.TrailingZeroBits()
	num.Rsh(num, shift)
	return newTrusted(num, limit.Rsh(limit, shift), 1, false, false), nil
}
