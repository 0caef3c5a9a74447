package common

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
)

const (
	signZero     = 0x00
	signPositive = 0x01
	signNegative = 0xff
)

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

func (x *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(unquoted))
}

func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rational) UnmarshalText(b []byte) error {
	r, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// MarshalMsgpack writes a sign byte, then for non-zero values the uvarint
// length of the numerator, the numerator and the denominator magnitudes.
func (x Rational) MarshalMsgpack() ([]byte, error) {
	if x.sign == 0 {
		return []byte{signZero}, nil
	}
	num, den := x.n().Bytes(), x.d().Bytes()
	buf := make([]byte, 1+binary.MaxVarintLen64, 1+binary.MaxVarintLen64+len(num)+len(den))
	buf[0] = signPositive
	if x.sign < 0 {
		buf[0] = signNegative
	}
	n := binary.PutUvarint(buf[1:], uint64(len(num)))
	buf = append(buf[:1+n], num...)
	return append(buf, den...), nil
}

func (x *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty rational data", ErrInvalidFormat)
	}
	switch data[0] {
	case signZero:
		if len(data) != 1 {
			return fmt.Errorf("%w: zero rational data %x", ErrInvalidFormat, data)
		}
		*x = Zero
		return nil
	case signPositive, signNegative:
	default:
		return fmt.Errorf("%w: rational sign %x", ErrInvalidFormat, data[0])
	}
	l, n := binary.Uvarint(data[1:])
	if n <= 0 || l == 0 || uint64(len(data)-1-n) <= l {
		return fmt.Errorf("%w: rational data %x", ErrInvalidFormat, data)
	}
	rest := data[1+n:]
	num := new(big.Int).SetBytes(rest[:l])
	den := new(big.Int).SetBytes(rest[l:])
	if data[0] == signNegative {
		num.Neg(num)
	}
	r, err := normalize(num, den)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
