package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalRounding(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		x                            Rational
		floor, ceil, round, truncate int64
	}{
		{Zero, 0, 0, 0, 0},
		{NewInteger(4711), 4711, 4711, 4711, 4711},
		{NewInteger(-4711), -4711, -4711, -4711, -4711},
		{rat(1, 3), 0, 1, 0, 0},
		{rat(-1, 3), -1, 0, 0, 0},
		{rat(5, 3), 1, 2, 2, 1},
		{rat(-5, 3), -2, -1, -2, -1},
		{rat(7, 2), 3, 4, 4, 3},
		{rat(-7, 2), -4, -3, -4, -3},
		{OneHalf, 0, 1, 1, 0},
		{MinusOneHalf, -1, 0, -1, 0},
		{rat(77, 10), 7, 8, 8, 7},
		{rat(-77, 10), -8, -7, -8, -7},
		{rat(12345678, 100), 123456, 123457, 123457, 123456},
	}
	for _, c := range cases {
		assertRational(t, NewInteger(c.floor), c.x.Floor())
		assertRational(t, NewInteger(c.ceil), c.x.Ceil())
		assertRational(t, NewInteger(c.round), c.x.Round())
		assertRational(t, NewInteger(c.truncate), c.x.Truncate())
		assert.Equal(c.truncate, c.x.Int64(), c.x.String())
		assert.Equal(int32(c.truncate), c.x.Int32(), c.x.String())
		assert.Equal(c.truncate, c.x.Int().Int64(), c.x.String())
	}

	large := NewRationalFromString("100000000000000000000001/10")
	assert.Equal("10000000000000000000000", large.Floor().String())
	assert.Equal("10000000000000000000001", large.Ceil().String())
	assert.Equal("10000000000000000000000", large.Round().String())
	assert.Equal("-10000000000000000000000", large.Neg().Truncate().String())
}
