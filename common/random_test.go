package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	r, err := RandomFrom(8, bytes.NewReader([]byte{0x80}))
	assert.Nil(err)
	assertRational(t, OneHalf, r)
	r, err = RandomFrom(4, bytes.NewReader([]byte{0xfc}))
	assert.Nil(err)
	assertRational(t, rat(3, 4), r)
	r, err = RandomFrom(8, bytes.NewReader([]byte{0x00}))
	assert.Nil(err)
	assertRational(t, Zero, r)
	r, err = RandomFrom(8, bytes.NewReader([]byte{0x01}))
	assert.Nil(err)
	assertRational(t, rat(1, 256), r)
	r, err = RandomFrom(16, bytes.NewReader([]byte{0x30, 0x00}))
	assert.Nil(err)
	assertRational(t, rat(3, 16), r)

	_, err = RandomFrom(0, bytes.NewReader([]byte{0x80}))
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = RandomFrom(-8, bytes.NewReader([]byte{0x80}))
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = RandomFrom(8, nil)
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = RandomFrom(8, bytes.NewReader(nil))
	assert.NotNil(err)
	_, err = Random(0)
	assert.ErrorIs(err, ErrInvalidArgument)

	for _, bits := range []int{1, 7, 64, 200} {
		for i := 0; i < 50; i++ {
			r, err := Random(bits)
			assert.Nil(err)
			assert.Nil(r.Check())
			assert.True(r.Sign() >= 0)
			assert.Equal(-1, r.Cmp(One))
			d := r.Denom()
			assert.Equal(1, d.BitLen()-int(d.TrailingZeroBits()), r.String())
			assert.True(d.BitLen() <= bits+1, r.String())
		}
	}
}
