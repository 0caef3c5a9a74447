package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	valid := map[string]Rational{
		"0":         Zero,
		"-0":        Zero,
		"12345":     NewInteger(12345),
		"-12345":    NewInteger(-12345),
		"5/7":       rat(5, 7),
		"-5/-7":     rat(5, 7),
		"5/-7":      rat(-5, 7),
		"123/456":   rat(41, 152),
		"0/17":      Zero,
		"10/2":      NewInteger(5),
		"123.":      NewInteger(123),
		"123.0":     NewInteger(123),
		"1.50":      rat(3, 2),
		"-0.25":     rat(-1, 4),
		"123.456":   rat(15432, 125),
		"1._3":      rat(4, 3),
		"0._9":      One,
		"0._142857": rat(1, 7),
		"0.1_6":     rat(1, 6),
		"-0.1_6":    rat(-1, 6),
		"0.00_3":    rat(1, 300),
		"2.50_0":    rat(5, 2),
		"3.14_15":   rat(31101, 9900),
		"-1._09":    rat(-12, 11),
	}
	for s, expected := range valid {
		r, err := Parse(s)
		assert.Nil(err, s)
		assertRational(t, expected, r)
	}

	formats := []string{
		"", "abc", "abc/def", "123/def", "abc/456", "5/7/", "1/2/3", "1_3", ".5", "-.5",
		"--1", "+1", " 1", "1 ", "1.2.3", "1._x", "1.x_3", "1,5", "/5", "5/", "0x10", "1e3",
	}
	for _, s := range formats {
		_, err := Parse(s)
		assert.ErrorIs(err, ErrInvalidFormat, s)
	}

	for _, s := range []string{"1/0", "0/0", "-3/-0"} {
		_, err := Parse(s)
		assert.ErrorIs(err, ErrDivisionByZero, s)
	}

	assert.ErrorIs(panicError(func() { NewRationalFromString("1/0") }), ErrDivisionByZero)
}

func TestParseRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, x := range []Rational{Zero, One, MinusOneHalf, rat(355, 113), rat(-19, 7), NewInteger(-42)} {
		r, err := Parse(x.String())
		assert.Nil(err)
		assertRational(t, x, r)
	}

	x := rat(-7, 3)
	for i := 0; i < 40; i++ {
		x = x.Mul(rat(-11, 13))
		r, err := Parse(x.String())
		assert.Nil(err)
		assertRational(t, x, r)
	}
}
