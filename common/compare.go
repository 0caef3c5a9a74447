package common

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

const hashMultiplier = 1681302443

func (x Rational) Equal(y Rational) bool {
	return x.sign == y.sign && x.n().Cmp(y.n()) == 0 && x.d().Cmp(y.d()) == 0
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
// Products are only computed when the signs match and the denominators differ.
func (x Rational) Cmp(y Rational) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	if x.sign == 0 {
		return 0
	}
	if !x.frac && !y.frac {
		return x.n().Cmp(y.n())
	}
	if x.d().Cmp(y.d()) == 0 {
		return x.n().Cmp(y.n())
	}
	a := new(big.Int).Mul(x.n(), y.d())
	return a.Cmp(new(big.Int).Mul(y.n(), x.d()))
}

// Hash is consistent with Equal. The odd multiplier keeps a/b and b/a apart.
func (x Rational) Hash() uint64 {
	h := xxhash.Sum64(x.n().Bytes())
	if x.sign < 0 {
		h = ^h
	}
	return h + hashMultiplier*xxhash.Sum64(x.d().Bytes())
}
