// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math/big"
	"math/bits"
)

// exact powers x^n with |n|×prec(x) up to this many bits are computed
// without intermediate rounding.
const exactPowBits = 1 << 20

// Pow sets rop to op1^op2. Special values follow IEEE 754 pow:
//
//	pow(x, ±0) = 1 for any x, NaN included
//	pow(+1, y) = 1 for any y, NaN included
//	pow(±0, y) = ±Inf for an odd integer y < 0 (divide-by-zero)
//	pow(±0, y) = +Inf for y < 0 not an odd integer (divide-by-zero)
//	pow(±0, y) = ±0 for an odd integer y > 0, +0 otherwise
//	pow(-1, ±Inf) = 1
//	pow(x, -Inf) = +Inf for |x| < 1, +0 for |x| > 1
//	pow(x, +Inf) = +0 for |x| < 1, +Inf for |x| > 1
//	pow(-Inf, y) = -0, +0, -Inf or +Inf like pow(-0, -y)
//	pow(+Inf, y) = +0 for y < 0, +Inf for y > 0
//	pow(x, y) = NaN for a finite x < 0 and a finite non-integer y
func Pow(rop, op1, op2 *Record, rnd RoundingMode) int {
	rop.check()
	op1.check()
	op2.check()
	x, y := op1, op2

	if !y.nan && y.f.Sign() == 0 || !x.nan && x.f.Cmp(one) == 0 {
		return SetUi(rop, 1, rnd)
	}
	if x.nan || y.nan {
		return rop.setNaN()
	}

	yOdd := isOddInt(&y.f)
	if x.f.Sign() == 0 {
		neg := x.f.Signbit() && yOdd
		if y.f.Sign() < 0 {
			raise(DivBy0)
			SetInf(rop, sign(neg))
		} else {
			SetZero(rop, sign(neg))
		}
		return 0
	}
	if y.f.IsInf() {
		c := new(big.Float).Abs(&x.f).Cmp(one)
		switch {
		case c == 0: // x = -1
			return SetUi(rop, 1, rnd)
		case (c < 0) == y.f.Signbit():
			SetInf(rop, 1)
		default:
			SetZero(rop, 1)
		}
		return 0
	}
	if x.f.IsInf() {
		neg := x.f.Signbit() && yOdd
		if y.f.Sign() < 0 {
			SetZero(rop, sign(neg))
		} else {
			SetInf(rop, sign(neg))
		}
		return 0
	}
	if x.f.Sign() < 0 && !y.f.IsInt() {
		return rop.setNaN()
	}

	neg := x.f.Signbit() && yOdd
	ax := new(big.Float).Abs(&x.f)
	arnd := absMode(rnd, neg)
	if ax.Cmp(one) == 0 {
		// x = -1, y integer
		return SetSi(rop, int64(sign(neg)), rnd)
	}

	// integer exponent: exact power, one rounding.
	if n, acc := y.f.Int64(); acc == big.Exact {
		an := uint64(abs64(n))
		if an <= exactPowBits && an*uint64(x.prec) <= exactPowBits {
			p := bf(uint(an) * x.prec)
			powUi(p, ax, an)
			r := bf(rop.prec).SetMode(arnd)
			if n > 0 {
				r.Set(p)
			} else {
				r.Quo(one, p)
			}
			return rop.storeRounded(r, neg)
		}
	}

	// y = m/2^j, m > 0: the 2^j-th root of the exact x^m.
	if y.f.Sign() > 0 {
		j := int(y.f.MinPrec()) - y.f.MantExp(nil)
		if 0 < j && j <= 8 {
			mi, _ := new(big.Float).SetMantExp(&y.f, j).Int64()
			if mi <= exactPowBits && uint64(mi)*uint64(x.prec) <= exactPowBits {
				p := bf(uint(mi) * x.prec)
				powUi(p, ax, uint64(mi))
				return rootFinite(rop, p, 1<<j, rnd)
			}
		}
	}

	t := ziv(rop, arnd, func(wp uint) (*big.Float, int) {
		return powApprox(ax, &y.f, wp)
	})
	if neg {
		rop.f.Neg(&rop.f)
		t = -t
	}
	return t
}

// powApprox returns x^y = e^(y×log x) at precision wp and its error in ulps,
// for finite x > 0 and finite y.
func powApprox(x, y *big.Float, wp uint) (*big.Float, int) {
	// log x is multiplied by y: the absolute error of the product is amplified
	// by its magnitude.
	lp := wp + 8
	if e := y.MantExp(nil) + bits.Len(uint(abs64(int64(x.MantExp(nil))))) + 1; e > 0 {
		lp += uint(e)
	}
	l, _ := logApprox(x, lp)
	l.Mul(l, y)
	z, err := expApprox(l, wp)
	return z, err + 1
}

// storeRounded stores r, negated if neg. r must carry the accuracy of a single
// rounding.
func (rop *Record) storeRounded(r *big.Float, neg bool) int {
	return rop.store(r, int(r.Acc()), neg)
}

// isOddInt reports whether x is an odd integer.
func isOddInt(x *big.Float) bool {
	if x.IsInf() || !x.IsInt() || x.Sign() == 0 {
		return false
	}
	// odd integers have their lowest mantissa bit at 2^0
	return int(x.MinPrec()) == x.MantExp(nil)
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
