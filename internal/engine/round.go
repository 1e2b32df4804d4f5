// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/big"

var half = big.NewFloat(0.5)

// rintFloat returns x rounded to an integer in direction rnd. The result is
// exact and has a fresh precision. x must be finite.
func rintFloat(x *big.Float, rnd RoundingMode) *big.Float {
	if x.IsInt() {
		return new(big.Float).Set(x)
	}
	var i big.Int
	x.Int(&i) // truncated towards zero
	neg := x.Sign() < 0
	away := false
	switch rnd {
	case ToZero:
	case AwayFromZero:
		away = true
	case ToNegativeInf:
		away = neg
	case ToPositiveInf:
		away = !neg
	case ToNearestEven, ToNearestAway:
		var frac big.Float
		frac.SetPrec(x.Prec()).Sub(x, new(big.Float).SetInt(&i)) // exact
		switch frac.Abs(&frac).Cmp(half) {
		case 1:
			away = true
		case 0:
			away = rnd == ToNearestAway || i.Bit(0) == 1
		}
	}
	if away {
		if neg {
			i.Sub(&i, big.NewInt(1))
		} else {
			i.Add(&i, big.NewInt(1))
		}
	}
	r := new(big.Float).SetInt(&i)
	if r.Sign() == 0 && neg {
		r.Neg(r)
	}
	return r
}

// Rint sets rop to op rounded to an integer in direction rnd, then to the
// precision of rop in the same direction. It returns the sign of rop - op.
func Rint(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	if op.nan {
		return rop.setNaN()
	}
	if op.f.IsInf() {
		rop.nan = false
		rop.f.Set(&op.f)
		return 0
	}
	r := rintFloat(&op.f, rnd)
	r.SetMode(rnd).SetPrec(rop.prec)
	t := r.Cmp(&op.f)
	rop.nan = false
	rop.f.Set(r)
	if t != 0 {
		raise(Inexact)
	}
	return t
}

// Floor sets rop to the largest representable integer <= op.
func Floor(rop, op *Record) int {
	return Rint(rop, op, ToNegativeInf)
}

// Ceil sets rop to the smallest representable integer >= op.
func Ceil(rop, op *Record) int {
	return Rint(rop, op, ToPositiveInf)
}

// Round sets rop to the nearest representable integer, rounding halfway cases
// away from zero.
func Round(rop, op *Record) int {
	return Rint(rop, op, ToNearestAway)
}

// Trunc sets rop to op rounded towards zero to a representable integer.
func Trunc(rop, op *Record) int {
	return Rint(rop, op, ToZero)
}
