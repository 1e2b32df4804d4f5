// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/big"

const (
	// guard bits added to the target precision on the first iteration.
	zivGuard = 32
	// iterations before giving up on a provably correct rounding.
	zivMaxIter = 8
)

// bf returns a new big.Float with precision prec.
func bf(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// canRound reports whether every real in [y-e, y+e], where e is 2^err ulps of
// y at its own precision, rounds to the same value at prec in direction rnd,
// and that value lies outside the interval. It returns that value and the
// ternary of the rounding.
func canRound(y *big.Float, err int, prec uint, rnd RoundingMode) (*big.Float, int, bool) {
	if y.IsInf() || y.Sign() == 0 {
		return nil, 0, false
	}
	wp := y.Prec()
	exp := y.MantExp(nil)
	e := bf(1).SetMantExp(bf(1).SetInt64(1), exp-int(wp)+err)
	lo := bf(wp+2).Sub(y, e)
	hi := bf(wp+2).Add(y, e)
	if lo.Sign() != hi.Sign() {
		return nil, 0, false
	}
	rlo := bf(prec).SetMode(rnd).Set(lo)
	rhi := bf(prec).SetMode(rnd).Set(hi)
	if rlo.Cmp(rhi) != 0 {
		return nil, 0, false
	}
	switch {
	case rlo.Cmp(hi) > 0:
		return rlo, 1, true
	case rlo.Cmp(lo) < 0:
		return rlo, -1, true
	}
	return rlo, 0, false
}

// ziv runs approx at increasing working precisions until its result can be
// correctly rounded to the precision of rop, then stores it. approx returns
// an approximation at precision wp with an error below 2^err ulps.
func ziv(rop *Record, rnd RoundingMode, approx func(wp uint) (y *big.Float, err int)) int {
	wp := rop.prec + zivGuard
	var y *big.Float
	for i := 0; i < zivMaxIter; i++ {
		var err int
		y, err = approx(wp)
		if y.IsInf() || y.Sign() == 0 {
			return rop.outOfRange(y)
		}
		if r, t, ok := canRound(y, err, rop.prec, rnd); ok {
			rop.nan = false
			rop.f.Set(r)
			raise(Inexact)
			if rop.f.IsInf() {
				raise(Overflow)
			}
			return t
		}
		wp += wp / 2
	}
	rop.f.SetMode(rnd).Set(y)
	return rop.result()
}

// outOfRange stores the overflowed or underflowed approximation y, an
// infinity or a zero, and returns its ternary.
func (rop *Record) outOfRange(y *big.Float) int {
	rop.nan = false
	rop.f.Set(y)
	t := 1
	if y.IsInf() {
		raise(Overflow | Inexact)
	} else {
		raise(Underflow | Inexact)
		t = -1
	}
	if y.Signbit() {
		t = -t
	}
	return t
}
