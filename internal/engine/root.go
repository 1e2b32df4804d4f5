// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"math/big"
	"math/bits"
)

// exactPowLimit bounds the precision of exact powers used to decide roundings.
const exactPowLimit = 1 << 22

// Sqrt sets rop to the square root of op. The square root of -0 is -0.
func Sqrt(rop, op *Record, rnd RoundingMode) int {
	return rootn(rop, op, 2, rnd)
}

// Cbrt sets rop to the cubic root of op.
func Cbrt(rop, op *Record, rnd RoundingMode) int {
	return rootn(rop, op, 3, rnd)
}

// RootnUi sets rop to the k-th root of op. For k = 0 the result is NaN, for
// an even k and a negative op the result is NaN. The k-th root of -0 is -0
// for odd k and +0 for even k, except for Sqrt which follows IEEE 754.
func RootnUi(rop, op *Record, k uint64, rnd RoundingMode) int {
	rop.check()
	op.check()
	if k != 2 && k%2 == 0 && !op.nan && op.f.Sign() == 0 {
		SetZero(rop, 1)
		return 0
	}
	return rootn(rop, op, k, rnd)
}

func rootn(rop, op *Record, k uint64, rnd RoundingMode) int {
	rop.check()
	op.check()
	switch {
	case op.nan, k == 0:
		return rop.setNaN()
	case k%2 == 0 && op.f.Sign() < 0:
		return rop.setNaN()
	case op.f.IsInf(), op.f.Sign() == 0, k == 1:
		return Set(rop, op, rnd)
	}
	return rootFinite(rop, &op.f, k, rnd)
}

// absMode returns the rounding mode that rounds |v| the way rnd rounds v.
func absMode(rnd RoundingMode, neg bool) RoundingMode {
	if !neg {
		return rnd
	}
	switch rnd {
	case ToNegativeInf:
		return ToPositiveInf
	case ToPositiveInf:
		return ToNegativeInf
	}
	return rnd
}

// store sets rop to r, negated if neg, and returns the ternary for a ternary
// t computed on |r|.
func (rop *Record) store(r *big.Float, t int, neg bool) int {
	rop.nan = false
	rop.f.Set(r)
	if neg {
		rop.f.Neg(&rop.f)
		t = -t
	}
	if t != 0 {
		raise(Inexact)
	}
	return t
}

// rootFinite sets rop to the correctly rounded k-th root of the finite
// non-zero x.
func rootFinite(rop *Record, x *big.Float, k uint64, rnd RoundingMode) int {
	neg := x.Signbit()
	ax := new(big.Float).Abs(x)
	arnd := absMode(rnd, neg)
	wp := rop.prec + zivGuard
	y, err := rootApprox(ax, k, wp)
	r, t, ok := canRound(y, err, rop.prec, arnd)
	if !ok {
		r, t = decideRoot(ax, y, k, rop.prec, arnd)
	}
	return rop.store(r, t, neg)
}

// rootApprox returns the k-th root of the positive finite x at precision wp
// and its error in ulps.
func rootApprox(x *big.Float, k uint64, wp uint) (*big.Float, int) {
	if k == 2 {
		return bf(wp).Sqrt(x), 2
	}
	// initial guess from log2(x)/k
	mant := new(big.Float)
	e := x.MantExp(mant)
	mf, _ := mant.Float64()
	lg := (math.Log2(mf) + float64(e)) / float64(k)
	ip := math.Floor(lg)
	y := bf(wp).SetFloat64(math.Exp2(lg - ip))
	y.SetMantExp(y, int(ip))

	// Newton: y' = y + (x/y^(k-1) - y)/k
	var (
		t  = bf(wp)
		d  = bf(wp)
		kf = bf(wp).SetUint64(k)
	)
	for i := 0; i < 2*bits.Len(wp)+8; i++ {
		powUi(t, y, k-1)
		t.Quo(x, t)
		d.Sub(t, y)
		d.Quo(d, kf)
		y.Add(y, d)
		if d.Sign() == 0 || d.MantExp(nil) < y.MantExp(nil)-int(wp) {
			break
		}
	}
	return y, 4 + bits.Len64(k)
}

// decideRoot rounds the k-th root of x when its approximation y is too close
// to a rounding boundary at prec bits. The boundary is y rounded to prec+1
// bits; the exact power of the boundary tells on which side the root lies.
func decideRoot(x, y *big.Float, k uint64, prec uint, rnd RoundingMode) (*big.Float, int) {
	if k*uint64(prec+1) > exactPowLimit {
		r := bf(prec).SetMode(rnd).Set(y)
		return r, int(r.Acc())
	}
	b := bf(prec + 1).Set(y)
	p := bf(uint(k) * (prec + 1))
	powUi(p, b, k)
	v := bf(prec + 4).Set(b)
	if c := p.Cmp(x); c != 0 {
		delta := bf(1).SetMantExp(bf(1).SetInt64(1), b.MantExp(nil)-int(prec)-3)
		if c > 0 {
			v.Sub(v, delta)
		} else {
			v.Add(v, delta)
		}
	}
	r := bf(prec).SetMode(rnd).Set(v)
	return r, int(r.Acc())
}

// powUi sets z to x^n using z's precision and returns z. Each step rounds,
// unless z's precision is large enough for the exact power.
func powUi(z, x *big.Float, n uint64) *big.Float {
	if n == 0 {
		return z.SetInt64(1)
	}
	t := bf(z.Prec()).Set(x)
	z.SetInt64(1)
	for n > 0 {
		if n&1 != 0 {
			z.Mul(z, t)
		}
		n >>= 1
		if n > 0 {
			t.Mul(t, t)
		}
	}
	return z
}
