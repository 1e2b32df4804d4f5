// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"math/big"
	"math/bits"
)

// beyond these bounds exp overflows or underflows the big.Float exponent
// range (±MaxExp×log(2) ≈ ±1.4885e9).
const (
	expOverflow  = 1.5e9
	expUnderflow = -1.5e9
)

var one = big.NewFloat(1)

// Exp sets rop to e^op.
func Exp(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	switch {
	case op.nan:
		return rop.setNaN()
	case op.f.IsInf():
		if op.f.Signbit() {
			SetZero(rop, 1)
		} else {
			SetInf(rop, 1)
		}
		return 0
	case op.f.Sign() == 0:
		return SetUi(rop, 1, rnd)
	}
	// |op| < 2^-(prec+2): e^op lies strictly between 1 and its neighbour
	// midpoint, so any value on the same side of 1 rounds the same way.
	if op.f.MantExp(nil) <= -int(rop.prec)-2 {
		v := bf(rop.prec+4).SetInt64(1)
		d := bf(1).SetMantExp(one, -int(rop.prec)-2)
		if op.f.Sign() > 0 {
			v.Add(v, d)
		} else {
			v.Sub(v, d)
		}
		rop.f.SetMode(rnd).Set(v)
		return rop.result()
	}
	return ziv(rop, rnd, func(wp uint) (*big.Float, int) {
		return expApprox(&op.f, wp)
	})
}

// expApprox returns e^x at precision wp and its error in ulps, for a finite x.
// Results out of range are ±Inf or 0.
func expApprox(x *big.Float, wp uint) (*big.Float, int) {
	xf, _ := x.Float64()
	switch {
	case xf > expOverflow:
		return bf(wp).SetInf(false), 0
	case xf < expUnderflow:
		return bf(wp), 0
	}

	// e^x = e^r × 2^k, with r = x - k×log(2) and |r| <= log(2)/2, then
	// e^r = (e^(r/2^s))^(2^s).
	k := int64(math.Round(xf / math.Ln2))
	klen := bits.Len64(uint64(abs64(k)))
	s := uint(math.Sqrt(float64(wp)) / 2)
	ip := wp + uint(klen) + s + 16

	r := bf(ip).Set(x)
	if k != 0 {
		t := constLn2(ip + uint(klen))
		t.Mul(t, bf(64).SetInt64(k))
		r.Sub(r, t)
	}
	r.SetMantExp(r, -int(s))

	sum := expTaylor(bf(ip), r)
	for i := uint(0); i < s; i++ {
		sum.Mul(sum, sum)
	}
	sum.SetMantExp(sum, int(k))
	return bf(wp).Set(sum), 2
}

// expTaylor sets z to e^x using its Taylor series and returns z. |x| must be
// small.
func expTaylor(z, x *big.Float) *big.Float {
	prec := z.Prec()
	var (
		term = bf(prec).Set(x)
		n    = bf(64)
	)
	z.SetInt64(1)
	z.Add(z, x)
	for i := int64(2); ; i++ {
		term.Mul(term, x)
		term.Quo(term, n.SetInt64(i))
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(prec)-1 {
			break
		}
		z.Add(z, term)
	}
	return z
}

// Log sets rop to the natural logarithm of op.
func Log(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	switch {
	case op.nan, op.f.Sign() < 0:
		return rop.setNaN()
	case op.f.Sign() == 0:
		raise(DivBy0)
		SetInf(rop, -1)
		return 0
	case op.f.IsInf():
		SetInf(rop, 1)
		return 0
	case op.f.Cmp(one) == 0:
		SetZero(rop, 1)
		return 0
	}
	return ziv(rop, rnd, func(wp uint) (*big.Float, int) {
		return logApprox(&op.f, wp)
	})
}

// logApprox returns log(x) at precision wp and its error in ulps, for a
// finite x > 0, x != 1.
//
// It uses the Salamin algorithm described in Michael Beeler, R. William
// Gosper, Richard Schroeppel, HAKMEM, Artificial Intelligence Memo No. 239,
// Item 143: log(s) ≈ π/(2×AGM(1, 4/s)) for s > 2^(p/2).
func logApprox(x *big.Float, wp uint) (*big.Float, int) {
	// log(x) ≈ x-1 near 1: the subtraction of m×log(2) below cancels that
	// many leading bits. x-1 is exact there (Sterbenz).
	extra := 0
	if e := bf(64).Sub(x, one).MantExp(nil); e < 0 {
		extra = -e
	}
	ip := wp + uint(extra) + 2*uint(bits.Len(wp)) + 16

	// scale x by 2^m so that s = x×2^m > 2^(ip/2)
	m := int(ip)/2 - x.MantExp(nil) + 2
	if m < 0 {
		m = 0
	}
	s := bf(ip).SetMantExp(x, m)

	a := bf(ip).SetInt64(1)
	b := bf(ip).Quo(bf(ip).SetInt64(4), s)
	z := agm(bf(ip), a, b)
	z.Quo(constPi(ip), z.SetMantExp(z, 1))
	if m > 0 {
		t := constLn2(ip)
		z.Sub(z, t.Mul(t, bf(64).SetInt64(int64(m))))
	}
	return bf(wp).Set(z), 2
}

// agm sets z to the arithmetic-geometric mean of a and b and returns z. a,
// b and z must be distinct; a and b are not preserved.
func agm(z, a, b *big.Float) *big.Float {
	var (
		prec = z.Prec()
		t    = bf(prec)
	)
	for i := 0; i < 4*bits.Len(prec)+64; i++ {
		t.Set(a)
		a.SetMantExp(z.Add(a, b), -1) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))           // b_n+1 = sqrt(a_n × b_n)
		z.Sub(a, b)
		if z.Sign() == 0 || z.MantExp(nil) < a.MantExp(nil)-int(prec) {
			break
		}
	}
	return z.Set(a)
}

// sinPi returns sin(π×x) at precision prec for a finite x.
func sinPi(x *big.Float, prec uint) *big.Float {
	// x = n + r, |r| <= 1/2, sin(πx) = (-1)^n × sin(πr)
	n := rintFloat(x, ToNearestEven)
	r := new(big.Float).Sub(x, n)
	if r.Sign() == 0 {
		return bf(prec)
	}
	y := bf(prec + 8).Mul(constPi(prec+8), r)
	// Taylor: sin y = Σ (-1)^k y^(2k+1)/(2k+1)!
	var (
		z    = bf(prec + 8).Set(y)
		y2   = bf(prec+8).Mul(y, y)
		term = bf(prec + 8).Set(y)
		d    = bf(64)
	)
	for k := int64(1); ; k++ {
		term.Mul(term, y2)
		term.Quo(term, d.SetInt64(2*k*(2*k+1)))
		term.Neg(term)
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(prec)-8 {
			break
		}
		z.Add(z, term)
	}
	var i big.Int
	n.Int(&i)
	if i.Bit(0) == 1 {
		z.Neg(z)
	}
	return bf(prec).Set(z)
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
