// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"math/big"
	"math/bits"
)

// Γ(n) for integers up to this bound is computed as an exact factorial.
const maxExactFactorial = 10000

var two = big.NewFloat(2)

// Gamma sets rop to Γ(op).
//
//	Γ(±0) = ±Inf (divide-by-zero)
//	Γ(+Inf) = +Inf
//	Γ(-Inf) = NaN
//	Γ(n) = NaN for a negative integer n
func Gamma(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	x := &op.f
	switch {
	case op.nan:
		return rop.setNaN()
	case x.IsInf():
		if x.Signbit() {
			return rop.setNaN()
		}
		SetInf(rop, 1)
		return 0
	case x.Sign() == 0:
		raise(DivBy0)
		SetInf(rop, sign(x.Signbit()))
		return 0
	case x.IsInt() && x.Sign() < 0:
		return rop.setNaN()
	}

	if x.IsInt() {
		if n, _ := x.Int64(); n <= maxExactFactorial {
			var f big.Int
			f.MulRange(1, n-1)
			return SetZ(rop, &f, rnd)
		}
	}
	if e := x.MantExp(nil); e < -int(rop.prec)-8 {
		return gammaTiny(rop, x, e, rnd)
	}

	neg := gammaNegative(x)
	arnd := absMode(rnd, neg)
	t := ziv(rop, arnd, func(wp uint) (*big.Float, int) {
		g := expGuard(x)
		l, err := lgammaApprox(x, wp+g+8)
		z, eerr := expApprox(l, wp)
		if e := l.MantExp(nil) - int(g) - 6 + err; e > 0 {
			eerr += e
		}
		return z, eerr + 1
	})
	if neg {
		rop.f.Neg(&rop.f)
		t = -t
	}
	return t
}

// eulerGamma is the Euler-Mascheroni constant γ rounded to 64 bits.
var eulerGamma, _, _ = big.ParseFloat("0.57721566490153286060651209008240243104215933593992", 10, 64, big.ToNearestEven)

// gammaTiny sets rop to Γ(x) for 0 < |x| < 2^e, e < -prec-8. There
// Γ(x) = 1/x - γ + O(x), and γ is far below half an ulp of 1/x.
func gammaTiny(rop *Record, x *big.Float, e int, rnd RoundingMode) int {
	var m big.Float
	x.MantExp(&m)
	if m.Abs(&m).Cmp(half) == 0 {
		// 1/x = ±2^(k-1) is exact and Γ(x) lies just below it, closer than
		// any breakpoint at prec: round 1/x - ulp/16 instead.
		y := bf(rop.prec+8).Quo(one, x)
		k := y.MantExp(nil)
		y.Sub(y, bf(1).SetMantExp(one, k-int(rop.prec)-4))
		rop.f.SetMode(rnd).Set(y)
		return rop.result()
	}
	return ziv(rop, rnd, func(wp uint) (*big.Float, int) {
		y := bf(wp).Quo(one, x)
		y.Sub(y, eulerGamma)
		// γ's own error and the O(x) term stay below 2^(max(e,-64)+1)
		ea := max(e, -64) + 1
		return y, max(ea-y.MantExp(nil)+int(wp), 0) + 2
	})
}

// Lngamma sets rop to log(Γ(op)).
//
//	lngamma(1) = lngamma(2) = +0
//	lngamma(±Inf) = +Inf
//	lngamma(x) = +Inf for a non-positive integer x (divide-by-zero)
//	lngamma(x) = NaN where Γ(x) < 0
func Lngamma(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	if !op.nan && op.f.Sign() < 0 && !op.f.IsInf() && !op.f.IsInt() && gammaNegative(&op.f) {
		return rop.setNaN()
	}
	t, _ := Lgamma(rop, op, rnd)
	return t
}

// Lgamma sets rop to log|Γ(op)| and returns the ternary and the sign of
// Γ(op).
func Lgamma(rop, op *Record, rnd RoundingMode) (int, int) {
	rop.check()
	op.check()
	x := &op.f
	switch {
	case op.nan:
		return rop.setNaN(), 1
	case x.IsInf():
		SetInf(rop, 1)
		return 0, 1
	case x.Sign() == 0:
		raise(DivBy0)
		SetInf(rop, 1)
		return 0, sign(x.Signbit())
	case x.IsInt() && x.Sign() < 0:
		raise(DivBy0)
		SetInf(rop, 1)
		return 0, 1
	case x.Cmp(one) == 0 || x.Cmp(two) == 0:
		SetZero(rop, 1)
		return 0, 1
	}
	s := 1
	if gammaNegative(x) {
		s = -1
	}
	if x.IsInt() {
		if n, _ := x.Int64(); n <= maxExactFactorial {
			// log((n-1)!) of an exact integer
			var f big.Int
			f.MulRange(1, n-1)
			fr := &Record{prec: 64}
			fr.f.SetPrec(uint(f.BitLen())).SetInt(&f)
			return Log(rop, fr, rnd), s
		}
	}
	t := ziv(rop, rnd, func(wp uint) (*big.Float, int) {
		return lgammaApprox(x, wp)
	})
	return t, s
}

// gammaNegative reports whether Γ(x) < 0 for a finite x that is not a
// non-positive integer: true for x in (-2k-1, -2k).
func gammaNegative(x *big.Float) bool {
	if x.Sign() >= 0 {
		return false
	}
	var n big.Int
	rintFloat(x, ToNegativeInf).Int(&n)
	return n.Bit(0) == 1
}

// expGuard returns an upper bound of the exponent of log|Γ(x)|.
func expGuard(x *big.Float) uint {
	e := x.MantExp(nil)
	g := uint(bits.Len(uint(abs64(int64(e))))) + 2
	if e > 0 {
		g += uint(e)
	}
	return g
}

// lgammaApprox returns log|Γ(x)| at precision wp and its error in ulps, for a
// finite x that is not a non-positive integer.
func lgammaApprox(x *big.Float, wp uint) (*big.Float, int) {
	// log Γ vanishes at 1 and 2: with x-1 or x-2 = 2^-k, about k bits cancel.
	extra := uint(0)
	for _, c := range []*big.Float{one, two} {
		d := bf(64).Sub(x, c)
		if d.Sign() != 0 && d.MantExp(nil) < 0 {
			extra = max(extra, uint(-d.MantExp(nil)))
		}
	}
	ip := wp + extra + expGuard(x) + 16

	var (
		z   *big.Float
		mag int // exponent of the largest summand
	)
	if x.Sign() > 0 {
		z, mag = lgammaPos(x, ip)
	} else {
		// reflection: log|Γ(x)| = log π - log|sin(πx)| - log Γ(1-x)
		omx := bf(ip+uint(bits.Len(uint(abs64(int64(x.MantExp(nil))))))).Sub(one, x)
		lg, m1 := lgammaPos(omx, ip)
		s := sinPi(x, ip)
		ls, _ := logApprox(s.Abs(s), ip)
		lpi, _ := logApprox(constPi(ip), ip)
		z = bf(ip).Sub(lpi, ls)
		z.Sub(z, lg)
		mag = max(m1, ls.MantExp(nil), 2)
	}
	if z.Sign() == 0 {
		return bf(wp), 0
	}
	// summands of magnitude 2^mag, each within a few ulps at ip
	err := mag - z.MantExp(nil) - int(ip-wp) + 6
	return bf(wp).Set(z), max(err, 1)
}

// lgammaPos returns log Γ(x) for x > 0 at precision prec, and the exponent
// of the largest term of the sum.
//
// x is shifted up to z = x+n >= 0.12×prec + 8 where the Stirling series
//
//	log Γ(z) = (z-½)log z - z + ½log(2π) + Σ B_2k / (2k(2k-1) z^(2k-1))
//
// converges to prec bits, then log Γ(x) = log Γ(z) - log(x(x+1)…(x+n-1)).
func lgammaPos(x *big.Float, prec uint) (*big.Float, int) {
	xf, _ := x.Float64()
	zmin := 0.12*float64(prec) + 8
	n := 0
	if xf < zmin {
		n = int(math.Ceil(zmin - xf))
	}

	z := bf(prec + 32).Set(x)
	prod := bf(prec + 32).SetInt64(1)
	for i := 0; i < n; i++ {
		prod.Mul(prod, z)
		z.Add(z, one)
	}
	z.SetPrec(prec)

	lz, _ := logApprox(z, prec)
	// (z-½)log z - z
	s := bf(prec).Sub(z, bf(prec).SetFloat64(0.5))
	s.Mul(s, lz)
	mag := s.MantExp(nil)
	s.Sub(s, z)
	// ½log(2π)
	l2pi, _ := logApprox(bf(prec).SetMantExp(constPi(prec), 1), prec)
	s.Add(s, l2pi.SetMantExp(l2pi, -1))

	var (
		z2   = bf(prec).Mul(z, z)
		zp   = bf(prec).Set(z) // z^(2k-1)
		term = bf(prec)
		b    = bf(prec)
	)
	for k := 1; ; k++ {
		b.SetRat(bernoulli(k))
		term.Quo(b, bf(64).SetInt64(int64(2*k*(2*k-1))))
		term.Quo(term, zp)
		if term.Sign() == 0 || term.MantExp(nil) < s.MantExp(nil)-int(prec)-2 || k > int(prec) {
			break
		}
		s.Add(s, term)
		zp.Mul(zp, z2)
	}

	if n > 0 {
		lp, _ := logApprox(prod, prec)
		if e := lp.MantExp(nil); e > mag {
			mag = e
		}
		s.Sub(s, lp)
	}
	return s, mag
}
