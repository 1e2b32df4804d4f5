// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"math/big"
)

// Set sets rop to the value of op rounded to rop's precision.
func Set(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	if op.nan {
		neg := op.f.Signbit()
		rop.setNaN()
		if neg {
			rop.f.Neg(&rop.f)
		}
		return 0
	}
	rop.f.SetMode(rnd).Set(&op.f)
	return rop.result()
}

// SetSi sets rop to i.
func SetSi(rop *Record, i int64, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetInt64(i)
	return rop.result()
}

// SetUi sets rop to u.
func SetUi(rop *Record, u uint64, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetUint64(u)
	return rop.result()
}

// SetD sets rop to d. A NaN d sets rop to NaN.
func SetD(rop *Record, d float64, rnd RoundingMode) int {
	rop.check()
	return Set(rop, exactD(d), rnd)
}

// SetZ sets rop to z.
func SetZ(rop *Record, z *big.Int, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetInt(z)
	return rop.result()
}

// SetQ sets rop to q.
func SetQ(rop *Record, q *big.Rat, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetRat(q)
	return rop.result()
}

// SetF sets rop to f.
func SetF(rop *Record, f *big.Float, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).Set(f)
	return rop.result()
}

// SetSi2exp sets rop to i×2^e.
func SetSi2exp(rop *Record, i int64, e int, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetInt64(i)
	acc := rop.f.Acc()
	rop.f.SetMantExp(&rop.f, e)
	return rop.result2exp(acc)
}

// SetUi2exp sets rop to u×2^e.
func SetUi2exp(rop *Record, u uint64, e int, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetUint64(u)
	acc := rop.f.Acc()
	rop.f.SetMantExp(&rop.f, e)
	return rop.result2exp(acc)
}

// SetZ2exp sets rop to z×2^e.
func SetZ2exp(rop *Record, z *big.Int, e int, rnd RoundingMode) int {
	rop.check()
	rop.f.SetMode(rnd).SetInt(z)
	acc := rop.f.Acc()
	rop.f.SetMantExp(&rop.f, e)
	return rop.result2exp(acc)
}

// result2exp is result for a rounding followed by an exact scaling, which
// resets the accuracy unless the exponent over- or underflowed.
func (x *Record) result2exp(acc big.Accuracy) int {
	if x.f.Acc() == big.Exact && acc != big.Exact {
		x.nan = false
		raise(Inexact)
		return int(acc)
	}
	return x.result()
}

// SetNaN sets x to NaN.
func SetNaN(x *Record) {
	x.check()
	x.setNaN()
}

// SetInf sets x to +Inf if sign >= 0, -Inf otherwise.
func SetInf(x *Record, sign int) {
	x.check()
	x.nan = false
	x.f.SetInf(sign < 0)
}

// SetZero sets x to +0 if sign >= 0, -0 otherwise.
func SetZero(x *Record, sign int) {
	x.check()
	x.nan = false
	x.f.SetInt64(0)
	if sign < 0 {
		x.f.Neg(&x.f)
	}
}

// Swap exchanges the values and precisions of x and y.
func Swap(x, y *Record) {
	x.check()
	y.check()
	x.prec, y.prec = y.prec, x.prec
	x.nan, y.nan = y.nan, x.nan
	var t big.Float
	t.Set(&x.f)
	x.f.SetPrec(0).SetPrec(x.prec).Set(&y.f)
	y.f.SetPrec(0).SetPrec(y.prec).Set(&t)
}

// GetSi returns op rounded to an integer with rnd. NaN converts to 0 and
// values out of range saturate; both raise the erange flag.
func GetSi(op *Record, rnd RoundingMode) int64 {
	op.check()
	if op.nan {
		raise(Erange)
		return 0
	}
	if op.f.IsInf() {
		raise(Erange)
		if op.f.Signbit() {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	t := rintFloat(&op.f, rnd)
	i, acc := t.Int64()
	if acc != big.Exact {
		raise(Erange)
	}
	return i
}

// GetUi is like GetSi for uint64. Negative values convert to 0.
func GetUi(op *Record, rnd RoundingMode) uint64 {
	op.check()
	if op.nan {
		raise(Erange)
		return 0
	}
	if op.f.IsInf() {
		raise(Erange)
		if op.f.Signbit() {
			return 0
		}
		return math.MaxUint64
	}
	t := rintFloat(&op.f, rnd)
	u, acc := t.Uint64()
	if acc != big.Exact {
		raise(Erange)
	}
	return u
}

// GetD returns op rounded to a float64 with rnd.
func GetD(op *Record, rnd RoundingMode) float64 {
	op.check()
	if op.nan {
		if op.f.Signbit() {
			return math.Copysign(math.NaN(), -1)
		}
		return math.NaN()
	}
	if rnd == ToNearestEven || op.f.IsInf() || op.f.Sign() == 0 {
		d, _ := op.f.Float64()
		return d
	}
	t := new(big.Float).SetPrec(53).SetMode(rnd).Set(&op.f)
	d, _ := t.Float64()
	return d
}

// GetZ sets z to op rounded to an integer with rnd. NaN and Inf set z to 0
// and raise the erange flag.
func GetZ(z *big.Int, op *Record, rnd RoundingMode) int {
	op.check()
	if op.nan || op.f.IsInf() {
		raise(Erange)
		z.SetInt64(0)
		return 0
	}
	t := rintFloat(&op.f, rnd)
	t.Int(z)
	return t.Cmp(&op.f)
}

// GetQ sets q to the exact value of op. NaN and Inf set q to 0 and raise the
// erange flag.
func GetQ(q *big.Rat, op *Record) {
	op.check()
	if op.nan || op.f.IsInf() {
		raise(Erange)
		q.SetInt64(0)
		return
	}
	op.f.Rat(q)
}

// GetF sets f to op rounded to f's precision with rnd. If f's precision is 0,
// it is changed to op's precision. NaN sets f to 0 and raises the erange flag.
func GetF(f *big.Float, op *Record, rnd RoundingMode) int {
	op.check()
	if f.Prec() == 0 {
		f.SetPrec(op.prec)
	}
	if op.nan {
		raise(Erange)
		f.SetInt64(0)
		return 0
	}
	f.SetMode(rnd).Set(&op.f)
	return int(f.Acc())
}
