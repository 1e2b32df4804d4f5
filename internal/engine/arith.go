// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Add sets rop to op1+op2 rounded with rnd.
func Add(rop, op1, op2 *Record, rnd RoundingMode) int {
	rop.check()
	op1.check()
	op2.check()
	if op1.nan || op2.nan {
		return rop.setNaN()
	}
	// Inf + (-Inf)
	if op1.f.IsInf() && op2.f.IsInf() && op1.f.Signbit() != op2.f.Signbit() {
		return rop.setNaN()
	}
	rop.f.SetMode(rnd).Add(&op1.f, &op2.f)
	return rop.result()
}

// Sub sets rop to op1-op2 rounded with rnd.
func Sub(rop, op1, op2 *Record, rnd RoundingMode) int {
	rop.check()
	op1.check()
	op2.check()
	if op1.nan || op2.nan {
		return rop.setNaN()
	}
	// Inf - Inf
	if op1.f.IsInf() && op2.f.IsInf() && op1.f.Signbit() == op2.f.Signbit() {
		return rop.setNaN()
	}
	rop.f.SetMode(rnd).Sub(&op1.f, &op2.f)
	return rop.result()
}

// Mul sets rop to op1×op2 rounded with rnd.
func Mul(rop, op1, op2 *Record, rnd RoundingMode) int {
	rop.check()
	op1.check()
	op2.check()
	if op1.nan || op2.nan {
		return rop.setNaN()
	}
	// 0 × Inf
	if op1.f.IsInf() && op2.f.Sign() == 0 || op1.f.Sign() == 0 && op2.f.IsInf() {
		return rop.setNaN()
	}
	rop.f.SetMode(rnd).Mul(&op1.f, &op2.f)
	return rop.result()
}

// Div sets rop to op1/op2 rounded with rnd. A finite non-zero op1 divided by
// zero yields a signed infinity and raises the divide-by-zero flag.
func Div(rop, op1, op2 *Record, rnd RoundingMode) int {
	rop.check()
	op1.check()
	op2.check()
	if op1.nan || op2.nan {
		return rop.setNaN()
	}
	switch {
	case op1.f.Sign() == 0 && op2.f.Sign() == 0,
		op1.f.IsInf() && op2.f.IsInf():
		return rop.setNaN()
	case op2.f.Sign() == 0:
		raise(DivBy0)
	}
	rop.f.SetMode(rnd).Quo(&op1.f, &op2.f)
	return rop.result()
}

// AddSi sets rop to op+i.
func AddSi(rop, op *Record, i int64, rnd RoundingMode) int {
	return Add(rop, op, exactSi(i), rnd)
}

// AddUi sets rop to op+u.
func AddUi(rop, op *Record, u uint64, rnd RoundingMode) int {
	return Add(rop, op, exactUi(u), rnd)
}

// AddD sets rop to op+d.
func AddD(rop, op *Record, d float64, rnd RoundingMode) int {
	return Add(rop, op, exactD(d), rnd)
}

// SubSi sets rop to op-i.
func SubSi(rop, op *Record, i int64, rnd RoundingMode) int {
	return Sub(rop, op, exactSi(i), rnd)
}

// SubUi sets rop to op-u.
func SubUi(rop, op *Record, u uint64, rnd RoundingMode) int {
	return Sub(rop, op, exactUi(u), rnd)
}

// SubD sets rop to op-d.
func SubD(rop, op *Record, d float64, rnd RoundingMode) int {
	return Sub(rop, op, exactD(d), rnd)
}

// SiSub sets rop to i-op.
func SiSub(rop *Record, i int64, op *Record, rnd RoundingMode) int {
	return Sub(rop, exactSi(i), op, rnd)
}

// UiSub sets rop to u-op.
func UiSub(rop *Record, u uint64, op *Record, rnd RoundingMode) int {
	return Sub(rop, exactUi(u), op, rnd)
}

// DSub sets rop to d-op.
func DSub(rop *Record, d float64, op *Record, rnd RoundingMode) int {
	return Sub(rop, exactD(d), op, rnd)
}

// MulSi sets rop to op×i.
func MulSi(rop, op *Record, i int64, rnd RoundingMode) int {
	return Mul(rop, op, exactSi(i), rnd)
}

// MulUi sets rop to op×u.
func MulUi(rop, op *Record, u uint64, rnd RoundingMode) int {
	return Mul(rop, op, exactUi(u), rnd)
}

// MulD sets rop to op×d.
func MulD(rop, op *Record, d float64, rnd RoundingMode) int {
	return Mul(rop, op, exactD(d), rnd)
}

// DivSi sets rop to op/i.
func DivSi(rop, op *Record, i int64, rnd RoundingMode) int {
	return Div(rop, op, exactSi(i), rnd)
}

// DivUi sets rop to op/u.
func DivUi(rop, op *Record, u uint64, rnd RoundingMode) int {
	return Div(rop, op, exactUi(u), rnd)
}

// DivD sets rop to op/d.
func DivD(rop, op *Record, d float64, rnd RoundingMode) int {
	return Div(rop, op, exactD(d), rnd)
}

// SiDiv sets rop to i/op.
func SiDiv(rop *Record, i int64, op *Record, rnd RoundingMode) int {
	return Div(rop, exactSi(i), op, rnd)
}

// UiDiv sets rop to u/op.
func UiDiv(rop *Record, u uint64, op *Record, rnd RoundingMode) int {
	return Div(rop, exactUi(u), op, rnd)
}

// DDiv sets rop to d/op.
func DDiv(rop *Record, d float64, op *Record, rnd RoundingMode) int {
	return Div(rop, exactD(d), op, rnd)
}

// Mul2si sets rop to op×2^e.
func Mul2si(rop, op *Record, e int, rnd RoundingMode) int {
	rop.check()
	op.check()
	if op.nan {
		return rop.setNaN()
	}
	rop.f.SetMode(rnd).Set(&op.f)
	acc := rop.f.Acc()
	if rop.f.IsInf() || rop.f.Sign() == 0 {
		return rop.result()
	}
	rop.f.SetMantExp(&rop.f, e)
	return rop.result2exp(acc)
}

// Neg sets rop to -op.
func Neg(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	if op.nan {
		neg := op.f.Signbit()
		rop.setNaN()
		if !neg {
			rop.f.Neg(&rop.f)
		}
		return 0
	}
	rop.f.SetMode(rnd).Neg(&op.f)
	return rop.result()
}

// Abs sets rop to |op|.
func Abs(rop, op *Record, rnd RoundingMode) int {
	rop.check()
	op.check()
	if op.nan {
		return rop.setNaN()
	}
	rop.f.SetMode(rnd).Abs(&op.f)
	return rop.result()
}

// Cmp compares op1 and op2 and returns -1, 0 or +1. If either operand is NaN
// it returns 0 and raises the erange flag.
func Cmp(op1, op2 *Record) int {
	op1.check()
	op2.check()
	if op1.nan || op2.nan {
		raise(Erange)
		return 0
	}
	return op1.f.Cmp(&op2.f)
}

// CmpSi compares op and i.
func CmpSi(op *Record, i int64) int {
	return Cmp(op, exactSi(i))
}

// CmpUi compares op and u.
func CmpUi(op *Record, u uint64) int {
	return Cmp(op, exactUi(u))
}

// CmpD compares op and d.
func CmpD(op *Record, d float64) int {
	return Cmp(op, exactD(d))
}

// Sgn returns the sign of op: -1, 0 or +1. NaN returns 0 and raises the
// erange flag.
func Sgn(op *Record) int {
	op.check()
	if op.nan {
		raise(Erange)
		return 0
	}
	return op.f.Sign()
}

// NanP reports whether op is NaN.
func NanP(op *Record) bool {
	op.check()
	return op.nan
}

// InfP reports whether op is an infinity.
func InfP(op *Record) bool {
	op.check()
	return !op.nan && op.f.IsInf()
}

// NumberP reports whether op is neither NaN nor an infinity.
func NumberP(op *Record) bool {
	op.check()
	return !op.nan && !op.f.IsInf()
}

// ZeroP reports whether op is ±0.
func ZeroP(op *Record) bool {
	op.check()
	return !op.nan && op.f.Sign() == 0
}

// IntegerP reports whether op is an integer.
func IntegerP(op *Record) bool {
	op.check()
	return !op.nan && op.f.IsInt()
}

// Signbit reports whether the sign bit of op is set, NaN included.
func Signbit(op *Record) bool {
	op.check()
	return op.f.Signbit()
}

// Frexp sets rop to the mantissa of op and returns its exponent, such that
// op = rop × 2^exp with 0.5 <= |rop| < 1. The exponent of zero, NaN and
// infinities is 0 and rop is a copy of op.
func Frexp(rop, op *Record, rnd RoundingMode) (exp int, t int) {
	rop.check()
	op.check()
	if op.nan || op.f.IsInf() || op.f.Sign() == 0 {
		return 0, Set(rop, op, rnd)
	}
	rop.f.SetMode(rnd).Set(&op.f)
	acc := rop.f.Acc()
	// rounding may have carried into the next binade
	exp = rop.f.MantExp(&rop.f)
	rop.nan = false
	if acc != 0 {
		raise(Inexact)
	}
	return exp, int(acc)
}
