// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfr

import (
	"math/big"
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp of math/big.
// A Float may also be zero (+0, -0), infinite (+Inf, -Inf) or not-a-number
// (NaN).
//
// Each Float owns an engine record holding its value and precision. The
// record is acquired on first write and released when the Float becomes
// unreachable. Floats must be used by pointer: using a non-zero Float that
// was copied by value panics.
//
// The zero value for a Float is a ready to use +0 with precision 0.
type Float struct {
	self *Float // for the copy check
	r    *engine.Record
}

// New returns a new Float set to +0 with the default precision.
func New() *Float {
	return NewPrec(DefaultPrec())
}

// NewPrec returns a new Float set to +0 with the given precision, clamped to
// [MinPrec, MaxPrec].
func NewPrec(prec uint) *Float {
	z := new(Float)
	z.acquire(prec)
	return z
}

// NewInt64 returns a new Float set to x, rounded to the default precision.
func NewInt64(x int64) *Float {
	return New().SetInt64(x)
}

// NewUint64 returns a new Float set to x, rounded to the default precision.
func NewUint64(x uint64) *Float {
	return New().SetUint64(x)
}

// NewFloat64 returns a new Float set to x, rounded to the default precision.
// A NaN x yields a NaN.
func NewFloat64(x float64) *Float {
	return New().SetFloat64(x)
}

// NewInt returns a new Float set to x, rounded to the default precision.
func NewInt(x *big.Int) *Float {
	return New().SetInt(x)
}

// NewRat returns a new Float set to x, rounded to the default precision.
func NewRat(x *big.Rat) *Float {
	return New().SetRat(x)
}

// NewBigFloat returns a new Float set to x, rounded to the default precision.
func NewBigFloat(x *big.Float) *Float {
	return New().SetBigFloat(x)
}

// NewInt64Exp returns a new Float set to m × 2**exp, rounded to the default
// precision.
func NewInt64Exp(m int64, exp int) *Float {
	return New().SetInt64Exp(m, exp)
}

// NewUint64Exp returns a new Float set to m × 2**exp, rounded to the default
// precision.
func NewUint64Exp(m uint64, exp int) *Float {
	return New().SetUint64Exp(m, exp)
}

// NewIntExp returns a new Float set to m × 2**exp, rounded to the default
// precision.
func NewIntExp(m *big.Int, exp int) *Float {
	return New().SetIntExp(m, exp)
}

// Zero returns a new Float set to +0 if sign >= 0, -0 otherwise.
func Zero(sign int) *Float {
	return New().SetZero(sign)
}

// Inf returns a new Float set to +Inf if sign >= 0, -Inf otherwise.
func Inf(sign int) *Float {
	return New().SetInf(sign)
}

// NaN returns a new Float set to NaN.
func NaN() *Float {
	return New().SetNaN()
}

// Set sets z to the value of x, rounded to z's precision, and returns z. If z
// is a zero value, its precision is set to that of x.
func (z *Float) Set(x *Float) *Float {
	if z != x {
		xr := x.rec()
		engine.Set(z.dst(resultPrec(x)), xr, ToNearestEven)
		runtime.KeepAlive(x)
	}
	return z
}

// Clone returns a new Float with the value and precision of x.
func (x *Float) Clone() *Float {
	return NewPrec(resultPrec(x)).Set(x)
}

// Prec returns the precision of x in bits, 0 for the zero value.
func (x *Float) Prec() uint {
	x.copyCheck()
	return x.prec()
}

// SetPrec sets the precision of z to prec, clamped to [MinPrec, MaxPrec],
// and returns z. The value of z is lost: it becomes NaN. Use PrecRound to
// change the precision while keeping the value.
func (z *Float) SetPrec(prec uint) *Float {
	if z.r == nil {
		z.copyCheck()
		r := z.acquire(prec)
		engine.SetNaN(r)
		return z
	}
	engine.SetPrec(z.dst(prec), prec)
	return z
}

// PrecRound rounds z to prec bits, clamped to [MinPrec, MaxPrec], sets its
// precision to prec and returns z.
func (z *Float) PrecRound(prec uint) *Float {
	engine.PrecRound(z.dst(prec), prec, ToNearestEven)
	return z
}

// SetZero sets z to +0 if sign >= 0, -0 otherwise, and returns z.
func (z *Float) SetZero(sign int) *Float {
	engine.SetZero(z.dst(DefaultPrec()), sign)
	return z
}

// SetInf sets z to +Inf if sign >= 0, -Inf otherwise, and returns z.
func (z *Float) SetInf(sign int) *Float {
	engine.SetInf(z.dst(DefaultPrec()), sign)
	return z
}

// SetNaN sets z to NaN and returns z.
func (z *Float) SetNaN() *Float {
	engine.SetNaN(z.dst(DefaultPrec()))
	return z
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float) Sign() int {
	s := engine.Sgn(x.rec())
	runtime.KeepAlive(x)
	return s
}

// Signbit reports whether x is negative or negative zero. The sign bit of a
// NaN is reported as is.
func (x *Float) Signbit() bool {
	s := engine.Signbit(x.rec())
	runtime.KeepAlive(x)
	return s
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	b := engine.NanP(x.rec())
	runtime.KeepAlive(x)
	return b
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	b := engine.InfP(x.rec())
	runtime.KeepAlive(x)
	return b
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	b := engine.ZeroP(x.rec())
	runtime.KeepAlive(x)
	return b
}

// IsInt reports whether x is an integer. ±Inf and NaN are not integers.
func (x *Float) IsInt() bool {
	b := engine.IntegerP(x.rec())
	runtime.KeepAlive(x)
	return b
}

// MantExp breaks x into its mantissa and exponent components and returns the
// exponent. If a non-nil mant argument is provided its value is set to the
// mantissa of x, rounded to mant's precision (x's precision for a zero value
// mant). The components satisfy x == mant × 2**exp, with 0.5 <= |mant| < 1.0.
// Called with ±0, ±Inf or NaN, MantExp returns 0 and sets mant to x.
func (x *Float) MantExp(mant *Float) (exp int) {
	xr := x.rec()
	if mant == nil {
		var t engine.Record
		engine.Init2(&t, engine.GetPrec(xr))
		exp, _ = engine.Frexp(&t, xr, ToNearestEven)
		engine.Clear(&t)
	} else {
		exp, _ = engine.Frexp(mant.dst(resultPrec(x)), xr, ToNearestEven)
	}
	runtime.KeepAlive(x)
	return exp
}

// SetMantExp sets z to mant × 2**exp and returns z. It is the inverse of
// MantExp but does not require 0.5 <= |mant| < 1.0. If z is a zero value, its
// precision is set to that of mant.
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	mr := mant.rec()
	engine.Mul2si(z.dst(resultPrec(mant)), mr, exp, ToNearestEven)
	runtime.KeepAlive(mant)
	return z
}
