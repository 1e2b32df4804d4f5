// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements integer rounding and elementary functions.
//
// If the receiver is a zero value, its precision is set to that of the
// (first) operand. All functions are correctly rounded to nearest, ties to
// even.

package mpfr

import (
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

type unaryFn func(rop, op *engine.Record) int

func (z *Float) unary(x *Float, fn unaryFn) *Float {
	xr := x.rec()
	fn(z.dst(resultPrec(x)), xr)
	runtime.KeepAlive(x)
	return z
}

func nearest(fn func(rop, op *engine.Record, rnd RoundingMode) int) unaryFn {
	return func(rop, op *engine.Record) int {
		return fn(rop, op, ToNearestEven)
	}
}

// Floor sets z to the largest integer <= x and returns z. The integer is
// exact and then rounded down to z's precision.
func (z *Float) Floor(x *Float) *Float {
	return z.unary(x, engine.Floor)
}

// Ceil sets z to the smallest integer >= x and returns z. The integer is
// exact and then rounded up to z's precision.
func (z *Float) Ceil(x *Float) *Float {
	return z.unary(x, engine.Ceil)
}

// Round sets z to the integer nearest to x, rounding halfway cases away from
// zero, and returns z.
func (z *Float) Round(x *Float) *Float {
	return z.unary(x, engine.Round)
}

// Trunc sets z to the integer part of x and returns z.
func (z *Float) Trunc(x *Float) *Float {
	return z.unary(x, engine.Trunc)
}

// Sqrt sets z to the rounded square root of x, and returns it.
//
// The square root of -0 is -0 and the square root of a number < 0 is NaN.
func (z *Float) Sqrt(x *Float) *Float {
	return z.unary(x, nearest(engine.Sqrt))
}

// Cbrt sets z to the rounded cube root of x and returns z.
func (z *Float) Cbrt(x *Float) *Float {
	return z.unary(x, nearest(engine.Cbrt))
}

// Root sets z to the rounded k-th root of x and returns z. For k == 0 or for
// even k and x < 0, the result is NaN.
func (z *Float) Root(x *Float, k uint64) *Float {
	xr := x.rec()
	engine.RootnUi(z.dst(resultPrec(x)), xr, k, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Pow sets z to the rounded value of x**y and returns z. If z is a zero
// value, its precision is set to that of x; y's precision is ignored.
//
// Special cases follow IEEE 754 pow: x**±0 = 1 for any x including NaN,
// 1**y = 1 for any y including NaN, and a negative finite x raised to a
// non-integer y is NaN.
func (z *Float) Pow(x, y *Float) *Float {
	xr, yr := x.rec(), y.rec()
	engine.Pow(z.dst(resultPrec(x)), xr, yr, ToNearestEven)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// Exp sets z to the rounded value of e**x and returns z.
func (z *Float) Exp(x *Float) *Float {
	return z.unary(x, nearest(engine.Exp))
}

// Log sets z to the rounded natural logarithm of x and returns z. Log(±0) is
// -Inf and the logarithm of a number < 0 is NaN.
func (z *Float) Log(x *Float) *Float {
	return z.unary(x, nearest(engine.Log))
}

// Gamma sets z to the rounded value of the Gamma function at x and returns z.
// Gamma(±0) is ±Inf, and Gamma of a negative integer or -Inf is NaN.
func (z *Float) Gamma(x *Float) *Float {
	return z.unary(x, nearest(engine.Gamma))
}

// Lngamma sets z to the rounded value of log(Gamma(x)) and returns z. The
// result is NaN where Gamma(x) < 0. See Lgamma.
func (z *Float) Lngamma(x *Float) *Float {
	return z.unary(x, nearest(engine.Lngamma))
}

// Lgamma sets z to the rounded value of log|Gamma(x)| and returns z and the
// sign of Gamma(x), -1 or +1. The sign is +1 if x is NaN.
func (z *Float) Lgamma(x *Float) (*Float, int) {
	xr := x.rec()
	_, sign := engine.Lgamma(z.dst(resultPrec(x)), xr, ToNearestEven)
	runtime.KeepAlive(x)
	return z, sign
}
