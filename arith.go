// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic and comparison between Floats.

package mpfr

import (
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

// Add sets z to the rounded sum x+y and returns z. If z is a zero value, its
// precision is set to the larger of x's and y's precision before the
// operation; otherwise z keeps its precision. Rounding is to nearest, ties to
// even. Adding infinities of opposite signs yields a NaN.
func (z *Float) Add(x, y *Float) *Float {
	xr, yr := x.rec(), y.rec()
	engine.Add(z.dst(resultPrec(x, y)), xr, yr, ToNearestEven)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// Sub sets z to the rounded difference x-y and returns z. Precision and
// rounding are handled as for Add.
func (z *Float) Sub(x, y *Float) *Float {
	xr, yr := x.rec(), y.rec()
	engine.Sub(z.dst(resultPrec(x, y)), xr, yr, ToNearestEven)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// Mul sets z to the rounded product x×y and returns z. Precision and rounding
// are handled as for Add. Multiplying zero by an infinity yields a NaN.
func (z *Float) Mul(x, y *Float) *Float {
	xr, yr := x.rec(), y.rec()
	engine.Mul(z.dst(resultPrec(x, y)), xr, yr, ToNearestEven)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// Quo sets z to the rounded quotient x/y and returns z. Precision and rounding
// are handled as for Add.
//
// Quo panics with ErrDivByZero if y is ±0 or NaN. z is unchanged in that
// case.
func (z *Float) Quo(x, y *Float) *Float {
	xr, yr := x.rec(), y.rec()
	divCheck(yr)
	engine.Div(z.dst(resultPrec(x, y)), xr, yr, ToNearestEven)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// Neg sets z to the value of x with its sign negated and returns z. If z is a
// zero value, its precision is set to x's precision.
func (z *Float) Neg(x *Float) *Float {
	xr := x.rec()
	engine.Neg(z.dst(resultPrec(x)), xr, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z. If z is a zero
// value, its precision is set to x's precision.
func (z *Float) Abs(x *Float) *Float {
	xr := x.rec()
	engine.Abs(z.dst(resultPrec(x)), xr, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// Any comparison involving a NaN returns 0.
func (x *Float) Cmp(y *Float) int {
	c := engine.Cmp(x.rec(), y.rec())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return c
}

// Equal reports whether x.Cmp(y) == 0. A NaN is therefore equal to any value.
func (x *Float) Equal(y *Float) bool {
	return x.Cmp(y) == 0
}
