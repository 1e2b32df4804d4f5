// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic and comparison between a Float and machine
// integers or float64 values.
//
// A zero value receiver takes the precision of the Float operand. The machine
// operand is converted exactly and does not contribute precision.

package mpfr

import (
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

var errDivByZero = ErrDivByZero{"mpfr: division by zero"}

// divCheck panics if the Float divisor y is zero or NaN.
func divCheck(y *engine.Record) {
	if engine.CmpUi(y, 0) == 0 {
		panic(errDivByZero)
	}
}

// AddInt64 sets z to the rounded sum x+y and returns z.
func (z *Float) AddInt64(x *Float, y int64) *Float {
	xr := x.rec()
	engine.AddSi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// SubInt64 sets z to the rounded difference x-y and returns z.
func (z *Float) SubInt64(x *Float, y int64) *Float {
	xr := x.rec()
	engine.SubSi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Int64Sub sets z to the rounded difference x-y and returns z.
func (z *Float) Int64Sub(x int64, y *Float) *Float {
	yr := y.rec()
	engine.SiSub(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// MulInt64 sets z to the rounded product x×y and returns z.
func (z *Float) MulInt64(x *Float, y int64) *Float {
	xr := x.rec()
	engine.MulSi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// QuoInt64 sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is 0.
func (z *Float) QuoInt64(x *Float, y int64) *Float {
	if y == 0 {
		panic(errDivByZero)
	}
	xr := x.rec()
	engine.DivSi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Int64Quo sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is ±0 or NaN.
func (z *Float) Int64Quo(x int64, y *Float) *Float {
	yr := y.rec()
	divCheck(yr)
	engine.SiDiv(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// AddUint64 sets z to the rounded sum x+y and returns z.
func (z *Float) AddUint64(x *Float, y uint64) *Float {
	xr := x.rec()
	engine.AddUi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// SubUint64 sets z to the rounded difference x-y and returns z.
func (z *Float) SubUint64(x *Float, y uint64) *Float {
	xr := x.rec()
	engine.SubUi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Uint64Sub sets z to the rounded difference x-y and returns z.
func (z *Float) Uint64Sub(x uint64, y *Float) *Float {
	yr := y.rec()
	engine.UiSub(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// MulUint64 sets z to the rounded product x×y and returns z.
func (z *Float) MulUint64(x *Float, y uint64) *Float {
	xr := x.rec()
	engine.MulUi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// QuoUint64 sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is 0.
func (z *Float) QuoUint64(x *Float, y uint64) *Float {
	if y == 0 {
		panic(errDivByZero)
	}
	xr := x.rec()
	engine.DivUi(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Uint64Quo sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is ±0 or NaN.
func (z *Float) Uint64Quo(x uint64, y *Float) *Float {
	yr := y.rec()
	divCheck(yr)
	engine.UiDiv(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// AddFloat64 sets z to the rounded sum x+y and returns z.
func (z *Float) AddFloat64(x *Float, y float64) *Float {
	xr := x.rec()
	engine.AddD(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// SubFloat64 sets z to the rounded difference x-y and returns z.
func (z *Float) SubFloat64(x *Float, y float64) *Float {
	xr := x.rec()
	engine.SubD(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Float64Sub sets z to the rounded difference x-y and returns z.
func (z *Float) Float64Sub(x float64, y *Float) *Float {
	yr := y.rec()
	engine.DSub(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// MulFloat64 sets z to the rounded product x×y and returns z.
func (z *Float) MulFloat64(x *Float, y float64) *Float {
	xr := x.rec()
	engine.MulD(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// QuoFloat64 sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is ±0. A NaN y yields a NaN.
func (z *Float) QuoFloat64(x *Float, y float64) *Float {
	if y == 0 {
		panic(errDivByZero)
	}
	xr := x.rec()
	engine.DivD(z.dst(resultPrec(x)), xr, y, ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Float64Quo sets z to the rounded quotient x/y and returns z. It panics with
// ErrDivByZero if y is ±0 or NaN.
func (z *Float) Float64Quo(x float64, y *Float) *Float {
	yr := y.rec()
	divCheck(yr)
	engine.DDiv(z.dst(resultPrec(y)), x, yr, ToNearestEven)
	runtime.KeepAlive(y)
	return z
}

// CmpInt64 compares x and y like Cmp.
func (x *Float) CmpInt64(y int64) int {
	c := engine.CmpSi(x.rec(), y)
	runtime.KeepAlive(x)
	return c
}

// CmpUint64 compares x and y like Cmp.
func (x *Float) CmpUint64(y uint64) int {
	c := engine.CmpUi(x.rec(), y)
	runtime.KeepAlive(x)
	return c
}

// CmpFloat64 compares x and y like Cmp. A NaN y compares equal to x.
func (x *Float) CmpFloat64(y float64) int {
	c := engine.CmpD(x.rec(), y)
	runtime.KeepAlive(x)
	return c
}
