// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Floats and other number types.

package mpfr

import (
	"math/big"
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

// SetInt64 sets z to x, rounded to z's precision, and returns z. If z is a
// zero value, its precision is set to the default precision.
func (z *Float) SetInt64(x int64) *Float {
	engine.SetSi(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetUint64 sets z to x, rounded to z's precision, and returns z. If z is a
// zero value, its precision is set to the default precision.
func (z *Float) SetUint64(x uint64) *Float {
	engine.SetUi(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetFloat64 sets z to x, rounded to z's precision, and returns z. If z is a
// zero value, its precision is set to the default precision. A NaN x sets z
// to NaN.
func (z *Float) SetFloat64(x float64) *Float {
	engine.SetD(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetInt sets z to x, rounded to z's precision, and returns z. If z is a zero
// value, its precision is set to the default precision.
func (z *Float) SetInt(x *big.Int) *Float {
	engine.SetZ(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetRat sets z to x, rounded to z's precision, and returns z. If z is a zero
// value, its precision is set to the default precision.
func (z *Float) SetRat(x *big.Rat) *Float {
	engine.SetQ(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetBigFloat sets z to x, rounded to z's precision, and returns z. If z is a
// zero value, its precision is set to the default precision.
func (z *Float) SetBigFloat(x *big.Float) *Float {
	engine.SetF(z.dst(DefaultPrec()), x, ToNearestEven)
	return z
}

// SetInt64Exp sets z to m × 2**exp, rounded to z's precision, and returns z.
func (z *Float) SetInt64Exp(m int64, exp int) *Float {
	engine.SetSi2exp(z.dst(DefaultPrec()), m, exp, ToNearestEven)
	return z
}

// SetUint64Exp sets z to m × 2**exp, rounded to z's precision, and returns z.
func (z *Float) SetUint64Exp(m uint64, exp int) *Float {
	engine.SetUi2exp(z.dst(DefaultPrec()), m, exp, ToNearestEven)
	return z
}

// SetIntExp sets z to m × 2**exp, rounded to z's precision, and returns z.
func (z *Float) SetIntExp(m *big.Int, exp int) *Float {
	engine.SetZ2exp(z.dst(DefaultPrec()), m, exp, ToNearestEven)
	return z
}

// Int64 returns the integer resulting from rounding x to nearest, ties to
// even. Out of range values saturate to math.MinInt64 or math.MaxInt64, and
// NaN converts to 0.
func (x *Float) Int64() int64 {
	return x.Int64Mode(ToNearestEven)
}

// Int64Mode is like Int64 but rounds with the given mode.
func (x *Float) Int64Mode(mode RoundingMode) int64 {
	i := engine.GetSi(x.rec(), mode)
	runtime.KeepAlive(x)
	return i
}

// Uint64 returns the unsigned integer resulting from rounding x to nearest,
// ties to even. Negative values convert to 0, values too large saturate to
// math.MaxUint64, and NaN converts to 0.
func (x *Float) Uint64() uint64 {
	return x.Uint64Mode(ToNearestEven)
}

// Uint64Mode is like Uint64 but rounds with the given mode.
func (x *Float) Uint64Mode(mode RoundingMode) uint64 {
	u := engine.GetUi(x.rec(), mode)
	runtime.KeepAlive(x)
	return u
}

// Float64 returns the float64 value nearest to x, ties to even. Values too
// large or too small for a float64 convert to ±Inf or ±0.
func (x *Float) Float64() float64 {
	return x.Float64Mode(ToNearestEven)
}

// Float64Mode is like Float64 but rounds with the given mode.
func (x *Float) Float64Mode(mode RoundingMode) float64 {
	d := engine.GetD(x.rec(), mode)
	runtime.KeepAlive(x)
	return d
}

// Int sets z to the integer nearest to x, ties to even, and returns z. If z
// is nil, a new big.Int is allocated. ±Inf and NaN convert to 0.
func (x *Float) Int(z *big.Int) *big.Int {
	if z == nil {
		z = new(big.Int)
	}
	engine.GetZ(z, x.rec(), ToNearestEven)
	runtime.KeepAlive(x)
	return z
}

// Rat sets z to the exact value of x and returns z. If z is nil, a new
// big.Rat is allocated. ±Inf and NaN convert to 0.
func (x *Float) Rat(z *big.Rat) *big.Rat {
	if z == nil {
		z = new(big.Rat)
	}
	engine.GetQ(z, x.rec())
	runtime.KeepAlive(x)
	return z
}

// BigFloat sets z to x rounded to z's precision and returns z. If z is nil or
// has precision 0, it takes x's precision. NaN converts to 0.
func (x *Float) BigFloat(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	engine.GetF(z, x.rec(), ToNearestEven)
	runtime.KeepAlive(x)
	return z
}
