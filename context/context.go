// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides contexts with an explicit precision for mpfr
// Floats.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *mpfr.Float
//
// create a new mpfr.Float set to the value of x, rounded to c's precision.
//
// Operators that set a receiver z to a function of other Float arguments
// like:
//
//	func (c *Context) UnaryOp(z, x *mpfr.Float) *mpfr.Float
//	func (c *Context) BinaryOp(z, x, y *mpfr.Float) *mpfr.Float
//
// compute the result at c's precision, store it in z and return z. z's
// precision is set to c's precision. z may alias any operand.
//
// A Context catches errors: if an operation divides by zero or generates a
// NaN, the operation silently succeeds with an undefined result. Further
// operations with the context will be no-ops (they simply return the receiver
// z) until (*Context).Err is called to check for errors.
//
// A Context is not safe for concurrent use.
package context

import (
	"errors"
	"math/big"

	"github.com/db47h/mpfr"
	"github.com/db47h/mpfr/math"
)

// A Context is a wrapper around Floats that facilitates management of
// precision and error handling.
type Context struct {
	prec uint
	err  error
}

// New creates a new context with the given precision. If prec is 0, it is
// set to the current mpfr.DefaultPrec.
func New(prec uint) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return c.prec
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// mpfr.DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = mpfr.DefaultPrec()
	}
	// general case
	if prec > mpfr.MaxPrec {
		prec = mpfr.MaxPrec
	}
	c.prec = prec
	return c
}

// New returns a new mpfr.Float with value +0 and precision set to c's
// precision.
func (c *Context) New() *mpfr.Float {
	return mpfr.NewPrec(c.prec)
}

// NewInt returns a new *mpfr.Float set to the (possibly rounded) value of x.
func (c *Context) NewInt(x *big.Int) *mpfr.Float {
	return c.New().SetInt(x)
}

// NewInt64 returns a new *mpfr.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewInt64(x int64) *mpfr.Float {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *mpfr.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewUint64(x uint64) *mpfr.Float {
	return c.New().SetUint64(x)
}

// NewBigFloat returns a new *mpfr.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewBigFloat(x *big.Float) *mpfr.Float {
	return c.New().SetBigFloat(x)
}

// NewFloat64 returns a new *mpfr.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewFloat64(x float64) *mpfr.Float {
	return c.New().SetFloat64(x)
}

// NewRat returns a new *mpfr.Float set to the (possibly rounded) value of x.
func (c *Context) NewRat(x *big.Rat) *mpfr.Float {
	return c.New().SetRat(x)
}

// NewString returns a new Float with the value of s in the given base and a
// boolean indicating success. See (*mpfr.Float).SetString for the accepted
// syntax.
func (c *Context) NewString(s string, base int) (f *mpfr.Float, success bool) {
	return c.New().SetString(s, base)
}

// ParseFloat is like mpfr.ParseFloat(s, base, c.Prec()).
func (c *Context) ParseFloat(s string, base int) (*mpfr.Float, error) {
	return mpfr.ParseFloat(s, base, c.prec)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// apply runs op on a temporary Float at c's precision and stores its result
// in z. Division by zero panics and NaN results are recorded in c.err.
func (c *Context) apply(z *mpfr.Float, name string, op func(r *mpfr.Float)) (res *mpfr.Float) {
	if c.err != nil {
		return z
	}
	defer func() {
		if e := recover(); e != nil {
			err, ok := e.(error)
			if !ok || !errors.As(err, new(mpfr.ErrDivByZero)) {
				panic(e)
			}
			c.err = err
			res = z
		}
	}()
	r := c.New()
	op(r)
	if r.IsNaN() {
		c.err = mpfr.ErrNaN{Msg: "mpfr: " + name + " produced a NaN"}
	}
	return c.store(z, r)
}

// store sets z to x, with z's precision set to c's precision.
func (c *Context) store(z, x *mpfr.Float) *mpfr.Float {
	if z.Prec() != c.prec {
		z.SetPrec(c.prec)
	}
	return z.Set(x)
}

// Round sets z to the value of x rounded to c's precision and returns z.
func (c *Context) Round(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Round", func(r *mpfr.Float) { r.Set(x) })
}

// RoundInt sets z to the integer nearest to x, rounding halfway cases away
// from zero, and returns z.
func (c *Context) RoundInt(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "RoundInt", func(r *mpfr.Float) { r.Round(x) })
}

// Floor sets z to the largest integer <= x and returns z.
func (c *Context) Floor(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Floor", func(r *mpfr.Float) { r.Floor(x) })
}

// Ceil sets z to the smallest integer >= x and returns z.
func (c *Context) Ceil(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Ceil", func(r *mpfr.Float) { r.Ceil(x) })
}

// Trunc sets z to the integer part of x and returns z.
func (c *Context) Trunc(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Trunc", func(r *mpfr.Float) { r.Trunc(x) })
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Add", func(r *mpfr.Float) { r.Add(x, y) })
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Sub", func(r *mpfr.Float) { r.Sub(x, y) })
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Mul", func(r *mpfr.Float) { r.Mul(x, y) })
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Quo", func(r *mpfr.Float) { r.Quo(x, y) })
}

// AddInt64 sets z to the rounded sum x+y and returns z.
func (c *Context) AddInt64(z, x *mpfr.Float, y int64) *mpfr.Float {
	return c.apply(z, "AddInt64", func(r *mpfr.Float) { r.AddInt64(x, y) })
}

// MulInt64 sets z to the rounded product x×y and returns z.
func (c *Context) MulInt64(z, x *mpfr.Float, y int64) *mpfr.Float {
	return c.apply(z, "MulInt64", func(r *mpfr.Float) { r.MulInt64(x, y) })
}

// QuoInt64 sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoInt64(z, x *mpfr.Float, y int64) *mpfr.Float {
	return c.apply(z, "QuoInt64", func(r *mpfr.Float) { r.QuoInt64(x, y) })
}

// Neg sets z to the value of x with its sign negated, and returns z.
func (c *Context) Neg(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Neg", func(r *mpfr.Float) { r.Neg(x) })
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Abs", func(r *mpfr.Float) { r.Abs(x) })
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Sqrt", func(r *mpfr.Float) { r.Sqrt(x) })
}

// Cbrt sets z to the rounded cube root of x, and returns z.
func (c *Context) Cbrt(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Cbrt", func(r *mpfr.Float) { r.Cbrt(x) })
}

// Root sets z to the rounded k-th root of x, and returns z.
func (c *Context) Root(z, x *mpfr.Float, k uint64) *mpfr.Float {
	return c.apply(z, "Root", func(r *mpfr.Float) { r.Root(x, k) })
}

// Pow sets z to the rounded value of x**y and returns z.
func (c *Context) Pow(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Pow", func(r *mpfr.Float) { r.Pow(x, y) })
}

// Exp sets z to the rounded value of e**x and returns z.
func (c *Context) Exp(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Exp", func(r *mpfr.Float) { r.Exp(x) })
}

// Log sets z to the rounded natural logarithm of x and returns z.
func (c *Context) Log(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Log", func(r *mpfr.Float) { r.Log(x) })
}

// Gamma sets z to the rounded value of Gamma(x) and returns z.
func (c *Context) Gamma(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Gamma", func(r *mpfr.Float) { r.Gamma(x) })
}

// Lngamma sets z to the rounded value of log(Gamma(x)) and returns z.
func (c *Context) Lngamma(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Lngamma", func(r *mpfr.Float) { r.Lngamma(x) })
}

// Log2 sets z to the rounded base-2 logarithm of x and returns z.
func (c *Context) Log2(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Log2", func(r *mpfr.Float) { math.Log2(r, x) })
}

// Log10 sets z to the rounded base-10 logarithm of x and returns z.
func (c *Context) Log10(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Log10", func(r *mpfr.Float) { math.Log10(r, x) })
}

// Expm1 sets z to the rounded value of e**x - 1 and returns z.
func (c *Context) Expm1(z, x *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Expm1", func(r *mpfr.Float) { math.Expm1(r, x) })
}

// AGM sets z to the rounded arithmetic-geometric mean of x and y and returns
// z.
func (c *Context) AGM(z, x, y *mpfr.Float) *mpfr.Float {
	return c.apply(z, "AGM", func(r *mpfr.Float) { math.AGM(r, x, y) })
}

// Pi sets z to the value of π rounded to c's precision and returns z.
func (c *Context) Pi(z *mpfr.Float) *mpfr.Float {
	return c.apply(z, "Pi", func(r *mpfr.Float) { math.Pi(r) })
}
