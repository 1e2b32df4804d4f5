// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements an arbitrary-precision binary floating-point
// engine with an MPFR-like calling convention.
//
// Values live in opaque Records that must be initialized with Init or Init2
// before use and released with Clear exactly once. Operations write their
// result into a destination record, which may alias any operand, and return a
// ternary value: 0 if the stored result is exact, a positive value if it is
// greater than the exact result and a negative value if it is smaller.
//
// Finite digit arithmetic is delegated to math/big. The engine adds the
// special values big.Float does not have (NaN), MPFR's special value rules,
// and correctly rounded elementary functions.
package engine

import (
	"math"
	"math/big"
	"sync/atomic"
)

// RoundingMode is the rounding mode passed to engine operations.
type RoundingMode = big.RoundingMode

// Rounding modes.
const (
	ToNearestEven = big.ToNearestEven // round to nearest, ties to even
	ToNearestAway = big.ToNearestAway // round to nearest, ties away from zero
	ToZero        = big.ToZero
	AwayFromZero  = big.AwayFromZero
	ToNegativeInf = big.ToNegativeInf
	ToPositiveInf = big.ToPositiveInf
)

// Precision limits.
const (
	MinPrec = 1
	MaxPrec = big.MaxPrec
)

// A Record holds one arbitrary-precision value.
//
// x                 nan     f
// -----------------------------------------
// NaN               true    ±0 (sign only)
// ±0, finite, ±Inf  false   value
//
// prec == 0 marks a record that has not been initialized or has been
// cleared. f's precision always equals prec for an initialized record.
type Record struct {
	prec uint
	nan  bool
	f    big.Float
}

var (
	// defaultPrec is read by Init. It is not synchronized: changing it
	// while other goroutines initialize records is a data race.
	defaultPrec uint = 53

	live atomic.Int64
)

// DefaultPrec returns the precision used by Init.
func DefaultPrec() uint {
	return defaultPrec
}

// SetDefaultPrec sets the precision used by Init. prec is clamped to
// [MinPrec, MaxPrec].
func SetDefaultPrec(prec uint) {
	defaultPrec = clampPrec(prec)
}

// Live returns the number of records currently initialized.
func Live() int64 {
	return live.Load()
}

func clampPrec(prec uint) uint {
	if prec < MinPrec {
		return MinPrec
	}
	if prec > MaxPrec {
		return MaxPrec
	}
	return prec
}

// Init initializes x with the default precision and sets it to NaN.
func Init(x *Record) {
	Init2(x, defaultPrec)
}

// Init2 initializes x with the given precision and sets it to NaN.
// x must not be initialized already.
func Init2(x *Record, prec uint) {
	if x.prec != 0 {
		panic("engine: init of initialized record")
	}
	x.prec = clampPrec(prec)
	x.f.SetPrec(x.prec).SetMode(ToNearestEven).SetInt64(0)
	x.nan = true
	live.Add(1)
}

// Clear releases x. x must be initialized and must not be used again
// unless re-initialized.
func Clear(x *Record) {
	if x.prec == 0 {
		panic("engine: clear of uninitialized record")
	}
	x.prec = 0
	x.nan = false
	x.f = big.Float{}
	live.Add(-1)
}

// GetPrec returns the precision of x.
func GetPrec(x *Record) uint {
	x.check()
	return x.prec
}

// SetPrec resets the precision of x to prec and sets it to NaN. The previous
// value of x is lost.
func SetPrec(x *Record, prec uint) {
	x.check()
	x.prec = clampPrec(prec)
	x.f.SetPrec(0).SetPrec(x.prec).SetInt64(0)
	x.nan = true
}

// PrecRound rounds x to prec bits using rnd and changes its precision.
func PrecRound(x *Record, prec uint, rnd RoundingMode) int {
	x.check()
	x.prec = clampPrec(prec)
	if x.nan {
		x.f.SetPrec(0).SetPrec(x.prec)
		return 0
	}
	x.f.SetMode(rnd).SetPrec(x.prec)
	return x.result()
}

func (x *Record) check() {
	if x == nil || x.prec == 0 {
		panic("engine: use of uninitialized record")
	}
}

// result returns the ternary value of the last big.Float operation on
// x.f and raises the matching flags.
func (x *Record) result() int {
	x.nan = false
	t := int(x.f.Acc())
	if t != 0 {
		raise(Inexact)
		if x.f.IsInf() {
			raise(Overflow)
		} else if x.f.Sign() == 0 {
			raise(Underflow)
		}
	}
	return t
}

// setNaN sets x to NaN with a positive sign bit and returns 0.
func (x *Record) setNaN() int {
	raise(NaNFlag)
	x.nan = true
	x.f.SetInt64(0)
	return 0
}

// exactSi returns a temporary record holding i exactly.
func exactSi(i int64) *Record {
	r := &Record{prec: 64}
	r.f.SetPrec(64).SetInt64(i)
	return r
}

// exactUi returns a temporary record holding u exactly.
func exactUi(u uint64) *Record {
	r := &Record{prec: 64}
	r.f.SetPrec(64).SetUint64(u)
	return r
}

// exactD returns a temporary record holding d exactly.
func exactD(d float64) *Record {
	r := &Record{prec: 53}
	r.f.SetPrec(53)
	if math.IsNaN(d) {
		r.nan = true
		if math.Signbit(d) {
			r.f.Neg(&r.f)
		}
		return r
	}
	r.f.SetFloat64(d)
	return r
}

// Flags records exceptional conditions, like MPFR's global flags.
type Flags uint32

// Flag values.
const (
	Underflow Flags = 1 << iota
	Overflow
	NaNFlag
	Inexact
	Erange
	DivBy0
)

var flags atomic.Uint32

func raise(f Flags) {
	flags.Or(uint32(f))
}

// GetFlags returns the flags raised since the last ClearFlags.
func GetFlags() Flags {
	return Flags(flags.Load())
}

// ClearFlags clears all flags.
func ClearFlags() {
	flags.Store(0)
}

// Test reports whether all of the flags in f are raised.
func (f Flags) Test(g Flags) bool {
	return f&g == g
}
