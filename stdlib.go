// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package mpfr

import (
	"fmt"

	"github.com/db47h/mpfr/internal/engine"
)

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = engine.MaxBase

// Precision limits.
const (
	MinPrec = engine.MinPrec // smallest supported precision
	MaxPrec = engine.MaxPrec // largest (theoretically) supported precision; likely memory-limited
)

// RoundingMode determines how a Float value is rounded to the desired
// precision. Arithmetic always rounds to nearest, ties to even; the other
// modes are only used by the *Mode conversion methods.
type RoundingMode = engine.RoundingMode

// These constants define supported rounding modes.
const (
	ToNearestEven = engine.ToNearestEven // == IEEE 754-2008 roundTiesToEven
	ToNearestAway = engine.ToNearestAway // == IEEE 754-2008 roundTiesToAway
	ToZero        = engine.ToZero        // == IEEE 754-2008 roundTowardZero
	AwayFromZero  = engine.AwayFromZero  // no IEEE 754-2008 equivalent
	ToNegativeInf = engine.ToNegativeInf // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf = engine.ToPositiveInf // == IEEE 754-2008 roundTowardPositive
)

// An ErrDivByZero panic is raised by a Float division whose divisor is zero
// or NaN. An ErrDivByZero implements the error interface.
type ErrDivByZero struct {
	msg string
}

func (err ErrDivByZero) Error() string {
	return err.msg
}

// An ErrNaN is reported by package context when an operation produces a NaN.
// An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

// ErrSyntax is wrapped by parse errors for malformed numbers.
var ErrSyntax = engine.ErrSyntax

// A ParseError records a failed conversion of a string to a Float.
type ParseError struct {
	Num  string // the input
	Base int    // the conversion base
	Err  error  // the reason the conversion failed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mpfr: parsing %q in base %d: %v", e.Num, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
