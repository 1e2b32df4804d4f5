// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float conversion functions.

package mpfr

import (
	"fmt"

	"github.com/db47h/mpfr/internal/engine"
)

// SetString sets z to the value of s in the given base, rounded to z's
// precision, and returns z and a boolean indicating success. If z is a zero
// value, its precision is set to the default precision. The entire string
// (not just a prefix) must be valid for success. If the operation failed, z
// is unchanged but the returned value is nil.
//
// The number may be preceded by white space and must be of the form:
//
//	number   = [ sign ] ( float | special ) .
//	sign     = "+" | "-" .
//	float    = [ prefix ] mantissa [ exponent ] .
//	prefix   = "0x" | "0X" | "0b" | "0B" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "e" | "E" | "@" | "p" | "P" ) [ sign ] decimal digits .
//	special  = "nan" | "inf" | "infinity" | "@nan@" | "@inf@" .
//
// The base must be 0 or in the range [2, MaxBase]. Base 0 selects base 16 or
// 2 for the "0x" and "0b" prefixes and base 10 otherwise. For bases up to 36,
// letters are case-insensitive digits. Above 36, 'A' to 'Z' are the digits
// 10 to 35 and 'a' to 'z' the digits 36 to 61.
//
// An "e" exponent is a power of the base and is valid up to base 10. An "@"
// exponent is a power of the base valid in any base. A "p" exponent is a
// power of two valid in bases 2 and 16.
func (z *Float) SetString(s string, base int) (*Float, bool) {
	if _, err := engine.Parse(z.dst(DefaultPrec()), s, base, ToNearestEven); err != nil {
		return nil, false
	}
	return z, true
}

// NewString returns a new Float set to the value of s in the given base,
// rounded to the default precision, and a boolean indicating success. See
// SetString for the accepted syntax.
func NewString(s string, base int) (*Float, bool) {
	return New().SetString(s, base)
}

// NewPrecString is like NewString with an explicit precision.
func NewPrecString(prec uint, s string, base int) (*Float, bool) {
	return NewPrec(prec).SetString(s, base)
}

// ParseFloat is like NewPrecString but returns a *ParseError describing the
// failure. A precision of 0 selects the default precision.
func ParseFloat(s string, base int, prec uint) (*Float, error) {
	if prec == 0 {
		prec = DefaultPrec()
	}
	z := NewPrec(prec)
	if _, err := engine.Parse(z.r, s, base, ToNearestEven); err != nil {
		return nil, &ParseError{Num: s, Base: base, Err: err}
	}
	return z, nil
}

var _ fmt.Scanner = &Float{} // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number in base 10, rounded to z's precision. It accepts formats
// whose verbs are supported by fmt.Scan for floating point values, which
// are: 'b' (binary), 'e', 'E', 'f', 'F', 'g', 'G' and 'v'.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'v':
	default:
		return fmt.Errorf("mpfr: bad verb %%%c for *mpfr.Float", ch)
	}
	s.SkipSpace()
	base := 0
	if ch == 'b' {
		base = 2
	}
	_, err := engine.Scan(z.dst(DefaultPrec()), byteReader{s}, base, ToNearestEven)
	return err
}
