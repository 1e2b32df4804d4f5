// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfr

import "github.com/db47h/mpfr/internal/engine"

// DefaultPrec returns the precision in bits given to Floats created by New,
// the New* constructors and by setters called on a zero value Float.
func DefaultPrec() uint {
	return engine.DefaultPrec()
}

// SetDefaultPrec sets the default precision, clamped to [MinPrec, MaxPrec].
//
// The default precision is not synchronized: calling SetDefaultPrec while
// other goroutines create Floats is a data race.
func SetDefaultPrec(prec uint) {
	engine.SetDefaultPrec(prec)
}

// prec returns the precision of x, 0 for the zero value.
func (x *Float) prec() uint {
	if x.r == nil {
		return 0
	}
	return engine.GetPrec(x.r)
}

// resultPrec returns the precision of a zero value receiver for an operation
// on the given operands: the largest operand precision, or the default
// precision if all operands are zero values.
func resultPrec(xs ...*Float) uint {
	var p uint
	for _, x := range xs {
		p = max(p, x.prec())
	}
	if p == 0 {
		return DefaultPrec()
	}
	return p
}
