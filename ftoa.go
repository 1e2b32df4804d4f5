// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float-to-string conversion functions.

package mpfr

import (
	"runtime"

	"github.com/db47h/mpfr/internal/engine"
)

// String formats x like x.Text('e', -1): the shortest decimal representation
// in scientific notation that reads back to x at x's precision. NaN and
// infinities format as "nan", "inf" and "-inf". String returns the empty
// string if x cannot be formatted.
func (x *Float) String() string {
	xr := x.rec()
	defer runtime.KeepAlive(x)
	n := engine.Snprintf(nil, xr, 'e', -1)
	if n < 0 {
		return ""
	}
	buf := make([]byte, n)
	engine.Snprintf(buf, xr, 'e', -1)
	return string(buf)
}

// Text converts the floating-point number x to a string according to the
// given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//	'x'	-0xd.dddddp±dd, hexadecimal mantissa, decimal power of two exponent
//	'X'	-0Xd.dddddP±dd, hexadecimal mantissa, decimal power of two exponent
//	'b'	-ddddddp±dd, decimal mantissa, decimal power of two exponent
//	'p'	-0x.dddp±dd, hexadecimal mantissa, decimal power of two exponent
//
// The precision prec controls the number of digits as for big.Float.Text. A
// negative precision selects the smallest number of decimal digits necessary
// to represent x uniquely at x's precision.
func (x *Float) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 32), format, prec))
}

// Append appends to buf the string form of the floating-point number x, as
// generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, fmt byte, prec int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	buf = engine.Append(buf, x.rec(), fmt, prec)
	runtime.KeepAlive(x)
	return buf
}
