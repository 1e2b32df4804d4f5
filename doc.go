// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpfr implements arbitrary-precision binary floating-point arithmetic
with MPFR semantics: signed zeros, infinities, NaN and correctly rounded
elementary functions.

A Float is a value type wrapped around a record of the engine in
internal/engine. The engine has a C-style API: records must be initialized
with a precision before use and cleared exactly once, and every operation
writes its result into a destination record. Float hides all of this: a
Float acquires its record on first write and releases it once the Float
becomes unreachable.

The zero value for a Float is +0 with precision 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(mpfr.Float)  // x is a *Float of value +0

Alternatively, new Float values can be allocated and initialized with the
functions:

	func New() *Float
	func NewPrec(prec uint) *Float
	func NewFloat64(x float64) *Float
	func NewString(s string, base int) (*Float, bool)

All constructors but NewPrec, NewPrecString and ParseFloat use the default
precision (see DefaultPrec and SetDefaultPrec). The default precision is a
process wide setting and is not synchronized.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Float) SetV(v V) *Float            // z = v
	func (z *Float) Unary(x *Float) *Float      // z = unary x
	func (z *Float) Binary(x, y *Float) *Float  // z = x binary y
	func (x *Float) Pred() P                    // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten. A receiver that already holds a value keeps its precision, so
that

	sum.Add(sum, x)

rounds the sum to the precision of sum. A zero value receiver takes the
largest precision of its Float operands:

	z := new(mpfr.Float).Add(x, y) // z.Prec() == max(x.Prec(), y.Prec())

Operations mixing a Float with an int64, uint64 or float64 take the precision
of the Float operand. Reversed forms exist for non-commutative operations:

	z.SubInt64(x, 1)   // z = x - 1
	z.Int64Sub(1, x)   // z = 1 - x

All arithmetic rounds to nearest, ties to even. Only the *Mode conversion
methods accept other rounding modes.

Division by a zero Float, a NaN Float or a zero int64, uint64 or float64
panics with ErrDivByZero instead of producing an infinity. Package context
provides a Context that recovers these panics into a sticky error.

Package math provides π, e and the functions of MPFR that are not Float
methods, such as AGM, Log2 and Expm1.

Floats must always be used by pointer. Using a non-zero Float that has been
copied by value panics.

Finally, *Float satisfies the fmt package's Scanner and Formatter interfaces,
encoding.TextMarshaler and TextUnmarshaler, and gob.GobEncoder and
GobDecoder.
*/
package mpfr
