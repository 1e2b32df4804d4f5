// Package math provides constants and functions on mpfr Floats that are not
// methods of mpfr.Float.
//
// Functions follow the receiver conventions of package mpfr: the result is
// stored in z, rounded to z's precision, and z is returned. If z is a zero
// value, its precision is set to that of the first operand, or to the default
// precision if there is none. z may alias any operand.
//
// Results are computed with guardBits extra bits of precision, then rounded
// once to z's precision.
package math

import "github.com/db47h/mpfr"

// extra bits of working precision
const guardBits = 64

// prec returns the precision of the result of an operation with receiver z on
// the operands xs.
func prec(z *mpfr.Float, xs ...*mpfr.Float) uint {
	if p := z.Prec(); p != 0 {
		return p
	}
	for _, x := range xs {
		if p := x.Prec(); p != 0 {
			return p
		}
	}
	return mpfr.DefaultPrec()
}

// store sets z to x rounded to prec bits and returns z.
func store(z *mpfr.Float, prec uint, x *mpfr.Float) *mpfr.Float {
	if z.Prec() != prec {
		z.SetPrec(prec)
	}
	return z.Set(x)
}

// converged reports whether |a-b| is within 2**8 ulps of a at precision prec.
// t is used as a temporary.
func converged(t, a, b *mpfr.Float, prec uint) bool {
	t.Sub(a, b)
	return t.IsZero() || t.MantExp(nil) < a.MantExp(nil)-int(prec)+8
}
