package math

import "github.com/db47h/mpfr"

// FMA sets z to x × y + u and returns z. The product x × y is not rounded and
// the sum is computed with guard bits before the final rounding. If z is a
// zero value, its precision is set to the largest of x's, y's and u's
// precision.
//
// FMA of 0 × ±Inf, or of infinities of opposite signs, is NaN.
func FMA(z, x, y, u *mpfr.Float) *mpfr.Float {
	p := z.Prec()
	if p == 0 {
		p = max(x.Prec(), y.Prec(), u.Prec())
		if p == 0 {
			p = mpfr.DefaultPrec()
		}
	}
	// the product of two Floats with prec bits each is exact on 2×prec bits
	xy := mpfr.NewPrec(max(x.Prec(), 1) + max(y.Prec(), 1)).Mul(x, y)
	s := mpfr.NewPrec(xy.Prec() + max(u.Prec(), 1) + guardBits)
	return store(z, p, s.Add(xy, u))
}
