package math

import "github.com/db47h/mpfr"

// E sets z to e, the base of natural logarithms, rounded to z's precision,
// and returns z. If z is a zero value, its precision is set to the default
// precision.
func E(z *mpfr.Float) *mpfr.Float {
	prec := prec(z)
	e := mpfr.NewPrec(prec).SetInt64(1)
	return store(z, prec, e.Exp(e))
}

// Expm1 sets z to e**x - 1 and returns z. It is accurate for x near zero,
// where Exp(x) - 1 would cancel.
func Expm1(z, x *mpfr.Float) *mpfr.Float {
	prec := prec(z, x)
	switch {
	case x.IsNaN() || x.IsZero():
		return store(z, prec, x)
	case x.IsInf():
		if x.Signbit() {
			return store(z, prec, mpfr.NewPrec(prec).SetInt64(-1))
		}
		return store(z, prec, x)
	}
	pp := prec + guardBits
	if x.MantExp(nil) < 0 {
		// |x| < 1/2
		return store(z, prec, expm1T(mpfr.NewPrec(pp), x))
	}
	r := mpfr.NewPrec(pp).Exp(x)
	return store(z, prec, r.SubInt64(r, 1))
}

// expm1T sets z to e**x - 1 using the Taylor series of e**x, and returns z.
// x must be finite and non-zero. The caller is responsible for allocating
// guard bits in z.
func expm1T(z, x *mpfr.Float) *mpfr.Float {
	var (
		p = z.Prec()
		t = mpfr.NewPrec(p).Set(x) // x**k/k!
	)
	z.Set(x)
	for k := int64(2); ; k++ {
		t.Mul(t, x)
		t.QuoInt64(t, k)
		if t.IsZero() || t.MantExp(nil) < z.MantExp(nil)-int(p) {
			break
		}
		z.Add(z, t)
	}
	return z
}
