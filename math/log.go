package math

import (
	"sync"

	"github.com/db47h/mpfr"
)

// AGM sets z to the arithmetic-geometric mean of x and y, and returns z.
//
// The result is NaN if x or y is NaN or negative, +0 if x or y is zero and
// +Inf if x or y is +Inf.
func AGM(z, x, y *mpfr.Float) *mpfr.Float {
	prec := prec(z, x, y)
	switch {
	case x.IsNaN() || y.IsNaN() || x.Sign() < 0 || y.Sign() < 0:
		return store(z, prec, mpfr.NaN())
	case x.IsZero() || y.IsZero():
		return store(z, prec, mpfr.Zero(1))
	case x.IsInf() || y.IsInf():
		return store(z, prec, mpfr.Inf(1))
	}
	pp := prec + guardBits
	a := mpfr.NewPrec(pp).Set(x)
	b := mpfr.NewPrec(pp).Set(y)
	return store(z, prec, agm(a, b))
}

// agm returns the arithmetic-geometric-mean of a, b, finite and > 0. a and b
// are not preserved.
func agm(a, b *mpfr.Float) *mpfr.Float {
	var (
		prec = a.Prec()
		t    = mpfr.NewPrec(prec)
		z    = mpfr.NewPrec(prec)
	)
	for !converged(z, a, b, prec) {
		t.Set(a)
		a.SetMantExp(z.Add(a, b), -1) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))           // b_n+1 = sqrt(a_n × b_n)
	}
	return a
}

// Log2 sets z to the base-2 logarithm of x and returns z. Log2 of an exact
// power of two is exact.
func Log2(z, x *mpfr.Float) *mpfr.Float {
	prec := prec(z, x)
	if x.Sign() > 0 && !x.IsInf() {
		m := new(mpfr.Float)
		if e := x.MantExp(m); m.CmpFloat64(0.5) == 0 {
			return store(z, prec, mpfr.NewPrec(prec).SetInt64(int64(e-1)))
		}
	}
	return logBase(z, x, prec, ln2)
}

// Log10 sets z to the base-10 logarithm of x and returns z.
func Log10(z, x *mpfr.Float) *mpfr.Float {
	return logBase(z, x, prec(z, x), ln10)
}

// logBase sets z to log(x)/log(b) where lnb returns log(b) at a given
// precision.
func logBase(z, x *mpfr.Float, prec uint, lnb func(prec uint) *mpfr.Float) *mpfr.Float {
	pp := prec + guardBits
	r := mpfr.NewPrec(pp).Log(x)
	if r.IsNaN() || r.IsInf() || r.IsZero() {
		return store(z, prec, r)
	}
	return store(z, prec, r.Quo(r, lnb(pp)))
}

type logCache struct {
	sync.Mutex
	b int64
	v *mpfr.Float
}

var (
	_ln2  = logCache{b: 2}
	_ln10 = logCache{b: 10}
)

// get returns log(c.b) with a precision of at least prec bits. The returned
// Float must not be modified.
func (c *logCache) get(prec uint) *mpfr.Float {
	c.Lock()
	defer c.Unlock()
	if c.v == nil || c.v.Prec() < prec {
		c.v = mpfr.NewPrec(prec).Log(mpfr.NewPrec(prec).SetInt64(c.b))
	}
	return c.v
}

func ln2(prec uint) *mpfr.Float  { return _ln2.get(prec) }
func ln10(prec uint) *mpfr.Float { return _ln10.get(prec) }
