package math

import (
	"sync"

	"github.com/db47h/mpfr"
)

var _pi struct {
	sync.Mutex
	v *mpfr.Float
}

// Pi sets z to π, rounded to z's precision, and returns z. If z is a zero
// value, its precision is set to the default precision.
//
// The value of π is cached. Pi is safe for concurrent use.
func Pi(z *mpfr.Float) *mpfr.Float {
	prec := prec(z)
	_pi.Lock()
	defer _pi.Unlock()
	if _pi.v == nil || _pi.v.Prec() < prec+guardBits {
		_pi.v = pi(prec + guardBits)
	}
	return store(z, prec, _pi.v)
}

// pi computes π with the Gauss-Legendre algorithm and returns it as a new
// Float with precision prec.
func pi(prec uint) *mpfr.Float {
	var (
		// errors accumulate over O(log(prec)) iterations
		pp = prec + 32
		a  = mpfr.NewPrec(pp).SetInt64(1)
		b  = mpfr.NewPrec(pp).SetInt64(2)
		t  = mpfr.NewPrec(pp).SetFloat64(0.25)
		p  = mpfr.NewPrec(pp).SetInt64(1)
		u  = mpfr.NewPrec(pp)
		z  = mpfr.NewPrec(pp)
	)
	b.Sqrt(b)
	b.Int64Quo(1, b)

	for {
		u.Set(a)                      // a_n
		a.SetMantExp(z.Add(a, b), -1) // a_n+1
		b.Sqrt(z.Mul(u, b))           // b_n+1

		// t_n+1 = t_n - p×(a_n - a_n+1)²
		t.Sub(t, z.Mul(u.Mul(u.Sub(u, a), u), p))

		if converged(z, a, b, pp) {
			break
		}

		p.MulInt64(p, 2)
	}
	z.Add(a, b)
	z.Mul(z, z)
	t.MulInt64(t, 4)
	return mpfr.NewPrec(prec).Quo(z, t)
}
