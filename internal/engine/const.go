// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math/big"
	"sync"
)

// constant caches. The cached values carry constGuard extra bits so that a
// copy rounded to any smaller precision is within one ulp.
const constGuard = 64

var (
	constMu  sync.Mutex
	piCache  *big.Float
	ln2Cache *big.Float
	bernoRat []*big.Rat // B_0, B_2, B_4, ...
)

// constPi returns π rounded to prec bits, with an error below one ulp.
func constPi(prec uint) *big.Float {
	constMu.Lock()
	defer constMu.Unlock()
	if piCache == nil || piCache.Prec() < prec+constGuard {
		piCache = gaussLegendre(prec + constGuard)
	}
	return bf(prec).Set(piCache)
}

// constLn2 returns log(2) rounded to prec bits, with an error below one ulp.
func constLn2(prec uint) *big.Float {
	constMu.Lock()
	defer constMu.Unlock()
	if ln2Cache == nil || ln2Cache.Prec() < prec+constGuard {
		ln2Cache = ln2Series(prec + constGuard)
	}
	return bf(prec).Set(ln2Cache)
}

// gaussLegendre computes π with the Gauss-Legendre algorithm to prec bits.
func gaussLegendre(prec uint) *big.Float {
	pp := prec + 32
	var (
		two     = bf(pp).SetInt64(2)
		a       = bf(pp).SetInt64(1)
		b       = bf(pp).Sqrt(two)
		t       = bf(pp).SetFloat64(0.25)
		u       = bf(pp)
		z       = bf(pp)
		p       = bf(pp).SetInt64(1)
		epsilon = bf(pp).SetMantExp(bf(pp).SetInt64(1), -int(pp))
	)
	b.Quo(a, b)

	for {
		u.Set(a)                      // a_n
		a.SetMantExp(z.Add(a, b), -1) // a_n+1
		b.Sqrt(z.Mul(u, b))           // b_n+1

		// t = t - p×(a_n - a_n+1)²
		z.Sub(u, a)
		z.Mul(z, z)
		t.Sub(t, z.Mul(z, p))

		if z.Sub(a, b).Abs(z).Cmp(epsilon) <= 0 {
			break
		}
		p.SetMantExp(p, 1)
	}
	z.Add(a, b)
	a.Mul(z, z)
	t.SetMantExp(t, 2)
	return bf(prec).Quo(a, t)
}

// ln2Series computes log(2) = 2·atanh(1/3) = Σ 2/((2k+1)·3^(2k+1)) in fixed
// point with prec bits after the binary point plus guard bits.
func ln2Series(prec uint) *big.Float {
	n := prec + 32
	var (
		sum   big.Int
		pow   = new(big.Int).Lsh(big.NewInt(2), n) // 2·2^n / 3^(2k+1), k = 0
		term  big.Int
		nine  = big.NewInt(9)
		denom big.Int
	)
	pow.Quo(pow, big.NewInt(3))
	for k := int64(0); pow.Sign() != 0; k++ {
		term.Quo(pow, denom.SetInt64(2*k+1))
		sum.Add(&sum, &term)
		pow.Quo(pow, nine)
	}
	r := bf(prec).SetInt(&sum)
	return r.SetMantExp(r, -int(n))
}

// bernoulli returns B_2k as an exact rational. The returned value must not be
// modified.
func bernoulli(k int) *big.Rat {
	constMu.Lock()
	defer constMu.Unlock()
	if k < len(bernoRat) {
		return bernoRat[k]
	}
	n := 2*k + 2
	if m := 4 * len(bernoRat); m > n {
		n = m
	}
	bernoRat = akiyamaTanigawa(n)
	return bernoRat[k]
}

// akiyamaTanigawa computes the even-indexed Bernoulli numbers B_0 ... B_n-1
// (with B_1 = +1/2) and returns B_0, B_2, B_4, ...
func akiyamaTanigawa(n int) []*big.Rat {
	a := make([]*big.Rat, n+1)
	res := make([]*big.Rat, 0, n/2+1)
	var t big.Rat
	for m := 0; m <= n; m++ {
		a[m] = big.NewRat(1, int64(m+1))
		for j := m; j >= 1; j-- {
			t.Sub(a[j-1], a[j])
			a[j-1].Mul(&t, big.NewRat(int64(j), 1))
		}
		if m%2 == 0 {
			res = append(res, new(big.Rat).Set(a[0]))
		}
	}
	return res
}
