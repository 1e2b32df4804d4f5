// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfr

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	eDigits  = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274"
	piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
)

func TestFloatRound(t *testing.T) {
	for _, test := range []struct {
		x                         float64
		floor, ceil, round, trunc float64
	}{
		{2.4999, 2, 3, 2, 2},
		{2.5, 2, 3, 3, 2},
		{-2.5, -3, -2, -3, -2},
		{-2.4999, -3, -2, -2, -2},
		{0.5, 0, 1, 1, 0},
		{1e300, 1e300, 1e300, 1e300, 1e300},
	} {
		x := NewFloat64(test.x)
		for _, f := range []struct {
			name string
			op   func(z, x *Float) *Float
			want float64
		}{
			{"Floor", (*Float).Floor, test.floor},
			{"Ceil", (*Float).Ceil, test.ceil},
			{"Round", (*Float).Round, test.round},
			{"Trunc", (*Float).Trunc, test.trunc},
		} {
			if got := f.op(new(Float), x).Float64(); got != f.want {
				t.Errorf("%s(%g) = %g; want %g", f.name, test.x, got, f.want)
			}
		}
	}

	// results are rounded to the receiver's precision
	z := NewPrec(4)
	require.Equal(t, 960.0, z.Floor(NewFloat64(1000.5)).Float64())
	require.Equal(t, 1024.0, z.Ceil(NewFloat64(1000.5)).Float64())
	require.True(t, z.Floor(NaN()).IsNaN())
	require.True(t, z.Trunc(Inf(-1)).IsInf())
}

func TestFloatRoot(t *testing.T) {
	for _, test := range []struct {
		x    float64
		k    uint64
		want float64
	}{
		{16, 2, 4},
		{-27, 3, -3},
		{81, 4, 3},
		{2, 2, math.Sqrt2},
		{-4, 2, math.NaN()},
		{-16, 4, math.NaN()},
		{5, 0, math.NaN()},
		{math.Inf(1), 5, math.Inf(1)},
	} {
		got := new(Float).Root(NewFloat64(test.x), test.k).Float64()
		if got != test.want && !(math.IsNaN(got) && math.IsNaN(test.want)) {
			t.Errorf("Root(%g, %d) = %g; want %g", test.x, test.k, got, test.want)
		}
	}

	require.Equal(t, math.Sqrt2, new(Float).Sqrt(NewInt64(2)).Float64())
	require.InEpsilon(t, math.Cbrt(2), new(Float).Cbrt(NewInt64(2)).Float64(), 1e-15)
	require.True(t, new(Float).Sqrt(NewInt64(-1)).IsNaN())
	require.True(t, new(Float).Sqrt(Zero(-1)).Signbit(), "√-0 = -0")

	// √2 × √2 != 2 at any precision, but very close
	for _, prec := range []uint{64, 200, 1000} {
		x := NewPrec(prec).SetInt64(2)
		x.Sqrt(x)
		x.Mul(x, x)
		x.SubInt64(x, 2)
		require.Less(t, math.Abs(x.Float64()), math.Ldexp(1, 3-int(prec)), "prec %d", prec)
	}
}

func TestFloatPow(t *testing.T) {
	for _, test := range []struct {
		x, y, want float64
	}{
		{2, 10, 1024},
		{2, -2, 0.25},
		{4, 0.5, 2},
		{2, 0.5, math.Sqrt2},
		{2.654, 2, 2.654 * 2.654},
		{-2, 3, -8},
		{-1, math.Inf(1), 1},
		{math.NaN(), 0, 1},
		{1, math.NaN(), 1},
		{0, -1, math.Inf(1)},
		{math.Copysign(0, -1), -3, math.Inf(-1)},
		{0.5, math.Inf(-1), math.Inf(1)},
		{-8, 1.0 / 3, math.NaN()},
	} {
		got := new(Float).Pow(NewFloat64(test.x), NewFloat64(test.y)).Float64()
		if got != test.want && !(math.IsNaN(got) && math.IsNaN(test.want)) {
			t.Errorf("Pow(%g, %g) = %g; want %g", test.x, test.y, got, test.want)
		}
	}

	// the result takes the precision of x
	z := new(Float).Pow(NewPrec(100).SetInt64(3), NewPrec(500).SetInt64(2))
	require.Equal(t, uint(100), z.Prec())
	require.Equal(t, int64(9), z.Int64())

	for _, y := range []float64{0.1, -0.3, 3.7, 10.01} {
		got := new(Float).Pow(NewFloat64(2.654), NewFloat64(y)).Float64()
		require.InEpsilon(t, math.Pow(2.654, y), got, 1e-15, "2.654**%g", y)
	}
}

func TestFloatExpLog(t *testing.T) {
	require.Equal(t, math.E, new(Float).Exp(NewInt64(1)).Float64())
	require.Equal(t, math.Ln2, new(Float).Log(NewInt64(2)).Float64())
	require.Equal(t, 1.0, new(Float).Exp(Zero(-1)).Float64())
	require.Equal(t, 0.0, new(Float).Exp(Inf(-1)).Float64())
	require.True(t, new(Float).Log(NewInt64(-1)).IsNaN())
	require.Equal(t, math.Inf(-1), new(Float).Log(Zero(1)).Float64())

	e, _ := NewPrecString(300, eDigits, 10)
	x := new(Float).Exp(NewPrec(300).SetInt64(1))
	require.Equal(t, e.String(), x.String())
	x.Log(x)
	require.Equal(t, 1.0, x.Float64())
}

func TestFloatGamma(t *testing.T) {
	require.Equal(t, 0, new(Float).Gamma(NewInt64(5)).CmpInt64(24))
	fact := new(Float).SetInt(new(big.Int).MulRange(1, 50))
	require.Equal(t, 0, new(Float).Gamma(NewInt64(51)).Cmp(fact), "Γ(51) = 50!")
	require.True(t, new(Float).Gamma(NewInt64(-1)).IsNaN())
	require.Equal(t, math.Inf(-1), new(Float).Gamma(Zero(-1)).Float64())

	for _, v := range []float64{0.5, 2.5, -0.5, -1.5, 7.25} {
		got := new(Float).Gamma(NewFloat64(v)).Float64()
		require.InEpsilon(t, math.Gamma(v), got, 1e-14, "Γ(%g)", v)
	}

	// Γ(½) = √π
	pi, _ := NewPrecString(200, piDigits, 10)
	want := new(Float).Sqrt(pi)
	got := new(Float).Gamma(NewPrec(200).SetFloat64(0.5))
	d := new(Float).Sub(got, want)
	d.Quo(d, want)
	require.Less(t, math.Abs(d.Float64()), math.Ldexp(1, -195))
}

func TestFloatLgamma(t *testing.T) {
	z, sign := new(Float).Lgamma(NewFloat64(-0.5))
	require.Equal(t, -1, sign)
	require.InEpsilon(t, 1.2655121234846454, z.Float64(), 1e-15)

	z, sign = new(Float).Lgamma(NewFloat64(0.5))
	require.Equal(t, 1, sign)
	require.InEpsilon(t, math.Log(math.Sqrt(math.Pi)), z.Float64(), 1e-15)

	require.True(t, new(Float).Lngamma(NewFloat64(-0.5)).IsNaN())
	require.True(t, new(Float).Lngamma(NewInt64(2)).IsZero())
	require.True(t, new(Float).Lngamma(NewInt64(-3)).IsInf())

	lg := new(Float).Lngamma(NewInt64(101))
	want, _ := math.Lgamma(101)
	require.InEpsilon(t, want, lg.Float64(), 1e-14, "log(100!)")
}
