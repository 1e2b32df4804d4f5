// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/mpfr"
)

func TestContextPrec(t *testing.T) {
	for _, test := range []struct {
		prec, want uint
	}{
		{0, mpfr.DefaultPrec()},
		{1, 1},
		{200, 200},
		{mpfr.MaxPrec, mpfr.MaxPrec},
		{mpfr.MaxPrec + 1, mpfr.MaxPrec},
	} {
		if got := New(test.prec).Prec(); got != test.want {
			t.Errorf("New(%d).Prec() = %d; want %d", test.prec, got, test.want)
		}
	}
	c := New(10)
	require.Same(t, c, c.SetPrec(20))
	require.Equal(t, uint(20), c.Prec())
}

func TestContextConstructors(t *testing.T) {
	c := New(8)
	for _, test := range []struct {
		name string
		x    *mpfr.Float
		want float64
	}{
		{"New", c.New(), 0},
		{"NewInt", c.NewInt(big.NewInt(1000)), 1000},
		{"NewInt64", c.NewInt64(-257), -256},
		{"NewUint64", c.NewUint64(1<<40 + 1), 1 << 40},
		{"NewBigFloat", c.NewBigFloat(big.NewFloat(0.1)), 0.10009765625},
		{"NewFloat64", c.NewFloat64(2.5), 2.5},
		{"NewRat", c.NewRat(big.NewRat(1, 3)), 0.333984375},
	} {
		if prec := test.x.Prec(); prec != 8 {
			t.Errorf("%s: prec = %d; want 8", test.name, prec)
		}
		if got := test.x.Float64(); got != test.want {
			t.Errorf("%s = %g; want %g", test.name, got, test.want)
		}
	}

	x, ok := c.NewString("0x1.8p1", 0)
	require.True(t, ok)
	require.Equal(t, 3.0, x.Float64())
	_, ok = c.NewString("1.2.3", 0)
	require.False(t, ok)

	x, err := c.ParseFloat("-inf", 10)
	require.NoError(t, err)
	require.True(t, x.IsInf())
	require.Equal(t, uint(8), x.Prec())
	_, err = c.ParseFloat("12abc", 10)
	var perr *mpfr.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "12abc", perr.Num)
}

func TestContextOps(t *testing.T) {
	c := New(100)
	x, y := c.NewFloat64(2.5), c.NewInt64(4)
	for _, test := range []struct {
		name string
		op   func(z *mpfr.Float) *mpfr.Float
		want float64
	}{
		{"Round", func(z *mpfr.Float) *mpfr.Float { return c.Round(z, x) }, 2.5},
		{"RoundInt", func(z *mpfr.Float) *mpfr.Float { return c.RoundInt(z, x) }, 3},
		{"Floor", func(z *mpfr.Float) *mpfr.Float { return c.Floor(z, x) }, 2},
		{"Ceil", func(z *mpfr.Float) *mpfr.Float { return c.Ceil(z, x) }, 3},
		{"Trunc", func(z *mpfr.Float) *mpfr.Float { return c.Trunc(z, c.NewFloat64(-2.5)) }, -2},
		{"Add", func(z *mpfr.Float) *mpfr.Float { return c.Add(z, x, y) }, 6.5},
		{"Sub", func(z *mpfr.Float) *mpfr.Float { return c.Sub(z, x, y) }, -1.5},
		{"Mul", func(z *mpfr.Float) *mpfr.Float { return c.Mul(z, x, y) }, 10},
		{"Quo", func(z *mpfr.Float) *mpfr.Float { return c.Quo(z, x, y) }, 0.625},
		{"AddInt64", func(z *mpfr.Float) *mpfr.Float { return c.AddInt64(z, x, -3) }, -0.5},
		{"MulInt64", func(z *mpfr.Float) *mpfr.Float { return c.MulInt64(z, x, 4) }, 10},
		{"QuoInt64", func(z *mpfr.Float) *mpfr.Float { return c.QuoInt64(z, x, 2) }, 1.25},
		{"Neg", func(z *mpfr.Float) *mpfr.Float { return c.Neg(z, x) }, -2.5},
		{"Abs", func(z *mpfr.Float) *mpfr.Float { return c.Abs(z, c.NewInt64(-3)) }, 3},
		{"Sqrt", func(z *mpfr.Float) *mpfr.Float { return c.Sqrt(z, y) }, 2},
		{"Cbrt", func(z *mpfr.Float) *mpfr.Float { return c.Cbrt(z, c.NewInt64(-27)) }, -3},
		{"Root", func(z *mpfr.Float) *mpfr.Float { return c.Root(z, c.NewInt64(81), 4) }, 3},
		{"Pow", func(z *mpfr.Float) *mpfr.Float { return c.Pow(z, y, x) }, 32},
		{"Exp", func(z *mpfr.Float) *mpfr.Float { return c.Exp(z, c.New()) }, 1},
		{"Log", func(z *mpfr.Float) *mpfr.Float { return c.Log(z, c.NewInt64(1)) }, 0},
		{"Gamma", func(z *mpfr.Float) *mpfr.Float { return c.Gamma(z, c.NewInt64(5)) }, 24},
		{"Lngamma", func(z *mpfr.Float) *mpfr.Float { return c.Lngamma(z, c.NewInt64(2)) }, 0},
		{"Log2", func(z *mpfr.Float) *mpfr.Float { return c.Log2(z, c.NewInt64(8)) }, 3},
		{"Expm1", func(z *mpfr.Float) *mpfr.Float { return c.Expm1(z, c.New()) }, 0},
		{"AGM", func(z *mpfr.Float) *mpfr.Float { return c.AGM(z, y, y) }, 4},
		{"Pi", c.Pi, 3.141592653589793},
	} {
		// receivers of any precision, including zero values, end up at
		// c's precision
		for _, z := range []*mpfr.Float{new(mpfr.Float), mpfr.NewPrec(3), mpfr.NewPrec(500)} {
			got := test.op(z)
			require.Same(t, z, got, test.name)
			if prec := z.Prec(); prec != c.Prec() {
				t.Errorf("%s: prec = %d; want %d", test.name, prec, c.Prec())
			}
			if f := z.Float64(); f != test.want {
				t.Errorf("%s = %g; want %g", test.name, f, test.want)
			}
		}
		require.NoError(t, c.Err(), test.name)
	}
}

func TestContextRounding(t *testing.T) {
	c := New(4)
	x := mpfr.NewPrec(200).SetInt64(1)
	x.QuoInt64(x, 3)
	z := c.Round(new(mpfr.Float), x)
	require.Equal(t, uint(4), z.Prec())
	require.Equal(t, 11.0/32, z.Float64())

	// operands are not rounded before the operation
	y := mpfr.NewPrec(200).SetInt64(17)
	z = c.Add(z, y, mpfr.NewPrec(200).SetFloat64(0.5))
	require.Equal(t, 18.0, z.Float64(), "17.5 rounds to 18 at 4 bits")

	// aliasing
	w := mpfr.NewPrec(200).SetFloat64(math.Pi)
	c.Mul(w, w, w)
	require.Equal(t, uint(4), w.Prec())
	require.Equal(t, 10.0, w.Float64())
}

func TestContextDivByZero(t *testing.T) {
	c := New(53)
	z := c.NewInt64(42)
	require.Same(t, z, c.Quo(z, c.NewInt64(1), c.New()))
	require.Equal(t, int64(42), z.Int64(), "z is unchanged")

	// further operations are no-ops
	require.Equal(t, int64(42), c.Add(z, z, z).Int64())
	require.Equal(t, int64(42), c.Sqrt(z, c.NewInt64(-1)).Int64())

	err := c.Err()
	require.Error(t, err)
	require.True(t, errors.As(err, new(mpfr.ErrDivByZero)))
	require.Equal(t, "mpfr: division by zero", err.Error())
	require.NoError(t, c.Err(), "Err clears the error")

	// operations resume
	require.Equal(t, int64(84), c.Add(z, z, z).Int64())

	c.QuoInt64(z, z, 0)
	require.True(t, errors.As(c.Err(), new(mpfr.ErrDivByZero)))
}

func TestContextNaN(t *testing.T) {
	c := New(53)
	z := c.Sqrt(c.New(), c.NewInt64(-1))
	require.True(t, z.IsNaN())
	err := c.Err()
	var nerr mpfr.ErrNaN
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "mpfr: Sqrt produced a NaN", nerr.Msg)

	for _, test := range []struct {
		name string
		op   func()
	}{
		{"Sub", func() { c.Sub(c.New(), mpfr.Inf(1), mpfr.Inf(1)) }},
		{"Log", func() { c.Log(c.New(), c.NewInt64(-2)) }},
		{"Gamma", func() { c.Gamma(c.New(), c.NewInt64(-2)) }},
		{"Pow", func() { c.Pow(c.New(), c.NewInt64(-8), c.NewFloat64(0.5)) }},
		{"Round", func() { c.Round(c.New(), mpfr.NaN()) }},
		{"Log10", func() { c.Log10(c.New(), c.NewInt64(-1)) }},
		{"AGM", func() { c.AGM(c.New(), c.NewInt64(-1), c.NewInt64(1)) }},
	} {
		test.op()
		err := c.Err()
		require.ErrorAs(t, err, &nerr, test.name)
		require.Equal(t, "mpfr: "+test.name+" produced a NaN", nerr.Msg)
	}

	// only the first error is kept
	c.Log(c.New(), c.NewInt64(-1))
	c.Quo(c.New(), c.NewInt64(1), c.New())
	require.ErrorAs(t, c.Err(), &nerr)
	require.Equal(t, "mpfr: Log produced a NaN", nerr.Msg)
}

func TestContextPanics(t *testing.T) {
	c := New(53)
	x := c.NewInt64(1)
	y := *x
	require.PanicsWithValue(t, "mpfr: illegal use of non-zero Float copied by value", func() {
		c.Add(c.New(), &y, x)
	})
	require.NoError(t, c.Err())
}
