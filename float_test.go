// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfr

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"fmt"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/mpfr/internal/engine"
)

var floatZero Float

var (
	// required implemented interfaces
	_ fmt.Stringer             = &floatZero
	_ fmt.Scanner              = &floatZero
	_ fmt.Formatter            = &floatZero
	_ encoding.TextMarshaler   = &floatZero
	_ encoding.TextUnmarshaler = &floatZero
	_ gob.GobEncoder           = &floatZero
	_ gob.GobDecoder           = &floatZero
)

// Verify that the error types implement the error interface.
var (
	_ error = ErrNaN{}
	_ error = ErrDivByZero{}
	_ error = &ParseError{}
)

// floatEqual compares Floats by precision and value.
var floatEqual = cmp.Comparer(func(x, y *Float) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Prec() == y.Prec() && x.String() == y.String() && x.Signbit() == y.Signbit()
})

func TestFloatZeroValue(t *testing.T) {
	// zero (uninitialized) value is a ready-to-use 0.0
	var x Float
	if s := x.Text('f', 1); s != "0.0" {
		t.Errorf("zero value = %s; want 0.0", s)
	}

	// zero value has precision 0
	if prec := x.Prec(); prec != 0 {
		t.Errorf("prec = %d; want 0", prec)
	}

	// zero value can be used in any and all positions of binary operations
	make := func(x int) *Float {
		var f Float
		if x != 0 {
			f.SetInt64(int64(x))
		}
		// x == 0 translates into the zero value
		return &f
	}
	for _, test := range []struct {
		z, x, y, want int
		opname        rune
		op            func(z, x, y *Float) *Float
	}{
		{0, 0, 0, 0, '+', (*Float).Add},
		{0, 1, 2, 3, '+', (*Float).Add},
		{1, 2, 0, 2, '+', (*Float).Add},
		{2, 0, 1, 1, '+', (*Float).Add},

		{0, 0, 0, 0, '-', (*Float).Sub},
		{0, 1, 2, -1, '-', (*Float).Sub},
		{1, 2, 0, 2, '-', (*Float).Sub},
		{2, 0, 1, -1, '-', (*Float).Sub},

		{0, 0, 0, 0, '*', (*Float).Mul},
		{0, 1, 2, 2, '*', (*Float).Mul},
		{1, 2, 0, 0, '*', (*Float).Mul},
		{2, 0, 1, 0, '*', (*Float).Mul},

		// {0, 0, 0, 0, '/', (*Float).Quo}, // panics
		{0, 2, 1, 2, '/', (*Float).Quo},
		{2, 0, 1, 0, '/', (*Float).Quo},
	} {
		z := make(test.z)
		test.op(z, make(test.x), make(test.y))
		if got := int(z.Int64()); got != test.want {
			t.Errorf("%d %c %d = %d; want %d", test.x, test.opname, test.y, got, test.want)
		}
	}

	// a zero value result takes the largest operand precision
	var z Float
	z.Add(NewPrec(100).SetInt64(1), NewPrec(200).SetInt64(2))
	if prec := z.Prec(); prec != 200 {
		t.Errorf("prec = %d; want 200", prec)
	}
	// or the default one if all operands are zero values
	var u Float
	u.Mul(&x, &x)
	if prec := u.Prec(); prec != DefaultPrec() {
		t.Errorf("prec = %d; want %d", prec, DefaultPrec())
	}
}

func TestFloatSetPrec(t *testing.T) {
	for _, test := range []struct {
		prec uint
		want uint
	}{
		{0, MinPrec},
		{1, 1},
		{53, 53},
		{1000, 1000},
	} {
		x := NewFloat64(2.5).SetPrec(test.prec)
		if got := x.Prec(); got != test.want {
			t.Errorf("SetPrec(%d) = %d; want %d", test.prec, got, test.want)
		}
		if !x.IsNaN() {
			t.Errorf("SetPrec(%d) = %s; want NaN", test.prec, x)
		}
	}

	var x Float
	x.SetPrec(10)
	require.Equal(t, uint(10), x.Prec())
	require.True(t, x.IsNaN())

	// the receiver keeps its precision
	z := NewPrec(4).SetInt64(1025)
	require.Equal(t, uint(4), z.Prec())
	require.Equal(t, int64(1024), z.Int64())
	z.Add(NewPrec(200).SetInt64(1), NewPrec(200).SetInt64(16))
	require.Equal(t, uint(4), z.Prec())
	require.Equal(t, int64(16), z.Int64(), "17 rounds to 16 at 4 bits")

	// PrecRound keeps the value
	y := NewFloat64(2.75).PrecRound(2)
	require.Equal(t, uint(2), y.Prec())
	require.Equal(t, 3.0, y.Float64())
	y.PrecRound(100)
	require.Equal(t, 3.0, y.Float64())
}

func TestFloatDefaultPrec(t *testing.T) {
	old := DefaultPrec()
	defer SetDefaultPrec(old)

	SetDefaultPrec(113)
	for _, x := range []*Float{New(), NewInt64(1), NewFloat64(0.5), new(Float).SetUint64(3), Zero(-1), NaN(), Inf(1)} {
		if prec := x.Prec(); prec != 113 {
			t.Errorf("%s: prec = %d; want 113", x, prec)
		}
	}
	SetDefaultPrec(0)
	require.Equal(t, uint(MinPrec), DefaultPrec())
}

func TestFloatSpecials(t *testing.T) {
	for _, test := range []struct {
		x                           *Float
		sign                        int
		signbit, nan, inf, zero, in bool
		s                           string
	}{
		{new(Float), 0, false, false, false, true, true, "0e+00"},
		{Zero(-1), 0, true, false, false, true, true, "-0e+00"},
		{Inf(1), 1, false, false, true, false, false, "inf"},
		{Inf(-1), -1, true, false, true, false, false, "-inf"},
		{NaN(), 0, false, true, false, false, false, "nan"},
		{NewFloat64(-2.5), -1, true, false, false, false, false, "-2.5e+00"},
		{NewInt64(7), 1, false, false, false, false, true, "7e+00"},
	} {
		x := test.x
		if x.Sign() != test.sign || x.Signbit() != test.signbit || x.IsNaN() != test.nan ||
			x.IsInf() != test.inf || x.IsZero() != test.zero || x.IsInt() != test.in {
			t.Errorf("%s: wrong predicates", x)
		}
		if s := x.String(); s != test.s {
			t.Errorf("String() = %s; want %s", s, test.s)
		}
	}
}

func TestFloatMantExp(t *testing.T) {
	for _, test := range []struct {
		x    float64
		mant float64
		exp  int
	}{
		{0, 0, 0},
		{12, 0.75, 4},
		{-0.125, -0.5, -2},
		{1, 0.5, 1},
		{math.Inf(-1), math.Inf(-1), 0},
	} {
		x := NewFloat64(test.x)
		var mant Float
		exp := x.MantExp(&mant)
		if exp != test.exp || mant.Float64() != test.mant {
			t.Errorf("%g.MantExp() = %s, %d; want %g, %d", test.x, &mant, exp, test.mant, test.exp)
		}
		if e := x.MantExp(nil); e != test.exp {
			t.Errorf("%g.MantExp(nil) = %d; want %d", test.x, e, test.exp)
		}
		if y := new(Float).SetMantExp(&mant, exp); y.Float64() != test.x {
			t.Errorf("SetMantExp(%s, %d) = %s; want %g", &mant, exp, y, test.x)
		}
	}

	z := NewInt64(3).SetMantExp(NewInt64(3), -2)
	require.Equal(t, 0.75, z.Float64())
	z.SetMantExp(z, 1000)
	require.Equal(t, 1000, z.MantExp(nil))
}

func TestFloatCopyByValue(t *testing.T) {
	x := NewInt64(42)
	y := *x
	require.PanicsWithValue(t, "mpfr: illegal use of non-zero Float copied by value", func() { y.Prec() })
	require.PanicsWithValue(t, "mpfr: illegal use of non-zero Float copied by value", func() { new(Float).Add(&y, x) })

	// copying a zero value is fine
	var z Float
	w := z
	w.SetInt64(1)
	require.Equal(t, int64(1), w.Int64())
}

func TestFloatSetClone(t *testing.T) {
	x := NewPrec(300).SetInt64(1)
	x.QuoInt64(x, 3)
	y := x.Clone()
	if diff := cmp.Diff(x, y, floatEqual); diff != "" {
		t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
	}
	y.AddInt64(y, 1)
	require.Equal(t, 1, y.Cmp(x), "a clone does not share its record")

	z := NewPrec(10).Set(x)
	require.Equal(t, uint(10), z.Prec())
	require.Equal(t, 683.0/2048, z.Float64(), "1/3 rounded up to 10 bits")
	require.Same(t, z, z.Set(z))
}

func TestFloatRelease(t *testing.T) {
	runtime.GC()
	base := engine.Live()
	func() {
		xs := make([]*Float, 1000)
		for i := range xs {
			xs[i] = NewInt64(int64(i))
		}
		s := new(Float)
		for _, x := range xs {
			s.Add(s, x)
		}
		require.Equal(t, int64(999*1000/2), s.Int64())
	}()
	require.Eventually(t, func() bool {
		runtime.GC()
		return engine.Live() <= base
	}, 5*time.Second, 10*time.Millisecond, "records of unreachable Floats are released")
}

func TestFloatLogger(t *testing.T) {
	defer SetLogger(zerolog.Nop())
	lvl := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(lvl)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
	NewPrec(77)
	require.Contains(t, buf.String(), `"message":"mpfr: acquire"`)
	require.Contains(t, buf.String(), `"prec":77`)

	buf.Reset()
	SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	NewPrec(78)
	require.Empty(t, buf.String())
}

func TestFloatConcurrent(t *testing.T) {
	const prec = 256
	want := NewPrec(prec).SetInt64(2)
	want.Sqrt(want)

	var g errgroup.Group
	res := make([]*Float, 16)
	for i := range res {
		g.Go(func() error {
			x := NewPrec(prec).SetInt64(2)
			z := new(Float).Sqrt(x)
			// check with a few roundtrips through other operations
			sq := new(Float).Mul(z, z)
			if sq.CmpInt64(2) == 0 {
				return fmt.Errorf("√2² = 2 exactly at %d bits", prec)
			}
			res[i] = z
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, z := range res {
		if diff := cmp.Diff(want, z, floatEqual); diff != "" {
			t.Errorf("goroutine %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestFromGeneric(t *testing.T) {
	require.Equal(t, int64(-3), FromSigned(int8(-3)).Int64())
	require.Equal(t, uint64(7), FromUnsigned(uint16(7)).Uint64())
	require.Equal(t, 0.5, FromFloat(float32(0.5)).Float64())
	require.Equal(t, DefaultPrec(), FromFloat(1.0).Prec())
}
