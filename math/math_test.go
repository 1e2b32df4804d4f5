package math

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/mpfr"
)

const (
	eDigits  = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274"
	piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
)

func parse(t *testing.T, s string, prec uint) *mpfr.Float {
	t.Helper()
	x, err := mpfr.ParseFloat(s, 10, prec)
	require.NoError(t, err)
	return x
}

func TestPi(t *testing.T) {
	for _, prec := range []uint{2, 24, 53, 64, 100, 200, 300} {
		want := parse(t, piDigits, prec)
		if got := Pi(mpfr.NewPrec(prec)); got.Cmp(want) != 0 {
			t.Errorf("bad π value for %d bits\nGot : %s\nWant: %s", prec, got, want)
		}
	}
	z := Pi(new(mpfr.Float))
	require.Equal(t, mpfr.DefaultPrec(), z.Prec())
}

func TestPi_concurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		prec := uint(53 + 250*i)
		g.Go(func() error {
			z := Pi(mpfr.NewPrec(prec))
			if f := z.Float64(); f != 3.141592653589793 {
				t.Errorf("π at %d bits = %g", prec, f)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestE(t *testing.T) {
	for _, prec := range []uint{53, 300} {
		require.Equal(t, 0, E(mpfr.NewPrec(prec)).Cmp(parse(t, eDigits, prec)), "prec %d", prec)
	}
}

func TestAGM(t *testing.T) {
	z := AGM(new(mpfr.Float), mpfr.NewInt64(24), mpfr.NewInt64(6))
	require.InEpsilon(t, 13.458171481725615, z.Float64(), 1e-15)

	// the Gauss constant is 1/agm(1, √2)
	x := mpfr.NewPrec(200).SetInt64(2)
	x.Sqrt(x)
	z = AGM(new(mpfr.Float), mpfr.NewPrec(200).SetInt64(1), x)
	require.Equal(t, uint(200), z.Prec())
	require.InEpsilon(t, 0.8346268416740731, z.Int64Quo(1, z).Float64(), 1e-15)

	require.Equal(t, 0, AGM(new(mpfr.Float), x, x).Cmp(x))

	for _, test := range []struct {
		x, y *mpfr.Float
		want string
	}{
		{mpfr.NaN(), mpfr.NewInt64(1), "nan"},
		{mpfr.NewInt64(1), mpfr.NewInt64(-1), "nan"},
		{mpfr.Zero(-1), mpfr.NewInt64(1), "0e+00"},
		{mpfr.Inf(1), mpfr.NewInt64(2), "inf"},
		{mpfr.Inf(1), mpfr.Zero(1), "0e+00"},
	} {
		if got := AGM(new(mpfr.Float), test.x, test.y).String(); got != test.want {
			t.Errorf("AGM(%s, %s) = %s; want %s", test.x, test.y, got, test.want)
		}
	}
}

func TestLog2Log10(t *testing.T) {
	for _, test := range []struct {
		x     float64
		log2  float64
		log10 float64
	}{
		{1, 0, 0},
		{8, 3, 0.9030899869919435},
		{0.125, -3, -0.9030899869919435},
		{10, 3.321928094887362, 1},
		{1000, 9.965784284662087, 3},
	} {
		x := mpfr.NewFloat64(test.x)
		l2 := Log2(new(mpfr.Float), x).Float64()
		l10 := Log10(new(mpfr.Float), x).Float64()
		if l2 != test.log2 && (test.log2 == 0 || abs(l2/test.log2-1) > 1e-15) {
			t.Errorf("Log2(%g) = %g; want %g", test.x, l2, test.log2)
		}
		if l10 != test.log10 && (test.log10 == 0 || abs(l10/test.log10-1) > 1e-15) {
			t.Errorf("Log10(%g) = %g; want %g", test.x, l10, test.log10)
		}
	}

	// exact powers of two
	z := mpfr.NewPrec(300)
	for _, e := range []int{-1000, -1, 0, 1, 77, 100000} {
		Log2(z, mpfr.NewInt64(1).SetMantExp(mpfr.NewInt64(1), e))
		require.Equal(t, int64(e), z.Int64())
		require.True(t, z.IsInt())
	}

	require.True(t, Log2(new(mpfr.Float), mpfr.NewInt64(-1)).IsNaN())
	require.True(t, Log10(new(mpfr.Float), mpfr.NaN()).IsNaN())
	require.Equal(t, "-inf", Log10(new(mpfr.Float), mpfr.Zero(1)).String())
	require.Equal(t, "inf", Log2(new(mpfr.Float), mpfr.Inf(1)).String())
}

func TestExpm1(t *testing.T) {
	for _, test := range []struct {
		x, want float64
	}{
		{1e-10, 1.00000000005e-10},
		{-1e-10, -9.9999999995e-11},
		{-0.25, -0.2211992169285951},
		{0.4, 0.4918246976412703},
		{1, 1.7182818284590453},
		{-1000, -1},
	} {
		got := Expm1(new(mpfr.Float), mpfr.NewFloat64(test.x)).Float64()
		if got != test.want && abs(got/test.want-1) > 1e-15 {
			t.Errorf("Expm1(%g) = %g; want %g", test.x, got, test.want)
		}
	}

	for _, test := range []struct {
		x    *mpfr.Float
		want string
	}{
		{mpfr.NaN(), "nan"},
		{mpfr.Zero(-1), "-0e+00"},
		{mpfr.Inf(1), "inf"},
		{mpfr.Inf(-1), "-1e+00"},
		{mpfr.NewInt64(1e10), "inf"},
	} {
		if got := Expm1(new(mpfr.Float), test.x).String(); got != test.want {
			t.Errorf("Expm1(%s) = %s; want %s", test.x, got, test.want)
		}
	}

	// e - 1
	e := parse(t, eDigits, 330)
	want := mpfr.NewPrec(300).SubInt64(e, 1)
	require.Equal(t, 0, Expm1(mpfr.NewPrec(300), mpfr.NewInt64(1)).Cmp(want))

	// Taylor series against exp(x) - 1 with plenty of extra precision
	x := mpfr.NewPrec(200).SetInt64(3)
	x.SetMantExp(x, -20)
	w := mpfr.NewPrec(500).Exp(x)
	want = mpfr.NewPrec(200).SubInt64(w, 1)
	got := Expm1(x.Clone(), x)
	require.Equal(t, want.String(), got.String())
}

func TestFMA(t *testing.T) {
	x := mpfr.NewFloat64(1 + 0x1p-52)
	y := mpfr.NewFloat64(1 - 0x1p-52)
	u := mpfr.NewInt64(-1)
	z := FMA(new(mpfr.Float), x, y, u)
	require.Equal(t, -0x1p-104, z.Float64())
	require.Equal(t, x.Prec(), z.Prec())

	// the unfused computation cancels out
	p := new(mpfr.Float).Mul(x, y)
	require.True(t, p.Add(p, u).IsZero())

	require.True(t, FMA(new(mpfr.Float), mpfr.Zero(1), mpfr.Inf(1), u).IsNaN())
	require.True(t, FMA(new(mpfr.Float), mpfr.Inf(1), x, mpfr.Inf(-1)).IsNaN())
	require.Equal(t, uint(300), FMA(new(mpfr.Float), x, mpfr.NewPrec(300).SetInt64(2), u).Prec())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
