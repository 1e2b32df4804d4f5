// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// digits in the math/big alphabet: for bases above 36, upper case letters
// come after lower case ones.
const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 62

const maxScanExp = 1 << 60

// setScaled builds exact powers of the base up to this many bits above the
// target precision. Larger scales are approximated and rounded once.
const scaleExactBits = 1 << 16

// scan errors
var (
	ErrSyntax   = errors.New("invalid syntax")
	errNoDigits = errors.New("number has no digits")
	errNUL      = errors.New("embedded NUL character")
)

// SetStr sets rop to the value of the whole string s in the given base,
// rounded with rnd. It returns 0 if s is a valid number and -1 otherwise, in
// which case rop is unchanged.
func SetStr(rop *Record, s string, base int, rnd RoundingMode) int {
	if _, err := Parse(rop, s, base, rnd); err != nil {
		return -1
	}
	return 0
}

// Parse is like SetStr but returns the ternary value and an error describing
// why s is not a valid number.
//
// The number may be preceded by white space and must be of the form:
//
//	number   = [ sign ] ( float | special ) .
//	sign     = "+" | "-" .
//	float    = [ prefix ] mantissa [ exponent ] .
//	prefix   = "0x" | "0X" | "0b" | "0B" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "e" | "E" | "@" | "p" | "P" ) [ sign ] decimal digits .
//	special  = "nan" | "inf" | "infinity" | "@nan@" | "@inf@" .
//
// Base 0 selects 16 or 2 from the prefix and 10 otherwise. The 0x prefix is
// valid in bases 0 and 16, 0b in bases 0 and 2. For bases up to 36, letters
// are case-insensitive digits; above 36, 'A' to 'Z' are the digits 10 to 35
// and 'a' to 'z' the digits 36 to 61.
//
// An "e" exponent is a power of the base and is valid for bases up to 10,
// "@" is a power of the base in any base, and "p" is a power of two valid in
// bases 2 and 16. Specials are case-insensitive; the bare forms are
// recognized in bases up to 16 only.
func Parse(rop *Record, s string, base int, rnd RoundingMode) (int, error) {
	rop.check()
	if strings.IndexByte(s, 0) >= 0 {
		return 0, errNUL
	}
	r := strings.NewReader(strings.TrimLeft(s, " \t\n\v\f\r"))
	tmp := &Record{prec: rop.prec}
	tmp.f.SetPrec(rop.prec)
	t, err := Scan(tmp, r, base, rnd)
	if err != nil {
		return 0, err
	}
	// entire string must have been consumed
	if ch, err := r.ReadByte(); err == nil {
		return 0, fmt.Errorf("expected end of string, found %q", ch)
	}
	rop.nan = tmp.nan
	rop.f.Set(&tmp.f)
	return t, nil
}

// Scan reads the longest prefix of r that forms a valid number in the given
// base and sets rop to its value rounded with rnd. Leading white space is not
// skipped. See Parse for the accepted syntax.
func Scan(rop *Record, r io.ByteScanner, base int, rnd RoundingMode) (int, error) {
	rop.check()
	if base != 0 && (base < 2 || base > MaxBase) {
		return 0, fmt.Errorf("invalid base %d", base)
	}
	neg, err := scanSign(r)
	if err != nil {
		return 0, noEOF(err)
	}

	ch, err := r.ReadByte()
	if err != nil {
		return 0, noEOF(err)
	}
	switch {
	case ch == '@':
		return scanSpecial(rop, r, neg, true)
	case (ch|0x20 == 'n' || ch|0x20 == 'i') && (base <= 16):
		_ = r.UnreadByte()
		return scanSpecial(rop, r, neg, false)
	}
	_ = r.UnreadByte()

	base, zero, err := scanPrefix(r, base)
	if err != nil {
		return 0, err
	}
	m, frac, err := scanMantissa(r, base, zero)
	if err != nil {
		return 0, err
	}
	exp, exp2, err := scanExponent(r, base)
	if err != nil {
		return 0, err
	}
	if neg {
		m.Neg(m)
	}
	return setScaled(rop, m, neg, base, exp-frac, exp2, rnd), nil
}

func noEOF(err error) error {
	if err == io.EOF {
		return errNoDigits
	}
	return err
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// scanSpecial reads nan, inf or infinity, wrapped in '@' if at is set. The
// leading '@' has already been read.
func scanSpecial(rop *Record, r io.ByteScanner, neg, at bool) (int, error) {
	word := func(w string) bool {
		for i := 0; i < len(w); i++ {
			ch, err := r.ReadByte()
			if err != nil || ch != w[i] && ch|0x20 != w[i] {
				return false
			}
		}
		return true
	}
	ch, err := r.ReadByte()
	if err != nil {
		return 0, noEOF(err)
	}
	var nan bool
	switch ch | 0x20 {
	case 'n':
		if !word("an") {
			return 0, ErrSyntax
		}
		nan = true
	case 'i':
		if !word("nf") {
			return 0, ErrSyntax
		}
		if !at {
			// optional "inity"
			if ch, err := r.ReadByte(); err == nil {
				if ch|0x20 != 'i' {
					_ = r.UnreadByte()
				} else if !word("nity") {
					return 0, ErrSyntax
				}
			}
		}
	default:
		return 0, ErrSyntax
	}
	if at && !word("@") {
		return 0, ErrSyntax
	}
	if nan {
		rop.setNaN()
		if neg {
			rop.f.Neg(&rop.f)
		}
		return 0, nil
	}
	rop.nan = false
	rop.f.SetInf(neg)
	return 0, nil
}

// scanPrefix consumes a 0x or 0b prefix valid for base and returns the actual
// base. zero is set if a leading '0' that is not part of a prefix was consumed.
func scanPrefix(r io.ByteScanner, base int) (b int, zero bool, err error) {
	b = base
	if b == 0 {
		b = 10
	}
	if base != 0 && base != 2 && base != 16 {
		return b, false, nil
	}
	ch, err := r.ReadByte()
	if err != nil {
		return 0, false, noEOF(err)
	}
	if ch != '0' {
		_ = r.UnreadByte()
		return b, false, nil
	}
	if ch, err = r.ReadByte(); err != nil {
		return b, true, nil
	}
	switch {
	case ch|0x20 == 'x' && (base == 0 || base == 16):
		return 16, false, nil
	case ch|0x20 == 'b' && (base == 0 || base == 2):
		return 2, false, nil
	}
	_ = r.UnreadByte()
	return b, true, nil
}

// digitVal returns the value of ch as a digit in base, or -1.
func digitVal(ch byte, base int) int {
	var d int
	switch {
	case '0' <= ch && ch <= '9':
		d = int(ch - '0')
	case 'A' <= ch && ch <= 'Z':
		d = int(ch-'A') + 10
	case 'a' <= ch && ch <= 'z':
		d = int(ch-'a') + 10
		if base > 36 {
			d += 26
		}
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}

// scanMantissa reads digits with at most one radix point. It returns the
// integer formed by all digits and the number of digits after the point. zero
// reports a leading 0 digit already consumed.
func scanMantissa(r io.ByteScanner, base int, zero bool) (*big.Int, int64, error) {
	var (
		buf     []byte
		frac    int64
		dot     bool
		nDigits int
	)
	if zero {
		nDigits++
	}
	for {
		ch, err := r.ReadByte()
		if err != nil {
			break
		}
		if ch == '.' && !dot {
			dot = true
			continue
		}
		d := digitVal(ch, base)
		if d < 0 {
			_ = r.UnreadByte()
			break
		}
		nDigits++
		if dot {
			frac++
		}
		if d == 0 && len(buf) == 0 {
			continue
		}
		buf = append(buf, digits[d])
	}
	if nDigits == 0 {
		return nil, 0, errNoDigits
	}
	m := new(big.Int)
	if len(buf) > 0 {
		if _, ok := m.SetString(string(buf), base); !ok {
			return nil, 0, ErrSyntax
		}
	}
	return m, frac, nil
}

// scanExponent reads an optional exponent. It returns the power of the base
// and the power of two.
func scanExponent(r io.ByteScanner, base int) (exp, exp2 int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		return 0, 0, nil
	}
	pow2 := false
	switch {
	case ch == '@':
	case (ch == 'e' || ch == 'E') && base <= 10:
	case (ch == 'p' || ch == 'P') && (base == 2 || base == 16):
		pow2 = true
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, 0, nil
	}

	var buf []byte
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		if ch == '-' {
			buf = append(buf, '-')
		}
		ch, err = r.ReadByte()
	}
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			buf = append(buf, ch)
			hasDigits = true
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}
	if !hasDigits {
		return 0, 0, errNoDigits
	}
	e, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, 0, err
	}
	// clamped exponents over- or underflow anyway
	e = max(min(e, maxScanExp), -maxScanExp)
	if pow2 {
		return 0, e, nil
	}
	return e, 0, nil
}

// setScaled sets rop to m × base^exp × 2^exp2 with a single rounding. neg
// gives the sign of a zero m.
func setScaled(rop *Record, m *big.Int, neg bool, base int, exp, exp2 int64, rnd RoundingMode) int {
	rop.nan = false
	if m.Sign() == 0 {
		rop.f.SetInt64(0)
		if neg {
			rop.f.Neg(&rop.f)
		}
		return 0
	}

	// binary magnitude estimate, to avoid huge powers for out of range values
	est := float64(m.BitLen()) + float64(exp)*math.Log2(float64(base)) + float64(exp2)
	switch {
	case est > float64(big.MaxExp)+2:
		return rop.outOfRange(bf(rop.prec).SetInf(neg))
	case est < float64(big.MinExp)-float64(rop.prec)-2:
		z := bf(rop.prec)
		if neg {
			z.Neg(z)
		}
		return rop.outOfRange(z)
	}

	if base&(base-1) == 0 {
		// power of two base: exact scaling
		shift := exp*int64(bits.TrailingZeros(uint(base))) + exp2
		t := new(big.Float).SetInt(m)
		t.SetMantExp(t, int(shift))
		rop.f.SetMode(rnd).Set(t)
		return rop.result()
	}

	if scale := math.Abs(float64(exp)) * math.Log2(float64(base)); scale > float64(rop.prec)+scaleExactBits {
		n := uint64(abs64(exp))
		return ziv(rop, rnd, func(wp uint) (*big.Float, int) {
			// squarings double the relative error: about n ulps at ip
			ip := wp + uint(bits.Len64(n)) + 8
			p := powUi(bf(ip), bf(64).SetInt64(int64(base)), n)
			y := bf(ip).SetInt(m)
			if exp > 0 {
				y.Mul(y, p)
			} else {
				y.Quo(y, p)
			}
			y.SetMantExp(y, int(exp2))
			return bf(wp).Set(y), 2
		})
	}

	if exp >= 0 {
		n := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(exp), nil)
		rop.f.SetMode(rnd).SetInt(n.Mul(n, m))
	} else {
		d := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(-exp), nil)
		rop.f.SetMode(rnd).SetRat(new(big.Rat).SetFrac(m, d))
	}
	if exp2 == 0 {
		return rop.result()
	}
	acc := rop.f.Acc()
	rop.f.SetMantExp(&rop.f, int(exp2))
	return rop.result2exp(acc)
}
