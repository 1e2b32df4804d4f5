// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"strconv"
	"strings"
)

// Append appends the text form of x to buf, as generated by Snprintf, and
// returns the extended buffer.
func Append(buf []byte, x *Record, verb byte, digits int) []byte {
	x.check()
	upper := verb == 'E' || verb == 'G' || verb == 'X'
	switch {
	case x.nan:
		if upper {
			return append(buf, "NAN"...)
		}
		return append(buf, "nan"...)
	case x.f.IsInf():
		if x.f.Signbit() {
			buf = append(buf, '-')
		}
		if upper {
			return append(buf, "INF"...)
		}
		return append(buf, "inf"...)
	}
	if digits < 0 && x.f.Sign() != 0 {
		switch verb {
		case 'e', 'E', 'f', 'g', 'G':
			return appendShortest(buf, x, verb)
		}
	}
	return x.f.Append(buf, verb, digits)
}

// appendShortest appends the shortest decimal form of the finite non-zero x
// that parses back to x at x's precision.
//
// big.Float's shortest digits assume a symmetric rounding interval, which
// is too wide below a power of two. The candidate is checked by parsing it
// and digits are added until it reads back exactly.
func appendShortest(buf []byte, x *Record, verb byte) []byte {
	s := x.f.Text('e', -1)
	if roundTrips(x, s) {
		return x.f.Append(buf, verb, -1)
	}
	n, _ := sigDigits(s)
	for n++; n <= int(x.prec)+2; n++ {
		s = x.f.Text('e', n-1)
		if roundTrips(x, s) {
			break
		}
	}
	_, exp := sigDigits(s)
	switch verb {
	case 'e', 'E':
		return x.f.Append(buf, verb, n-1)
	case 'f':
		return x.f.Append(buf, 'f', max(n-1-exp, 0))
	}
	// same %e/%f choice as big.Float's shortest 'g'
	if exp < -4 || exp >= 6 {
		return x.f.Append(buf, verb-'g'+'e', n-1)
	}
	return x.f.Append(buf, 'f', max(n-1-exp, 0))
}

// sigDigits returns the number of mantissa digits and the decimal exponent
// of s in %e format.
func sigDigits(s string) (n, exp int) {
	i := strings.IndexAny(s, "eE")
	for _, ch := range s[:i] {
		if '0' <= ch && ch <= '9' {
			n++
		}
	}
	exp, _ = strconv.Atoi(s[i+1:])
	return n, exp
}

// roundTrips reports whether s parses to x at x's precision. It leaves the
// flags as they were.
func roundTrips(x *Record, s string) bool {
	old := GetFlags()
	defer flags.And(uint32(old | ^(Inexact | Underflow | Overflow)))
	y := &Record{prec: x.prec}
	y.f.SetPrec(x.prec)
	if _, err := Parse(y, s, 10, ToNearestEven); err != nil {
		return false
	}
	return y.f.Cmp(&x.f) == 0
}

// Snprintf formats x like big.Float.Text with the given verb and number of
// digits, copies as much of the result as fits into buf and returns the full
// length of the result. Callers first call it with a nil buffer to size the
// destination. A negative digits count selects the shortest representation
// that reads back to x at its precision.
//
// NaN prints as "nan" and infinities as "inf" or "-inf" (upper case for the
// 'E', 'G' and 'X' verbs). Snprintf returns -1 if x is not initialized.
func Snprintf(buf []byte, x *Record, verb byte, digits int) int {
	if x == nil || x.prec == 0 {
		return -1
	}
	s := Append(nil, x, verb, digits)
	copy(buf, s)
	return len(s)
}
