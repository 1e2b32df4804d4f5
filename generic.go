// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfr

import "golang.org/x/exp/constraints"

// FromSigned returns a new Float set to x at the default precision.
func FromSigned[T constraints.Signed](x T) *Float {
	return NewInt64(int64(x))
}

// FromUnsigned returns a new Float set to x at the default precision.
func FromUnsigned[T constraints.Unsigned](x T) *Float {
	return NewUint64(uint64(x))
}

// FromFloat returns a new Float set to x at the default precision.
func FromFloat[T constraints.Float](x T) *Float {
	return NewFloat64(float64(x))
}
