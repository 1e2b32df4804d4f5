// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package mpfr

import (
	"encoding/binary"
	"fmt"

	"github.com/db47h/mpfr/internal/engine"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The precision and the
// exact value of x are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	prec := resultPrec(x)
	buf := make([]byte, 5, 5+32)
	buf[0] = floatGobVersion
	binary.BigEndian.PutUint32(buf[1:], uint32(prec))
	// 'p' is exact and reads back in base 16
	return x.Append(buf, 'p', 0), nil
}

// GobDecode implements the gob.GobDecoder interface. The result is rounded to
// the precision of z unless z is a zero value, in which case z takes the
// encoded precision and value.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		z.SetZero(1)
		return nil
	}
	if buf[0] != floatGobVersion {
		return fmt.Errorf("mpfr: Float.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 5 {
		return fmt.Errorf("mpfr: Float.GobDecode: buffer too short")
	}
	prec := uint(binary.BigEndian.Uint32(buf[1:]))
	if _, err := engine.Parse(z.dst(prec), string(buf[5:]), 16, ToNearestEven); err != nil {
		return fmt.Errorf("mpfr: Float.GobDecode: %w", err)
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled as by x.String(). Its precision is not.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. text is
// parsed in base 10 and rounded to the precision of z, or to the default
// precision if z is a zero value.
func (z *Float) UnmarshalText(text []byte) error {
	_, err := engine.Parse(z.dst(DefaultPrec()), string(text), 10, ToNearestEven)
	if err != nil {
		err = fmt.Errorf("mpfr: cannot unmarshal %q into a *mpfr.Float (%v)", text, err)
	}
	return err
}
