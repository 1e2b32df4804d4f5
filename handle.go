// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the ownership of engine records by Floats.

package mpfr

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/db47h/mpfr/internal/engine"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger sets the logger that receives Trace level events for the
// acquisition and release of engine records. The default logger discards
// everything.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}

// zeroRecord is read in place of the record of a zero value Float. It is
// never written to nor released.
var zeroRecord = func() *engine.Record {
	r := new(engine.Record)
	engine.Init2(r, engine.MinPrec)
	engine.SetZero(r, 1)
	return r
}()

// acquire initializes a new record with precision prec and value +0, and
// binds it to z. The record is released once z becomes unreachable.
func (z *Float) acquire(prec uint) *engine.Record {
	r := new(engine.Record)
	engine.Init2(r, prec)
	engine.SetZero(r, 1)
	z.self = z
	z.r = r
	runtime.AddCleanup(z, release, r)
	log().Trace().Uint("prec", engine.GetPrec(r)).Int64("live", engine.Live()).Msg("mpfr: acquire")
	return r
}

// release clears r. It runs exactly once per record, from the cleanup of the
// Float that owned it.
func release(r *engine.Record) {
	prec := engine.GetPrec(r)
	engine.Clear(r)
	log().Trace().Uint("prec", prec).Int64("live", engine.Live()).Msg("mpfr: release")
}

func (x *Float) copyCheck() {
	if x.self != nil && x.self != x {
		panic("mpfr: illegal use of non-zero Float copied by value")
	}
}

// rec returns the record of x for reading. The zero value reads as +0.
func (x *Float) rec() *engine.Record {
	x.copyCheck()
	if x.r == nil {
		return zeroRecord
	}
	return x.r
}

// dst returns the record of z for writing. A zero value z acquires a record
// with precision prec.
func (z *Float) dst(prec uint) *engine.Record {
	z.copyCheck()
	if z.r == nil {
		return z.acquire(prec)
	}
	return z.r
}
