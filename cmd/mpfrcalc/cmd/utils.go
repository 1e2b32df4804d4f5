// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/db47h/mpfr"
	"github.com/db47h/mpfr/internal/rpn"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a console logger on stderr at Info level, or Debug level
// in verbose mode.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newMachine returns a machine configured from flags, environment and config
// file.
func newMachine() *rpn.Machine {
	log := newLogger()
	mpfr.SetLogger(log)
	prec := viper.GetUint("prec")
	if prec < mpfr.MinPrec || prec > mpfr.MaxPrec {
		check(fmt.Errorf("invalid precision %d", prec))
	}
	base := viper.GetInt("base")
	if base != 0 && (base < 2 || base > mpfr.MaxBase) {
		check(fmt.Errorf("invalid base %d", base))
	}
	log.Debug().Uint("prec", prec).Int("base", base).Str("config", viper.ConfigFileUsed()).Msg("configuration")
	return rpn.New(prec, base, log)
}

// printFloat writes x with the configured number of significant digits.
func printFloat(w io.Writer, x *mpfr.Float) {
	fmt.Fprintln(w, x.Text('g', viper.GetInt("digits")))
}
