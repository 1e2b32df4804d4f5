// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mpfrcalc is a reverse polish notation calculator with arbitrary
// precision binary floats.
package main

import (
	"os"

	"github.com/db47h/mpfr/cmd/mpfrcalc/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
