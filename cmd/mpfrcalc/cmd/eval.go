// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate an expression and print the value on top of the stack",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m := newMachine()
		check(m.Eval(strings.Join(args, " ")))
		x, err := m.Top()
		check(err)
		printFloat(os.Stdout, x)
	},
}

func init() {
	RootCmd.AddCommand(evalCmd)
}
