// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive calculator",
	Run: func(cmd *cobra.Command, args []string) {
		m := newMachine()
		rl, err := readline.New("> ")
		check(err)
		defer func() { _ = rl.Close() }()

		for {
			line, err := rl.Readline()
			if err != nil {
				break
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "quit", "exit":
				return
			case "words":
				fmt.Println(strings.Join(m.Words(), " "))
				continue
			}
			if err := m.Eval(line); err != nil {
				fmt.Println("Error:", err)
			}
			for _, x := range m.Stack() {
				printFloat(os.Stdout, x)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(replCmd)
}
