// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile *string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mpfrcalc",
	Short: "Reverse polish notation calculator with arbitrary precision floats.",
	Long: `mpfrcalc evaluates expressions in reverse polish notation, for instance

	mpfrcalc eval 2 sqrt 1 + 2 /

Every result is correctly rounded to the configured precision in bits.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := RootCmd.PersistentFlags()
	cfgFile = flags.StringP("config", "c", "", "config file (default is ./mpfrcalc.yaml)")
	flags.UintP("prec", "p", 53, "precision in bits")
	flags.IntP("base", "b", 0, "number base for input (0: detect 0x and 0b prefixes)")
	flags.IntP("digits", "d", -1, "significant decimal digits for output (-1: shortest)")
	flags.BoolP("verbose", "v", false, "log debug messages to stderr")
	for _, name := range []string{"prec", "base", "digits", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	check(readConfig(*cfgFile))
}

// readConfig sets up viper and reads the config file. Only a missing default
// config file is ignored.
func readConfig(file string) error {
	if file != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(file)
	}

	viper.SetConfigName("mpfrcalc") // name of config file (without extension)
	viper.AddConfigPath(".")        // adding current directory as first search path
	viper.SetEnvPrefix("mpfrcalc")  // MPFRCALC_PREC, MPFRCALC_BASE, ...
	viper.AutomaticEnv()            // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
