/*
Copyright 2026 The rflx Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package command contains the commands of the rflx binary.
package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/log"
	"rflx.io/rflx/go/unicode/charset"
	"rflx.io/rflx/go/utils"
)

// envPrefix is prepended to config keys to form their environment
// variable names, e.g. RFLX_FROM.
const envPrefix = "RFLX"

var (
	configFile string

	fromFlag = cli.NewCharsetFlag(charset.Charset_utf8mb4{})
	toFlag   = cli.NewCharsetFlag(charset.Charset_utf8mb4{})

	// from and to are the charsets resolved from flags, environment and
	// config file before a subcommand runs.
	from charset.Charset
	to   charset.Charset

	// Root is the main entrypoint to the rflx binary.
	Root = &cobra.Command{
		Use:   "rflx",
		Short: "rflx inspects, validates and converts Unicode text.",
		Long: `rflx inspects, validates and converts Unicode text.

Charsets can be given as flags, as RFLX_FROM and RFLX_TO environment
variables, or as "from" and "to" keys in the file named by --config.
Flags take precedence over the environment, which takes precedence over
the config file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			return resolveCharsets(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		// We want to silence cobra's error output because we print it from main.
		SilenceErrors: true,
	}
)

func resolveCharsets(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, name := range []string{"from", "to"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("cannot read config %s: %w", configFile, err)
		}
		log.DebugS("loaded config", "file", v.ConfigFileUsed())
	}

	var err error
	if from, err = charset.Lookup(v.GetString("from")); err != nil {
		return fmt.Errorf("invalid source charset: %w", err)
	}
	if to, err = charset.Lookup(v.GetString("to")); err != nil {
		return fmt.Errorf("invalid target charset: %w", err)
	}
	return nil
}

// errInvalidInput is returned by commands that finished their work but
// found input that is not well formed.
var errInvalidInput = errors.New("invalid input")

func init() {
	Root.SetGlobalNormalizationFunc(utils.NormalizeUnderscoresToDashes)

	fs := Root.PersistentFlags()
	utils.SetFlagStringVar(fs, &configFile, "config", "", "config file with \"from\" and \"to\" keys (yaml, json or toml)")
	utils.SetFlagVar(fs, fromFlag, "from", fmt.Sprintf("charset of the input, one of %v", charset.Names()))
	utils.SetFlagVar(fs, toFlag, "to", fmt.Sprintf("charset of the output, one of %v", charset.Names()))
	log.RegisterFlags(fs)
}
