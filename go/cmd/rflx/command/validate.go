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

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/log"
	"rflx.io/rflx/go/unicode/charset"
	"rflx.io/rflx/go/utils"
)

// Validate checks inputs against the source charset.
var Validate = &cobra.Command{
	Use:                   "validate [--from <charset>] [--quiet] [<file> ...]",
	Short:                 "Reports whether each input is well formed in the source charset.",
	Long:                  "Reports whether each input is well formed in the source charset. Exits non-zero if any input is not.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ArbitraryArgs,
	RunE:                  commandValidate,
}

var validateOptions = struct {
	Quiet bool
}{}

func commandValidate(cmd *cobra.Command, args []string) error {
	cli.FinishedParsing(cmd)

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var invalid int
	for _, in := range inputs {
		if off := charset.FirstInvalid(from, in.data); off >= 0 {
			invalid++
			fmt.Fprintf(out, "%s: invalid %s at byte %d\n", in.name, from.Name(), off)
			continue
		}
		if !validateOptions.Quiet {
			fmt.Fprintf(out, "%s: valid %s\n", in.name, from.Name())
		}
	}
	log.InfoS("validated inputs", "charset", from.Name(), "inputs", len(inputs), "invalid", invalid)

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d inputs are not valid %s", errInvalidInput, invalid, len(inputs), from.Name())
	}
	return nil
}

func init() {
	utils.SetFlagBoolVar(Validate.Flags(), &validateOptions.Quiet, "quiet", false, "only report inputs that are not valid")
	Root.AddCommand(Validate)
}
