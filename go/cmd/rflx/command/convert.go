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
	"errors"

	"github.com/spf13/cobra"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/log"
	"rflx.io/rflx/go/unicode/charset"
)

// Convert transcodes one input from the source to the target charset.
var Convert = &cobra.Command{
	Use:   "convert --from <charset> --to <charset> [<file>]",
	Short: "Converts an input between charsets and writes the result to stdout.",
	Long: `Converts an input between charsets and writes the result to stdout.

Sequences that cannot be decoded, and code points the target charset
cannot represent, are replaced by '?'. Replacements are logged as a
warning and do not make the command fail.`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.MaximumNArgs(1),
	RunE:                  commandConvert,
}

func commandConvert(cmd *cobra.Command, args []string) error {
	cli.FinishedParsing(cmd)

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	in := inputs[0]

	converted, err := charset.Convert(nil, to, in.data, from)
	var failed charset.ErrFailedConversion
	if errors.As(err, &failed) {
		log.WarnS("replaced characters during conversion",
			"input", in.name, "from", from.Name(), "to", to.Name(), "replaced", int(failed))
		err = nil
	}
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(converted); err != nil {
		return err
	}
	log.InfoS("converted input", "input", in.name, "from", from.Name(), "to", to.Name(),
		"bytes_in", len(in.data), "bytes_out", len(converted))
	return nil
}

func init() {
	Root.AddCommand(Convert)
}
