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
	"rflx.io/rflx/go/unicode/charset"
)

// Count prints byte and code point counts for each input.
var Count = &cobra.Command{
	Use:                   "count [--from <charset>] [<file> ...]",
	Short:                 "Prints the number of bytes and code points in each input.",
	Long:                  "Prints the number of bytes and code points in each input. Malformed sequences count as one code point each and are also reported separately.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ArbitraryArgs,
	RunE:                  commandCount,
}

func commandCount(cmd *cobra.Command, args []string) error {
	cli.FinishedParsing(cmd)

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, in := range inputs {
		var runes, invalid int
		for u := range units(from, in.data) {
			runes++
			if u.Invalid {
				invalid++
			}
		}
		fmt.Fprintf(out, "%s: %d bytes, %d runes", in.name, len(in.data), runes)
		if isUTF8(from) {
			fmt.Fprintf(out, ", %d invalid", invalid)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func isUTF8(cs charset.Charset) bool {
	switch cs.(type) {
	case charset.Charset_utf8mb4, charset.Charset_utf8mb3:
		return true
	}
	return false
}

func init() {
	Root.AddCommand(Count)
}
