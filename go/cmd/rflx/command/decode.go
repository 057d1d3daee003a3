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
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/log"
	"rflx.io/rflx/go/utils"
)

// Decode prints one table row per code point of each input.
var Decode = &cobra.Command{
	Use:                   "decode [--from <charset>] [--limit <rows>] [<file> ...]",
	Short:                 "Prints the offset, width and value of every code point in each input.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ArbitraryArgs,
	RunE:                  commandDecode,
}

var decodeOptions = struct {
	Limit int
}{}

func formatCodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

func commandDecode(cmd *cobra.Command, args []string) error {
	cli.FinishedParsing(cmd)

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, in := range inputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", in.name)
		}

		table := tablewriter.NewWriter(out)
		table.Header("Offset", "Width", "Code Point", "Status")
		var rows int
		for u := range units(from, in.data) {
			if decodeOptions.Limit > 0 && rows == decodeOptions.Limit {
				break
			}
			rows++

			status := "ok"
			if u.Invalid {
				status = "error"
				if log.Enabled(slog.LevelDebug) {
					log.DebugS("malformed sequence", "input", in.name, "offset", u.Offset,
						"bytes", formatBytes(in.data[u.Offset:u.Offset+u.Width]))
				}
			}
			row := []string{strconv.Itoa(u.Offset), strconv.Itoa(u.Width), formatCodePoint(u.Rune), status}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	utils.SetFlagIntVar(Decode.Flags(), &decodeOptions.Limit, "limit", 0, "maximum number of code points printed per input; 0 prints all")
	Root.AddCommand(Decode)
}
