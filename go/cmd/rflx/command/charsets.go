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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/unicode/charset"
)

// Charsets lists the supported charsets.
var Charsets = &cobra.Command{
	Use:                   "charsets",
	Short:                 "Lists the charsets accepted by --from and --to.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE:                  commandCharsets,
}

func commandCharsets(cmd *cobra.Command, args []string) error {
	cli.FinishedParsing(cmd)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Supplementary")
	for _, name := range charset.Names() {
		cs, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		row := []string{
			cs.Name(),
			strconv.FormatBool(cs.SupportsSupplementaryChars()),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	Root.AddCommand(Charsets)
}
