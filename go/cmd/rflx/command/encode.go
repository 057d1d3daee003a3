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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rflx.io/rflx/go/cmd/rflx/cli"
	"rflx.io/rflx/go/log"
)

// Encode prints the encoding of code points given on the command line.
var Encode = &cobra.Command{
	Use:   "encode [--to <charset>] <code point> [<code point> ...]",
	Short: "Prints the bytes encoding each code point in the target charset.",
	Long: `Prints the bytes encoding each code point in the target charset.

Code points may be written as U+XXXX, 0xXXXX or in decimal.`,
	Example:               "rflx encode --to utf16 U+1F600 0xE9 65",
	DisableFlagsInUseLine: true,
	Args:                  cobra.MinimumNArgs(1),
	RunE:                  commandEncode,
}

// parseCodePoint accepts U+XXXX, 0xXXXX and decimal notation.
func parseCodePoint(s string) (rune, error) {
	var (
		digits = s
		base   = 10
	)
	switch {
	case len(s) > 2 && (s[:2] == "U+" || s[:2] == "u+"):
		digits, base = s[2:], 16
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		digits, base = s[2:], 16
	}

	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	return rune(n), nil
}

func formatBytes(p []byte) string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

func commandEncode(cmd *cobra.Command, args []string) error {
	runes := make([]rune, 0, len(args))
	for _, arg := range args {
		r, err := parseCodePoint(arg)
		if err != nil {
			return err
		}
		runes = append(runes, r)
	}

	cli.FinishedParsing(cmd)

	out := cmd.OutOrStdout()
	var (
		buf         [4]byte
		unencodable int
	)
	for _, r := range runes {
		n := to.EncodeRune(buf[:], r)
		if n < 0 {
			unencodable++
			log.WarnS("code point cannot be encoded", "code_point", formatCodePoint(r), "charset", to.Name())
			fmt.Fprintf(out, "%s\t-\n", formatCodePoint(r))
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", formatCodePoint(r), formatBytes(buf[:n]))
	}

	if unencodable > 0 {
		return fmt.Errorf("%w: %d code points cannot be encoded in %s", errInvalidInput, unencodable, to.Name())
	}
	return nil
}

func init() {
	Root.AddCommand(Encode)
}
