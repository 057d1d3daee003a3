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

// Package cli holds helpers shared by the rflx subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

// FinishedParsing marks the end of argument validation for cmd. Errors
// returned after this point are runtime failures, so cobra stops
// printing the usage text alongside them.
func FinishedParsing(cmd *cobra.Command) {
	cmd.SilenceUsage = true
}
