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

package utils

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagVariants(t *testing.T) {
	tests := []struct {
		input               string
		expectedUnderscored string
		expectedDashed      string
	}{
		{"a-b", "a_b", "a-b"},
		{"a_b", "a_b", "a-b"},
		{"a-b_c", "a_b_c", "a-b-c"},
		{"example", "example", "example"},
		{"--log_level", "--log_level", "--log-level"},
	}

	for _, tc := range tests {
		underscored, dashed := flagVariants(tc.input)
		assert.Equal(t, tc.expectedUnderscored, underscored, "underscored variant of %q", tc.input)
		assert.Equal(t, tc.expectedDashed, dashed, "dashed variant of %q", tc.input)
	}
}

// testFlagVar is a generic helper to test flag setters for various data types.
func testFlagVar[T any](t *testing.T, name string, def T, usage string, setter func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var value T
	setter(fs, &value, name, def, usage)
	underscored, dashed := flagVariants(name)

	f := fs.Lookup(dashed)
	require.NotNil(t, f, "expected flag %q to be registered", dashed)
	assert.Equal(t, usage, f.Usage)
	assert.False(t, f.Hidden)
	assert.Equal(t, def, value)

	if underscored != dashed {
		assert.Nil(t, fs.Lookup(underscored), "flag %q should only be reachable through normalization", underscored)
	}
}

func TestSetFlagIntVar(t *testing.T) {
	testFlagVar(t, "int-flag", 42, "an integer flag", SetFlagIntVar)
	testFlagVar(t, "int_flag", 42, "an integer flag", SetFlagIntVar)
}

func TestSetFlagBoolVar(t *testing.T) {
	testFlagVar(t, "bool-flag", true, "a boolean flag", SetFlagBoolVar)
}

func TestSetFlagStringVar(t *testing.T) {
	testFlagVar(t, "string-flag", "utf8", "a string flag", SetFlagStringVar)
}

func TestNormalizeUnderscoresToDashes(t *testing.T) {
	var out bytes.Buffer
	old := deprecationOutput
	deprecationOutput = &out
	defer func() { deprecationOutput = old }()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(NormalizeUnderscoresToDashes)

	var from string
	SetFlagStringVar(fs, &from, "source-charset", "utf8", "")
	require.NoError(t, fs.Parse([]string{"--source_charset", "utf16"}))
	assert.Equal(t, "utf16", from)
	assert.Contains(t, out.String(), "Flag --source_charset has been deprecated, use --source-charset instead")

	assert.Equal(t, pflag.NormalizedName("log_dir"), NormalizeUnderscoresToDashes(fs, "log_dir"))
	assert.Equal(t, pflag.NormalizedName("mixed-name_x"), NormalizeUnderscoresToDashes(fs, "mixed-name_x"))
	assert.Equal(t, pflag.NormalizedName("plain"), NormalizeUnderscoresToDashes(fs, "plain"))
}
