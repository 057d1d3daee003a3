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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testcases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}
	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLevel(tc.in)
			if tc.wantErr {
				assert.ErrorContains(t, err, "invalid log-level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler(&buf, "json", nil)
	require.NoError(t, err)
	assert.IsType(t, &slog.JSONHandler{}, h)

	h, err = newHandler(&buf, "logfmt", nil)
	require.NoError(t, err)
	assert.IsType(t, &slog.TextHandler{}, h)

	_, err = newHandler(&buf, "xml", nil)
	assert.ErrorContains(t, err, "invalid log-fmt")
}

func TestInitRequiresExplicitFormat(t *testing.T) {
	defer SetLogger(slog.Default())()
	structured.Store(false)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	var buf bytes.Buffer
	require.NoError(t, initTo(fs, &buf))
	assert.False(t, structured.Load())
	assert.NoError(t, Init(nil))
}

func TestInitStructured(t *testing.T) {
	defer SetLogger(slog.Default())()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt", "json", "--log-level", "warn"}))

	var buf bytes.Buffer
	require.NoError(t, initTo(fs, &buf))
	assert.True(t, structured.Load())

	InfoS("dropped")
	WarnS("conversion lossy", "replaced", 3)
	assert.False(t, Enabled(slog.LevelInfo))
	assert.True(t, Enabled(slog.LevelError))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "conversion lossy", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["replaced"])
	assert.Contains(t, rec, slog.SourceKey)
}

func TestInitBadLevel(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt", "logfmt", "--log-level", "loud"}))
	assert.Error(t, initTo(fs, &bytes.Buffer{}))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	DebugS("decoded", "rune", "U+00E9")
	ErrorS("bad input", "offset", 7)
	restore()

	out := buf.String()
	assert.Contains(t, out, "msg=decoded")
	assert.Contains(t, out, "rune=U+00E9")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "offset=7")

	assert.NotPanics(t, func() { SetLogger(nil)() })
}

func TestRotateSizeFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	f := fs.Lookup("log-rotate-max-size")
	require.NotNil(t, f)
	assert.Equal(t, "uint64", f.Value.Type())

	assert.Error(t, fs.Set("log-rotate-max-size", "big"))
	require.NoError(t, fs.Set("log-rotate-max-size", "1048576"))
	assert.Equal(t, "1048576", f.Value.String())
}

func TestGlogLine(t *testing.T) {
	assert.Equal(t, "done", glogLine("done", nil))
	assert.Equal(t, "converted input=- replaced=2", glogLine("converted", []any{"input", "-", "replaced", 2}))
	assert.Equal(t, "odd dangling", glogLine("odd", []any{"dangling"}))
	assert.Equal(t, "mixed 7 k=v", glogLine("mixed", []any{7, "k", "v"}))
}
