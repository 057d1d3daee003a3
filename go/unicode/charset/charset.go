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

// Package charset converts text between the byte-level encodings of
// Unicode supported by rflx: UTF-8 (full and BMP-only) and UTF-16 in
// either byte order.
package charset

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"rflx.io/rflx/go/unicode/utf8"
)

// RuneError is decoded in place of malformed input.
const RuneError = utf8.RuneError

// ErrUnknownCharset is returned by Lookup for names it does not recognize.
var ErrUnknownCharset = errors.New("unknown charset")

// Charset is a byte-level encoding of Unicode code points.
type Charset interface {
	// Name returns the canonical name of the charset.
	Name() string
	// IsSuperset reports whether every valid byte sequence in other is
	// also valid, with the same meaning, in this charset.
	IsSuperset(other Charset) bool
	// SupportsSupplementaryChars reports whether code points above
	// U+FFFF can be represented.
	SupportsSupplementaryChars() bool
	// EncodeRune writes the encoding of r into p, which must hold at
	// least 4 bytes, and returns the number of bytes written, or -1 if
	// the charset cannot represent r.
	EncodeRune(p []byte, r rune) int
	// DecodeRune decodes the first code point in p. Empty input yields
	// (RuneError, 0) and malformed input yields RuneError with the
	// number of bytes to skip.
	DecodeRune(p []byte) (rune, int)
	// Validate reports whether p is entirely well formed.
	Validate(p []byte) bool
}

var charsets = map[string]Charset{
	"utf8":     Charset_utf8mb4{},
	"utf-8":    Charset_utf8mb4{},
	"utf8mb4":  Charset_utf8mb4{},
	"utf8mb3":  Charset_utf8mb3{},
	"utf16":    Charset_utf16{},
	"utf-16":   Charset_utf16{},
	"utf16be":  Charset_utf16{},
	"utf-16be": Charset_utf16{},
	"utf16le":  Charset_utf16le{},
	"utf-16le": Charset_utf16le{},
}

// Lookup returns the charset registered under name. Names are case
// insensitive.
func Lookup(name string) (Charset, error) {
	cs, ok := charsets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return cs, nil
}

// Names returns the canonical names of all charsets.
func Names() []string {
	return []string{
		Charset_utf8mb4{}.Name(),
		Charset_utf8mb3{}.Name(),
		Charset_utf16{}.Name(),
		Charset_utf16le{}.Name(),
	}
}

// Validate reports whether src is well formed in cs.
func Validate(cs Charset, src []byte) bool {
	return cs.Validate(src)
}

// Length returns the number of code points in src, counting every
// malformed sequence as one.
func Length(cs Charset, src []byte) int {
	if _, ok := cs.(Charset_utf8mb4); ok {
		return utf8.RuneCount(src)
	}
	var n int
	for len(src) > 0 {
		_, width := cs.DecodeRune(src)
		if width == 0 {
			break
		}
		src = src[width:]
		n++
	}
	return n
}

// decodeFailed tells a malformed sequence apart from a well-formed U+FFFD.
func decodeFailed(cs Charset, src []byte, r rune, width int) bool {
	return r == RuneError && !cs.Validate(src[:width])
}

// Unit is one decoding step over a byte slice.
type Unit struct {
	Offset int
	Width  int
	Rune   rune
	// Invalid is set when the bytes at Offset are malformed; Rune is then RuneError.
	Invalid bool
}

// Units decodes src with cs one code point at a time. Every byte of src
// belongs to exactly one Unit.
func Units(cs Charset, src []byte) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for off := 0; off < len(src); {
			r, width := cs.DecodeRune(src[off:])
			if width == 0 {
				return
			}
			u := Unit{Offset: off, Width: width, Rune: r, Invalid: decodeFailed(cs, src[off:], r, width)}
			if !yield(u) {
				return
			}
			off += width
		}
	}
}

// FirstInvalid returns the offset of the first malformed sequence in src,
// or -1 when src is well formed in cs.
func FirstInvalid(cs Charset, src []byte) int {
	for u := range Units(cs, src) {
		if u.Invalid {
			return u.Offset
		}
	}
	return -1
}
