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

package charset

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"rflx.io/rflx/go/unicode/utf16"
)

const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

var (
	defaultUTF16   = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	defaultUTF16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

func encodeUTF16(p []byte, r rune, order binary.ByteOrder) int {
	switch utf16.RuneLen(r) {
	case 1:
		order.PutUint16(p[:2], uint16(r))
		return 2
	case 2:
		r1, r2 := utf16.EncodeRune(r)
		order.PutUint16(p[:2], uint16(r1))
		order.PutUint16(p[2:4], uint16(r2))
		return 4
	default:
		return -1
	}
}

func decodeUTF16(p []byte, order binary.ByteOrder) (rune, int) {
	switch len(p) {
	case 0:
		return RuneError, 0
	case 1:
		return RuneError, 1
	}

	r1 := order.Uint16(p)
	if r1 < surr1 || surr3 <= r1 {
		return rune(r1), 2
	}
	if r1 >= surr2 || len(p) < 4 {
		return RuneError, 2
	}

	r2 := order.Uint16(p[2:])
	if r := utf16.DecodeRune(rune(r1), rune(r2)); r != RuneError {
		return r, 4
	}
	return RuneError, 2
}

func validateUTF16(p []byte, order binary.ByteOrder) bool {
	for len(p) > 0 {
		r, size := decodeUTF16(p, order)
		if r == RuneError && (size < 2 || order.Uint16(p) != RuneError) {
			return false
		}
		p = p[size:]
	}
	return true
}

// Charset_utf16 is UTF-16 serialized in big-endian byte order.
type Charset_utf16 struct{}

func (Charset_utf16) Name() string {
	return "utf16"
}

func (Charset_utf16) IsSuperset(other Charset) bool {
	_, ok := other.(Charset_utf16)
	return ok
}

func (Charset_utf16) EncodeRune(p []byte, r rune) int {
	return encodeUTF16(p, r, binary.BigEndian)
}

func (Charset_utf16) DecodeRune(p []byte) (rune, int) {
	return decodeUTF16(p, binary.BigEndian)
}

func (Charset_utf16) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf16) Validate(p []byte) bool {
	return validateUTF16(p, binary.BigEndian)
}

// Charset_utf16le is UTF-16 serialized in little-endian byte order.
type Charset_utf16le struct{}

func (Charset_utf16le) Name() string {
	return "utf16le"
}

func (Charset_utf16le) IsSuperset(other Charset) bool {
	_, ok := other.(Charset_utf16le)
	return ok
}

func (Charset_utf16le) EncodeRune(p []byte, r rune) int {
	return encodeUTF16(p, r, binary.LittleEndian)
}

func (Charset_utf16le) DecodeRune(p []byte) (rune, int) {
	return decodeUTF16(p, binary.LittleEndian)
}

func (Charset_utf16le) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf16le) Validate(p []byte) bool {
	return validateUTF16(p, binary.LittleEndian)
}

// textEncoding returns the golang.org/x/text encoding backing cs, or nil
// for the UTF-8 charsets.
func textEncoding(cs Charset) encoding.Encoding {
	switch cs.(type) {
	case Charset_utf16:
		return defaultUTF16
	case Charset_utf16le:
		return defaultUTF16LE
	default:
		return nil
	}
}
