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
	"rflx.io/rflx/go/unicode/utf8"
)

type Charset_utf8mb4 struct{}

func (Charset_utf8mb4) Name() string {
	return "utf8mb4"
}

func (Charset_utf8mb4) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_utf8mb4, Charset_utf8mb3:
		return true
	default:
		return false
	}
}

func (Charset_utf8mb4) EncodeRune(p []byte, r rune) int {
	if !utf8.ValidRune(r) {
		return -1
	}
	return utf8.EncodeRune(p, r)
}

func (Charset_utf8mb4) DecodeRune(p []byte) (rune, int) {
	return utf8.DecodeRune(p)
}

func (Charset_utf8mb4) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf8mb4) Validate(p []byte) bool {
	return utf8.Valid(p)
}

// Charset_utf8mb3 is UTF-8 restricted to the Basic Multilingual Plane:
// sequences are at most 3 bytes long.
type Charset_utf8mb3 struct{}

func (Charset_utf8mb3) Name() string {
	return "utf8mb3"
}

func (Charset_utf8mb3) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_utf8mb3:
		return true
	default:
		return false
	}
}

func (Charset_utf8mb3) EncodeRune(p []byte, r rune) int {
	if l := utf8.RuneLen(r); l < 0 || l > 3 {
		return -1
	}
	return utf8.EncodeRune(p, r)
}

func (Charset_utf8mb3) DecodeRune(p []byte) (rune, int) {
	r, size := utf8.DecodeRune(p)
	if size > 3 {
		return RuneError, 1
	}
	return r, size
}

func (Charset_utf8mb3) SupportsSupplementaryChars() bool {
	return false
}

func (cs Charset_utf8mb3) Validate(p []byte) bool {
	for len(p) > 0 {
		r, size := cs.DecodeRune(p)
		if r == RuneError && size < 3 {
			return false
		}
		p = p[size:]
	}
	return true
}
