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

package unistr

import (
	"bytes"
	"iter"
	"unsafe"

	"rflx.io/rflx/go/hack"
	"rflx.io/rflx/go/unicode/utf8"
)

// View is a borrowed, read-only window of n bytes. It never owns memory;
// the bytes it covers must not be modified while the view is in use.
//
// Views are comparable, and == is identity: it holds when both views start
// at the same address and have the same length, however they were derived.
// Two views over equal bytes in different buffers are not ==; use
// EqualContent to compare content.
//
// A non-empty view holds a pointer to its first byte. An empty view that
// follows known bytes holds a pointer to the byte just before it, since the
// address it starts at may lie past the end of the allocation. An empty
// view with no known predecessor holds its own start address.
type View struct {
	p    *byte
	n    int
	past bool // p is the byte preceding an empty view
}

// NewView returns a View over b.
func NewView(b []byte) View {
	if cap(b) == 0 {
		return View{}
	}
	return View{p: unsafe.SliceData(b), n: len(b)}
}

// ViewCString returns a View over b up to, not including, the first NUL.
func ViewCString(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return NewView(b)
}

// ViewString returns a View over the bytes of s without copying them.
func ViewString(s string) View {
	return NewView(hack.StringBytes(s))
}

// Data returns the bytes covered by v. The slice must not be modified.
func (v View) Data() []byte {
	if v.p == nil {
		return nil
	}
	if v.n == 0 {
		return unsafe.Slice(v.p, 0)
	}
	return unsafe.Slice(v.p, v.n)
}

// Size returns the number of bytes covered by v.
func (v View) Size() int {
	return v.n
}

// Empty reports whether v covers no bytes.
func (v View) Empty() bool {
	return v.n == 0
}

// slice returns the n bytes starting pos bytes into v. The range must
// already be known to fit.
func (v View) slice(pos, n int) View {
	switch {
	case n > 0:
		return View{p: (*byte)(unsafe.Add(unsafe.Pointer(v.p), pos)), n: n}
	case pos > 0:
		return View{p: (*byte)(unsafe.Add(unsafe.Pointer(v.p), pos-1)), past: true}
	default:
		return View{p: v.p, past: v.past}
	}
}

// Substr returns the suffix of v starting at byte pos. When pos equals
// Size the result is the zero-length view at the tail of v. A pos outside
// [0, Size] yields the zero View.
func (v View) Substr(pos int) View {
	if pos < 0 || pos > v.n {
		return View{}
	}
	return v.slice(pos, v.n-pos)
}

// SubstrN returns the n bytes of v starting at byte pos, or the zero View
// when that range does not fit inside v.
func (v View) SubstrN(pos, n int) View {
	if pos < 0 || n < 0 || pos > v.n || n > v.n-pos {
		return View{}
	}
	return v.slice(pos, n)
}

// EqualContent reports whether v and o cover the same bytes, regardless
// of where those bytes live.
func (v View) EqualContent(o View) bool {
	return v == o || bytes.Equal(v.Data(), o.Data())
}

// Begin returns an iterator positioned at the first code point of v.
func (v View) Begin() Iterator {
	return newIterator(v)
}

// End returns the terminal iterator of v: a zero-length view at its tail.
func (v View) End() Iterator {
	return newIterator(v.Substr(v.n))
}

// Runes iterates over the code points of v, yielding the byte offset
// relative to the start of v and the decoded rune.
func (v View) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		p := v.Data()
		for i := 0; i < len(p); {
			r, size := utf8.DecodeRune(p[i:])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// String returns a copy of the bytes covered by v as a Go string.
func (v View) String() string {
	return string(v.Data())
}

// Valid reports whether v consists entirely of valid UTF-8.
func (v View) Valid() bool {
	return utf8.Valid(v.Data())
}

// RuneCount returns the number of runes in v, counting each malformed byte
// as one rune.
func (v View) RuneCount() int {
	return utf8.RuneCount(v.Data())
}

// FullRune reports whether v begins with a full, possibly invalid, encoding.
func (v View) FullRune() bool {
	return utf8.FullRune(v.Data())
}

// DecodeRune decodes the first code point of v.
func (v View) DecodeRune() (rune, int) {
	return utf8.DecodeRune(v.Data())
}

// DecodeLastRune decodes the last code point of v.
func (v View) DecodeLastRune() (rune, int) {
	return utf8.DecodeLastRune(v.Data())
}
