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

	"rflx.io/rflx/go/hack"
)

// Sentinel is stored one byte past the logical end of every owned buffer.
// It is never part of Size or Data.
const Sentinel byte = '\n'

// noCopy may be embedded into structs which must not be copied
// after the first use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// String is an immutable byte string that exclusively owns its buffer.
// The buffer holds Size()+1 bytes, the last one being Sentinel. A String
// whose buffer has been moved out holds no buffer and behaves as empty.
type String struct {
	noCopy noCopy
	buf    []byte
}

func alloc(n int) []byte {
	b := make([]byte, n+1)
	b[n] = Sentinel
	return b
}

func own(p []byte) *String {
	b := alloc(len(p))
	copy(b, p)
	return &String{buf: b}
}

// Empty returns a String of size zero.
func Empty() *String {
	return &String{buf: alloc(0)}
}

// New returns a String holding a copy of p.
func New(p []byte) *String {
	return own(p)
}

// FromCString returns a String holding the bytes of p up to, not including,
// the first NUL. Without a NUL the whole of p is copied.
func FromCString(p []byte) *String {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return own(p)
}

// Repeat returns a String of count copies of ch.
// It panics if count is negative.
func Repeat(count int, ch byte) *String {
	if count < 0 {
		panic("unistr: negative Repeat count")
	}
	b := alloc(count)
	for i := 0; i < count; i++ {
		b[i] = ch
	}
	return &String{buf: b}
}

// FromBytes returns a String holding the given bytes.
func FromBytes(b ...byte) *String {
	return own(b)
}

// Literal returns a String holding a copy of the literal s.
func Literal(s string) *String {
	return own(hack.StringBytes(s))
}

// LiteralBytes is like Literal but takes the literal as a byte list.
func LiteralBytes(b ...byte) *String {
	return own(b)
}

// Size returns the number of bytes in s, not counting the sentinel.
func (s *String) Size() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

// Data returns the content of s. The returned slice aliases the owned
// buffer and must not be modified.
func (s *String) Data() []byte {
	if s.buf == nil {
		return nil
	}
	n := len(s.buf) - 1
	return s.buf[:n:n]
}

// Bytes returns a copy of the content of s.
func (s *String) Bytes() []byte {
	return bytes.Clone(s.Data())
}

// Moved reports whether the buffer of s has been moved out or released.
func (s *String) Moved() bool {
	return s.buf == nil
}

// Clone returns an independent copy of s.
func (s *String) Clone() *String {
	return own(s.Data())
}

// Move transfers the buffer of s into a new String and leaves s empty.
func (s *String) Move() *String {
	m := &String{buf: s.buf}
	s.buf = nil
	return m
}

// Assign releases the buffer of s and takes ownership of the buffer of src,
// leaving src empty. Assigning a String to itself does nothing.
func (s *String) Assign(src *String) {
	if s == src {
		return
	}
	s.Release()
	s.buf = src.buf
	src.buf = nil
}

// Release drops the buffer of s. It is safe to call on a String that has
// already been moved out or released.
func (s *String) Release() {
	s.buf = nil
}

// Concat returns a new String holding s followed by o. Neither operand is
// modified.
func (s *String) Concat(o *String) *String {
	a, b := s.Data(), o.Data()
	buf := alloc(len(a) + len(b))
	copy(buf, a)
	copy(buf[len(a):], b)
	return &String{buf: buf}
}

// View returns a View over the whole content of s.
func (s *String) View() View {
	if s.buf == nil {
		return View{}
	}
	return View{p: &s.buf[0], n: len(s.buf) - 1}
}

// Begin returns an iterator positioned at the first code point of s.
func (s *String) Begin() Iterator {
	return s.View().Begin()
}

// End returns the terminal iterator of s.
func (s *String) End() Iterator {
	return s.View().End()
}

// Runes iterates over the code points of s, yielding the byte offset and
// the decoded rune. Malformed bytes yield utf8.RuneError one byte at a time.
func (s *String) Runes() iter.Seq2[int, rune] {
	return s.View().Runes()
}

// String returns the content of s as a Go string without copying.
func (s *String) String() string {
	return hack.String(s.Data())
}
